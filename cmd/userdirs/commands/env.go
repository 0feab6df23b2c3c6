package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/userdirs"
)

func init() {
	rootCmd.AddCommand(envCmd)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show which override variables are in effect",
	Long: `Show each override environment variable and its current value.

A variable that is present in the environment, even with an empty value,
fully determines its category. Values are shown verbatim.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		writeEnv(cmd.OutOrStdout())
		return nil
	},
}

// overrideVars lists every variable the resolver consults, in the order
// they are documented.
var overrideVars = []string{
	userdirs.EnvDataHome,
	userdirs.EnvConfigHome,
	userdirs.EnvCacheHome,
	userdirs.EnvStateHome,
	userdirs.EnvRuntimeDir,
	userdirs.EnvAppData,
	userdirs.EnvLocalAppData,
}

func writeEnv(w io.Writer) {
	set := color.New(color.FgGreen).SprintFunc()
	unset := color.New(color.FgHiBlack).SprintFunc()

	fmt.Fprintf(w, "platform: %s\n", userdirs.CurrentPlatform())

	for _, name := range overrideVars {
		if v, ok := os.LookupEnv(name); ok {
			fmt.Fprintf(w, "%-16s %s %q\n", name, set("set"), v)
		} else {
			fmt.Fprintf(w, "%-16s %s\n", name, unset("unset"))
		}
	}
}
