package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/userdirs"
	"github.com/thoreinstein/userdirs/internal/config"
	"github.com/thoreinstein/userdirs/internal/errors"
)

var listFormat string

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "",
		"output format: text, json, yaml, toml (default from config file)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every resolved directory",
	Long: `Print every resolved directory in one pass.

State and runtime are omitted (structured formats) or shown as (none)
(text format) when the platform has no convention for them and no
override variable is set.

The default output format is taken from the config file ("format" key)
or the USERDIRS_FORMAT environment variable.`,
	Example: `  # Human-readable listing
  userdirs list

  # Machine-readable output for scripting
  userdirs list --format json
  userdirs list --format toml`,
	Args:    cobra.NoArgs,
	PreRunE: validateListFlags,
	RunE:    runList,
}

// validateListFlags resolves the effective format, falling back to the
// configured default when the flag is unset.
func validateListFlags(_ *cobra.Command, _ []string) error {
	if listFormat == "" {
		if cfg != nil {
			listFormat = cfg.Format
		} else {
			listFormat = "text"
		}
	}
	if !config.ValidFormat(listFormat) {
		err := errors.Wrap(errors.ErrUnknownFormat, listFormat)
		return errors.NewUserError(err, "valid formats: text, json, yaml, toml")
	}
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	dirs, err := userdirs.New().All()
	if err != nil {
		return errors.NewSystemError(err, "check that your user account has a home directory")
	}
	return writeDirs(cmd.OutOrStdout(), dirs, listFormat)
}

// writeDirs renders the aggregate record in the requested format.
func writeDirs(w io.Writer, dirs *userdirs.Directories, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(dirs)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(dirs)
	case "toml":
		return toml.NewEncoder(w).Encode(dirs)
	default:
		writeDirsText(w, dirs)
		return nil
	}
}

func writeDirsText(w io.Writer, dirs *userdirs.Directories) {
	label := color.New(color.FgCyan).SprintfFunc()
	none := color.New(color.FgHiBlack).SprintFunc()

	optional := func(p *string) string {
		if p == nil {
			return none("(none)")
		}
		return *p
	}

	fmt.Fprintf(w, "%s %s\n", label("%-8s", "home"), dirs.Home)
	fmt.Fprintf(w, "%s %s\n", label("%-8s", "data"), dirs.Data)
	fmt.Fprintf(w, "%s %s\n", label("%-8s", "config"), dirs.Config)
	fmt.Fprintf(w, "%s %s\n", label("%-8s", "cache"), dirs.Cache)
	fmt.Fprintf(w, "%s %s\n", label("%-8s", "state"), optional(dirs.State))
	fmt.Fprintf(w, "%s %s\n", label("%-8s", "runtime"), optional(dirs.Runtime))
}
