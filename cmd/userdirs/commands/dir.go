package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/userdirs"
	"github.com/thoreinstein/userdirs/internal/errors"
)

func init() {
	rootCmd.AddCommand(homeCmd)
	rootCmd.AddCommand(dataCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(runtimeCmd)
}

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Print the home directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printDir(cmd, "home", userdirs.New().Home)
	},
}

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Print the data directory",
	Long: `Print the data directory.

Resolution order: XDG_DATA_HOME if set; otherwise the platform default
(~/Library/Application Support on macOS, %APPDATA% on Windows,
~/.local/share elsewhere).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printDir(cmd, "data", userdirs.New().Data)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the config directory",
	Long: `Print the config directory.

Resolution order: XDG_CONFIG_HOME if set; otherwise the platform default
(~/Library/Preferences on macOS, %APPDATA% on Windows, ~/.config
elsewhere).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printDir(cmd, "config", userdirs.New().Config)
	},
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Print the cache directory",
	Long: `Print the cache directory.

Resolution order: XDG_CACHE_HOME if set; otherwise the platform default
(~/Library/Caches on macOS, %LOCALAPPDATA% on Windows, ~/.cache
elsewhere).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printDir(cmd, "cache", userdirs.New().Cache)
	},
}

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the state directory",
	Long: `Print the state directory.

Resolution order: XDG_STATE_HOME if set; otherwise ~/.local/state on
POSIX systems. macOS and Windows have no state convention, so without
the override this command fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dir, ok, err := userdirs.New().State()
		if err != nil {
			return errors.NewSystemError(err, "check that your user account has a home directory")
		}
		if !ok {
			return errors.NewUserError(
				errors.Wrap(errors.ErrNoDirectory, "state"),
				"Set XDG_STATE_HOME to define a state directory on this platform")
		}
		slog.Debug("resolved directory", "category", "state", "path", dir)
		fmt.Fprintln(cmd.OutOrStdout(), dir)
		return nil
	},
}

var runtimeCmd = &cobra.Command{
	Use:   "runtime",
	Short: "Print the runtime directory",
	Long: `Print the runtime directory.

Only XDG_RUNTIME_DIR provides a runtime directory; there is no platform
default anywhere. Without the override this command fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dir, ok := userdirs.New().Runtime()
		if !ok {
			return errors.NewUserError(
				errors.Wrap(errors.ErrNoDirectory, "runtime"),
				"Set XDG_RUNTIME_DIR to define a runtime directory")
		}
		slog.Debug("resolved directory", "category", "runtime", "path", dir)
		fmt.Fprintln(cmd.OutOrStdout(), dir)
		return nil
	},
}

// printDir resolves one always-present category and prints it.
func printDir(cmd *cobra.Command, category string, resolve func() (string, error)) error {
	dir, err := resolve()
	if err != nil {
		return errors.NewSystemError(err, "check that your user account has a home directory")
	}
	slog.Debug("resolved directory", "category", category, "path", dir)
	fmt.Fprintln(cmd.OutOrStdout(), dir)
	return nil
}
