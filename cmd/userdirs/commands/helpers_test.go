package commands

import (
	"bytes"
	"os"
	"testing"
)

// executeCommand runs the root command with args and returns combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

// unsetEnv removes a variable for the duration of the test. t.Setenv with
// an empty value is not equivalent: a present-but-empty override counts
// as set.
func unsetEnv(t *testing.T, key string) {
	t.Helper()

	orig, had := os.LookupEnv(key)
	os.Unsetenv(key)
	t.Cleanup(func() {
		if had {
			os.Setenv(key, orig)
		}
	})
}
