package commands

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/userdirs"
	"github.com/thoreinstein/userdirs/internal/errors"
)

func TestHomeCommand(t *testing.T) {
	want, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory in this environment")
	}

	out, err := executeCommand(t, "home")
	require.NoError(t, err)
	assert.Equal(t, want+"\n", out)
}

func TestDirCommands_Overrides(t *testing.T) {
	tests := []struct {
		command  string
		variable string
	}{
		{command: "data", variable: userdirs.EnvDataHome},
		{command: "config", variable: userdirs.EnvConfigHome},
		{command: "cache", variable: userdirs.EnvCacheHome},
		{command: "state", variable: userdirs.EnvStateHome},
		{command: "runtime", variable: userdirs.EnvRuntimeDir},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			t.Setenv(tt.variable, "/override/"+tt.command)

			out, err := executeCommand(t, tt.command)
			require.NoError(t, err)
			assert.Equal(t, "/override/"+tt.command+"\n", out)
		})
	}
}

func TestConfigCommand_Default(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory in this environment")
	}

	unsetEnv(t, userdirs.EnvConfigHome)

	out, cmdErr := executeCommand(t, "config")
	require.NoError(t, cmdErr)

	var want string
	switch runtime.GOOS {
	case "darwin":
		want = filepath.Join(home, "Library", "Preferences")
	case "windows":
		if v, ok := os.LookupEnv(userdirs.EnvAppData); ok {
			want = v
		} else {
			want = filepath.Join(home, "AppData", "Roaming")
		}
	default:
		want = filepath.Join(home, ".config")
	}
	assert.Equal(t, want+"\n", out)
}

func TestStateCommand_NoConvention(t *testing.T) {
	if runtime.GOOS != "darwin" && runtime.GOOS != "windows" {
		t.Skip("state has a POSIX default on this platform")
	}

	unsetEnv(t, userdirs.EnvStateHome)

	_, err := executeCommand(t, "state")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNoDirectory)
}

func TestStateCommand_PosixDefault(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("no state convention on this platform")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory in this environment")
	}

	unsetEnv(t, userdirs.EnvStateHome)

	out, cmdErr := executeCommand(t, "state")
	require.NoError(t, cmdErr)
	assert.Equal(t, filepath.Join(home, ".local", "state")+"\n", out)
}

func TestRuntimeCommand_NoOverride(t *testing.T) {
	unsetEnv(t, userdirs.EnvRuntimeDir)

	_, err := executeCommand(t, "runtime")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNoDirectory)

	var exitErr *errors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, errors.ExitUser, exitErr.Code)
	assert.Contains(t, exitErr.Suggestion, "XDG_RUNTIME_DIR")
}

func TestDirCommands_RejectArgs(t *testing.T) {
	for _, command := range []string{"home", "data", "config", "cache", "state", "runtime"} {
		t.Run(command, func(t *testing.T) {
			out, err := executeCommand(t, command, "extra")
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), "unknown command") ||
				strings.Contains(err.Error(), "accepts 0 arg"), "unexpected error: %v (output: %s)", err, out)
		})
	}
}
