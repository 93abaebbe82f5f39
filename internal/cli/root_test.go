package cli

import (
	"bytes"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the root command with a config path that does not
// exist, so the user's own config never leaks into tests.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	resetFlags()
	t.Cleanup(resetFlags)

	cmd := GetRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	full := append([]string{"--config", filepath.Join(t.TempDir(), "none.json")}, args...)
	cmd.SetArgs(full)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags() {
	cfgFile = ""
	logLevel = ""
	pathFlags.reset()
	pathCount = 1
	fileFlags.reset()
	dirFlags.reset()
	execFlags.reset()
	execSession = ""
	execKeep = false
	execMetricsAddr = ""
	configForce = false
}

func TestRootCommand(t *testing.T) {
	t.Run("version flag", func(t *testing.T) {
		out, _, err := runCommand(t, "--version")
		require.NoError(t, err)

		assert.Contains(t, out, "temptmp version")
		assert.Contains(t, out, GetVersion())
	})

	t.Run("help flag", func(t *testing.T) {
		out, _, err := runCommand(t, "--help")
		require.NoError(t, err)

		assert.Contains(t, out, "temptmp")
		assert.Contains(t, out, "session")
	})

	t.Run("global flags", func(t *testing.T) {
		cmd := GetRootCmd()

		configFlag := cmd.PersistentFlags().Lookup("config")
		require.NotNil(t, configFlag)
		assert.Equal(t, "", configFlag.DefValue)

		logLevelFlag := cmd.PersistentFlags().Lookup("log-level")
		require.NotNil(t, logLevelFlag)
		assert.Equal(t, "", logLevelFlag.DefValue)
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, _, err := runCommand(t, "--log-level", "loud", "path")
		assert.Error(t, err)
	})
}

func TestGetVersion(t *testing.T) {
	version := GetVersion()
	assert.NotEmpty(t, version)
	assert.True(t, strings.HasPrefix(version, "0."))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("boom")))

	err := exec.Command("sh", "-c", "exit 4").Run()
	require.Error(t, err)
	assert.Equal(t, 4, ExitCode(err))
}

func TestShutdownWithoutRegistry(t *testing.T) {
	saved := registry
	registry = nil
	t.Cleanup(func() { registry = saved })

	assert.NotPanics(t, Shutdown)
}
