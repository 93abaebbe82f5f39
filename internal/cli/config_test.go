package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harun/temptmp/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runWithConfig is runCommand with a caller-chosen config path
func runWithConfig(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()

	resetFlags()
	t.Cleanup(resetFlags)

	cmd := GetRootCmd()
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := cmd.Execute()
	return stdout.String(), err
}

func TestConfigShow(t *testing.T) {
	out, _, err := runCommand(t, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, `"file_mode": "0600"`)
	assert.Contains(t, out, `"dir_mode": "0700"`)
	assert.Contains(t, out, `"track": true`)
}

func TestConfigInit(t *testing.T) {
	t.Run("writes defaults", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "sub", "temptmp.json")

		out, err := runWithConfig(t, cfgPath, "config", "init")
		require.NoError(t, err)
		assert.Equal(t, cfgPath, strings.TrimSpace(out))

		cfg, err := config.NewLoader(cfgPath).Load()
		require.NoError(t, err)
		assert.Equal(t, config.DefaultConfig().Temp, cfg.Temp)
		assert.True(t, cfg.Session.Track)
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "temptmp.json")
		require.NoError(t, os.WriteFile(cfgPath, []byte(`{"temp":{"prefix":"mine-"}}`), 0600))

		_, err := runWithConfig(t, cfgPath, "config", "init")
		assert.ErrorIs(t, err, ErrConfigExists)

		cfg, err := config.NewLoader(cfgPath).Load()
		require.NoError(t, err)
		assert.Equal(t, "mine-", cfg.Temp.Prefix)
	})

	t.Run("force keeps loaded values", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "temptmp.json")
		require.NoError(t, os.WriteFile(cfgPath, []byte(`{"temp":{"prefix":"mine-"}}`), 0600))

		_, err := runWithConfig(t, cfgPath, "config", "init", "--force")
		require.NoError(t, err)

		cfg, err := config.NewLoader(cfgPath).Load()
		require.NoError(t, err)
		assert.Equal(t, "mine-", cfg.Temp.Prefix)
		assert.Equal(t, "0700", cfg.Temp.DirMode)
	})
}
