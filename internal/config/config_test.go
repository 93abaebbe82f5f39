package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Empty(t, cfg.Temp.Dir)
	assert.Equal(t, "0600", cfg.Temp.FileMode)
	assert.Equal(t, "0700", cfg.Temp.DirMode)
	assert.True(t, cfg.Session.Track)
	assert.Empty(t, cfg.Session.ID)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    os.FileMode
		wantErr bool
	}{
		{in: "", want: 0},
		{in: "0600", want: 0600},
		{in: "700", want: 0700},
		{in: "0755", want: 0755},
		{in: "0800", wantErr: true},
		{in: "rw", wantErr: true},
		{in: "01777", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTempConfigModes(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		fileMode, dirMode, err := DefaultConfig().Temp.Modes()
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), fileMode)
		assert.Equal(t, os.FileMode(0700), dirMode)
	})

	t.Run("invalid dir mode", func(t *testing.T) {
		tc := TempConfig{FileMode: "0600", DirMode: "x"}
		_, _, err := tc.Modes()
		assert.ErrorIs(t, err, ErrInvalidMode)
		assert.Contains(t, err.Error(), "temp.dir_mode")
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("relative temp dir", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Temp.Dir = "relative/dir"
		assert.ErrorIs(t, cfg.Validate(), ErrRelativeTempDir)
	})

	t.Run("prefix with separator", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Temp.Prefix = "../escape-"
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidAffix)
	})

	t.Run("bad level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Logging.Level = "loud"
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidLogLevel)
	})
}

func TestConfigString(t *testing.T) {
	s := DefaultConfig().String()
	assert.Contains(t, s, `"file_mode": "0600"`)
	assert.Contains(t, s, `"track": true`)
}
