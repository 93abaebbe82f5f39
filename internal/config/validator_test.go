package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMode(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateMode("0600"))
	assert.NoError(t, v.ValidateMode(""))
	assert.Error(t, v.ValidateMode("999"))
}

func TestValidateLogLevel(t *testing.T) {
	v := NewValidator()

	t.Run("valid levels", func(t *testing.T) {
		levels := []string{"debug", "info", "warn", "error"}
		for _, level := range levels {
			err := v.ValidateLogLevel(level)
			assert.NoError(t, err, "level %s should be valid", level)
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		err := v.ValidateLogLevel("invalid")
		assert.Error(t, err)
	})
}

func TestValidateTempDir(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateTempDir(""))
	assert.NoError(t, v.ValidateTempDir("/var/tmp"))
	assert.ErrorIs(t, v.ValidateTempDir("tmp"), ErrRelativeTempDir)
}

func TestValidateAffix(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateAffix(""))
	assert.NoError(t, v.ValidateAffix("build-"))
	assert.NoError(t, v.ValidateAffix(".tar.gz"))
	assert.ErrorIs(t, v.ValidateAffix("a/b"), ErrInvalidAffix)
}

func TestValidateConfig(t *testing.T) {
	v := NewValidator()

	t.Run("valid config", func(t *testing.T) {
		errors := v.ValidateConfig(DefaultConfig())
		assert.Empty(t, errors)
	})

	t.Run("multiple errors", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Temp.Dir = "relative"
		cfg.Temp.FileMode = "bad"
		cfg.Logging.Level = "invalid"

		errors := v.ValidateConfig(cfg)
		assert.Len(t, errors, 3)
	})
}
