package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validator validates configuration values
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateMode validates an octal permission string
func (v *Validator) ValidateMode(mode string) error {
	_, err := ParseMode(mode)
	return err
}

// ValidateLogLevel validates log level
func (v *Validator) ValidateLogLevel(level string) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	for _, valid := range validLevels {
		if level == valid {
			return nil
		}
	}
	return fmt.Errorf("%w: %s (must be one of: %s)", ErrInvalidLogLevel, level, strings.Join(validLevels, ", "))
}

// ValidateTempDir validates the temp directory. Empty means the OS default.
func (v *Validator) ValidateTempDir(dir string) error {
	if dir == "" {
		return nil
	}
	if !filepath.IsAbs(dir) {
		return fmt.Errorf("%w: %s", ErrRelativeTempDir, dir)
	}
	return nil
}

// ValidateAffix rejects prefixes and suffixes that would escape the temp dir
func (v *Validator) ValidateAffix(affix string) error {
	if strings.ContainsRune(affix, '/') || strings.ContainsRune(affix, filepath.Separator) {
		return fmt.Errorf("%w: %q", ErrInvalidAffix, affix)
	}
	return nil
}

// ValidateConfig performs comprehensive validation
func (v *Validator) ValidateConfig(cfg *Config) []error {
	var errors []error

	if err := v.ValidateTempDir(cfg.Temp.Dir); err != nil {
		errors = append(errors, err)
	}
	if err := v.ValidateAffix(cfg.Temp.Prefix); err != nil {
		errors = append(errors, fmt.Errorf("temp.prefix: %w", err))
	}
	if err := v.ValidateAffix(cfg.Temp.Suffix); err != nil {
		errors = append(errors, fmt.Errorf("temp.suffix: %w", err))
	}
	if err := v.ValidateMode(cfg.Temp.FileMode); err != nil {
		errors = append(errors, fmt.Errorf("temp.file_mode: %w", err))
	}
	if err := v.ValidateMode(cfg.Temp.DirMode); err != nil {
		errors = append(errors, fmt.Errorf("temp.dir_mode: %w", err))
	}
	if err := v.ValidateLogLevel(cfg.Logging.Level); err != nil {
		errors = append(errors, err)
	}

	return errors
}
