package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
)

var (
	// ErrInvalidMode is returned when a permission mode is not an octal string
	ErrInvalidMode = errors.New("invalid permission mode")

	// ErrInvalidLogLevel is returned when the log level is unknown
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrRelativeTempDir is returned when the temp dir is not absolute
	ErrRelativeTempDir = errors.New("temp dir must be an absolute path")

	// ErrInvalidAffix is returned when a prefix or suffix contains a path separator
	ErrInvalidAffix = errors.New("prefix and suffix must not contain path separators")
)

// Config represents the temptmp configuration
type Config struct {
	// Temp path defaults
	Temp TempConfig `json:"temp" mapstructure:"temp"`

	// Session defaults
	Session SessionConfig `json:"session" mapstructure:"session"`

	// Logging
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// TempConfig holds defaults applied to generated paths
type TempConfig struct {
	Dir      string `json:"dir" mapstructure:"dir"`
	Prefix   string `json:"prefix" mapstructure:"prefix"`
	Suffix   string `json:"suffix" mapstructure:"suffix"`
	FileMode string `json:"file_mode" mapstructure:"file_mode"` // octal, e.g. "0600"
	DirMode  string `json:"dir_mode" mapstructure:"dir_mode"`   // octal, e.g. "0700"
}

// SessionConfig holds session defaults
type SessionConfig struct {
	ID    string `json:"id" mapstructure:"id"`
	Track bool   `json:"track" mapstructure:"track"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `json:"level" mapstructure:"level"`
	File   string `json:"file" mapstructure:"file"`
	Pretty bool   `json:"pretty" mapstructure:"pretty"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		Temp: TempConfig{
			FileMode: "0600",
			DirMode:  "0700",
		},
		Session: SessionConfig{
			Track: true,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Pretty: true,
		},
	}
}

// ParseMode parses an octal permission string. An empty string yields 0.
func ParseMode(s string) (os.FileMode, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(s, 8, 32)
	if err != nil || n > 0o777 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return os.FileMode(n), nil
}

// Modes returns the parsed file and directory modes
func (t TempConfig) Modes() (fileMode, dirMode os.FileMode, err error) {
	if fileMode, err = ParseMode(t.FileMode); err != nil {
		return 0, 0, fmt.Errorf("temp.file_mode: %w", err)
	}
	if dirMode, err = ParseMode(t.DirMode); err != nil {
		return 0, 0, fmt.Errorf("temp.dir_mode: %w", err)
	}
	return fileMode, dirMode, nil
}

// String returns a JSON representation of the config
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

// Validate returns the first validation error, if any
func (c *Config) Validate() error {
	if errs := NewValidator().ValidateConfig(c); len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
