package config

import (
	"io"
	"os"
)

type (
	// Config holds all configuration settings
	Config struct {
		Display DisplayConfig `mapstructure:"display"`
		Log     LogConfig     `mapstructure:"log"`
		CLI     CLIConfig     `mapstructure:"-"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		AccentColor string `mapstructure:"accent_color"`
		DarkTheme   bool   `mapstructure:"dark_theme"`
	}

	// LogConfig holds settings for the log file
	LogConfig struct {
		Level      string `mapstructure:"level"`
		MaxSize    int    `mapstructure:"max_size"`
		MaxBackups int    `mapstructure:"max_backups"`
	}

	// CLIConfig holds values that only come from command-line flags
	CLIConfig struct {
		SettingsPath string
		NoColor      bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config with default values and applies options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
