package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	keyDarkTheme      = "display.dark_theme"
	keyAccentColor    = "display.accent_color"
	keyLogLevel       = "log.level"
	keyLogMaxSize     = "log.max_size"
	keyLogMaxBackups  = "log.max_backups"
	envPrefix         = "TALLY"
	defaultAccent     = "#B0DB43"
	defaultLogLevel   = "info"
	defaultMaxSize    = 5
	defaultMaxBackups = 3
)

// WithViperConfig returns an Option that loads configuration from Viper.
// The file is created with default values if it does not exist yet.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Fmt(configPath).Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Fmt(configPath).Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults, environment overrides and any
// values already chosen by earlier options.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyAccentColor, defaultAccent)
	v.SetDefault(keyLogLevel, defaultLogLevel)
	v.SetDefault(keyLogMaxSize, defaultMaxSize)
	v.SetDefault(keyLogMaxBackups, defaultMaxBackups)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// values picked in the first run prompt
	if c.Display.AccentColor != "" {
		v.SetDefault(keyAccentColor, c.Display.AccentColor)
		v.SetDefault(keyDarkTheme, c.Display.DarkTheme)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	err := v.Unmarshal(c)
	if err != nil {
		return errReadConfig.Fmt(v.ConfigFileUsed()).Wrap(err)
	}

	return nil
}
