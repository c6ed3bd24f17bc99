package config

import (
	"log/slog"
	"regexp"
	"strings"
)

var (
	// Log rotation constraints.
	minLogSize    = 1
	maxLogSize    = 100
	minLogBackups = 0
	maxLogBackups = 20

	logLevels = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	// Color format validation.
	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateDisplay(); err != nil {
		return err
	}

	return c.validateLog()
}

func (c *Config) validateDisplay() error {
	if !hexColorRegex.MatchString(c.Display.AccentColor) {
		return errInvalidColor.Fmt(c.Display.AccentColor)
	}

	return nil
}

func (c *Config) validateLog() error {
	if _, ok := logLevels[strings.ToLower(c.Log.Level)]; !ok {
		return errInvalidLogLevel.Fmt("debug, info, warn, error", c.Log.Level)
	}

	if c.Log.MaxSize < minLogSize || c.Log.MaxSize > maxLogSize {
		return errInvalidLogSize.Fmt(minLogSize, maxLogSize, c.Log.MaxSize)
	}

	if c.Log.MaxBackups < minLogBackups || c.Log.MaxBackups > maxLogBackups {
		return errInvalidLogBackups.Fmt(
			minLogBackups,
			maxLogBackups,
			c.Log.MaxBackups,
		)
	}

	return nil
}

// SlogLevel returns the configured log level. Call it after Validate.
func (c *Config) SlogLevel() slog.Level {
	return logLevels[strings.ToLower(c.Log.Level)]
}
