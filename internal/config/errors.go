package config

import "github.com/ayoisaiah/tally/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file %s failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config to %s failed",
	}

	errInvalidColor = &apperr.Error{
		Message: "accent color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "log level must be one of %s, got %q",
	}

	errInvalidLogSize = &apperr.Error{
		Message: "log max_size must be between %d and %d megabytes, got %d",
	}

	errInvalidLogBackups = &apperr.Error{
		Message: "log max_backups must be between %d and %d, got %d",
	}

	errInvalidSince = &apperr.Error{
		Message: "invalid --since value",
	}

	errPrompt = &apperr.Error{
		Message: "first run prompt failed",
	}
)
