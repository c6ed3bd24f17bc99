package settings

import "github.com/ayoisaiah/tally/internal/apperr"

var (
	ErrMissingKey = &apperr.Error{
		Message: "setting %q is missing from %s",
	}

	errReadSettings = &apperr.Error{
		Message: "reading settings file %s failed",
	}

	errWriteSettings = &apperr.Error{
		Message: "writing settings file %s failed",
	}
)
