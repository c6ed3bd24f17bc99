package app

import "github.com/ayoisaiah/tally/internal/apperr"

var (
	errInvalidLength = &apperr.Error{
		Message: "invalid session length %q: use a duration such as 25m or 1h30m",
	}

	errEmptyTask = &apperr.Error{
		Message: "task description cannot be empty",
	}

	errInvalidEditor = &apperr.Error{
		Message: "cannot parse editor command %q",
	}
)
