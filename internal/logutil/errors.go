package logutil

import "github.com/ayoisaiah/tally/internal/apperr"

var errLogDir = &apperr.Error{
	Message: "creating log directory %s failed",
}
