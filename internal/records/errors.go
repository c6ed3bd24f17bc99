package records

import "github.com/ayoisaiah/tally/internal/apperr"

var (
	ErrMalformedRow = &apperr.Error{
		Message: "malformed record in %s",
	}

	ErrMissingColumn = &apperr.Error{
		Message: "records file %s has no %q column",
	}

	errOpenRecords = &apperr.Error{
		Message: "unable to open records file %s",
	}

	errWriteRecords = &apperr.Error{
		Message: "unable to write records file %s",
	}

	errInvalidDate = &apperr.Error{
		Message: "invalid record date %q",
	}

	errInvalidLength = &apperr.Error{
		Message: "invalid record length %q",
	}
)
