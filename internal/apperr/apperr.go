// Package apperr defines the error type shared by tally's packages
package apperr

import "fmt"

// Error is a message-bearing sentinel. Values derived with Fmt or Wrap still
// match their sentinel through errors.Is.
type Error struct {
	base    *Error
	Cause   error
	Message string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

// Fmt returns a copy of e with its message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		base:    e.root(),
		Cause:   e.Cause,
		Message: fmt.Sprintf(e.Message, args...),
	}
}

// Wrap returns a copy of e that records err as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		base:    e.root(),
		Cause:   err,
		Message: e.Message,
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is e or the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || e.root() == t.root()
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}
