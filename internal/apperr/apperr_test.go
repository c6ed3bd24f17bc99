package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/tally/internal/apperr"
)

var (
	errSentinel = &apperr.Error{Message: "key %q not found"}
	errOther    = &apperr.Error{Message: "something else"}
)

func TestErrorMatching(t *testing.T) {
	formatted := errSentinel.Fmt("records_file_path")

	assert.Equal(t, `key "records_file_path" not found`, formatted.Error())
	assert.ErrorIs(t, formatted, errSentinel)
	assert.NotErrorIs(t, formatted, errOther)

	wrapped := formatted.Wrap(io.ErrUnexpectedEOF)

	assert.Equal(
		t,
		`key "records_file_path" not found: unexpected EOF`,
		wrapped.Error(),
	)
	assert.ErrorIs(t, wrapped, errSentinel)
	assert.ErrorIs(t, wrapped, io.ErrUnexpectedEOF)
	assert.True(t, errors.Is(wrapped, formatted))
}
