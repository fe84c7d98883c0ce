package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	wrapped := Wrapf(ErrUnknownLanguage, "language %q", "cobol")

	require.Error(t, wrapped)
	assert.Equal(t, `language "cobol": unknown language`, wrapped.Error())
	assert.True(t, Is(wrapped, ErrUnknownLanguage))
	assert.False(t, Is(wrapped, ErrUnknownFormat))
}

func TestHints(t *testing.T) {
	err := WithHintf(Wrap(ErrNoInputs, "expand globs"), "checked %d patterns", 2)

	assert.True(t, Is(err, ErrNoInputs))
	assert.Equal(t, []string{"checked 2 patterns"}, GetAllHints(err))
	assert.Equal(t, "checked 2 patterns", FlattenHints(err))
}

type pathError struct{ path string }

func (e *pathError) Error() string { return "bad path " + e.path }

func TestAs(t *testing.T) {
	err := Wrap(&pathError{path: "a.puml"}, "read")

	var target *pathError
	require.True(t, As(err, &target))
	assert.Equal(t, "a.puml", target.path)
}
