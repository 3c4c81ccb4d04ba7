package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	e1 := New("cause1")
	e2 := New("cause2").Wrap(e1)
	e := New("dummy").Wrap(e2)
	e3 := e.Unwrap()
	assert.True(t, Is(e, e1))
	assert.True(t, Is(e, e2))
	assert.True(t, e3 == e2)
}

func TestWrapKeepsSentinel(t *testing.T) {
	sentinel := New("upload failed")
	cause := fmt.Errorf("connection reset")

	wrapped := sentinel.Wrap(cause)
	require.True(t, Is(wrapped, sentinel))
	require.True(t, Is(wrapped, cause))
	assert.Equal(t, "upload failed: connection reset", wrapped.Error())

	// the sentinel itself is left untouched
	assert.Nil(t, sentinel.Unwrap())
	assert.Equal(t, "upload failed", sentinel.Error())

	other := New("commit rejected")
	assert.False(t, Is(wrapped, other))
}

func TestWrapMessage(t *testing.T) {
	sentinel := New("track update")
	err := sentinel.WrapMessage("track %q has no release", "beta")
	assert.True(t, Is(err, sentinel))
	assert.Equal(t, `track update: track "beta" has no release`, err.Error())

	var target *Error
	require.True(t, As(fmt.Errorf("outer: %w", err), &target))
	assert.True(t, Is(target, sentinel))
}
