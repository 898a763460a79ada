package vector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// requirePanicsWith fails t unless fn panics with an error wrapping target.
func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
	}()
	fn()
}

// bothWidths runs fn as a float32 and a float64 subtest.
func bothWidths(t *testing.T, fn32 func(t *testing.T), fn64 func(t *testing.T)) {
	t.Run("float32", fn32)
	t.Run("float64", fn64)
}
