package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is raised when two-operand arithmetic gets operands of
	// different lengths.
	ErrLengthMismatch = errors.New("vector: length mismatch")
	// ErrOutOfRange is raised for an index or slice range outside the container.
	ErrOutOfRange = errors.New("vector: index out of range")
	// ErrNegativeLength is raised when constructing or resizing to a negative length.
	ErrNegativeLength = errors.New("vector: negative length")
	// ErrInvalidRamp is raised when a ramp's step is zero or its length is not
	// representable.
	ErrInvalidRamp = errors.New("vector: invalid ramp")
	// ErrStaleView is raised when a View is used after its source was resized.
	ErrStaleView = errors.New("vector: stale view")
)

func checkIndex(i, n int) {
	if uint(i) >= uint(n) {
		panic(fmt.Errorf("%w: index %d with length %d", ErrOutOfRange, i, n))
	}
}

func checkRange(lo, hi, n int) {
	if lo < 0 || lo > hi || hi > n {
		panic(fmt.Errorf("%w: range [%d:%d] with length %d", ErrOutOfRange, lo, hi, n))
	}
}

func checkLength(n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeLength, n))
	}
}
