package generic

import "github.com/cwbudde/algo-vector/internal/kernel/registry"

// Scale multiplies each element by a scalar: dst[i] = src[i] * scalar.
// Slices must have equal length. Panics if lengths differ.
// This is the pure Go fallback implementation.
func Scale[T registry.Float](dst, src []T, scalar T) {
	if len(dst) != len(src) {
		panic("kernel: slice length mismatch")
	}
	for i := range dst {
		dst[i] = src[i] * scalar
	}
}

// Ramp fills dst with an arithmetic sequence: dst[i] = start + i*step.
// Each element is computed from its index, so rounding error does not
// accumulate along the sequence.
func Ramp[T registry.Float](dst []T, start, step T) {
	for i := range dst {
		dst[i] = start + T(i)*step
	}
}
