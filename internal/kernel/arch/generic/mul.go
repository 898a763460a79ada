package generic

import "github.com/cwbudde/algo-vector/internal/kernel/registry"

// Mul performs element-wise multiplication: dst[i] = a[i] * b[i].
// Slices must have equal length. Panics if lengths differ.
// This is the pure Go fallback implementation.
func Mul[T registry.Float](dst, a, b []T) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// Div performs element-wise division: dst[i] = num[i] / den[i].
// The denominator is the first source operand.
// Slices must have equal length. Panics if lengths differ.
// This is the pure Go fallback implementation.
func Div[T registry.Float](dst, den, num []T) {
	if len(den) != len(num) || len(dst) != len(den) {
		panic("kernel: slice length mismatch")
	}
	for i := range dst {
		dst[i] = num[i] / den[i]
	}
}
