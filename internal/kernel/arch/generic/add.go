package generic

import "github.com/cwbudde/algo-vector/internal/kernel/registry"

// Add performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
// This is the pure Go fallback implementation.
func Add[T registry.Float](dst, a, b []T) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// Sub performs element-wise subtraction: dst[i] = a[i] - b[i].
// Slices must have equal length. Panics if lengths differ.
// This is the pure Go fallback implementation.
func Sub[T registry.Float](dst, a, b []T) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}
