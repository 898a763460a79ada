package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-vector/internal/kernel/registry"
)

// DeterministicValues returns n values drawn uniformly from [lo, hi) with a
// fixed seed, so failures reproduce.
func DeterministicValues[T registry.Float](seed int64, lo, hi T, n int) []T {
	out := make([]T, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = lo + T(rng.Float64())*(hi-lo)
	}
	return out
}

// DeterministicNonZero is DeterministicValues with every element pushed to
// magnitude at least 1, suitable as a divisor. The sign is kept.
func DeterministicNonZero[T registry.Float](seed int64, n int) []T {
	out := DeterministicValues[T](seed, -100, 100, n)
	for i, v := range out {
		switch {
		case v >= 0 && v < 1:
			out[i] = v + 1
		case v < 0 && v > -1:
			out[i] = v - 1
		}
	}
	return out
}

// DC returns a slice of length n filled with value.
func DC[T registry.Float](value T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = value
	}
	return out
}
