//go:build !purego && (amd64 || arm64)

package accel

import (
	"gonum.org/v1/gonum/blas/blas32"

	"github.com/cwbudde/algo-vector/internal/kernel/arch/generic"
)

func vec32(x []float32) blas32.Vector {
	return blas32.Vector{N: len(x), Inc: 1, Data: x}
}

// same reports whether x and y start at the same address.
func same(x, y []float32) bool {
	return len(x) > 0 && len(y) > 0 && &x[0] == &y[0]
}

// Add32 performs dst[i] = a[i] + b[i] as a BLAS Axpy with alpha 1.
func Add32(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	switch {
	case same(dst, a):
		blas32.Axpy(1, vec32(b), vec32(dst))
	case same(dst, b):
		blas32.Axpy(1, vec32(a), vec32(dst))
	default:
		copy(dst, a)
		blas32.Axpy(1, vec32(b), vec32(dst))
	}
}

// Sub32 performs dst[i] = a[i] - b[i] as a BLAS Axpy with alpha -1.
func Sub32(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	switch {
	case same(dst, a):
		blas32.Axpy(-1, vec32(b), vec32(dst))
	case same(dst, b):
		// dst holds b: negate it, then add a.
		blas32.Scal(-1, vec32(dst))
		blas32.Axpy(1, vec32(a), vec32(dst))
	default:
		copy(dst, a)
		blas32.Axpy(-1, vec32(b), vec32(dst))
	}
}

// Scale32 performs dst[i] = src[i] * scalar as a BLAS Scal.
// Scal stores zeros for a zero alpha without multiplying, so that case runs
// the generic loop to keep NaN and Inf propagating.
func Scale32(dst, src []float32, scalar float32) {
	if len(dst) != len(src) {
		panic("kernel: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	if scalar == 0 {
		generic.Scale(dst, src, scalar)
		return
	}
	if !same(dst, src) {
		copy(dst, src)
	}
	blas32.Scal(scalar, vec32(dst))
}
