//go:build !purego && (amd64 || arm64)

package accel

import (
	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Add64 performs dst[i] = a[i] + b[i] with the algo-vecmath block kernel.
func Add64(dst, a, b []float64) {
	vecmath.AddBlock(dst, a, b)
}

// Sub64 performs dst[i] = a[i] - b[i].
func Sub64(dst, a, b []float64) {
	floats.SubTo(dst, a, b)
}

// Mul64 performs dst[i] = a[i] * b[i] with the algo-vecmath block kernel.
func Mul64(dst, a, b []float64) {
	vecmath.MulBlock(dst, a, b)
}

// Div64 performs dst[i] = num[i] / den[i]. floats.DivTo takes the numerator
// first, so the operands are swapped here.
func Div64(dst, den, num []float64) {
	floats.DivTo(dst, num, den)
}

// Scale64 performs dst[i] = src[i] * scalar with the algo-vecmath block kernel.
func Scale64(dst, src []float64, scalar float64) {
	vecmath.ScaleBlock(dst, src, scalar)
}
