//go:build !purego && amd64

package accel

import "github.com/cwbudde/algo-vecmath/cpu"

// SSE2 is the amd64 baseline; algo-vecmath and gonum pick wider paths themselves.
const simdLevel = cpu.SIMDSSE2
