//go:build !purego && (amd64 || arm64)

package accel

import (
	"github.com/cwbudde/algo-vector/internal/kernel/arch/generic"
	"github.com/cwbudde/algo-vector/internal/kernel/registry"
)

// init registers the library-backed kernels for both element widths.
//
// Priority: 10 (preferred over generic whenever the baseline SIMD level of
// the architecture is reported)
func init() {
	registry.Float64.Register(registry.OpEntry[float64]{
		Name:      "accel",
		SIMDLevel: simdLevel,
		Priority:  10,

		Add:   Add64,
		Sub:   Sub64,
		Mul:   Mul64,
		Div:   Div64,
		Scale: Scale64,
		Ramp:  generic.Ramp[float64],
	})

	registry.Float32.Register(registry.OpEntry[float32]{
		Name:      "accel",
		SIMDLevel: simdLevel,
		Priority:  10,

		Add:   Add32,
		Sub:   Sub32,
		Mul:   generic.Mul[float32],
		Div:   generic.Div[float32],
		Scale: Scale32,
		Ramp:  generic.Ramp[float32],
	})
}
