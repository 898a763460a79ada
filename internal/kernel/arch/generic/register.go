package generic

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-vector/internal/kernel/registry"
)

// init registers the pure Go kernels for both element widths.
//
// Priority: 0 (lowest - used only when no accelerated variant is available or
// ForceGeneric is set)
func init() {
	registry.Float32.Register(Entry[float32]())
	registry.Float64.Register(Entry[float64]())
}

// Entry returns the generic primitive set for element type T.
func Entry[T registry.Float]() registry.OpEntry[T] {
	return registry.OpEntry[T]{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		Add:   Add[T],
		Sub:   Sub[T],
		Mul:   Mul[T],
		Div:   Div[T],
		Scale: Scale[T],
		Ramp:  Ramp[T],
	}
}
