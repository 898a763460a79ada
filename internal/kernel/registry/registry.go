// Package registry provides the implementation registry for elementwise kernels.
//
// Several implementation variants (pure Go, library-accelerated) can coexist
// for each element width. Variants register themselves from init() functions
// and the kernel package selects the highest-priority variant the current CPU
// supports.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Float is the set of element types kernels are provided for.
type Float interface {
	float32 | float64
}

// OpEntry is one registered primitive set for element type T.
//
// Every primitive panics if the slice lengths differ and must stay correct
// when dst is the same slice as any of its inputs.
type OpEntry[T Float] struct {
	// Name is a human-readable identifier for this implementation (e.g., "generic").
	Name string

	// SIMDLevel is the instruction set the implementation requires.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible implementations
	// exist. Higher priority implementations are preferred.
	Priority int

	// Add performs dst[i] = a[i] + b[i].
	Add func(dst, a, b []T)

	// Sub performs dst[i] = a[i] - b[i].
	Sub func(dst, a, b []T)

	// Mul performs dst[i] = a[i] * b[i].
	Mul func(dst, a, b []T)

	// Div performs dst[i] = num[i] / den[i]. The denominator comes first.
	Div func(dst, den, num []T)

	// Scale performs dst[i] = src[i] * scalar.
	Scale func(dst, src []T, scalar T)

	// Ramp fills dst[i] = start + i*step.
	Ramp func(dst []T, start, step T)
}

// Complete reports whether every primitive is populated.
func (e *OpEntry[T]) Complete() bool {
	return e.Add != nil && e.Sub != nil && e.Mul != nil &&
		e.Div != nil && e.Scale != nil && e.Ramp != nil
}

// OpRegistry manages the registered variants for one element type.
type OpRegistry[T Float] struct {
	mu      sync.RWMutex
	entries []OpEntry[T]
	sorted  bool // true if entries are sorted by priority (descending)
}

// Float32 is the registry for single-precision kernels.
var Float32 = &OpRegistry[float32]{}

// Float64 is the registry for double-precision kernels.
var Float64 = &OpRegistry[float64]{}

// Register adds an implementation variant to the registry.
//
// All registrations should complete before the first call to Lookup.
func (r *OpRegistry[T]) Register(entry OpEntry[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry compatible with features, or nil
// if none is registered.
func (r *OpRegistry[T]) Lookup(features cpu.Features) *OpEntry[T] {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// Named returns the entry registered under name, or nil.
func (r *OpRegistry[T]) Named(name string) *OpEntry[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}
	return nil
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry[T]) sortByPriority() {
	// Insertion sort keeps registration order among equal priorities.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries.
// This function is primarily intended for testing and debugging.
func (r *OpRegistry[T]) ListEntries() []OpEntry[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry[T], len(r.entries))
	copy(entries, r.entries)
	return entries
}
