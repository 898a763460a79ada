// Package kernel resolves the elementwise primitive set used by vectors.
//
// Implementations live in the arch subpackages and register themselves with
// the per-width registries. The first call to For selects, for each element
// width, the highest-priority registered entry the CPU supports; the result
// is cached until Reload.
package kernel

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-vector/internal/kernel/registry"
)

// Float is the set of element types kernels are provided for.
type Float = registry.Float

var (
	ops32    *registry.OpEntry[float32]
	ops64    *registry.OpEntry[float64]
	initOnce sync.Once
	initMu   sync.Mutex
)

func initOperations() {
	features := cpu.DetectFeatures()
	ops32 = mustLookup(registry.Float32, features)
	ops64 = mustLookup(registry.Float64, features)
}

func mustLookup[T Float](r *registry.OpRegistry[T], features cpu.Features) *registry.OpEntry[T] {
	entry := r.Lookup(features)
	if entry == nil {
		panic("kernel: no implementation registered")
	}
	if !entry.Complete() {
		panic("kernel: selected implementation " + entry.Name + " missing operations")
	}
	return entry
}

// For returns the selected primitive set for element type T.
func For[T Float]() *registry.OpEntry[T] {
	initMu.Lock()
	initOnce.Do(initOperations)
	initMu.Unlock()

	var zero T
	switch any(zero).(type) {
	case float32:
		return any(ops32).(*registry.OpEntry[T])
	default:
		return any(ops64).(*registry.OpEntry[T])
	}
}

// Reload discards the cached selection so the next For call re-runs CPU
// feature detection and registry lookup. Containers created earlier keep the
// primitive set they were created with.
// This function is intended for testing purposes.
func Reload() {
	initMu.Lock()
	defer initMu.Unlock()

	initOnce = sync.Once{}
	ops32 = nil
	ops64 = nil
}
