// Package vector provides dense float32/float64 vectors and zero-copy views.
//
// A Vector owns a contiguous buffer. A View addresses a sub-range of a
// Vector's buffer without copying; writes through either are visible through
// the other. Both satisfy Container, which exposes length, indexed access,
// slicing and in-place elementwise arithmetic:
//
//	v := vector.Ramp[float64](0, 6) // [0, 1, 2, 3, 4, 5]
//	w := v.Slice(2, 4)              // [2, 3], shares v's storage
//	w.Set(0, 99)                    // v.At(2) == 99
//	v.ScaleBy(2)
//
// Arithmetic runs on accelerated kernels selected once per process from the
// CPU features (build with -tags purego to force the pure Go loops).
//
// # Contracts
//
// Mismatched operand lengths, out-of-range indices or slice bounds, negative
// sizes and invalid ramps are programmer errors and panic with an error
// wrapping one of the Err* values. Zero-length operations are no-ops.
//
// Operands may share storage. Identical storage (v.Add(v)) is handled in
// place; partially overlapping views are copied to scratch storage first.
//
// A View never dangles: the garbage collector keeps its backing array alive.
// Resizing the source Vector does invalidate it, and any later use of the
// View panics with ErrStaleView.
//
// Containers are not safe for concurrent mutation. A Vector and the Views
// derived from it share one memory region and must be guarded together.
package vector
