//go:build !purego && (amd64 || arm64)

// Package accel binds the kernel primitives to library implementations.
//
// Double precision uses the SIMD block kernels of algo-vecmath for addition,
// multiplication and scaling, and gonum's floats package for subtraction and
// division. Single precision uses gonum's BLAS level 1 routines (Axpy, Scal)
// for addition, subtraction and scaling. Operations without a library
// counterpart fall back to the generic loops.
//
// Every primitive accepts dst identical to any source slice. A dst that
// partially overlaps a source is not supported; callers must copy first.
package accel
