package vector

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-vector/buffer"
	"github.com/cwbudde/algo-vector/internal/kernel"
	"github.com/cwbudde/algo-vector/internal/kernel/registry"
)

// Vector is a dense vector that owns its storage.
// The zero value is an empty vector ready for use.
type Vector[T Float] struct {
	buf *buffer.Buffer[T]
	ops *registry.OpEntry[T]
}

func newVector[T Float](n int) *Vector[T] {
	checkLength(n)
	return &Vector[T]{buf: buffer.New[T](n), ops: kernel.For[T]()}
}

// Zeros returns a vector of n zeros. Panics if n < 0.
func Zeros[T Float](n int) *Vector[T] {
	return newVector[T](n)
}

// Ones returns a vector of n ones. Panics if n < 0.
func Ones[T Float](n int) *Vector[T] {
	v := newVector[T](n)
	v.buf.Fill(1)
	return v
}

// FromValues returns a vector holding a copy of values in order.
func FromValues[T Float](values ...T) *Vector[T] {
	return adopt(append(make([]T, 0, len(values)), values...))
}

// adopt wraps s, which the caller must not retain, in a new vector.
func adopt[T Float](s []T) *Vector[T] {
	return &Vector[T]{buf: buffer.FromSlice(s), ops: kernel.For[T]()}
}

// Ramp returns the sequence from, from+1, from+2, ... with
// trunc(to-from) elements, or an empty vector when to <= from.
func Ramp[T Float](from, to T) *Vector[T] {
	return RampBy(from, to, 1)
}

// RampBy returns the arithmetic sequence from, from+by, from+2*by, ...
//
// The length is (to-from)/by computed in T and truncated toward zero; a
// negative length yields an empty vector. Panics with ErrInvalidRamp if by is
// zero or the length is NaN, infinite or too large for an int.
func RampBy[T Float](from, to, by T) *Vector[T] {
	q := float64((to - from) / by)
	if by == 0 || math.IsNaN(q) || q >= math.MaxInt {
		panic(fmt.Errorf("%w: from %v to %v by %v", ErrInvalidRamp, from, to, by))
	}
	n := 0
	if q > 0 {
		n = int(q)
	}
	v := newVector[T](n)
	if n > 0 {
		v.ops.Ramp(v.buf.Samples(), from, by)
	}
	return v
}

func (v *Vector[T]) storage() *buffer.Buffer[T] {
	if v.buf == nil {
		v.buf = buffer.New[T](0)
	}
	return v.buf
}

func (v *Vector[T]) kernel() *registry.OpEntry[T] {
	if v.ops == nil {
		v.ops = kernel.For[T]()
	}
	return v.ops
}

func (v *Vector[T]) span() span[T] {
	buf := v.storage()
	return span[T]{buf: buf, hi: buf.Len()}
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	if v.buf == nil {
		return 0
	}
	return v.buf.Len()
}

// At returns element i. Panics if i is out of range.
func (v *Vector[T]) At(i int) T {
	s := v.storage().Samples()
	checkIndex(i, len(s))
	return s[i]
}

// Set stores x at element i. Panics if i is out of range.
func (v *Vector[T]) Set(i int, x T) {
	s := v.storage().Samples()
	checkIndex(i, len(s))
	s[i] = x
}

// Slice returns a View of elements [lo, hi). The view shares storage with v
// until v is resized.
func (v *Vector[T]) Slice(lo, hi int) View[T] {
	buf := v.storage()
	checkRange(lo, hi, buf.Len())
	return View[T]{buf: buf, ops: v.kernel(), lo: lo, hi: hi, gen: buf.Generation()}
}

// Data returns the backing slice. It stops aliasing v after a Resize.
func (v *Vector[T]) Data() []T {
	return v.storage().Samples()
}

// Resize changes the length to n, keeping the leading elements and zeroing
// new ones. Every View taken from v before the call becomes stale.
// Panics if n < 0.
func (v *Vector[T]) Resize(n int) {
	checkLength(n)
	v.storage().Resize(n)
}

// Cap returns the number of elements v can hold before Resize or Reserve
// must move its storage.
func (v *Vector[T]) Cap() int {
	if v.buf == nil {
		return 0
	}
	return v.buf.Cap()
}

// Reserve ensures v can grow to n elements without moving its storage. The
// length is unchanged. If the storage moves, every View taken from v before
// the call becomes stale. Panics if n < 0.
func (v *Vector[T]) Reserve(n int) {
	checkLength(n)
	v.storage().Grow(n)
}

// Clone returns a copy of v with its own storage.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{buf: v.storage().Copy(), ops: v.kernel()}
}

// Equal reports whether v and o hold the same elements in the same order.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v == nil || o == nil {
		return v == o
	}
	return slices.Equal(v.Data(), o.Data())
}

// Add performs v[i] += other[i]. Panics if the lengths differ.
func (v *Vector[T]) Add(other Container[T]) {
	binary(v.span(), other.span(), v.kernel().Add)
}

// Subtract performs v[i] -= other[i]. Panics if the lengths differ.
func (v *Vector[T]) Subtract(other Container[T]) {
	binary(v.span(), other.span(), v.kernel().Sub)
}

// MultiplyBy performs v[i] *= other[i]. Panics if the lengths differ.
func (v *Vector[T]) MultiplyBy(other Container[T]) {
	binary(v.span(), other.span(), v.kernel().Mul)
}

// DivideBy performs v[i] = v[i] / other[i]. Panics if the lengths differ.
func (v *Vector[T]) DivideBy(other Container[T]) {
	divide(v.span(), other.span(), v.kernel())
}

// ScaleBy performs v[i] *= s.
func (v *Vector[T]) ScaleBy(s T) {
	scale(v.span(), s, v.kernel())
}

// String renders up to the first 25 elements, e.g. "[1, 2, 3]".
func (v *Vector[T]) String() string {
	return Format[T](v)
}
