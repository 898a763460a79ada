package vector

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-vector/buffer"
	"github.com/cwbudde/algo-vector/internal/kernel"
	"github.com/cwbudde/algo-vector/internal/kernel/registry"
)

// View is a window [lo, hi) onto storage owned by a Vector.
//
// Views are values; copying one yields another view of the same elements.
// The zero value is an empty view.
type View[T Float] struct {
	buf    *buffer.Buffer[T]
	ops    *registry.OpEntry[T]
	lo, hi int
	gen    uint64
}

func (w View[T]) span() span[T] {
	if w.buf != nil && w.buf.Generation() != w.gen {
		panic(fmt.Errorf("%w: taken at generation %d, storage now at %d",
			ErrStaleView, w.gen, w.buf.Generation()))
	}
	return span[T]{buf: w.buf, lo: w.lo, hi: w.hi}
}

func (w View[T]) kernel() *registry.OpEntry[T] {
	if w.ops == nil {
		return kernel.For[T]()
	}
	return w.ops
}

// Len returns the number of elements in the view.
func (w View[T]) Len() int {
	return w.span().len()
}

// At returns element i of the view. Panics if i is out of range.
func (w View[T]) At(i int) T {
	s := w.span()
	checkIndex(i, s.len())
	return s.buf.Samples()[s.lo+i]
}

// Set stores x at element i of the view. Panics if i is out of range.
func (w View[T]) Set(i int, x T) {
	s := w.span()
	checkIndex(i, s.len())
	s.buf.Samples()[s.lo+i] = x
}

// Slice returns a View of elements [lo, hi) relative to w. The result
// addresses the original storage directly.
func (w View[T]) Slice(lo, hi int) View[T] {
	s := w.span()
	checkRange(lo, hi, s.len())
	return View[T]{buf: w.buf, ops: w.ops, lo: s.lo + lo, hi: s.lo + hi, gen: w.gen}
}

// Data returns the viewed elements as a slice sharing storage. Its capacity
// ends at the view boundary, so appending to it never writes past the view.
func (w View[T]) Data() []T {
	return w.span().data()
}

// Clone copies the viewed elements into a new Vector.
func (w View[T]) Clone() *Vector[T] {
	data := w.Data()
	return adopt(append(make([]T, 0, len(data)), data...))
}

// Equal reports whether w and o view the same element values in order.
func (w View[T]) Equal(o View[T]) bool {
	return slices.Equal(w.Data(), o.Data())
}

// Add performs w[i] += other[i]. Panics if the lengths differ.
func (w View[T]) Add(other Container[T]) {
	binary(w.span(), other.span(), w.kernel().Add)
}

// Subtract performs w[i] -= other[i]. Panics if the lengths differ.
func (w View[T]) Subtract(other Container[T]) {
	binary(w.span(), other.span(), w.kernel().Sub)
}

// MultiplyBy performs w[i] *= other[i]. Panics if the lengths differ.
func (w View[T]) MultiplyBy(other Container[T]) {
	binary(w.span(), other.span(), w.kernel().Mul)
}

// DivideBy performs w[i] = w[i] / other[i]. Panics if the lengths differ.
func (w View[T]) DivideBy(other Container[T]) {
	divide(w.span(), other.span(), w.kernel())
}

// ScaleBy performs w[i] *= s.
func (w View[T]) ScaleBy(s T) {
	scale(w.span(), s, w.kernel())
}

// String renders up to the first 25 elements, e.g. "[1, 2, 3]".
func (w View[T]) String() string {
	return Format[T](w)
}
