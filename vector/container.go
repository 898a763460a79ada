package vector

import (
	"github.com/cwbudde/algo-vector/buffer"
	"github.com/cwbudde/algo-vector/internal/kernel/registry"
)

// Float is the set of supported element types.
type Float = buffer.Float

// Container is the contract shared by Vector and View.
//
// The interface is sealed: only *Vector[T] and View[T] implement it.
type Container[T Float] interface {
	// Len returns the number of elements.
	Len() int
	// At returns element i.
	At(i int) T
	// Set stores x at element i.
	Set(i int, x T)
	// Slice returns a View of elements [lo, hi) sharing this storage.
	Slice(lo, hi int) View[T]
	// Data returns the elements as a contiguous mutable slice.
	Data() []T
	// Clone copies the elements into a new Vector.
	Clone() *Vector[T]

	// Add performs c[i] += other[i].
	Add(other Container[T])
	// Subtract performs c[i] -= other[i].
	Subtract(other Container[T])
	// MultiplyBy performs c[i] *= other[i].
	MultiplyBy(other Container[T])
	// DivideBy performs c[i] = c[i] / other[i].
	DivideBy(other Container[T])
	// ScaleBy performs c[i] *= s.
	ScaleBy(s T)

	String() string

	span() span[T]
	kernel() *registry.OpEntry[T]
}

// span is a contiguous range [lo, hi) of a buffer.
type span[T Float] struct {
	buf    *buffer.Buffer[T]
	lo, hi int
}

func (s span[T]) len() int {
	return s.hi - s.lo
}

func (s span[T]) data() []T {
	if s.buf == nil {
		return nil
	}
	return s.buf.Samples()[s.lo:s.hi:s.hi]
}

// overlaps reports whether s and o share at least one element.
func (s span[T]) overlaps(o span[T]) bool {
	return s.buf != nil && s.buf == o.buf && s.lo < o.hi && o.lo < s.hi
}
