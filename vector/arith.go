package vector

import (
	"fmt"

	"github.com/cwbudde/algo-vector/buffer"
	"github.com/cwbudde/algo-vector/internal/kernel/registry"
)

// operands holds the receiver and operand slices for one in-place operation.
type operands[T Float] struct {
	dst, src []T
	tmp      *buffer.Buffer[T]
}

// bind checks lengths and resolves dst and src to slices. When src partially
// overlaps dst it is copied to scratch storage: an in-place forward loop
// would otherwise read elements it has already overwritten. Identical ranges
// are left alone since every kernel supports dst == src.
func bind[T Float](dst, src span[T]) operands[T] {
	if n, m := dst.len(), src.len(); n != m {
		panic(fmt.Errorf("%w: %d != %d", ErrLengthMismatch, n, m))
	}
	o := operands[T]{dst: dst.data(), src: src.data()}
	if dst.lo != src.lo && dst.overlaps(src) {
		o.tmp = scratchFor[T]().Get(len(o.src))
		copy(o.tmp.Samples(), o.src)
		o.src = o.tmp.Samples()
	}
	return o
}

func (o operands[T]) release() {
	if o.tmp != nil {
		scratchFor[T]().Put(o.tmp)
	}
}

// binary runs a commutative-order kernel as op(dst, dst, src).
func binary[T Float](dst, src span[T], op func(dst, a, b []T)) {
	o := bind(dst, src)
	defer o.release()
	if len(o.dst) == 0 {
		return
	}
	op(o.dst, o.dst, o.src)
}

// divide computes dst[i] = dst[i] / src[i]. The division primitive takes the
// denominator first, so it cannot go through binary.
func divide[T Float](dst, src span[T], ops *registry.OpEntry[T]) {
	o := bind(dst, src)
	defer o.release()
	if len(o.dst) == 0 {
		return
	}
	ops.Div(o.dst, o.src, o.dst)
}

func scale[T Float](dst span[T], s T, ops *registry.OpEntry[T]) {
	d := dst.data()
	if len(d) == 0 {
		return
	}
	ops.Scale(d, d, s)
}
