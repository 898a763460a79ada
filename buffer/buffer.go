package buffer

// Float is the set of element types a Buffer can hold.
type Float interface {
	float32 | float64
}

// Buffer owns a contiguous slice of elements.
type Buffer[T Float] struct {
	samples []T
	gen     uint64
}

// New returns a zero-filled Buffer of the given length.
func New[T Float](length int) *Buffer[T] {
	if length < 0 {
		length = 0
	}
	return &Buffer[T]{samples: make([]T, length)}
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Buffer and vice versa.
func FromSlice[T Float](s []T) *Buffer[T] {
	return &Buffer[T]{samples: s}
}

// Samples returns the underlying slice.
func (b *Buffer[T]) Samples() []T {
	return b.samples
}

// Len returns the current number of elements.
func (b *Buffer[T]) Len() int {
	return len(b.samples)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer[T]) Cap() int {
	return cap(b.samples)
}

// Generation reports how many times the storage has been resized or moved.
func (b *Buffer[T]) Generation() uint64 {
	return b.gen
}

// Grow ensures capacity is at least n, preserving existing data.
// If the current capacity is already >= n this is a no-op.
func (b *Buffer[T]) Grow(n int) {
	if n <= cap(b.samples) {
		return
	}
	grown := make([]T, len(b.samples), n)
	copy(grown, b.samples)
	b.samples = grown
	b.gen++
}

// Resize sets the length to n, reusing existing capacity when possible.
// New elements beyond the previous length are zeroed. Every call advances
// the generation, even when n equals the current length.
func (b *Buffer[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		s := make([]T, n)
		copy(s, b.samples)
		b.samples = s
	}
	// Capacity reuse can expose stale values from an earlier, longer length.
	b.ZeroRange(oldLen, n)
	b.gen++
}

// Zero sets all elements to 0.
func (b *Buffer[T]) Zero() {
	clear(b.samples)
}

// ZeroRange sets elements in [start, end) to 0.
// Indices are clamped to valid bounds.
func (b *Buffer[T]) ZeroRange(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(b.samples) {
		end = len(b.samples)
	}
	if start >= end {
		return
	}
	clear(b.samples[start:end])
}

// Fill sets every element to v.
func (b *Buffer[T]) Fill(v T) {
	for i := range b.samples {
		b.samples[i] = v
	}
}

// Copy returns a deep copy of the buffer with a fresh generation.
func (b *Buffer[T]) Copy() *Buffer[T] {
	s := make([]T, len(b.samples))
	copy(s, b.samples)
	return &Buffer[T]{samples: s}
}
