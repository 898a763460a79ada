package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConstructors[T Float](t *testing.T) {
	for _, n := range []int{0, 1, 5, 100} {
		z := Zeros[T](n)
		o := Ones[T](n)
		require.Equal(t, n, z.Len())
		require.Equal(t, n, o.Len())
		for i := range n {
			assert.Equal(t, T(0), z.At(i))
			assert.Equal(t, T(1), o.At(i))
		}
	}

	v := FromValues[T](3, 1, 2)
	assert.Equal(t, []T{3, 1, 2}, v.Data())
	assert.Equal(t, 0, FromValues[T]().Len())
}

func TestConstructors(t *testing.T) {
	bothWidths(t, testConstructors[float32], testConstructors[float64])
}

func TestFromValuesCopies(t *testing.T) {
	src := []float64{1, 2, 3}
	v := FromValues(src...)
	src[0] = 99
	assert.Equal(t, 1.0, v.At(0))
}

func TestNegativeLengthPanics(t *testing.T) {
	requirePanicsWith(t, ErrNegativeLength, func() { Zeros[float64](-1) })
	requirePanicsWith(t, ErrNegativeLength, func() { Ones[float32](-3) })
	requirePanicsWith(t, ErrNegativeLength, func() { Zeros[float64](2).Resize(-1) })
}

func testRamp[T Float](t *testing.T) {
	assert.Equal(t, []T{0, 1, 2, 3, 4}, Ramp[T](0, 5).Data())
	assert.Equal(t, []T{0, 2}, RampBy[T](0, 5, 2).Data())
	assert.Equal(t, 0, Ramp[T](5, 0).Len())
	assert.Equal(t, 0, Ramp[T](3, 3).Len())
	assert.Equal(t, []T{10, 7, 4}, RampBy[T](10, 1, -3).Data())
	assert.Equal(t, []T{1, 1.5, 2, 2.5}, RampBy[T](1, 3, 0.5).Data())
	// Truncation toward zero: 2.9 steps yield two elements.
	assert.Equal(t, 2, RampBy[T](0, 2.9, 1).Len())
	assert.Equal(t, 0, RampBy[T](0, -0.5, 1).Len())
}

func TestRamp(t *testing.T) {
	bothWidths(t, testRamp[float32], testRamp[float64])
}

func TestRampInvalid(t *testing.T) {
	requirePanicsWith(t, ErrInvalidRamp, func() { RampBy[float64](0, 5, 0) })
	requirePanicsWith(t, ErrInvalidRamp, func() { RampBy[float32](0, 0, 0) })
	requirePanicsWith(t, ErrInvalidRamp, func() { RampBy(0, math.NaN(), 1) })
	requirePanicsWith(t, ErrInvalidRamp, func() { RampBy(0, math.Inf(1), 1) })
	requirePanicsWith(t, ErrInvalidRamp, func() { RampBy[float64](0, 1e300, 1) })
}

func TestRampNegativeInfinityIsEmpty(t *testing.T) {
	assert.Equal(t, 0, RampBy(0, math.Inf(-1), 1).Len())
}

func TestAtSetBounds(t *testing.T) {
	v := FromValues[float64](1, 2, 3)
	v.Set(1, 20)
	assert.Equal(t, 20.0, v.At(1))

	requirePanicsWith(t, ErrOutOfRange, func() { v.At(3) })
	requirePanicsWith(t, ErrOutOfRange, func() { v.At(-1) })
	requirePanicsWith(t, ErrOutOfRange, func() { v.Set(3, 0) })
}

func TestZeroValueVector(t *testing.T) {
	var v Vector[float32]
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, "[]", v.String())
	v.ScaleBy(2)
	v.Add(Zeros[float32](0))
	v.Resize(2)
	assert.Equal(t, []float32{0, 0}, v.Data())
}

func testEquality[T Float](t *testing.T) {
	assert.True(t, FromValues[T](1, 2, 3).Equal(FromValues[T](1, 2, 3)))
	assert.False(t, FromValues[T](1, 2, 3).Equal(FromValues[T](1, 2)))
	assert.False(t, FromValues[T](1, 2, 3).Equal(FromValues[T](1, 2, 4)))
	assert.True(t, Zeros[T](0).Equal(FromValues[T]()))

	v := Ramp[T](0, 6)
	assert.True(t, v.Slice(1, 3).Equal(FromValues[T](1, 2).Slice(0, 2)))
	assert.False(t, v.Slice(1, 3).Equal(v.Slice(2, 4)))
}

func TestEquality(t *testing.T) {
	bothWidths(t, testEquality[float32], testEquality[float64])
}

func TestEqualityNaNAndNil(t *testing.T) {
	nan := FromValues(math.NaN())
	assert.False(t, nan.Equal(nan.Clone()))

	var a, b *Vector[float64]
	assert.True(t, a.Equal(b))
	assert.False(t, FromValues(1.0).Equal(nil))
}

func TestClone(t *testing.T) {
	v := FromValues[float64](1, 2, 3)
	c := v.Clone()
	c.Set(0, 99)
	assert.Equal(t, 1.0, v.At(0))
	assert.True(t, c.Equal(FromValues[float64](99, 2, 3)))

	vc := v.Slice(1, 3).Clone()
	vc.Set(0, 42)
	assert.Equal(t, 2.0, v.At(1))
	assert.Equal(t, []float64{42, 3}, vc.Data())
}

func TestResizeKeepsPrefix(t *testing.T) {
	v := FromValues[float32](1, 2, 3)
	v.Resize(5)
	assert.Equal(t, []float32{1, 2, 3, 0, 0}, v.Data())
	v.Resize(1)
	require.Equal(t, 1, v.Len())
	assert.Equal(t, float32(1), v.At(0))
}

func TestResizeGrowWithinCapacityZeroes(t *testing.T) {
	v := FromValues[float64](1, 2, 3)
	v.Resize(1)
	v.Resize(3)
	assert.Equal(t, []float64{1, 0, 0}, v.Data())
}

func TestReserve(t *testing.T) {
	var empty Vector[float32]
	assert.Equal(t, 0, empty.Cap())

	v := FromValues[float64](1, 2, 3)
	w := v.Slice(0, 2)

	v.Reserve(2)
	assert.Equal(t, 2, w.Len(), "a no-op reserve must not invalidate views")

	v.Reserve(64)
	assert.GreaterOrEqual(t, v.Cap(), 64)
	assert.Equal(t, []float64{1, 2, 3}, v.Data())
	requirePanicsWith(t, ErrStaleView, func() { w.At(0) })

	first := &v.Data()[0]
	v.Resize(40)
	assert.Same(t, first, &v.Data()[0], "resize within reserved capacity keeps storage")
	assert.Equal(t, 0.0, v.At(39))

	requirePanicsWith(t, ErrNegativeLength, func() { v.Reserve(-1) })
}
