package vector

import "github.com/cwbudde/algo-vector/buffer"

var (
	scratch32 = buffer.NewPool[float32]()
	scratch64 = buffer.NewPool[float64]()
)

func scratchFor[T Float]() *buffer.Pool[T] {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(scratch32).(*buffer.Pool[T])
	default:
		return any(scratch64).(*buffer.Pool[T])
	}
}
