package triplebuffer

import "golang.org/x/sys/cpu"

// slot holds one value of T on cache lines of its own, so the producer
// writing its back slot never invalidates the line the consumer reads from.
type slot[T any] struct {
	_   cpu.CacheLinePad
	val T // owned by exactly one of producer, register or consumer
	_   cpu.CacheLinePad
}

// Cloner is implemented by values that need a deep copy when NewFrom seeds
// the three slots (slices, maps, pointers to mutable data).
type Cloner[T any] interface {
	Clone() T
}

func cloneOf[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}
