// Package triplebuffer implements a wait-free triple buffer for passing
// successive values of T from exactly one producer goroutine to exactly
// one consumer goroutine.
//
// Three slots rotate between the producer (back slot), a shared register
// (middle slot) and the consumer (forward slot). The producer writes its
// back slot in place and commits it by swapping it into the register; the
// consumer swaps its forward slot out for the register's slot whenever the
// register holds an unclaimed commit. Neither side ever blocks, spins or
// retries, and the consumer always sees a fully written value: the latest
// committed one or, if it polls faster than the producer commits, the
// same one again.
//
// Handles are not safe for concurrent use. Using a Producer or Consumer from
// two goroutines at once, or keeping a pointer returned by Data past the
// call that hands its slot over, is a data race.
package triplebuffer

// New creates a triple buffer whose slots all hold the zero value of T and
// returns its two ends.
func New[T any]() (*Producer[T], *Consumer[T]) {
	return bind(newState[T]())
}

// NewFrom creates a triple buffer whose slots all hold independent copies
// of initial. Values implementing Cloner[T] are copied with Clone, others
// by assignment.
func NewFrom[T any](initial T) (*Producer[T], *Consumer[T]) {
	return bind(newStateFrom(initial))
}

func bind[T any](s *state[T]) (*Producer[T], *Consumer[T]) {
	return &Producer[T]{s: s, back: initialBack}, &Consumer[T]{s: s, fwd: initialFwd}
}
