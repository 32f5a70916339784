package triplebuffer

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

const (
	// dirty marks the middle slot as committed and not yet claimed.
	dirty uint32 = 0x8
	// indexMask selects the slot index out of the register. Slot indices
	// are 0..2 and never reach the dirty bit.
	indexMask uint32 = 0x3
)

// Initial slot assignment: producer back, register middle, consumer forward.
const (
	initialBack uint32 = 0
	initialMid  uint32 = 1
	initialFwd  uint32 = 2
)

// state is shared by one Producer and one Consumer. Every slot is owned by
// exactly one role at a time: the producer's back index, the index stored
// in mid, and the consumer's forward index always form {0, 1, 2}. Both
// sides only ever trade ownership with a single Swap on mid, which is the
// one place where that partition is maintained.
type state[T any] struct {
	slots [3]slot[T]
	_     cpu.CacheLinePad
	mid   atomic.Uint32 // slot index | dirty
	_     cpu.CacheLinePad
}

func newState[T any]() *state[T] {
	s := &state[T]{}
	s.mid.Store(initialMid)
	return s
}

func newStateFrom[T any](initial T) *state[T] {
	s := newState[T]()
	for i := range s.slots {
		s.slots[i].val = cloneOf(initial)
	}
	return s
}

// exchange deposits idx into the register and returns the slot index it
// previously held together with its dirty flag.
func (s *state[T]) exchange(idx uint32) (prev uint32, wasDirty bool) {
	old := s.mid.Swap(idx)
	return old & indexMask, old&dirty != 0
}

// pending reports whether the register holds an unclaimed commit. It is
// only a hint: slot contents are never read on the strength of it alone.
func (s *state[T]) pending() bool {
	return s.mid.Load()&dirty != 0
}

func (s *state[T]) at(idx uint32) *T {
	return &s.slots[idx].val
}
