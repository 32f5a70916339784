package triplebuffer

// Consumer is the reading side of a triple buffer.
// Same ownership rules as Producer apply.
type Consumer[T any] struct {
	s   *state[T]
	fwd uint32 // slot being read, never touched by the producer

	reads  uint64
	claims uint64
}

// ConsumerStats is a snapshot of consumer side counters.
type ConsumerStats struct {
	Reads  uint64 // Data/Next/Value calls
	Claims uint64 // calls that picked up a newly committed slot
}

// Data returns the most recently committed value, or the initial value if
// nothing was committed yet. The pointer stays valid until the next call
// to Data, Next or Value on c. The value must not be modified.
//
// When nothing new was committed, Data costs a single atomic load.
func (c *Consumer[T]) Data() *T {
	v, _ := c.Next()
	return v
}

// Next is like Data and additionally reports whether this call claimed a
// slot committed since the previous read.
func (c *Consumer[T]) Next() (*T, bool) {
	c.reads++
	if !c.s.pending() {
		return c.s.at(c.fwd), false
	}

	// The swap synchronizes with the producer's Commit, making everything
	// it wrote into the claimed slot visible here.
	fwd, fresh := c.s.exchange(c.fwd)
	c.fwd = fwd
	if fresh {
		c.claims++
	}
	return c.s.at(c.fwd), fresh
}

// Value returns a copy of the value Data would return.
func (c *Consumer[T]) Value() T {
	return *c.Data()
}

// Stats returns the consumer counters. It must be called from the
// goroutine owning c.
func (c *Consumer[T]) Stats() ConsumerStats {
	return ConsumerStats{Reads: c.reads, Claims: c.claims}
}
