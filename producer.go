package triplebuffer

// Producer is the writing side of a triple buffer.
// It must be owned by a single goroutine; it may be handed to another
// goroutine but never used from two at once.
type Producer[T any] struct {
	s    *state[T]
	back uint32 // slot being written, never touched by the consumer

	commits uint64
}

// ProducerStats is a snapshot of producer side counters.
type ProducerStats struct {
	Commits uint64
}

// Data returns the slot currently owned by the producer.
// No synchronization is performed. The pointer is valid until the next
// Commit; after that the slot belongs to the consumer side.
//
// The returned slot holds whatever was written into it the last time the
// producer owned it (two or more commits ago), not the latest committed
// value. Overwrite it completely before committing.
func (p *Producer[T]) Data() *T {
	return p.s.at(p.back)
}

// Commit publishes the back slot and takes over the slot that was in the
// register. It never blocks and never waits for the consumer.
func (p *Producer[T]) Commit() {
	p.back, _ = p.s.exchange(p.back | dirty)
	p.commits++
}

// Publish stores v into the back slot and commits it.
func (p *Producer[T]) Publish(v T) {
	*p.Data() = v
	p.Commit()
}

// Stats returns the producer counters. It must be called from the
// goroutine owning p.
func (p *Producer[T]) Stats() ProducerStats {
	return ProducerStats{Commits: p.commits}
}
