package prng

import "github.com/valyala/fastrand"

// NewSeed32 returns a non-deterministic seed for callers that do not need
// reproducible sequences.
func NewSeed32() uint32 {
	return fastrand.Uint32()
}

// NewSeed64 is like NewSeed32 but returns 64 bits.
func NewSeed64() uint64 {
	return uint64(fastrand.Uint32())<<32 | uint64(fastrand.Uint32())
}
