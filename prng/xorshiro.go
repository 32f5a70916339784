package prng

import "math/bits"

// Xorshiro32 is a xorshift generator with a multiply-rotate output stage.
type Xorshiro32 struct {
	seed uint32
}

// Xorshiro64 is the 64-bit variant of Xorshiro32.
type Xorshiro64 struct {
	seed uint64
}

// NewXorshiro32 returns a generator whose state is the first SplitMix32
// output for seed, so that small or zero seeds still start well mixed.
func NewXorshiro32(seed uint32) *Xorshiro32 {
	return &Xorshiro32{seed: NewSplitMix32(seed).Uint32()}
}

// NewXorshiro64 returns a generator whose state is the first SplitMix64
// output for seed.
func NewXorshiro64(seed uint64) *Xorshiro64 {
	return &Xorshiro64{seed: NewSplitMix64(seed).Uint64()}
}

func (x *Xorshiro32) Uint32() uint32 {
	out := bits.RotateLeft32(x.seed*5, 7) * 9
	s := x.seed
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.seed = bits.RotateLeft32(s, 22)
	return out
}

func (x *Xorshiro64) Uint64() uint64 {
	out := bits.RotateLeft64(x.seed*5, 7) * 9
	s := x.seed
	s ^= s << 13
	s ^= s >> 7
	s ^= s << 17
	x.seed = bits.RotateLeft64(s, 45)
	return out
}
