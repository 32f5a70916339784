package prng

// SplitMix32 is a 32-bit SplitMix generator. The zero value is a generator
// seeded with 0.
type SplitMix32 struct {
	state uint32
}

// SplitMix64 is a 64-bit SplitMix generator. The zero value is a generator
// seeded with 0.
type SplitMix64 struct {
	state uint64
}

const (
	splitMix32Add uint32 = 0x9e3779b9
	splitMix32Mu1 uint32 = 0xbf58476d
	splitMix32Mu2 uint32 = 0x94d049bb

	splitMix64Add uint64 = 0x9e3779b97f4a7c15
	splitMix64Mu1 uint64 = 0xbf58476d1ce4e5b9
	splitMix64Mu2 uint64 = 0x94d049bb133111eb
)

func NewSplitMix32(seed uint32) *SplitMix32 {
	return &SplitMix32{state: seed}
}

func NewSplitMix64(seed uint64) *SplitMix64 {
	return &SplitMix64{state: seed}
}

// Uint32 advances the generator and returns the next output.
func (s *SplitMix32) Uint32() uint32 {
	s.state += splitMix32Add
	z := s.state
	z = (z ^ (z >> 15)) * splitMix32Mu1
	z = (z ^ (z >> 13)) * splitMix32Mu2
	return z ^ (z >> 16)
}

// Uint64 advances the generator and returns the next output.
func (s *SplitMix64) Uint64() uint64 {
	s.state += splitMix64Add
	z := s.state
	z = (z ^ (z >> 30)) * splitMix64Mu1
	z = (z ^ (z >> 27)) * splitMix64Mu2
	return z ^ (z >> 31)
}
