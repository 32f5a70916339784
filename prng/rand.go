package prng

import "math/bits"

// Source32 is a generator producing 32 random bits per call.
type Source32 interface {
	Uint32() uint32
}

// Source64 is a generator producing 64 random bits per call.
type Source64 interface {
	Uint64() uint64
}

const (
	mask23 = 1<<23 - 1
	mask54 = 1<<54 - 1
)

// Rand64 derives typed values from a 64-bit source. Narrow values are taken
// from the upper bits of a single draw.
type Rand64 struct {
	src Source64
}

func New64(src Source64) *Rand64 {
	return &Rand64{src: src}
}

func (r *Rand64) Uint8() uint8   { return uint8(r.src.Uint64() >> 48) }
func (r *Rand64) Uint16() uint16 { return uint16(r.src.Uint64() >> 37) }
func (r *Rand64) Uint32() uint32 { return uint32(r.src.Uint64() >> 16) }
func (r *Rand64) Uint64() uint64 { return r.src.Uint64() }

func (r *Rand64) Int8() int8   { return int8(r.src.Uint64() >> 48) }
func (r *Rand64) Int16() int16 { return int16(r.src.Uint64() >> 37) }
func (r *Rand64) Int32() int32 { return int32(r.src.Uint64() >> 16) }
func (r *Rand64) Int64() int64 { return int64(r.src.Uint64()) }

// Float32 returns a value in [0, 1].
func (r *Rand64) Float32() float32 {
	n := float32((r.src.Uint64() >> 42) & mask23)
	return n / mask23
}

// Float64 returns a value in [0, 1].
func (r *Rand64) Float64() float64 {
	n := float64((r.src.Uint64() >> 10) & mask54)
	return n / mask54
}

func (r *Rand64) Bool() bool {
	return r.src.Uint64()&(1<<32) != 0
}

// Uint64n returns a value in [0, n). It panics if n == 0.
func (r *Rand64) Uint64n(n uint64) uint64 {
	if n == 0 {
		panic("prng: Uint64n called with n == 0")
	}
	hi, _ := bits.Mul64(r.src.Uint64(), n)
	return hi
}

// Rand32 derives typed values from a 32-bit source. 64-bit values take two
// draws, low half first.
type Rand32 struct {
	src Source32
}

func New32(src Source32) *Rand32 {
	return &Rand32{src: src}
}

func (r *Rand32) Uint8() uint8   { return uint8(r.src.Uint32() >> 24) }
func (r *Rand32) Uint16() uint16 { return uint16(r.src.Uint32() >> 16) }
func (r *Rand32) Uint32() uint32 { return r.src.Uint32() }

func (r *Rand32) Uint64() uint64 {
	lo := uint64(r.src.Uint32())
	hi := uint64(r.src.Uint32())
	return hi<<32 | lo
}

func (r *Rand32) Int8() int8   { return int8(r.src.Uint32() >> 24) }
func (r *Rand32) Int16() int16 { return int16(r.src.Uint32() >> 16) }
func (r *Rand32) Int32() int32 { return int32(r.src.Uint32()) }
func (r *Rand32) Int64() int64 { return int64(r.Uint64()) }

// Float32 returns a value in [0, 1].
func (r *Rand32) Float32() float32 {
	n := float32((r.src.Uint32() >> 10) & mask23)
	return n / mask23
}

// Float64 returns a value in [0, 1] with the same 23 bits of precision as
// Float32.
func (r *Rand32) Float64() float64 {
	n := float64((r.src.Uint32() >> 10) & mask23)
	return n / mask23
}

func (r *Rand32) Bool() bool {
	return r.src.Uint32()&(1<<16) != 0
}

// Uint32n returns a value in [0, n). It panics if n == 0.
func (r *Rand32) Uint32n(n uint32) uint32 {
	if n == 0 {
		panic("prng: Uint32n called with n == 0")
	}
	return uint32(uint64(r.src.Uint32()) * uint64(n) >> 32)
}
