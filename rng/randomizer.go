package rng

import (
	"fmt"
	"math/rand/v2"
)

// Randomizer is a 2-word xorshift128+ generator.
type Randomizer struct {
	seed0, seed1 uint64
}

var _ rand.Source = (*Randomizer)(nil)

// New returns a Randomizer with the given seed pair. The output sequence is
// fully determined by the pair.
func New(seed0, seed1 uint64) *Randomizer {
	return &Randomizer{seed0: seed0, seed1: seed1}
}

// NewEntropy returns a Randomizer seeded from the runtime's random source.
// Sequences are not reproducible; use [New] when they must be.
func NewEntropy() *Randomizer {
	return New(rand.Uint64(), rand.Uint64())
}

// Seed replaces the generator state.
func (r *Randomizer) Seed(seed0, seed1 uint64) {
	r.seed0 = seed0
	r.seed1 = seed1
}

// State returns the current state words. Passing them to [New] or
// [Randomizer.Seed] resumes the sequence from this point.
func (r *Randomizer) State() (seed0, seed1 uint64) {
	return r.seed0, r.seed1
}

// Next advances the state once and returns the low bits of the new word.
// bits must be in [1, 32]; for 32 the result covers the full int32 range.
func (r *Randomizer) Next(bits int) int32 {
	if bits < 1 || bits > 32 {
		panic(fmt.Sprintf("rng: bit count out of range: %d", bits))
	}

	s1 := int64(r.seed0)
	s0 := int64(r.seed1)
	r.seed0 = uint64(s0)
	s1 ^= s1 << 23
	s1 = (s1 ^ s0 ^ (s1 >> 17) ^ (s0 >> 26)) + s0
	r.seed1 = uint64(s1)

	return int32(uint32(uint64(s1) & (1<<uint(bits) - 1)))
}

// Int32 returns 32 uniformly distributed bits as a signed integer.
func (r *Randomizer) Int32() int32 {
	return r.Next(32)
}

// Int32n returns a uniform integer in [0, n). It panics if n <= 0.
func (r *Randomizer) Int32n(n int32) int32 {
	if n <= 0 {
		panic("rng: invalid argument to Int32n")
	}

	v := r.Next(31)
	m := n - 1
	if n&m == 0 {
		return int32((int64(n) * int64(v)) >> 31)
	}

	// Reject the tail of the 31-bit range that would bias the modulo.
	for u := v; ; u = r.Next(31) {
		v = u % n
		if u-v+m >= 0 {
			return v
		}
	}
}

// Int64 returns 64 bits built from two 32-bit draws.
func (r *Randomizer) Int64() int64 {
	hi := int64(r.Next(32))
	lo := int64(r.Next(32))
	return hi<<32 + lo
}

// Uint64 returns 64 random bits. It makes Randomizer a [rand.Source].
func (r *Randomizer) Uint64() uint64 {
	return uint64(r.Int64())
}

// Float32 returns a uniform value in [0, 1) with 24 bits of precision.
func (r *Randomizer) Float32() float32 {
	return float32(r.Next(24)) / (1 << 24)
}

// Float64 returns a uniform value in [0, 1) with 53 bits of precision.
func (r *Randomizer) Float64() float64 {
	hi := int64(r.Next(26))
	lo := int64(r.Next(27))
	return float64(hi<<27+lo) * (1.0 / (1 << 53))
}

// Bool returns a uniformly random boolean.
func (r *Randomizer) Bool() bool {
	return r.Next(1) != 0
}
