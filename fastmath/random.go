package fastmath

import (
	"math/rand/v2"
	"sync"

	"github.com/cwbudde/algo-linmath/rng"
)

// Random draws game-style scalar values from a random source.
// A Random is not safe for concurrent use.
type Random struct {
	r *rand.Rand
}

// NewRandom returns a Random drawing from src.
func NewRandom(src rand.Source) *Random {
	return &Random{r: rand.New(src)}
}

// NewSeededRandom returns a Random backed by an [rng.Randomizer] with the
// given seed pair.
func NewSeededRandom(seed0, seed1 uint64) *Random {
	return NewRandom(rng.New(seed0, seed1))
}

// Int returns a value in [0, n], both inclusive.
func (r *Random) Int(n int) int {
	return r.r.IntN(n + 1)
}

// IntRange returns a value in [start, end], both inclusive.
func (r *Random) IntRange(start, end int) int {
	return start + r.r.IntN(end-start+1)
}

// Bool returns true or false with equal probability.
func (r *Random) Bool() bool {
	return r.r.Uint32()>>31 == 1
}

// Chance returns true with probability p.
func (r *Random) Chance(p float32) bool {
	return r.Float() < p
}

// Float returns a value in [0, 1).
func (r *Random) Float() float32 {
	return r.r.Float32()
}

// FloatN returns a value in [0, n).
func (r *Random) FloatN(n float32) float32 {
	return r.r.Float32() * n
}

// FloatRange returns a value in [start, end).
func (r *Random) FloatRange(start, end float32) float32 {
	return start + r.r.Float32()*(end-start)
}

// Sign returns -1 or 1.
func (r *Random) Sign() int {
	return int(1 | int32(r.r.Uint32())>>31)
}

// Triangular returns a value in (-1, 1) where values near zero are more
// likely. It is a faster TriangularMode(-1, 1, 0).
func (r *Random) Triangular() float32 {
	return r.r.Float32() - r.r.Float32()
}

// TriangularMax returns a value in (-max, max) where values near zero are
// more likely.
func (r *Random) TriangularMax(max float32) float32 {
	return (r.r.Float32() - r.r.Float32()) * max
}

// TriangularRange returns a value in [min, max) with the mode at the
// midpoint of the range.
func (r *Random) TriangularRange(min, max float32) float32 {
	return r.TriangularMode(min, max, (min+max)*0.5)
}

// TriangularMode returns a value in [min, max) where values near mode are
// more likely, using the inverse CDF of the triangular distribution.
func (r *Random) TriangularMode(min, max, mode float32) float32 {
	u := r.r.Float32()
	d := max - min
	if u <= (mode-min)/d {
		return min + Sqrt(u*d*(mode-min))
	}
	return max - Sqrt((1-u)*d*(max-mode))
}

var (
	defaultRandom   = NewRandom(rng.NewEntropy())
	defaultRandomMu sync.Mutex
)

// SetSeed reseeds the package-level generator with a fixed seed pair so the
// Rand* functions become reproducible.
func SetSeed(seed0, seed1 uint64) {
	defaultRandomMu.Lock()
	defaultRandom = NewSeededRandom(seed0, seed1)
	defaultRandomMu.Unlock()
}

func withDefault[T any](fn func(*Random) T) T {
	defaultRandomMu.Lock()
	defer defaultRandomMu.Unlock()
	return fn(defaultRandom)
}

// RandInt returns a value in [0, n] from the package-level generator.
func RandInt(n int) int {
	return withDefault(func(r *Random) int { return r.Int(n) })
}

// RandIntRange returns a value in [start, end] from the package-level generator.
func RandIntRange(start, end int) int {
	return withDefault(func(r *Random) int { return r.IntRange(start, end) })
}

// RandBool returns a random boolean from the package-level generator.
func RandBool() bool {
	return withDefault((*Random).Bool)
}

// RandChance returns true with probability p.
func RandChance(p float32) bool {
	return withDefault(func(r *Random) bool { return r.Chance(p) })
}

// RandFloat returns a value in [0, 1) from the package-level generator.
func RandFloat() float32 {
	return withDefault((*Random).Float)
}

// RandFloatN returns a value in [0, n) from the package-level generator.
func RandFloatN(n float32) float32 {
	return withDefault(func(r *Random) float32 { return r.FloatN(n) })
}

// RandFloatRange returns a value in [start, end) from the package-level generator.
func RandFloatRange(start, end float32) float32 {
	return withDefault(func(r *Random) float32 { return r.FloatRange(start, end) })
}

// RandSign returns -1 or 1 from the package-level generator.
func RandSign() int {
	return withDefault((*Random).Sign)
}

// RandTriangular returns a triangular value in (-1, 1).
func RandTriangular() float32 {
	return withDefault((*Random).Triangular)
}

// RandTriangularMax returns a triangular value in (-max, max).
func RandTriangularMax(max float32) float32 {
	return withDefault(func(r *Random) float32 { return r.TriangularMax(max) })
}

// RandTriangularRange returns a triangular value in [min, max) centred on
// the midpoint.
func RandTriangularRange(min, max float32) float32 {
	return withDefault(func(r *Random) float32 { return r.TriangularRange(min, max) })
}

// RandTriangularMode returns a triangular value in [min, max) with the given mode.
func RandTriangularMode(min, max, mode float32) float32 {
	return withDefault(func(r *Random) float32 { return r.TriangularMode(min, max, mode) })
}
