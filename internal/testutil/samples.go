package testutil

import (
	"github.com/chewxy/math32"

	"github.com/cwbudde/algo-linmath/rng"
)

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float32, n int) []float32 {
	out := make([]float32, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float32(n-1)
	for i := range out {
		out[i] = lo + step*float32(i)
	}
	return out
}

// DeterministicUniform returns n values in [lo, hi) drawn from a fixed seed.
func DeterministicUniform(seed uint64, lo, hi float32, n int) []float32 {
	r := rng.New(seed, seed^0x9e3779b97f4a7c15)
	out := make([]float32, n)
	for i := range out {
		out[i] = lo + r.Float32()*(hi-lo)
	}
	return out
}

// DeterministicUnitQuats returns n unit quaternions as [x, y, z, w] tuples,
// uniformly distributed over rotations (Shoemake's method), from a fixed seed.
func DeterministicUnitQuats(seed uint64, n int) [][4]float32 {
	r := rng.New(seed, seed^0x9e3779b97f4a7c15)
	out := make([][4]float32, n)
	for i := range out {
		u1, u2, u3 := r.Float32(), r.Float32(), r.Float32()
		a := math32.Sqrt(1 - u1)
		b := math32.Sqrt(u1)
		t2 := 2 * math32.Pi * u2
		t3 := 2 * math32.Pi * u3
		out[i] = [4]float32{
			a * math32.Sin(t2),
			a * math32.Cos(t2),
			b * math32.Sin(t3),
			b * math32.Cos(t3),
		}
	}
	return out
}
