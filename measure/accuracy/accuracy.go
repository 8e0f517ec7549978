package accuracy

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by accuracy functions.
var (
	ErrInvalidSamples = errors.New("accuracy: sample count too small")
	ErrInvalidRange   = errors.New("accuracy: range must be finite with hi > lo")
	ErrInvalidWrap    = errors.New("accuracy: wrap period must be positive and finite")
	ErrInvalidFFTSize = errors.New("accuracy: FFT size must be a power of two >= 8")
	ErrInvalidCycles  = errors.New("accuracy: cycles must be in [1, fftSize/2)")
)

// Point is an evaluation argument. One-argument sweeps only use X; Sweep2
// stores the first argument in Y and the second in X, matching atan2(y, x).
type Point struct {
	X, Y float32
}

// Report summarises the residuals approx - ref of a sweep.
type Report struct {
	N        int     // number of evaluations
	MaxAbs   float64 // largest absolute residual
	MaxAbsAt Point   // argument of the largest residual
	MeanAbs  float64 // mean absolute residual
	RMS      float64 // root mean square residual
}

func (r Report) String() string {
	return fmt.Sprintf("n=%d max=%.3g at (%g, %g) mean=%.3g rms=%.3g",
		r.N, r.MaxAbs, r.MaxAbsAt.X, r.MaxAbsAt.Y, r.MeanAbs, r.RMS)
}

// Sweep evaluates approx and ref at evenly spaced points of the configured
// range, endpoints included.
func Sweep(approx, ref func(float32) float32, opts ...Option) (Report, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return Report{}, err
	}

	n := cfg.samples
	args := linspace(cfg.lo, cfg.hi, n)
	got := make([]float64, n)
	want := make([]float64, n)

	for i, x := range args {
		got[i] = float64(approx(x))
		want[i] = float64(ref(x))
	}

	rep, idx := summarize(residuals(got, want, cfg.wrap))
	rep.MaxAbsAt = Point{X: args[idx]}

	return rep, nil
}

// Sweep2 evaluates approx(y, x) and ref(y, x) over a square grid spanning
// the configured range on both axes.
func Sweep2(approx, ref func(y, x float32) float32, opts ...Option) (Report, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return Report{}, err
	}

	side := max(int(math.Ceil(math.Sqrt(float64(cfg.samples)))), minSamples)
	axis := linspace(cfg.lo, cfg.hi, side)
	got := make([]float64, side*side)
	want := make([]float64, side*side)

	for iy, y := range axis {
		for ix, x := range axis {
			got[iy*side+ix] = float64(approx(y, x))
			want[iy*side+ix] = float64(ref(y, x))
		}
	}

	rep, idx := summarize(residuals(got, want, cfg.wrap))
	rep.MaxAbsAt = Point{X: axis[idx%side], Y: axis[idx/side]}

	return rep, nil
}

func linspace(lo, hi float64, n int) []float32 {
	out := make([]float32, n)
	step := (hi - lo) / float64(n-1)

	for i := range out {
		out[i] = float32(lo + float64(i)*step)
	}

	out[n-1] = float32(hi)

	return out
}

// residuals overwrites want and returns got - want, wrapped when period > 0.
func residuals(got, want []float64, period float64) []float64 {
	res := make([]float64, len(got))
	vecmath.ScaleBlockInPlace(want, -1)
	vecmath.AddBlock(res, got, want)

	if period > 0 {
		for i, r := range res {
			res[i] = math.Remainder(r, period)
		}
	}

	return res
}

// summarize returns the residual statistics and the index of the largest
// absolute residual.
func summarize(res []float64) (Report, int) {
	n := len(res)
	abs := make([]float64, n)
	vecmath.Magnitude(abs, res, make([]float64, n))

	idx := 0

	for i, a := range abs {
		if a > abs[idx] {
			idx = i
		}
	}

	return Report{
		N:       n,
		MaxAbs:  vecmath.MaxAbs(res),
		MeanAbs: vecmath.Sum(abs) / float64(n),
		RMS:     math.Sqrt(vecmath.DotProduct(res, res) / float64(n)),
	}, idx
}
