package accuracy

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-linmath/fastmath"
)

const minFFTSize = 8

// Purity describes the spectrum of a tone synthesised with the table sine.
type Purity struct {
	FFTSize int
	Cycles  int // fundamental bin

	// SFDR is the spurious-free dynamic range in dB: the power ratio
	// between the fundamental and the strongest other bin up to Nyquist.
	// It is +Inf when no spur is present.
	SFDR float64

	// SpurBin is the bin of the strongest spur, or -1 without one.
	SpurBin int
}

// SpectralPurity synthesises cycles periods of fastmath.Sin over fftSize
// samples and measures the spectrum. The tone is coherent with the FFT
// length, so no window is applied and all leakage comes from the table.
func SpectralPurity(fftSize, cycles int) (Purity, error) {
	if fftSize < minFFTSize || !fastmath.IsPowerOfTwo(fftSize) {
		return Purity{}, fmt.Errorf("%w: %d", ErrInvalidFFTSize, fftSize)
	}

	if cycles < 1 || cycles >= fftSize/2 {
		return Purity{}, fmt.Errorf("%w: %d for FFT size %d", ErrInvalidCycles, cycles, fftSize)
	}

	in := make([]complex128, fftSize)
	for i := range in {
		// Reduce the phase to one turn before the float32 conversion.
		k := (cycles * i) % fftSize
		phase := float32(2 * math.Pi * float64(k) / float64(fftSize))
		in[i] = complex(float64(fastmath.Sin(phase)), 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Purity{}, fmt.Errorf("accuracy: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Purity{}, fmt.Errorf("accuracy: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := range bins {
		re[i], im[i] = real(out[i]), imag(out[i])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	res := Purity{FFTSize: fftSize, Cycles: cycles, SpurBin: -1}
	spur := 0.0

	for i, p := range power {
		if i != cycles && p > spur {
			spur, res.SpurBin = p, i
		}
	}

	if res.SpurBin < 0 {
		res.SFDR = math.Inf(1)
	} else {
		res.SFDR = 10 * math.Log10(power[cycles]/spur)
	}

	return res, nil
}
