package accuracy

import (
	"fmt"
	"math"
)

const (
	defaultSamples = 4096
	minSamples     = 2
	defaultLo      = -2 * math.Pi
	defaultHi      = 2 * math.Pi
)

type config struct {
	samples int
	lo, hi  float64
	wrap    float64 // residual period; 0 disables wrapping
}

func defaultConfig() config {
	return config{
		samples: defaultSamples,
		lo:      defaultLo,
		hi:      defaultHi,
	}
}

// Option configures a sweep.
type Option func(*config) error

// WithSamples sets the number of evaluation points (default 4096, min 2).
// Sweep2 rounds it up to the next square grid.
func WithSamples(n int) Option {
	return func(cfg *config) error {
		if n < minSamples {
			return fmt.Errorf("%w: %d", ErrInvalidSamples, n)
		}

		cfg.samples = n

		return nil
	}
}

// WithRange sets the closed argument interval [lo, hi] (default ±2π).
// Sweep2 uses it for both axes.
func WithRange(lo, hi float64) Option {
	return func(cfg *config) error {
		if !(hi > lo) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
			return fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, lo, hi)
		}

		cfg.lo, cfg.hi = lo, hi

		return nil
	}
}

// WithWrap folds each residual into [-period/2, period/2], which suits
// angle-valued functions whose results may land on either side of a branch
// cut.
func WithWrap(period float64) Option {
	return func(cfg *config) error {
		if !(period > 0) || math.IsInf(period, 0) {
			return fmt.Errorf("%w: %g", ErrInvalidWrap, period)
		}

		cfg.wrap = period

		return nil
	}
}

func applyOptions(opts []Option) (config, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}

	return cfg, nil
}
