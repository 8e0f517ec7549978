// Package accuracy measures how far the fastmath approximations stray from
// reference implementations.
//
// Sweeps evaluate an approximation and a reference over evenly spaced
// arguments and summarise the residuals:
//
//	rep, err := accuracy.Sweep(fastmath.Sin, math32.Sin,
//	    accuracy.WithSamples(1<<16),
//	    accuracy.WithRange(0, 2*math.Pi),
//	)
//	// rep.MaxAbs, rep.MaxAbsAt, rep.MeanAbs, rep.RMS
//
// Sweep2 does the same over a square grid for two-argument functions such
// as atan2; WithWrap folds angular residuals into a single turn so the
// branch cut does not count as an error.
//
// CircleError checks that the table sine and cosine stay on the unit
// circle, and SpectralPurity synthesises a coherent tone with the table
// sine and reports its spurious-free dynamic range from an FFT.
package accuracy
