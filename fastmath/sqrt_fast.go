//go:build fastmath

package fastmath

import (
	"github.com/meko-christian/algo-approx"
)

// Sqrt returns an approximation of the square root of x.
func Sqrt(x float32) float32 {
	return float32(approx.FastSqrt(float64(x)))
}
