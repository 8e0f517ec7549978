//go:build !fastmath

package fastmath

import "github.com/chewxy/math32"

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}
