package fastmath

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Clamp limits value to the inclusive range [min, max].
func Clamp[T constraints.Ordered](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Lerp linearly interpolates from from to to by progress.
func Lerp[T constraints.Float](from, to, progress T) T {
	return from + (to-from)*progress
}

// IsZero reports whether |value| <= FloatRoundingError.
func IsZero(value float32) bool {
	return math32.Abs(value) <= FloatRoundingError
}

// IsZeroTol reports whether |value| <= tolerance.
func IsZeroTol(value, tolerance float32) bool {
	return math32.Abs(value) <= tolerance
}

// IsEqual reports whether a and b differ by at most FloatRoundingError.
func IsEqual(a, b float32) bool {
	return math32.Abs(a-b) <= FloatRoundingError
}

// IsEqualTol reports whether a and b differ by at most tolerance.
func IsEqualTol(a, b, tolerance float32) bool {
	return math32.Abs(a-b) <= tolerance
}

// Log returns the logarithm of x in base a.
func Log(a, x float32) float32 {
	return math32.Log(x) / math32.Log(a)
}

// Log2 returns the base-2 logarithm of x.
func Log2(x float32) float32 {
	return Log(2, x)
}

// NextPowerOfTwo returns the smallest power of two >= v. Zero maps to one.
func NextPowerOfTwo(v int) int {
	if v == 0 {
		return 1
	}
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	return v + 1
}

// IsPowerOfTwo reports whether v is a power of two.
func IsPowerOfTwo[T constraints.Integer](v T) bool {
	return v != 0 && v&(v-1) == 0
}
