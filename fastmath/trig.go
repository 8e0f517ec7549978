package fastmath

import (
	"math"
	"sync"
)

const (
	// SinBits is the table resolution in bits.
	SinBits = 14

	// SinCount is the number of sine table buckets covering one full turn.
	SinCount = 1 << SinBits

	sinMask = SinCount - 1

	radToIndex = SinCount / Pi2
	degToIndex = SinCount / 360.0
)

var (
	sinTable    [SinCount]float32
	sinInitOnce sync.Once
)

func initSinTable() {
	for i := range sinTable {
		sinTable[i] = float32(math.Sin(float64((float32(i) + 0.5) / SinCount * Pi2)))
	}

	// Axis-aligned angles get their exact value instead of the bucket centre.
	for deg := 0; deg < 360; deg += 90 {
		sinTable[int(float32(deg)*degToIndex)&sinMask] = float32(math.Sin(float64(deg) * math.Pi / 180))
	}
}

// Sin returns the sine of rad (radians) from the lookup table.
func Sin(rad float32) float32 {
	sinInitOnce.Do(initSinTable)
	return sinTable[int(rad*radToIndex)&sinMask]
}

// Cos returns the cosine of rad (radians) from the lookup table.
// Cos(x) is exactly Sin(x + π/2).
func Cos(rad float32) float32 {
	return Sin(rad + Pi/2)
}

// SinDeg returns the sine of deg (degrees) from the lookup table.
func SinDeg(deg float32) float32 {
	sinInitOnce.Do(initSinTable)
	return sinTable[int(deg*degToIndex)&sinMask]
}

// CosDeg returns the cosine of deg (degrees) from the lookup table.
func CosDeg(deg float32) float32 {
	return SinDeg(deg + 90)
}

// SinCos returns Sin(rad) and Cos(rad).
func SinCos(rad float32) (sin, cos float32) {
	return Sin(rad), Cos(rad)
}
