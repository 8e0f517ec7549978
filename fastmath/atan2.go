package fastmath

import (
	"math"
	"sync"

	"github.com/chewxy/math32"
)

const (
	atan2Bits  = 7
	atan2Count = 1 << (atan2Bits << 1)

	// Atan2Dim is the side length of the square atan2 lookup grid.
	Atan2Dim = 1 << atan2Bits

	invAtan2DimMinus1 float32 = 1.0 / (Atan2Dim - 1)
)

var (
	atan2Table    [atan2Count]float32
	atan2InitOnce sync.Once
)

func initAtan2Table() {
	for i := 0; i < Atan2Dim; i++ {
		for j := 0; j < Atan2Dim; j++ {
			x0 := float32(i) / Atan2Dim
			y0 := float32(j) / Atan2Dim
			atan2Table[j*Atan2Dim+i] = float32(math.Atan2(float64(y0), float64(x0)))
		}
	}
}

// Atan2 returns the angle of (x, y) in radians, in [-π, π], from the lookup
// grid. Inputs that cannot be scaled onto the grid (a larger magnitude near
// zero, infinities, NaN) are computed directly.
func Atan2(y, x float32) float32 {
	var add, mul float32
	if x < 0 {
		if y < 0 {
			y = -y
			mul = 1
		} else {
			mul = -1
		}
		x = -x
		add = -Pi
	} else {
		if y < 0 {
			y = -y
			mul = -1
		} else {
			mul = 1
		}
		add = 0
	}

	larger := x
	if x < y {
		larger = y
	}
	invDiv := 1 / (larger * invAtan2DimMinus1)
	if !(invDiv > 0) || math32.IsInf(invDiv, 1) || math32.IsNaN(y) {
		return (math32.Atan2(y, x) + add) * mul
	}

	atan2InitOnce.Do(initAtan2Table)
	xi := int(x * invDiv)
	yi := int(y * invDiv)
	return (atan2Table[yi*Atan2Dim+xi] + add) * mul
}
