package accuracy

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-linmath/fastmath"
)

// CircleError evaluates the table cosine and sine at n angles evenly spread
// over one turn and reports the radial error |(cos θ, sin θ)| - 1.
// MaxAbsAt.X holds the angle in radians.
func CircleError(n int) (Report, error) {
	if n < minSamples {
		return Report{}, fmt.Errorf("%w: %d", ErrInvalidSamples, n)
	}

	angles := make([]float32, n)
	cos := make([]float64, n)
	sin := make([]float64, n)

	for i := range angles {
		theta := float32(2 * math.Pi * float64(i) / float64(n))
		angles[i] = theta
		s, c := fastmath.SinCos(theta)
		sin[i], cos[i] = float64(s), float64(c)
	}

	radius := make([]float64, n)
	vecmath.Magnitude(radius, cos, sin)

	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}

	rep, idx := summarize(residuals(radius, ones, 0))
	rep.MaxAbsAt = Point{X: angles[idx]}

	return rep, nil
}
