package fastmath

const (
	// Pi is π rounded to float32.
	Pi float32 = 3.14159265358979323846264338327950288419716939937510582097494459

	// Pi2 is 2π.
	Pi2 = Pi * 2

	// E is Euler's number.
	E float32 = 2.71828182845904523536028747135266249775724709369995

	// RadiansToDegrees converts radians to degrees by multiplication.
	RadiansToDegrees = 180 / Pi

	// DegreesToRadians converts degrees to radians by multiplication.
	DegreesToRadians = Pi / 180

	// FloatRoundingError is the default tolerance of IsZero and IsEqual.
	FloatRoundingError float32 = 0.000001
)

// ToRadians converts degrees to radians.
func ToRadians(deg float32) float32 {
	return deg * DegreesToRadians
}

// ToDegrees converts radians to degrees.
func ToDegrees(rad float32) float32 {
	return rad * RadiansToDegrees
}
