package fastmath

// BigEnoughInt is the bias that makes truncation behave like floor for the
// negative inputs Floor, Ceil and Round accept.
const BigEnoughInt = 16 * 1024

const (
	bigEnoughFloor = float64(BigEnoughInt)
	bigEnoughCeil  = 16384.999999999996
	bigEnoughRound = float64(BigEnoughInt) + 0.5
	ceilPositive   = 0.9999999
)

// Floor returns the largest integer less than or equal to x.
//
// Precondition: -16384 <= x <= MaxFloat32-16384 and the result fits in an
// int. Outside that range the result is unspecified.
func Floor(x float32) int {
	return int(float64(x)+bigEnoughFloor) - BigEnoughInt
}

// FloorPositive returns the largest integer less than or equal to x for
// non-negative x. It is a plain truncation.
func FloorPositive(x float32) int {
	return int(x)
}

// Ceil returns the smallest integer greater than or equal to x.
//
// Precondition: -16384 <= x <= MaxFloat32-16384 and the result fits in an
// int. Outside that range the result is unspecified.
func Ceil(x float32) int {
	return int(float64(x)+bigEnoughCeil) - BigEnoughInt
}

// CeilPositive returns the smallest integer greater than or equal to x for
// non-negative x.
func CeilPositive(x float32) int {
	return int(float64(x) + ceilPositive)
}

// Round returns the integer closest to x, rounding halves up.
//
// Precondition: -16384 <= x <= MaxFloat32-16384 and the result fits in an
// int. Outside that range the result is unspecified.
func Round(x float32) int {
	return int(float64(x)+bigEnoughRound) - BigEnoughInt
}

// RoundPositive returns the integer closest to x for non-negative x.
func RoundPositive(x float32) int {
	return int(x + 0.5)
}
