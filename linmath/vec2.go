package linmath

import (
	"github.com/chewxy/math32"

	"github.com/cwbudde/algo-linmath/fastmath"
)

// Vec2 is a two-component vector.
type Vec2 struct {
	X, Y float32
}

// Vec2X returns the x axis.
func Vec2X() Vec2 { return Vec2{1, 0} }

// Vec2Y returns the y axis.
func Vec2Y() Vec2 { return Vec2{0, 1} }

// Zero2 returns the zero vector.
func Zero2() Vec2 { return Vec2{} }

func (v *Vec2) Set(x, y float32) *Vec2 {
	v.X, v.Y = x, y
	return v
}

func (v Vec2) Copy() Vec2 { return v }

func (v Vec2) Len() float32 { return math32.Sqrt(v.X*v.X + v.Y*v.Y) }

func (v Vec2) Len2() float32 { return v.X*v.X + v.Y*v.Y }

// Normalize scales v to unit length. Zero vectors and vectors whose squared
// length is exactly one are left untouched.
func (v *Vec2) Normalize() *Vec2 {
	l2 := v.Len2()
	if l2 == 0 || l2 == 1 {
		return v
	}
	return v.MulScalar(1 / math32.Sqrt(l2))
}

func (v *Vec2) Add(o Vec2) *Vec2 { return v.Set(v.X+o.X, v.Y+o.Y) }

func (v *Vec2) AddScalar(s float32) *Vec2 { return v.Set(v.X+s, v.Y+s) }

func (v *Vec2) Sub(o Vec2) *Vec2 { return v.Set(v.X-o.X, v.Y-o.Y) }

func (v *Vec2) SubScalar(s float32) *Vec2 { return v.Set(v.X-s, v.Y-s) }

func (v *Vec2) Mul(o Vec2) *Vec2 { return v.Set(v.X*o.X, v.Y*o.Y) }

func (v *Vec2) MulScalar(s float32) *Vec2 { return v.Set(v.X*s, v.Y*s) }

// Div divides v by o component-wise, treating near-zero divisors as one.
func (v *Vec2) Div(o Vec2) *Vec2 {
	return v.Set(v.X/safeDivisor(o.X), v.Y/safeDivisor(o.Y))
}

// DivScalar divides both components by s, treating a near-zero s as one.
func (v *Vec2) DivScalar(s float32) *Vec2 {
	s = safeDivisor(s)
	return v.Set(v.X/s, v.Y/s)
}

// MulAdd adds o scaled by s to v.
func (v *Vec2) MulAdd(o Vec2, s float32) *Vec2 {
	return v.Set(v.X+o.X*s, v.Y+o.Y*s)
}

func (v Vec2) Dot(o Vec2) float32 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product of v and o.
func (v Vec2) Cross(o Vec2) float32 { return v.X*o.Y - v.Y*o.X }

// Lerp linearly interpolates v towards target by alpha.
func (v *Vec2) Lerp(target Vec2, alpha float32) *Vec2 {
	inv := 1 - alpha
	return v.Set(v.X*inv+target.X*alpha, v.Y*inv+target.Y*alpha)
}

func (v Vec2) Dist(o Vec2) float32 { return math32.Sqrt(v.Dist2(o)) }

func (v Vec2) Dist2(o Vec2) float32 {
	a, b := o.X-v.X, o.Y-v.Y
	return a*a + b*b
}

// Limit shortens v to length limit if it is longer.
func (v *Vec2) Limit(limit float32) *Vec2 {
	if v.Len2() > limit*limit {
		v.Normalize().MulScalar(limit)
	}
	return v
}

// ClampLen keeps the length of v inside [min, max]. Zero vectors are left
// untouched.
func (v *Vec2) ClampLen(min, max float32) *Vec2 {
	l2 := v.Len2()
	switch {
	case l2 == 0:
		return v
	case l2 > max*max:
		return v.Normalize().MulScalar(max)
	case l2 < min*min:
		return v.Normalize().MulScalar(min)
	}
	return v
}

func (v Vec2) IsUnit() bool { return fastmath.IsEqual(v.Len2(), 1) }

func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

func (v Vec2) ApproxEqual(o Vec2, eps float32) bool {
	return fastmath.IsEqualTol(v.X, o.X, eps) && fastmath.IsEqualTol(v.Y, o.Y, eps)
}

// Angle returns the angle of v relative to the x axis in degrees, in
// [0, 360).
func (v Vec2) Angle() float32 {
	a := fastmath.ToDegrees(v.AngleRad())
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a -= 360
	}
	return a
}

// AngleRad returns the angle of v relative to the x axis in radians, in
// [-π, π].
func (v Vec2) AngleRad() float32 {
	return fastmath.Atan2(v.Y, v.X)
}

// AngleTo returns the signed angle in degrees that rotates v onto ref,
// counter-clockwise positive.
func (v Vec2) AngleTo(ref Vec2) float32 {
	return fastmath.ToDegrees(v.AngleToRad(ref))
}

// AngleToRad is AngleTo in radians.
func (v Vec2) AngleToRad(ref Vec2) float32 {
	return fastmath.Atan2(v.Cross(ref), v.Dot(ref))
}

// SetAngle points v at deg degrees from the x axis, keeping its length.
func (v *Vec2) SetAngle(deg float32) *Vec2 {
	return v.SetAngleRad(fastmath.ToRadians(deg))
}

// SetAngleRad points v at rad radians from the x axis, keeping its length.
func (v *Vec2) SetAngleRad(rad float32) *Vec2 {
	return v.Set(v.Len(), 0).RotateRad(rad)
}

// Rotate rotates v counter-clockwise by deg degrees.
func (v *Vec2) Rotate(deg float32) *Vec2 {
	return v.RotateRad(fastmath.ToRadians(deg))
}

// RotateRad rotates v counter-clockwise by rad radians using the fastmath
// tables.
func (v *Vec2) RotateRad(rad float32) *Vec2 {
	sin, cos := fastmath.SinCos(rad)
	return v.Set(v.X*cos-v.Y*sin, v.X*sin+v.Y*cos)
}

// Rotate90 rotates v by exactly 90 degrees, counter-clockwise when ccw is
// true and clockwise otherwise.
func (v *Vec2) Rotate90(ccw bool) *Vec2 {
	if ccw {
		return v.Set(-v.Y, v.X)
	}
	return v.Set(v.Y, -v.X)
}
