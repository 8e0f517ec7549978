package linmath

import (
	"github.com/chewxy/math32"

	"github.com/cwbudde/algo-linmath/fastmath"
)

// Vec3 is a three-component vector.
type Vec3 struct {
	X, Y, Z float32
}

// UnitX returns the x axis.
func UnitX() Vec3 { return Vec3{1, 0, 0} }

// UnitY returns the y axis.
func UnitY() Vec3 { return Vec3{0, 1, 0} }

// UnitZ returns the z axis.
func UnitZ() Vec3 { return Vec3{0, 0, 1} }

// Zero3 returns the zero vector.
func Zero3() Vec3 { return Vec3{} }

// Set assigns the components of v.
func (v *Vec3) Set(x, y, z float32) *Vec3 {
	v.X, v.Y, v.Z = x, y, z
	return v
}

// Copy returns a copy of v.
func (v Vec3) Copy() Vec3 { return v }

// Len returns the Euclidean length of v.
func (v Vec3) Len() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Len2 returns the squared length of v.
func (v Vec3) Len2() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize scales v to unit length. Zero vectors and vectors whose squared
// length is exactly one are left untouched.
func (v *Vec3) Normalize() *Vec3 {
	l2 := v.Len2()
	if l2 == 0 || l2 == 1 {
		return v
	}
	return v.MulScalar(1 / math32.Sqrt(l2))
}

// Add adds o to v component-wise.
func (v *Vec3) Add(o Vec3) *Vec3 {
	return v.Set(v.X+o.X, v.Y+o.Y, v.Z+o.Z)
}

// AddScalar adds s to every component.
func (v *Vec3) AddScalar(s float32) *Vec3 {
	return v.Set(v.X+s, v.Y+s, v.Z+s)
}

// Sub subtracts o from v component-wise.
func (v *Vec3) Sub(o Vec3) *Vec3 {
	return v.Set(v.X-o.X, v.Y-o.Y, v.Z-o.Z)
}

// SubScalar subtracts s from every component.
func (v *Vec3) SubScalar(s float32) *Vec3 {
	return v.Set(v.X-s, v.Y-s, v.Z-s)
}

// Mul multiplies v by o component-wise.
func (v *Vec3) Mul(o Vec3) *Vec3 {
	return v.Set(v.X*o.X, v.Y*o.Y, v.Z*o.Z)
}

// MulScalar scales every component by s.
func (v *Vec3) MulScalar(s float32) *Vec3 {
	return v.Set(v.X*s, v.Y*s, v.Z*s)
}

// Div divides v by o component-wise. Divisor components within
// fastmath.FloatRoundingError of zero are treated as one.
func (v *Vec3) Div(o Vec3) *Vec3 {
	return v.Set(v.X/safeDivisor(o.X), v.Y/safeDivisor(o.Y), v.Z/safeDivisor(o.Z))
}

// DivScalar divides every component by s, treating a near-zero s as one.
func (v *Vec3) DivScalar(s float32) *Vec3 {
	s = safeDivisor(s)
	return v.Set(v.X/s, v.Y/s, v.Z/s)
}

func safeDivisor(d float32) float32 {
	if fastmath.IsZero(d) {
		return 1
	}
	return d
}

// MulAdd adds o scaled by s to v.
func (v *Vec3) MulAdd(o Vec3, s float32) *Vec3 {
	return v.Set(v.X+o.X*s, v.Y+o.Y*s, v.Z+o.Z*s)
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross sets v to v × o.
func (v *Vec3) Cross(o Vec3) *Vec3 {
	return v.Set(v.Y*o.Z-v.Z*o.Y, v.Z*o.X-v.X*o.Z, v.X*o.Y-v.Y*o.X)
}

// Lerp linearly interpolates v towards target by alpha.
func (v *Vec3) Lerp(target Vec3, alpha float32) *Vec3 {
	inv := 1 - alpha
	return v.Set(v.X*inv+target.X*alpha, v.Y*inv+target.Y*alpha, v.Z*inv+target.Z*alpha)
}

// Dist returns the distance between v and o.
func (v Vec3) Dist(o Vec3) float32 {
	return math32.Sqrt(v.Dist2(o))
}

// Dist2 returns the squared distance between v and o.
func (v Vec3) Dist2(o Vec3) float32 {
	a, b, c := o.X-v.X, o.Y-v.Y, o.Z-v.Z
	return a*a + b*b + c*c
}

// Limit shortens v to length limit if it is longer.
func (v *Vec3) Limit(limit float32) *Vec3 {
	if v.Len2() > limit*limit {
		v.Normalize().MulScalar(limit)
	}
	return v
}

// ClampLen keeps the length of v inside [min, max]. Zero vectors are left
// untouched.
func (v *Vec3) ClampLen(min, max float32) *Vec3 {
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

// IsUnit reports whether the squared length of v is within
// fastmath.FloatRoundingError of one.
func (v Vec3) IsUnit() bool {
	return fastmath.IsEqual(v.Len2(), 1)
}

// IsZero reports whether every component is exactly zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// ApproxEqual reports whether every component of v is within eps of o.
func (v Vec3) ApproxEqual(o Vec3, eps float32) bool {
	return fastmath.IsEqualTol(v.X, o.X, eps) &&
		fastmath.IsEqualTol(v.Y, o.Y, eps) &&
		fastmath.IsEqualTol(v.Z, o.Z, eps)
}

// Rotate rotates v by the unit quaternion q.
func (v *Vec3) Rotate(q Quat) *Vec3 {
	*v = q.Transform(*v)
	return v
}

// RotateAxis rotates v by rad radians around axis (Rodrigues' formula). The
// sine and cosine come from the fastmath tables.
func (v *Vec3) RotateAxis(axis Vec3, rad float32) *Vec3 {
	axis.Normalize()
	sin, cos := fastmath.SinCos(rad)

	k := axis
	kxv := k
	kxv.Cross(*v)
	kd := k.Dot(*v) * (1 - cos)

	return v.Set(
		v.X*cos+kxv.X*sin+k.X*kd,
		v.Y*cos+kxv.Y*sin+k.Y*kd,
		v.Z*cos+kxv.Z*sin+k.Z*kd,
	)
}

// Slerp spherically interpolates the unit vector v towards the unit vector
// target. Nearly parallel or antiparallel inputs (|dot| > 0.9995) are
// interpolated linearly.
func (v *Vec3) Slerp(target Vec3, alpha float32) *Vec3 {
	dot := v.Dot(target)
	if dot > 0.9995 || dot < -0.9995 {
		return v.Lerp(target, alpha)
	}

	theta := math32.Acos(dot) * alpha
	st := math32.Sin(theta)
	tx := target.X - v.X*dot
	ty := target.Y - v.Y*dot
	tz := target.Z - v.Z*dot
	dl := st / math32.Sqrt(tx*tx+ty*ty+tz*tz)

	return v.MulScalar(math32.Cos(theta)).Add(Vec3{tx * dl, ty * dl, tz * dl}).Normalize()
}

// Reflect reflects v about the plane with the given unit normal.
func (v *Vec3) Reflect(normal Vec3) *Vec3 {
	return v.MulAdd(normal, -2*v.Dot(normal))
}
