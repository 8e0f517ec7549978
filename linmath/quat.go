package linmath

import (
	"github.com/chewxy/math32"

	"github.com/cwbudde/algo-linmath/fastmath"
)

// Quat is a quaternion with vector part (X, Y, Z) and scalar part W.
type Quat struct {
	X, Y, Z, W float32
}

// QuatX returns the pure quaternion i.
func QuatX() Quat { return Quat{1, 0, 0, 0} }

// QuatY returns the pure quaternion j.
func QuatY() Quat { return Quat{0, 1, 0, 0} }

// QuatZ returns the pure quaternion k.
func QuatZ() Quat { return Quat{0, 0, 1, 0} }

// QuatW returns the real unit quaternion, equal to QuatIdent.
func QuatW() Quat { return Quat{0, 0, 0, 1} }

// QuatIdent returns the identity rotation.
func QuatIdent() Quat { return Quat{0, 0, 0, 1} }

// Set assigns the components of q.
func (q *Quat) Set(x, y, z, w float32) *Quat {
	q.X, q.Y, q.Z, q.W = x, y, z, w
	return q
}

// SetQuat copies o into q.
func (q *Quat) SetQuat(o Quat) *Quat {
	*q = o
	return q
}

// Identity sets q to the identity rotation.
func (q *Quat) Identity() *Quat {
	return q.Set(0, 0, 0, 1)
}

// IsIdentity reports whether q is the identity within
// fastmath.FloatRoundingError.
func (q Quat) IsIdentity() bool {
	return fastmath.IsZero(q.X) && fastmath.IsZero(q.Y) && fastmath.IsZero(q.Z) &&
		fastmath.IsEqual(q.W, 1)
}

// IsIdentityTol reports whether q is the identity within tolerance.
func (q Quat) IsIdentityTol(tolerance float32) bool {
	return fastmath.IsZeroTol(q.X, tolerance) && fastmath.IsZeroTol(q.Y, tolerance) &&
		fastmath.IsZeroTol(q.Z, tolerance) && fastmath.IsEqualTol(q.W, 1, tolerance)
}

// Copy returns a copy of q.
func (q Quat) Copy() Quat { return q }

// Len returns the norm of q.
func (q Quat) Len() float32 {
	return math32.Sqrt(q.Len2())
}

// Len2 returns the squared norm of q.
func (q Quat) Len2() float32 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Dot returns the four-component dot product of q and o.
func (q Quat) Dot(o Quat) float32 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// Conjugate negates the vector part of q.
func (q *Quat) Conjugate() *Quat {
	return q.Set(-q.X, -q.Y, -q.Z, q.W)
}

// Normalize scales q to unit length. It does nothing when the squared norm
// is zero or already within fastmath.FloatRoundingError of one, so callers
// must not expect the components to be rewritten in that case.
func (q *Quat) Normalize() *Quat {
	l2 := q.Len2()
	if l2 == 0 || fastmath.IsEqual(l2, 1) {
		return q
	}
	inv := 1 / math32.Sqrt(l2)
	return q.Set(q.X*inv, q.Y*inv, q.Z*inv, q.W*inv)
}

// Mul sets q to the Hamilton product q·o.
func (q *Quat) Mul(o Quat) *Quat {
	return q.Set(
		q.W*o.X+q.X*o.W+q.Y*o.Z-q.Z*o.Y,
		q.W*o.Y+q.Y*o.W+q.Z*o.X-q.X*o.Z,
		q.W*o.Z+q.Z*o.W+q.X*o.Y-q.Y*o.X,
		q.W*o.W-q.X*o.X-q.Y*o.Y-q.Z*o.Z,
	)
}

// MulLeft sets q to the Hamilton product o·q.
func (q *Quat) MulLeft(o Quat) *Quat {
	return q.Set(
		o.W*q.X+o.X*q.W+o.Y*q.Z-o.Z*q.Y,
		o.W*q.Y+o.Y*q.W+o.Z*q.X-o.X*q.Z,
		o.W*q.Z+o.Z*q.W+o.X*q.Y-o.Y*q.X,
		o.W*q.W-o.X*q.X-o.Y*q.Y-o.Z*q.Z,
	)
}

// MulVec3 sets q to q·(v, 0), the product with a pure quaternion.
func (q *Quat) MulVec3(v Vec3) *Quat {
	return q.Set(
		q.W*v.X+q.Y*v.Z-q.Z*v.Y,
		q.W*v.Y+q.Z*v.X-q.X*v.Z,
		q.W*v.Z+q.X*v.Y-q.Y*v.X,
		-q.X*v.X-q.Y*v.Y-q.Z*v.Z,
	)
}

// Scale multiplies every component by s.
func (q *Quat) Scale(s float32) *Quat {
	return q.Set(q.X*s, q.Y*s, q.Z*s, q.W*s)
}

// Add adds o to q component-wise.
func (q *Quat) Add(o Quat) *Quat {
	return q.Set(q.X+o.X, q.Y+o.Y, q.Z+o.Z, q.W+o.W)
}

// Sub subtracts o from q component-wise.
func (q *Quat) Sub(o Quat) *Quat {
	return q.Set(q.X-o.X, q.Y-o.Y, q.Z-o.Z, q.W-o.W)
}

// SetFromAxis sets q to a rotation of deg degrees around axis.
func (q *Quat) SetFromAxis(axis Vec3, deg float32) *Quat {
	return q.SetFromAxisRad(axis, fastmath.ToRadians(deg))
}

// SetFromAxisRad sets q to a rotation of rad radians around axis. The axis
// need not be normalized; a zero axis yields the identity.
func (q *Quat) SetFromAxisRad(axis Vec3, rad float32) *Quat {
	d := axis.Len()
	if d == 0 {
		return q.Identity()
	}
	d = 1 / d
	s := math32.Sin(rad / 2)
	c := math32.Cos(rad / 2)
	return q.Set(d*axis.X*s, d*axis.Y*s, d*axis.Z*s, c).Normalize()
}

// SetEulerAngles sets q from yaw (around y), pitch (around x) and roll
// (around z) in degrees.
func (q *Quat) SetEulerAngles(yaw, pitch, roll float32) *Quat {
	return q.SetEulerAnglesRad(fastmath.ToRadians(yaw), fastmath.ToRadians(pitch), fastmath.ToRadians(roll))
}

// SetEulerAnglesRad sets q from yaw, pitch and roll in radians, applied in
// the order yaw, then pitch, then roll.
func (q *Quat) SetEulerAnglesRad(yaw, pitch, roll float32) *Quat {
	hr := roll * 0.5
	shr, chr := math32.Sin(hr), math32.Cos(hr)
	hp := pitch * 0.5
	shp, chp := math32.Sin(hp), math32.Cos(hp)
	hy := yaw * 0.5
	shy, chy := math32.Sin(hy), math32.Cos(hy)

	chyShp := chy * shp
	shyChp := shy * chp
	chyChp := chy * chp
	shyShp := shy * shp

	return q.Set(
		chyShp*chr+shyChp*shr,
		shyChp*chr-chyShp*shr,
		chyChp*shr-shyShp*chr,
		chyChp*chr+shyShp*shr,
	)
}

// GimbalPole returns 1 when y·x + z·w exceeds 0.499, -1 when it is below
// -0.499 and 0 otherwise. For the yaw, pitch, roll composition used by
// SetEulerAngles the term reaches ±0.5 as the roll approaches ±90°. Roll,
// Pitch and Yaw switch to closed-form values at a pole.
func (q Quat) GimbalPole() int {
	t := q.Y*q.X + q.Z*q.W
	switch {
	case t > 0.499:
		return 1
	case t < -0.499:
		return -1
	}
	return 0
}

// RollRad returns the rotation around the z axis in radians.
func (q Quat) RollRad() float32 {
	if pole := q.GimbalPole(); pole != 0 {
		return float32(pole) * 2 * fastmath.Atan2(q.Y, q.W)
	}
	return fastmath.Atan2(2*(q.W*q.Z+q.Y*q.X), 1-2*(q.X*q.X+q.Z*q.Z))
}

// Roll returns the rotation around the z axis in degrees.
func (q Quat) Roll() float32 { return fastmath.ToDegrees(q.RollRad()) }

// PitchRad returns the rotation around the x axis in radians.
func (q Quat) PitchRad() float32 {
	if pole := q.GimbalPole(); pole != 0 {
		return float32(pole) * fastmath.Pi * 0.5
	}
	return math32.Asin(fastmath.Clamp(2*(q.W*q.X-q.Z*q.Y), -1, 1))
}

// Pitch returns the rotation around the x axis in degrees.
func (q Quat) Pitch() float32 { return fastmath.ToDegrees(q.PitchRad()) }

// YawRad returns the rotation around the y axis in radians. It is zero at a
// gimbal pole, where the roll carries the whole rotation.
func (q Quat) YawRad() float32 {
	if q.GimbalPole() != 0 {
		return 0
	}
	return fastmath.Atan2(2*(q.Y*q.W+q.X*q.Z), 1-2*(q.Y*q.Y+q.X*q.X))
}

// Yaw returns the rotation around the y axis in degrees.
func (q Quat) Yaw() float32 { return fastmath.ToDegrees(q.YawRad()) }

// AxisAngle returns the rotation axis and angle in degrees.
func (q Quat) AxisAngle() (Vec3, float32) {
	axis, rad := q.AxisAngleRad()
	return axis, fastmath.ToDegrees(rad)
}

// AxisAngleRad returns the rotation axis and angle in radians, the angle in
// [0, 2π]. When the angle is close to zero the axis is the raw vector part.
func (q Quat) AxisAngleRad() (Vec3, float32) {
	if q.W > 1 {
		q.Normalize()
	}
	w := fastmath.Clamp(q.W, -1, 1)
	angle := 2 * math32.Acos(w)
	s := math32.Sqrt(1 - w*w)
	if s < fastmath.FloatRoundingError {
		return Vec3{q.X, q.Y, q.Z}, angle
	}
	return Vec3{q.X / s, q.Y / s, q.Z / s}, angle
}

// AngleRad returns the rotation angle in radians.
func (q Quat) AngleRad() float32 {
	w := q.W
	if w > 1 {
		w /= q.Len()
	}
	return 2 * math32.Acos(fastmath.Clamp(w, -1, 1))
}

// Angle returns the rotation angle in degrees.
func (q Quat) Angle() float32 { return fastmath.ToDegrees(q.AngleRad()) }

// AngleAroundRad returns the angle in radians of the swing-twist twist
// component of q around the unit vector axis.
func (q Quat) AngleAroundRad(axis Vec3) float32 {
	d := axis.Dot(Vec3{q.X, q.Y, q.Z})
	twist := Quat{axis.X * d, axis.Y * d, axis.Z * d, q.W}
	l2 := twist.Len2()
	if fastmath.IsZero(l2) {
		return 0
	}
	return 2 * math32.Acos(fastmath.Clamp(q.W/math32.Sqrt(l2), -1, 1))
}

// AngleAround is AngleAroundRad in degrees.
func (q Quat) AngleAround(axis Vec3) float32 {
	return fastmath.ToDegrees(q.AngleAroundRad(axis))
}

// SetFromCross sets q to the rotation that takes the unit vector v1 onto
// the unit vector v2. Parallel and antiparallel inputs have no defined
// axis and yield the identity.
func (q *Quat) SetFromCross(v1, v2 Vec3) *Quat {
	angle := math32.Acos(fastmath.Clamp(v1.Dot(v2), -1, 1))
	axis := v1
	axis.Cross(v2)
	return q.SetFromAxisRad(axis, angle)
}

// SetFromMat4 sets q to the rotation of the upper-left 3x3 block of m. With
// normalizeAxes each basis column is scaled to unit length first, which is
// required when m carries scale.
func (q *Quat) SetFromMat4(normalizeAxes bool, m *Mat4) *Quat {
	return q.SetFromAxes(normalizeAxes,
		m[M00], m[M01], m[M02],
		m[M10], m[M11], m[M12],
		m[M20], m[M21], m[M22])
}

// SetFromAxes sets q from a rotation matrix given row by row: xx, xy, xz is
// the first row. With normalizeAxes each column (the images of the basis
// vectors) is scaled to unit length first.
//
// The conversion follows Shepperd's method and takes the square root of the
// largest of w², x², y² and z² to avoid cancellation.
func (q *Quat) SetFromAxes(normalizeAxes bool, xx, xy, xz, yx, yy, yz, zx, zy, zz float32) *Quat {
	if normalizeAxes {
		lx := 1 / math32.Sqrt(xx*xx+yx*yx+zx*zx)
		ly := 1 / math32.Sqrt(xy*xy+yy*yy+zy*zy)
		lz := 1 / math32.Sqrt(xz*xz+yz*yz+zz*zz)
		xx, yx, zx = xx*lx, yx*lx, zx*lx
		xy, yy, zy = xy*ly, yy*ly, zy*ly
		xz, yz, zz = xz*lz, yz*lz, zz*lz
	}

	t := xx + yy + zz
	switch {
	case t >= 0:
		s := math32.Sqrt(t + 1)
		q.W = 0.5 * s
		s = 0.5 / s
		q.X = (zy - yz) * s
		q.Y = (xz - zx) * s
		q.Z = (yx - xy) * s
	case xx > yy && xx > zz:
		s := math32.Sqrt(1 + xx - yy - zz)
		q.X = s * 0.5
		s = 0.5 / s
		q.Y = (yx + xy) * s
		q.Z = (xz + zx) * s
		q.W = (zy - yz) * s
	case yy > zz:
		s := math32.Sqrt(1 + yy - xx - zz)
		q.Y = s * 0.5
		s = 0.5 / s
		q.X = (yx + xy) * s
		q.Z = (zy + yz) * s
		q.W = (xz - zx) * s
	default:
		s := math32.Sqrt(1 + zz - xx - yy)
		q.Z = s * 0.5
		s = 0.5 / s
		q.X = (xz + zx) * s
		q.Y = (zy + yz) * s
		q.W = (yx - xy) * s
	}
	return q
}

// ToMat4 returns the rotation matrix of the unit quaternion q.
func (q Quat) ToMat4() Mat4 {
	var m Mat4
	m.SetQuat(q)
	return m
}

// Transform returns v rotated by the unit quaternion q, equivalent to the
// vector part of q·v·q*.
func (q Quat) Transform(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u
	t.Cross(v).MulScalar(2)
	ut := u
	ut.Cross(t)
	return Vec3{
		v.X + q.W*t.X + ut.X,
		v.Y + q.W*t.Y + ut.Y,
		v.Z + q.W*t.Z + ut.Z,
	}
}

// Nlerp blends q towards end by alpha along the shortest path and
// normalizes the result.
func (q *Quat) Nlerp(end Quat, alpha float32) *Quat {
	scale0 := 1 - alpha
	scale1 := alpha
	if q.Dot(end) < 0 {
		scale1 = -scale1
	}
	q.blend(end, scale0, scale1)
	return q.Normalize()
}

// Slerp spherically interpolates q towards end by alpha along the shortest
// path. When the rotations are close (1-|dot| <= 0.1) a linear blend is
// used instead.
func (q *Quat) Slerp(end Quat, alpha float32) *Quat {
	dot := q.Dot(end)
	absDot := math32.Abs(dot)

	scale0 := 1 - alpha
	scale1 := alpha
	if 1-absDot > 0.1 {
		angle := math32.Acos(absDot)
		invSin := 1 / math32.Sin(angle)
		scale0 = math32.Sin((1-alpha)*angle) * invSin
		scale1 = math32.Sin(alpha*angle) * invSin
	}
	if dot < 0 {
		scale1 = -scale1
	}
	return q.blend(end, scale0, scale1)
}

func (q *Quat) blend(end Quat, scale0, scale1 float32) *Quat {
	return q.Set(
		scale0*q.X+scale1*end.X,
		scale0*q.Y+scale1*end.Y,
		scale0*q.Z+scale1*end.Z,
		scale0*q.W+scale1*end.W,
	)
}

// Exp raises q to the power alpha and normalizes the result. For a unit
// quaternion this scales the rotation angle by alpha. Angles below 0.001
// radians use a linear approximation. A zero quaternion is left unchanged.
func (q *Quat) Exp(alpha float32) *Quat {
	norm := q.Len()
	if norm == 0 {
		return q
	}
	normExp := math32.Pow(norm, alpha)
	theta := math32.Acos(fastmath.Clamp(q.W/norm, -1, 1))

	var coeff float32
	if math32.Abs(theta) < 0.001 {
		coeff = normExp * alpha / norm
	} else {
		coeff = normExp * math32.Sin(alpha*theta) / (norm * math32.Sin(theta))
	}

	q.W = normExp * math32.Cos(alpha*theta)
	q.X *= coeff
	q.Y *= coeff
	q.Z *= coeff
	return q.Normalize()
}
