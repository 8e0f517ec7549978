package linmath

import (
	"github.com/chewxy/math32"

	"github.com/cwbudde/algo-linmath/fastmath"
)

// Translation returns a translation matrix.
func Translation(x, y, z float32) Mat4 {
	var m Mat4
	m.ToTranslation(Vec3{x, y, z})
	return m
}

// Scaling returns a scale matrix.
func Scaling(x, y, z float32) Mat4 {
	var m Mat4
	m.ToScaling(x, y, z)
	return m
}

// PerspectiveMat returns a perspective projection, see [Mat4.Perspective].
func PerspectiveMat(fovDeg, aspect, near, far float32) Mat4 {
	var m Mat4
	m.Perspective(fovDeg, aspect, near, far)
	return m
}

// OrthoMat returns an orthographic projection, see [Mat4.Ortho].
func OrthoMat(left, right, bottom, top, near, far float32) Mat4 {
	var m Mat4
	m.Ortho(left, right, bottom, top, near, far)
	return m
}

// ToTranslation sets m to a translation by v.
func (m *Mat4) ToTranslation(v Vec3) *Mat4 {
	return m.Identity().SetTranslation(v)
}

// ToTranslationScaling sets m to a translation by t combined with an
// axis-aligned scale s.
func (m *Mat4) ToTranslationScaling(t, s Vec3) *Mat4 {
	m.ToTranslation(t)
	m[M00], m[M11], m[M22] = s.X, s.Y, s.Z
	return m
}

// ToScaling sets m to an axis-aligned scale.
func (m *Mat4) ToScaling(x, y, z float32) *Mat4 {
	m.Identity()
	m[M00], m[M11], m[M22] = x, y, z
	return m
}

// ToScale sets m to an axis-aligned scale by v.
func (m *Mat4) ToScale(v Vec3) *Mat4 {
	return m.ToScaling(v.X, v.Y, v.Z)
}

// ToRotationEuler sets m to Rz·Ry·Rx for rotations in degrees around the x,
// y and z axes. The sines and cosines come from the fastmath tables.
func (m *Mat4) ToRotationEuler(xDeg, yDeg, zDeg float32) *Mat4 {
	sx, cx := fastmath.SinDeg(xDeg), fastmath.CosDeg(xDeg)
	sy, cy := fastmath.SinDeg(yDeg), fastmath.CosDeg(yDeg)
	sz, cz := fastmath.SinDeg(zDeg), fastmath.CosDeg(zDeg)

	rx := Mat4{M00: 1, M11: cx, M21: sx, M12: -sx, M22: cx, M33: 1}
	ry := Mat4{M00: cy, M20: -sy, M11: 1, M02: sy, M22: cy, M33: 1}
	rz := Mat4{M00: cz, M10: sz, M01: -sz, M11: cz, M22: 1, M33: 1}

	ry.Mul(&rx)
	return m.Mul4(&rz, &ry)
}

// ToRotation sets m to a rotation of deg degrees around axis. A zero angle
// yields the identity.
func (m *Mat4) ToRotation(axis Vec3, deg float32) *Mat4 {
	if deg == 0 {
		return m.Identity()
	}
	var q Quat
	return m.SetQuat(*q.SetFromAxis(axis, deg))
}

// ToRotationRad sets m to a rotation of rad radians around axis. A zero
// angle yields the identity.
func (m *Mat4) ToRotationRad(axis Vec3, rad float32) *Mat4 {
	if rad == 0 {
		return m.Identity()
	}
	var q Quat
	return m.SetQuat(*q.SetFromAxisRad(axis, rad))
}

// ToRotationBetween sets m to the rotation taking the unit vector v1 onto
// the unit vector v2.
func (m *Mat4) ToRotationBetween(v1, v2 Vec3) *Mat4 {
	var q Quat
	return m.SetQuat(*q.SetFromCross(v1, v2))
}

// ToEulerAngles sets m to the rotation given by yaw, pitch and roll in
// degrees, see [Quat.SetEulerAngles].
func (m *Mat4) ToEulerAngles(yaw, pitch, roll float32) *Mat4 {
	var q Quat
	return m.SetQuat(*q.SetEulerAngles(yaw, pitch, roll))
}

// Perspective sets m to an OpenGL-style perspective projection with a
// vertical field of view of fovDeg degrees.
func (m *Mat4) Perspective(fovDeg, aspect, near, far float32) *Mat4 {
	fd := 1 / math32.Tan(fastmath.ToRadians(fovDeg)/2)
	*m = Mat4{
		M00: fd / aspect,
		M11: fd,
		M22: (far + near) / (near - far),
		M32: -1,
		M23: 2 * far * near / (near - far),
	}
	return m
}

// Ortho sets m to an orthographic projection equivalent to glOrtho.
func (m *Mat4) Ortho(left, right, bottom, top, near, far float32) *Mat4 {
	*m = Mat4{
		M00: 2 / (right - left),
		M11: 2 / (top - bottom),
		M22: -2 / (far - near),
		M03: -(right + left) / (right - left),
		M13: -(top + bottom) / (top - bottom),
		M23: -(far + near) / (far - near),
		M33: 1,
	}
	return m
}

// Ortho2D sets m to an orthographic projection of the rectangle at (x, y)
// with the given size, near plane 0 and far plane 1.
func (m *Mat4) Ortho2D(x, y, width, height float32) *Mat4 {
	return m.Ortho(x, x+width, y, y+height, 0, 1)
}

// Ortho2DNearFar is Ortho2D with explicit near and far planes.
func (m *Mat4) Ortho2DNearFar(x, y, width, height, near, far float32) *Mat4 {
	return m.Ortho(x, x+width, y, y+height, near, far)
}

// LookAt sets m to a view rotation looking along direction with the given
// up vector.
func (m *Mat4) LookAt(direction, up Vec3) *Mat4 {
	f := direction
	f.Normalize()
	s := f
	s.Cross(up).Normalize()
	u := s
	u.Cross(f).Normalize()

	*m = Mat4{
		M00: s.X, M01: s.Y, M02: s.Z,
		M10: u.X, M11: u.Y, M12: u.Z,
		M20: -f.X, M21: -f.Y, M22: -f.Z,
		M33: 1,
	}
	return m
}

// LookAtFrom sets m to a view matrix for a camera at eye looking at target.
func (m *Mat4) LookAtFrom(eye, target, up Vec3) *Mat4 {
	dir := target
	dir.Sub(eye)
	return m.LookAt(dir, up).Translate(-eye.X, -eye.Y, -eye.Z)
}

// World sets m to the model matrix of an object at position facing forward,
// the inverse of the view matrix LookAtFrom builds for the same pose.
func (m *Mat4) World(position, forward, up Vec3) *Mat4 {
	f := forward
	f.Normalize()
	right := f
	right.Cross(up).Normalize()
	u := right
	u.Cross(f).Normalize()
	back := f
	back.MulScalar(-1)
	return m.SetAxes(right, u, back, position)
}

// Translate post-multiplies m by a translation.
func (m *Mat4) Translate(x, y, z float32) *Mat4 {
	for r := 0; r < 4; r++ {
		m[M03+r] += m[M00+r]*x + m[M01+r]*y + m[M02+r]*z
	}
	return m
}

// TranslateVec post-multiplies m by a translation by v.
func (m *Mat4) TranslateVec(v Vec3) *Mat4 {
	return m.Translate(v.X, v.Y, v.Z)
}

// Rotate post-multiplies m by the rotation q.
func (m *Mat4) Rotate(q Quat) *Mat4 {
	r := q.ToMat4()
	return m.Mul(&r)
}

// RotateAxis post-multiplies m by a rotation of deg degrees around axis.
// A zero angle leaves m unchanged.
func (m *Mat4) RotateAxis(axis Vec3, deg float32) *Mat4 {
	if deg == 0 {
		return m
	}
	var q Quat
	return m.Rotate(*q.SetFromAxis(axis, deg))
}

// RotateAxisRad is RotateAxis with the angle in radians.
func (m *Mat4) RotateAxisRad(axis Vec3, rad float32) *Mat4 {
	if rad == 0 {
		return m
	}
	var q Quat
	return m.Rotate(*q.SetFromAxisRad(axis, rad))
}

// RotateBetween post-multiplies m by the rotation taking v1 onto v2.
func (m *Mat4) RotateBetween(v1, v2 Vec3) *Mat4 {
	var q Quat
	return m.Rotate(*q.SetFromCross(v1, v2))
}

// Scale post-multiplies m by an axis-aligned scale.
func (m *Mat4) Scale(x, y, z float32) *Mat4 {
	for r := 0; r < 4; r++ {
		m[M00+r] *= x
		m[M01+r] *= y
		m[M02+r] *= z
	}
	return m
}

// ScaleDiag multiplies the diagonal scale terms of m by v, leaving the
// off-diagonal terms alone.
func (m *Mat4) ScaleDiag(v Vec3) *Mat4 {
	m[M00] *= v.X
	m[M11] *= v.Y
	m[M22] *= v.Z
	return m
}

// ScaleDiagUniform multiplies the diagonal scale terms of m by s.
func (m *Mat4) ScaleDiagUniform(s float32) *Mat4 {
	return m.ScaleDiag(Vec3{s, s, s})
}
