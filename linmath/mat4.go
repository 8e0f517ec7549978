package linmath

import (
	"github.com/chewxy/math32"

	"github.com/cwbudde/algo-linmath/fastmath"
)

// Mat4 is a column-major 4x4 matrix. Element (row r, column c) is stored at
// index r + c*4.
type Mat4 [16]float32

// Element indices, named Mrc for row r and column c.
const (
	M00 = 0
	M10 = 1
	M20 = 2
	M30 = 3
	M01 = 4
	M11 = 5
	M21 = 6
	M31 = 7
	M02 = 8
	M12 = 9
	M22 = 10
	M32 = 11
	M03 = 12
	M13 = 13
	M23 = 14
	M33 = 15
)

// Ident4 returns the identity matrix.
func Ident4() Mat4 {
	return Mat4{M00: 1, M11: 1, M22: 1, M33: 1}
}

// Identity sets m to the identity matrix.
func (m *Mat4) Identity() *Mat4 {
	*m = Ident4()
	return m
}

// Zero sets every element of m to zero.
func (m *Mat4) Zero() *Mat4 {
	*m = Mat4{}
	return m
}

// Set copies the first 16 values, in column-major order, into m. It panics
// if values is shorter than 16.
func (m *Mat4) Set(values []float32) *Mat4 {
	copy(m[:], values[:16])
	return m
}

// Copy returns a copy of m.
func (m *Mat4) Copy() Mat4 { return *m }

// Get returns the element at row and col.
func (m *Mat4) Get(row, col int) float32 {
	return m[row+col*4]
}

// SetQuat sets m to the rotation matrix of the unit quaternion q.
func (m *Mat4) SetQuat(q Quat) *Mat4 {
	return m.SetTranslationQuat(Vec3{}, q)
}

// SetTranslationQuat sets m to the rotation q followed by the translation
// pos.
func (m *Mat4) SetTranslationQuat(pos Vec3, q Quat) *Mat4 {
	return m.SetTRS(pos, q, Vec3{1, 1, 1})
}

// SetTRS sets m to T·R·S for translation pos, unit rotation q and scale.
// The rotation terms are written directly from the quaternion without an
// intermediate matrix.
func (m *Mat4) SetTRS(pos Vec3, q Quat, scale Vec3) *Mat4 {
	xs, ys, zs := q.X*2, q.Y*2, q.Z*2
	wx, wy, wz := q.W*xs, q.W*ys, q.W*zs
	xx, xy, xz := q.X*xs, q.X*ys, q.X*zs
	yy, yz, zz := q.Y*ys, q.Y*zs, q.Z*zs

	*m = Mat4{
		M00: scale.X * (1 - (yy + zz)),
		M10: scale.X * (xy + wz),
		M20: scale.X * (xz - wy),

		M01: scale.Y * (xy - wz),
		M11: scale.Y * (1 - (xx + zz)),
		M21: scale.Y * (yz + wx),

		M02: scale.Z * (xz + wy),
		M12: scale.Z * (yz - wx),
		M22: scale.Z * (1 - (xx + yy)),

		M03: pos.X,
		M13: pos.Y,
		M23: pos.Z,
		M33: 1,
	}
	return m
}

// SetAxes sets the first three columns of m to the basis vectors x, y, z
// and the fourth to pos.
func (m *Mat4) SetAxes(x, y, z, pos Vec3) *Mat4 {
	*m = Mat4{
		M00: x.X, M10: x.Y, M20: x.Z,
		M01: y.X, M11: y.Y, M21: y.Z,
		M02: z.X, M12: z.Y, M22: z.Z,
		M03: pos.X, M13: pos.Y, M23: pos.Z,
		M33: 1,
	}
	return m
}

// SetTranslation overwrites the translation column of m.
func (m *Mat4) SetTranslation(v Vec3) *Mat4 {
	m[M03], m[M13], m[M23] = v.X, v.Y, v.Z
	return m
}

// AddTranslation adds v to the translation column of m. The other columns
// are untouched.
func (m *Mat4) AddTranslation(v Vec3) *Mat4 {
	m[M03] += v.X
	m[M13] += v.Y
	m[M23] += v.Z
	return m
}

// Translation returns the translation column of m.
func (m *Mat4) Translation() Vec3 {
	return Vec3{m[M03], m[M13], m[M23]}
}

// Rotation returns the rotation of m. Pass normalizeAxes when m carries
// scale.
func (m *Mat4) Rotation(normalizeAxes bool) Quat {
	var q Quat
	return *q.SetFromMat4(normalizeAxes, m)
}

// ScaleXSquared returns the squared length of the first basis column.
func (m *Mat4) ScaleXSquared() float32 {
	return m[M00]*m[M00] + m[M10]*m[M10] + m[M20]*m[M20]
}

// ScaleYSquared returns the squared length of the second basis column.
func (m *Mat4) ScaleYSquared() float32 {
	return m[M01]*m[M01] + m[M11]*m[M11] + m[M21]*m[M21]
}

// ScaleZSquared returns the squared length of the third basis column.
func (m *Mat4) ScaleZSquared() float32 {
	return m[M02]*m[M02] + m[M12]*m[M12] + m[M22]*m[M22]
}

// ScaleX returns the length of the first basis column. When its
// off-diagonal terms are zero the diagonal is used without a square root.
func (m *Mat4) ScaleX() float32 {
	if fastmath.IsZero(m[M10]) && fastmath.IsZero(m[M20]) {
		return math32.Abs(m[M00])
	}
	return math32.Sqrt(m.ScaleXSquared())
}

// ScaleY returns the length of the second basis column.
func (m *Mat4) ScaleY() float32 {
	if fastmath.IsZero(m[M01]) && fastmath.IsZero(m[M21]) {
		return math32.Abs(m[M11])
	}
	return math32.Sqrt(m.ScaleYSquared())
}

// ScaleZ returns the length of the third basis column.
func (m *Mat4) ScaleZ() float32 {
	if fastmath.IsZero(m[M02]) && fastmath.IsZero(m[M12]) {
		return math32.Abs(m[M22])
	}
	return math32.Sqrt(m.ScaleZSquared())
}

// ScaleVec returns the per-axis scale of m.
func (m *Mat4) ScaleVec() Vec3 {
	return Vec3{m.ScaleX(), m.ScaleY(), m.ScaleZ()}
}

// Mul4 sets m to a·b. Any of m, a and b may be the same matrix.
func (m *Mat4) Mul4(a, b *Mat4) *Mat4 {
	var res Mat4
	for c := 0; c < 4; c++ {
		b0, b1, b2, b3 := b[c*4], b[c*4+1], b[c*4+2], b[c*4+3]
		for r := 0; r < 4; r++ {
			res[r+c*4] = a[r]*b0 + a[r+4]*b1 + a[r+8]*b2 + a[r+12]*b3
		}
	}
	*m = res
	return m
}

// Mul sets m to m·b.
func (m *Mat4) Mul(b *Mat4) *Mat4 {
	return m.Mul4(m, b)
}

// MulLeft sets m to b·m.
func (m *Mat4) MulLeft(b *Mat4) *Mat4 {
	return m.Mul4(b, m)
}

// MulScalar multiplies every element of m by s.
func (m *Mat4) MulScalar(s float32) *Mat4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Transpose transposes m in place.
func (m *Mat4) Transpose() *Mat4 {
	m[M01], m[M10] = m[M10], m[M01]
	m[M02], m[M20] = m[M20], m[M02]
	m[M03], m[M30] = m[M30], m[M03]
	m[M12], m[M21] = m[M21], m[M12]
	m[M13], m[M31] = m[M31], m[M13]
	m[M23], m[M32] = m[M32], m[M23]
	return m
}

// adjugate returns the transposed cofactor matrix of m and its determinant.
func (m *Mat4) adjugate() (Mat4, float32) {
	var inv Mat4

	inv[0] = m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] +
		m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	inv[4] = -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] -
		m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	inv[8] = m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] +
		m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	inv[12] = -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] -
		m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]

	inv[1] = -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] -
		m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	inv[5] = m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] +
		m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	inv[9] = -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] -
		m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	inv[13] = m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] +
		m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]

	inv[2] = m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] +
		m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	inv[6] = -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] -
		m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	inv[10] = m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] +
		m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	inv[14] = -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] -
		m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]

	inv[3] = -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] -
		m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]
	inv[7] = m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] +
		m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]
	inv[11] = -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] -
		m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]
	inv[15] = m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] +
		m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]

	det := m[0]*inv[0] + m[1]*inv[4] + m[2]*inv[8] + m[3]*inv[12]
	return inv, det
}

// Determinant returns the determinant of m.
func (m *Mat4) Determinant() float32 {
	_, det := m.adjugate()
	return det
}

// Det3x3 returns the determinant of the upper-left 3x3 block of m.
func (m *Mat4) Det3x3() float32 {
	return m[M00]*(m[M11]*m[M22]-m[M12]*m[M21]) -
		m[M01]*(m[M10]*m[M22]-m[M12]*m[M20]) +
		m[M02]*(m[M10]*m[M21]-m[M11]*m[M20])
}

// Invert replaces m with its inverse by cofactor expansion. A matrix whose
// determinant is exactly zero yields ErrSingular and is left unchanged.
func (m *Mat4) Invert() error {
	inv, det := m.adjugate()
	if det == 0 {
		return ErrSingular
	}
	*m = *inv.MulScalar(1 / det)
	return nil
}

// Inverted returns the inverse of m without modifying it.
func (m *Mat4) Inverted() (Mat4, error) {
	inv := *m
	if err := inv.Invert(); err != nil {
		return Mat4{}, err
	}
	return inv, nil
}

// ToNormalMatrix sets m to the inverse transpose of its linear part, the
// matrix that transforms surface normals. On ErrSingular m is unchanged.
func (m *Mat4) ToNormalMatrix() error {
	n := *m
	n.SetTranslation(Vec3{})
	if err := n.Invert(); err != nil {
		return err
	}
	*m = *n.Transpose()
	return nil
}

// Extract4x3 writes the upper three rows of m to dst in column-major order.
// It panics if dst is shorter than 12.
func (m *Mat4) Extract4x3(dst []float32) {
	_ = dst[11]
	dst[0], dst[1], dst[2] = m[M00], m[M10], m[M20]
	dst[3], dst[4], dst[5] = m[M01], m[M11], m[M21]
	dst[6], dst[7], dst[8] = m[M02], m[M12], m[M22]
	dst[9], dst[10], dst[11] = m[M03], m[M13], m[M23]
}

// TransformPoint returns m·(v, 1) without a perspective divide.
func (m *Mat4) TransformPoint(v Vec3) Vec3 {
	return Vec3{
		m[M00]*v.X + m[M01]*v.Y + m[M02]*v.Z + m[M03],
		m[M10]*v.X + m[M11]*v.Y + m[M12]*v.Z + m[M13],
		m[M20]*v.X + m[M21]*v.Y + m[M22]*v.Z + m[M23],
	}
}

// TransformDir returns m·(v, 0), ignoring translation.
func (m *Mat4) TransformDir(v Vec3) Vec3 {
	return Vec3{
		m[M00]*v.X + m[M01]*v.Y + m[M02]*v.Z,
		m[M10]*v.X + m[M11]*v.Y + m[M12]*v.Z,
		m[M20]*v.X + m[M21]*v.Y + m[M22]*v.Z,
	}
}

// Project returns m·(v, 1) divided by its w component.
func (m *Mat4) Project(v Vec3) Vec3 {
	p := m.TransformPoint(v)
	w := m[M30]*v.X + m[M31]*v.Y + m[M32]*v.Z + m[M33]
	inv := 1 / w
	return Vec3{p.X * inv, p.Y * inv, p.Z * inv}
}

// ApproxEqual reports whether every element of m is within eps of o.
func (m *Mat4) ApproxEqual(o *Mat4, eps float32) bool {
	for i := range m {
		if !fastmath.IsEqualTol(m[i], o[i], eps) {
			return false
		}
	}
	return true
}
