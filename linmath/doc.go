// Package linmath provides single-precision vectors, quaternions and 4x4
// matrices for real-time graphics.
//
// # Conventions
//
// [Mat4] is column-major: the element at row r and column c lives at index
// r + c*4, which the M00..M33 constants name. Vectors are columns, so
// a.Mul(b) applies b first when the result transforms a vector.
//
// [Quat] is stored as (X, Y, Z, W) with W the scalar part. Rotations are
// expected to be unit length; Add, Sub and Scale can denormalize a
// quaternion and Normalize must then be called explicitly.
//
// # Mutation
//
// Mutating methods work in place on a pointer receiver and return the same
// pointer so calls can be chained:
//
//	var m linmath.Mat4
//	m.Identity().Translate(1, 2, 3).RotateAxis(linmath.UnitY(), 90)
//
// Multi-step operations use stack-local temporaries, so a receiver may also
// appear as an argument (m.Mul(&m) squares m). Values of these types are
// not safe for concurrent mutation.
//
// Named constants such as [UnitX] and [QuatIdent] are functions returning a
// fresh value, so callers can never modify a shared exemplar.
//
// # Degenerate Input
//
// Construction from a zero-length axis yields the identity rotation and
// interpolation between nearly parallel rotations falls back to a linear
// blend. The only reported failure is inverting a singular matrix, which
// returns [ErrSingular] and leaves the matrix unchanged.
package linmath
