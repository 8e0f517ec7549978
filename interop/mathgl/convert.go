package mathgl

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/cwbudde/algo-linmath/linmath"
)

// Mat4To returns m as an mgl32.Mat4.
func Mat4To(m linmath.Mat4) mgl32.Mat4 { return mgl32.Mat4(m) }

// Mat4From returns m as a linmath.Mat4.
func Mat4From(m mgl32.Mat4) linmath.Mat4 { return linmath.Mat4(m) }

// Vec3To returns v as an mgl32.Vec3.
func Vec3To(v linmath.Vec3) mgl32.Vec3 { return mgl32.Vec3{v.X, v.Y, v.Z} }

// Vec3From returns v as a linmath.Vec3.
func Vec3From(v mgl32.Vec3) linmath.Vec3 { return linmath.Vec3{X: v[0], Y: v[1], Z: v[2]} }

// Vec2To returns v as an mgl32.Vec2.
func Vec2To(v linmath.Vec2) mgl32.Vec2 { return mgl32.Vec2{v.X, v.Y} }

// Vec2From returns v as a linmath.Vec2.
func Vec2From(v mgl32.Vec2) linmath.Vec2 { return linmath.Vec2{X: v[0], Y: v[1]} }

// QuatTo returns q as an mgl32.Quat, which keeps the scalar part in W and
// the vector part in V.
func QuatTo(q linmath.Quat) mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

// QuatFrom returns q as a linmath.Quat.
func QuatFrom(q mgl32.Quat) linmath.Quat {
	return linmath.Quat{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}
