package mathgl

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/cwbudde/algo-linmath/linmath"
)

func TestMat4RoundTrip(t *testing.T) {
	m := linmath.Translation(1, 2, 3)
	m.RotateAxis(linmath.UnitY(), 30)

	g := Mat4To(m)
	if g.At(0, 3) != 1 || g.At(1, 3) != 2 || g.At(2, 3) != 3 {
		t.Fatalf("translation lost in conversion: %v", g)
	}
	for r := range 4 {
		for c := range 4 {
			if g.At(r, c) != m.Get(r, c) {
				t.Fatalf("At(%d, %d) = %v, Get = %v", r, c, g.At(r, c), m.Get(r, c))
			}
		}
	}
	if Mat4From(g) != m {
		t.Fatal("Mat4From(Mat4To(m)) != m")
	}
}

func TestQuatRoundTrip(t *testing.T) {
	var q linmath.Quat
	q.SetFromAxis(linmath.Vec3{X: 1, Y: 2, Z: 3}, 50)

	g := QuatTo(q)
	if g.W != q.W || g.V[0] != q.X || g.V[1] != q.Y || g.V[2] != q.Z {
		t.Fatalf("QuatTo = %v, want %v", g, q)
	}
	if QuatFrom(g) != q {
		t.Fatal("QuatFrom(QuatTo(q)) != q")
	}

	// The rotation matrices must agree once converted.
	want := q.ToMat4()
	if !Mat4From(g.Mat4()).ApproxEqual(&want, 1e-6) {
		t.Fatalf("mgl32 rotation %v, linmath %v", g.Mat4(), want)
	}
}

func TestVecRoundTrip(t *testing.T) {
	v := linmath.Vec3{X: 1, Y: -2, Z: 3}
	if Vec3From(Vec3To(v)) != v {
		t.Fatal("Vec3 round trip")
	}
	if got := Vec3To(v); got != (mgl32.Vec3{1, -2, 3}) {
		t.Fatalf("Vec3To = %v", got)
	}

	w := linmath.Vec2{X: 4, Y: 5}
	if Vec2From(Vec2To(w)) != w {
		t.Fatal("Vec2 round trip")
	}
}

func TestTransformAgrees(t *testing.T) {
	var q linmath.Quat
	q.SetFromAxis(linmath.UnitX(), 90)
	v := linmath.Vec3{X: 0, Y: 1, Z: 0}

	got := q.Transform(v)
	want := Vec3From(QuatTo(q).Rotate(Vec3To(v)))
	if !got.ApproxEqual(want, 1e-6) {
		t.Fatalf("linmath %v, mgl32 %v", got, want)
	}
}
