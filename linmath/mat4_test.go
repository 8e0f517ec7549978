package linmath

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/cwbudde/algo-linmath/internal/testutil"
)

func TestMat4Layout(t *testing.T) {
	m := Translation(1, 2, 3)
	if m[12] != 1 || m[13] != 2 || m[14] != 3 {
		t.Fatalf("translation not in the last column: %v", m)
	}
	if m.Get(0, 3) != 1 || m.Get(2, 3) != 3 || m.Get(3, 3) != 1 {
		t.Fatalf("Get disagrees with the column-major layout: %v", m)
	}
	var id Mat4
	if got := id.Identity().Translate(1, 2, 3).Translation(); got != (Vec3{1, 2, 3}) {
		t.Fatalf("Translate(1, 2, 3).Translation() = %v", got)
	}
}

func TestMat4SetCopiesSixteenValues(t *testing.T) {
	values := make([]float32, 20)
	for i := range values {
		values[i] = float32(i)
	}
	var m Mat4
	m.Set(values)
	values[0] = 100
	if m[0] != 0 || m[15] != 15 {
		t.Fatalf("Set = %v", m)
	}
	c := m.Copy()
	c.Zero()
	if m[15] != 15 || c != (Mat4{}) {
		t.Fatal("Copy aliases the receiver")
	}
}

func TestMat4MulMatchesMathgl(t *testing.T) {
	ms := sampleTRS(10, 16)
	for i := 0; i+1 < len(ms); i += 2 {
		a, b := ms[i], ms[i+1]
		want := mgl32.Mat4(a).Mul4(mgl32.Mat4(b))

		got := a
		got.Mul(&b)
		requireMat4Near(t, "Mul", &got, want, 1e-3)

		var dst Mat4
		dst.Mul4(&a, &b)
		if dst != got {
			t.Fatalf("Mul4 = %v, Mul = %v", dst, got)
		}

		left := b
		left.MulLeft(&a)
		if left != got {
			t.Fatalf("MulLeft = %v, Mul = %v", left, got)
		}
	}
}

func TestMat4MulAliased(t *testing.T) {
	m := sampleTRS(11, 1)[0]
	want := mgl32.Mat4(m).Mul4(mgl32.Mat4(m))
	m.Mul(&m)
	requireMat4Near(t, "m·m", &m, want, 1e-3)
}

func TestMat4InvertMatchesMathgl(t *testing.T) {
	for _, m := range sampleTRS(12, 32) {
		want := mgl32.Mat4(m).Inv()
		wantDet := mgl32.Mat4(m).Det()

		det := m.Determinant()
		testutil.RequireNearlyEqual(t, "Determinant", det, wantDet, 1e-4*math32.Abs(wantDet))

		inv, err := m.Inverted()
		if err != nil {
			t.Fatalf("Inverted: %v", err)
		}
		requireMat4Near(t, "Inverted", &inv, want, 1e-3)

		prod := m
		prod.Mul(&inv)
		requireMat4Near(t, "m·m⁻¹", &prod, Ident4(), 1e-4)
	}
}

func TestMat4InvertSingular(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
	}{
		{name: "zero", m: Mat4{}},
		{name: "flat", m: Scaling(1, 0, 1)},
		{name: "flat translated", m: *new(Mat4).Identity().Translate(4, 5, 6).Scale(2, 2, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.m
			if det := m.Determinant(); det != 0 {
				t.Fatalf("Determinant() = %v, want 0", det)
			}
			if err := m.Invert(); !errors.Is(err, ErrSingular) {
				t.Fatalf("Invert() error = %v, want ErrSingular", err)
			}
			if m != tt.m {
				t.Fatalf("Invert modified a singular matrix: %v", m)
			}
			if err := m.ToNormalMatrix(); !errors.Is(err, ErrSingular) {
				t.Fatalf("ToNormalMatrix() error = %v, want ErrSingular", err)
			}
			if m != tt.m {
				t.Fatalf("ToNormalMatrix modified a singular matrix: %v", m)
			}
		})
	}
}

func TestMat4Det3x3(t *testing.T) {
	m := Scaling(2, 3, 4)
	m.Translate(5, 6, 7)
	if got := m.Det3x3(); got != 24 {
		t.Fatalf("Det3x3() = %v, want 24", got)
	}
	if got := m.Determinant(); got != 24 {
		t.Fatalf("Determinant() = %v, want 24", got)
	}
}

func TestMat4Transpose(t *testing.T) {
	m := sampleTRS(13, 1)[0]
	want := mgl32.Mat4(m).Transpose()
	m.Transpose()
	requireMat4Near(t, "Transpose", &m, want, 0)
}

func TestMat4ToNormalMatrix(t *testing.T) {
	for _, m := range sampleTRS(14, 8) {
		n := m
		if err := n.ToNormalMatrix(); err != nil {
			t.Fatalf("ToNormalMatrix: %v", err)
		}

		lin := m
		lin.SetTranslation(Vec3{})
		n.Transpose().Mul(&lin)
		requireMat4Near(t, "Nᵀ·L", &n, Ident4(), 1e-4)
	}
}

func TestMat4SetTRS(t *testing.T) {
	qs := sampleQuats(15, 16)
	for i, q := range qs {
		pos := Vec3{float32(i), -2, 3}
		scale := Vec3{0.5, 2, float32(i%3) + 1}

		var got Mat4
		got.SetTRS(pos, q, scale)

		want := Translation(pos.X, pos.Y, pos.Z)
		r := q.ToMat4()
		s := Scaling(scale.X, scale.Y, scale.Z)
		want.Mul(&r).Mul(&s)
		requireMat4Near(t, "SetTRS", &got, want, 1e-5)

		requireVec3Near(t, "Translation", got.Translation(), pos, 0)
		requireVec3Near(t, "ScaleVec", got.ScaleVec(), scale, 1e-5)
		requireSameRotation(t, "Rotation", got.Rotation(true), q, 1e-4)
	}
}

func TestMat4ScaleQueries(t *testing.T) {
	m := Scaling(2, -3, 4)
	if got := m.ScaleVec(); got != (Vec3{2, 3, 4}) {
		t.Fatalf("ScaleVec() = %v", got)
	}
	if m.ScaleXSquared() != 4 || m.ScaleYSquared() != 9 || m.ScaleZSquared() != 16 {
		t.Fatal("unexpected squared scales")
	}

	var r Mat4
	r.ToRotation(Vec3{1, 1, 1}, 40).Scale(2, 3, 4)
	requireVec3Near(t, "rotated ScaleVec", r.ScaleVec(), Vec3{2, 3, 4}, 1e-5)
}

func TestMat4TranslateScaleMatchMul(t *testing.T) {
	base := sampleTRS(16, 1)[0]

	got := base
	got.Translate(1, -2, 3)
	want := base
	tr := Translation(1, -2, 3)
	want.Mul(&tr)
	requireMat4Near(t, "Translate", &got, want, 1e-4)

	got = base
	got.Scale(2, 3, 0.5)
	want = base
	sc := Scaling(2, 3, 0.5)
	want.Mul(&sc)
	requireMat4Near(t, "Scale", &got, want, 1e-5)

	got = base
	var q Quat
	q.SetFromAxis(UnitY(), 35)
	got.RotateAxis(UnitY(), 35)
	want = base
	rot := q.ToMat4()
	want.Mul(&rot)
	requireMat4Near(t, "RotateAxis", &got, want, 1e-5)

	got = base
	got.RotateAxis(UnitY(), 0).RotateAxisRad(UnitX(), 0)
	if got != base {
		t.Fatal("zero-angle rotation changed the matrix")
	}
}

func TestMat4ToRotationEuler(t *testing.T) {
	const eps = 4e-3 // table trig

	tests := []struct{ x, y, z float32 }{
		{x: 0, y: 0, z: 0},
		{x: 30, y: 0, z: 0},
		{x: 0, y: 45, z: 0},
		{x: 0, y: 0, z: 60},
		{x: 10, y: -20, z: 135},
		{x: -170, y: 80, z: -35},
	}

	for _, tt := range tests {
		var got Mat4
		got.ToRotationEuler(tt.x, tt.y, tt.z)

		want := mgl32.HomogRotate3DZ(mgl32.DegToRad(tt.z)).
			Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(tt.y))).
			Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(tt.x)))
		requireMat4Near(t, "ToRotationEuler", &got, want, eps)
	}

	var euler, axis Mat4
	euler.ToRotationEuler(0, 90, 0)
	axis.ToRotation(UnitY(), 90)
	requireMat4Near(t, "Euler vs axis", &euler, axis, eps)
}

func TestMat4ToRotation(t *testing.T) {
	m := Scaling(2, 2, 2)
	m.ToRotation(UnitZ(), 0)
	if m != Ident4() {
		t.Fatalf("zero-angle ToRotation = %v", m)
	}

	m.ToRotationRad(UnitZ(), math32.Pi/2)
	requireVec3Near(t, "Z90·X", m.TransformDir(UnitX()), UnitY(), 1e-6)

	m.ToRotationBetween(UnitX(), UnitZ())
	requireVec3Near(t, "X onto Z", m.TransformDir(UnitX()), UnitZ(), 1e-6)

	var q Quat
	q.SetEulerAngles(10, 20, 30)
	m.ToEulerAngles(10, 20, 30)
	want := q.ToMat4()
	requireMat4Near(t, "ToEulerAngles", &m, want, 0)
}

func TestMat4Projections(t *testing.T) {
	p := PerspectiveMat(60, 1, 0.1, 100)
	if got := p.Get(3, 2); got != -1 {
		t.Fatalf("Perspective Get(3, 2) = %v, want -1", got)
	}
	if p[M33] != 0 {
		t.Fatalf("Perspective M33 = %v, want 0", p[M33])
	}
	want := mgl32.Perspective(mgl32.DegToRad(60), 1, 0.1, 100)
	requireMat4Near(t, "Perspective", &p, want, 1e-5)

	p.Perspective(90, 16.0/9, 1, 50)
	near := p.Project(Vec3{0, 0, -1})
	far := p.Project(Vec3{0, 0, -50})
	testutil.RequireNearlyEqual(t, "near plane", near.Z, -1, 1e-5)
	testutil.RequireNearlyEqual(t, "far plane", far.Z, 1, 1e-5)

	o := OrthoMat(-2, 6, -1, 3, 0.5, 20)
	wantO := mgl32.Ortho(-2, 6, -1, 3, 0.5, 20)
	requireMat4Near(t, "Ortho", &o, wantO, 1e-6)

	o.Ortho2D(0, 0, 800, 600)
	requireVec3Near(t, "Ortho2D max", o.TransformPoint(Vec3{800, 600, 0}), Vec3{1, 1, -1}, 1e-6)
	requireVec3Near(t, "Ortho2D min", o.TransformPoint(Vec3{}), Vec3{-1, -1, -1}, 1e-6)

	var nf Mat4
	nf.Ortho2DNearFar(0, 0, 800, 600, -1, 1)
	wantNF := mgl32.Ortho(0, 800, 0, 600, -1, 1)
	requireMat4Near(t, "Ortho2DNearFar", &nf, wantNF, 1e-6)
}

func TestMat4LookAtFrom(t *testing.T) {
	eye := Vec3{3, 4, 5}
	target := Vec3{0, 1, 0}
	up := UnitY()

	var view Mat4
	view.LookAtFrom(eye, target, up)
	want := mgl32.LookAtV(
		mgl32.Vec3{eye.X, eye.Y, eye.Z},
		mgl32.Vec3{target.X, target.Y, target.Z},
		mgl32.Vec3{up.X, up.Y, up.Z},
	)
	requireMat4Near(t, "LookAtFrom", &view, want, 1e-4)

	// The target lies straight ahead on -Z in view space.
	p := view.TransformPoint(target)
	testutil.RequireNearlyEqual(t, "view x", p.X, 0, 1e-4)
	testutil.RequireNearlyEqual(t, "view y", p.Y, 0, 1e-4)
	testutil.RequireNearlyEqual(t, "view z", p.Z, -math32.Sqrt(9+9+25), 1e-4)

	dir := target
	dir.Sub(eye)
	var world Mat4
	world.World(eye, dir, up)
	world.Mul(&view)
	requireMat4Near(t, "World·View", &world, Ident4(), 1e-4)
}

func TestMat4Average(t *testing.T) {
	ms := sampleTRS(17, 2)
	a, b := ms[0], ms[1]

	got := a
	got.Average(&b, 1)
	requireMat4Near(t, "w=1", &got, a, 1e-4)

	got = a
	got.Average(&b, 0)
	requireMat4Near(t, "w=0", &got, b, 1e-4)

	from := Translation(0, 0, 0)
	to := Translation(2, 4, 6)
	to.Scale(3, 3, 3)
	from.Average(&to, 0.5)
	requireVec3Near(t, "mid translation", from.Translation(), Vec3{1, 2, 3}, 1e-6)
	requireVec3Near(t, "mid scale", from.ScaleVec(), Vec3{2, 2, 2}, 1e-6)
}

func TestMat4Avg(t *testing.T) {
	m := sampleTRS(18, 1)[0]

	var got Mat4
	if err := got.Avg([]Mat4{m, m, m, m}); err != nil {
		t.Fatalf("Avg: %v", err)
	}
	requireMat4Near(t, "Avg of identical", &got, m, 1e-3)

	var q Quat
	var a, b Mat4
	a.SetTRS(Vec3{0, 0, 0}, *q.SetFromAxis(UnitZ(), 0), Vec3{1, 1, 1})
	b.SetTRS(Vec3{4, 0, 0}, *q.SetFromAxis(UnitZ(), 60), Vec3{3, 3, 3})
	if err := got.AvgWeighted([]Mat4{a, b}, []float32{0.5, 0.5}); err != nil {
		t.Fatalf("AvgWeighted: %v", err)
	}
	requireVec3Near(t, "translation", got.Translation(), Vec3{2, 0, 0}, 1e-5)
	requireVec3Near(t, "scale", got.ScaleVec(), Vec3{2, 2, 2}, 1e-4)
	var want Quat
	want.SetFromAxis(UnitZ(), 30)
	requireSameRotation(t, "rotation", got.Rotation(true), want, 1e-4)
}

func TestMat4AvgErrors(t *testing.T) {
	var m Mat4
	if err := m.Avg(nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("Avg(nil) error = %v, want ErrEmpty", err)
	}
	if err := m.AvgWeighted(nil, nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("AvgWeighted(nil) error = %v, want ErrEmpty", err)
	}
	err := m.AvgWeighted([]Mat4{Ident4(), Ident4()}, []float32{1})
	if !errors.Is(err, ErrWeightCount) {
		t.Fatalf("AvgWeighted error = %v, want ErrWeightCount", err)
	}
	if m != (Mat4{}) {
		t.Fatal("failed average modified the receiver")
	}
}

func TestMat4Lerp(t *testing.T) {
	a := Translation(0, 0, 0)
	b := Translation(2, 4, 6)
	a.Lerp(&b, 0.25)
	requireVec3Near(t, "Lerp", a.Translation(), Vec3{0.5, 1, 1.5}, 0)
}

func TestMat4Extract4x3(t *testing.T) {
	m := sampleTRS(19, 1)[0]
	dst := make([]float32, 12)
	m.Extract4x3(dst)
	want := []float32{
		m[M00], m[M10], m[M20],
		m[M01], m[M11], m[M21],
		m[M02], m[M12], m[M22],
		m[M03], m[M13], m[M23],
	}
	testutil.RequireSliceNearlyEqual(t, dst, want, 0)

	defer func() {
		if recover() == nil {
			t.Fatal("Extract4x3 into a short slice did not panic")
		}
	}()
	m.Extract4x3(make([]float32, 11))
}

func TestMat4AxesAndTranslation(t *testing.T) {
	var m Mat4
	m.SetAxes(UnitY(), UnitZ(), UnitX(), Vec3{1, 2, 3})
	requireVec3Near(t, "x axis", m.TransformDir(UnitX()), UnitY(), 0)
	requireVec3Near(t, "point", m.TransformPoint(Vec3{}), Vec3{1, 2, 3}, 0)

	m.AddTranslation(Vec3{1, 1, 1})
	requireVec3Near(t, "AddTranslation", m.Translation(), Vec3{2, 3, 4}, 0)

	m.ToTranslationScaling(Vec3{1, 0, 0}, Vec3{2, 3, 4})
	requireVec3Near(t, "ToTranslationScaling", m.TransformPoint(Vec3{1, 1, 1}), Vec3{3, 3, 4}, 0)

	m.ToScale(Vec3{2, 2, 2}).ScaleDiagUniform(0.5)
	if m != Ident4() {
		t.Fatalf("ScaleDiagUniform = %v", m)
	}

	m.Identity().MulScalar(2)
	if m.Get(1, 1) != 2 || m.Get(0, 1) != 0 {
		t.Fatalf("MulScalar = %v", m)
	}
}

func TestMat4RotateBetween(t *testing.T) {
	m := Translation(1, 0, 0)
	m.RotateBetween(UnitX(), UnitY())
	requireVec3Near(t, "rotated point", m.TransformPoint(UnitX()), Vec3{1, 1, 0}, 1e-6)
}
