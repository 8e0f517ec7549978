package linmath

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/cwbudde/algo-linmath/internal/testutil"
)

func requireMat4Near(t *testing.T, name string, got *Mat4, want [16]float32, eps float32) {
	t.Helper()
	for i := range got {
		if diff := math32.Abs(got[i] - want[i]); !(diff <= eps) {
			t.Fatalf("%s: element %d (row %d, col %d): got %v, want %v (diff %v > eps %v)\ngot  %v\nwant %v",
				name, i, i%4, i/4, got[i], want[i], diff, eps, *got, want)
		}
	}
}

func requireVec3Near(t *testing.T, name string, got, want Vec3, eps float32) {
	t.Helper()
	if !got.ApproxEqual(want, eps) {
		t.Fatalf("%s: got %v, want %v (eps %v)", name, got, want, eps)
	}
}

// requireSameRotation accepts q and -q as equal.
func requireSameRotation(t *testing.T, name string, got, want Quat, eps float32) {
	t.Helper()
	if got.Dot(want) < 0 {
		got.Scale(-1)
	}
	if !fastEq(got.X, want.X, eps) || !fastEq(got.Y, want.Y, eps) ||
		!fastEq(got.Z, want.Z, eps) || !fastEq(got.W, want.W, eps) {
		t.Fatalf("%s: got %v, want %v (eps %v)", name, got, want, eps)
	}
}

func fastEq(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

func sampleQuats(seed uint64, n int) []Quat {
	raw := testutil.DeterministicUnitQuats(seed, n)
	out := make([]Quat, n)
	for i, q := range raw {
		out[i] = Quat{q[0], q[1], q[2], q[3]}
	}
	return out
}

// sampleTRS returns n transforms with positive scales in [0.5, 3).
func sampleTRS(seed uint64, n int) []Mat4 {
	qs := sampleQuats(seed, n)
	vals := testutil.DeterministicUniform(seed+1, 0, 1, 6*n)
	out := make([]Mat4, n)
	for i := range out {
		v := vals[6*i:]
		pos := Vec3{v[0]*20 - 10, v[1]*20 - 10, v[2]*20 - 10}
		scale := Vec3{0.5 + v[3]*2.5, 0.5 + v[4]*2.5, 0.5 + v[5]*2.5}
		out[i].SetTRS(pos, qs[i], scale)
	}
	return out
}
