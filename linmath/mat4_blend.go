package linmath

import "fmt"

// Lerp linearly interpolates every element of m towards other. It does not
// produce valid rotations in general; use Average to blend transforms.
func (m *Mat4) Lerp(other *Mat4, alpha float32) *Mat4 {
	inv := 1 - alpha
	for i := range m {
		m[i] = m[i]*inv + other[i]*alpha
	}
	return m
}

// trs is a transform decomposed into translation, rotation and scale.
type trs struct {
	t Vec3
	r Quat
	s Vec3
}

func decompose(m *Mat4) trs {
	return trs{t: m.Translation(), r: m.Rotation(true), s: m.ScaleVec()}
}

// Average blends m towards other in decomposed form. The weight w belongs
// to m: w = 1 keeps m and w = 0 yields other. Translations and scales are
// interpolated linearly and rotations spherically.
func (m *Mat4) Average(other *Mat4, w float32) *Mat4 {
	a := decompose(m)
	b := decompose(other)

	a.s.MulScalar(w).MulAdd(b.s, 1-w)
	a.t.MulScalar(w).MulAdd(b.t, 1-w)
	a.r.Slerp(b.r, 1-w)

	return m.SetTRS(a.t, a.r, a.s)
}

// Avg sets m to the equally weighted average of ts. See AvgWeighted.
func (m *Mat4) Avg(ts []Mat4) error {
	if len(ts) == 0 {
		return ErrEmpty
	}
	w := 1 / float32(len(ts))
	ws := make([]float32, len(ts))
	for i := range ws {
		ws[i] = w
	}
	return m.AvgWeighted(ts, ws)
}

// AvgWeighted sets m to the weighted average of ts. The weights should sum
// to one. Translations and scales are weighted sums; each rotation is raised
// to its weight with Quat.Exp and the results are multiplied together.
func (m *Mat4) AvgWeighted(ts []Mat4, ws []float32) error {
	if len(ts) == 0 {
		return ErrEmpty
	}
	if len(ws) != len(ts) {
		return fmt.Errorf("%w: %d matrices, %d weights", ErrWeightCount, len(ts), len(ws))
	}

	var (
		scale Vec3
		trans Vec3
		rot   = QuatIdent()
	)
	for i := range ts {
		d := decompose(&ts[i])
		scale.MulAdd(d.s, ws[i])
		trans.MulAdd(d.t, ws[i])
		rot.Mul(*d.r.Exp(ws[i]))
	}
	rot.Normalize()

	m.SetTRS(trans, rot, scale)
	return nil
}
