package linmath

import "testing"

var (
	sinkMat  Mat4
	sinkQuat Quat
	sinkVec  Vec3
)

func BenchmarkMat4Mul(b *testing.B) {
	ms := sampleTRS(1, 2)
	for b.Loop() {
		m := ms[0]
		m.Mul(&ms[1])
		sinkMat = m
	}
}

func BenchmarkMat4Invert(b *testing.B) {
	src := sampleTRS(2, 1)[0]
	for b.Loop() {
		m := src
		_ = m.Invert()
		sinkMat = m
	}
}

func BenchmarkMat4SetTRS(b *testing.B) {
	q := sampleQuats(3, 1)[0]
	var m Mat4
	for b.Loop() {
		m.SetTRS(Vec3{1, 2, 3}, q, Vec3{2, 2, 2})
	}
	sinkMat = m
}

func BenchmarkMat4AvgWeighted(b *testing.B) {
	ts := sampleTRS(4, 8)
	ws := make([]float32, len(ts))
	for i := range ws {
		ws[i] = 1 / float32(len(ws))
	}
	var m Mat4
	for b.Loop() {
		_ = m.AvgWeighted(ts, ws)
	}
	sinkMat = m
}

func BenchmarkQuatSlerp(b *testing.B) {
	qs := sampleQuats(5, 2)
	for b.Loop() {
		q := qs[0]
		q.Slerp(qs[1], 0.3)
		sinkQuat = q
	}
}

func BenchmarkQuatSetFromMat4(b *testing.B) {
	m := sampleTRS(6, 1)[0]
	var q Quat
	for b.Loop() {
		q.SetFromMat4(true, &m)
	}
	sinkQuat = q
}

func BenchmarkQuatTransform(b *testing.B) {
	q := sampleQuats(7, 1)[0]
	v := Vec3{1, 2, 3}
	for b.Loop() {
		v = q.Transform(v)
	}
	sinkVec = v
}

func BenchmarkMat4ToRotationEuler(b *testing.B) {
	var m Mat4
	deg := float32(0)
	for b.Loop() {
		m.ToRotationEuler(deg, deg*0.5, deg*0.25)
		deg += 0.7
	}
	sinkMat = m
}
