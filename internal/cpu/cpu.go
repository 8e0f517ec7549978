// Package cpu reports the host's SIMD capabilities.
//
// The block kernels behind measure/accuracy dispatch on the same features,
// so accuracy reports print them as a header to make timings and results
// comparable across machines. Detection runs once and is cached.
package cpu

import (
	"fmt"
	"strings"
	"sync"
)

// SIMDLevel is the widest SIMD extension the host supports. Levels are
// ordered within an architecture only.
type SIMDLevel int

const (
	SIMDNone SIMDLevel = iota
	SIMDSSE2
	SIMDAVX
	SIMDAVX2
	SIMDAVX512
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the host CPU.
type Features struct {
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool
	HasFMA    bool
	HasNEON   bool

	Architecture string // runtime.GOARCH
}

// Level returns the widest SIMD extension in f.
func (f Features) Level() SIMDLevel {
	switch {
	case f.HasAVX512:
		return SIMDAVX512
	case f.HasAVX2:
		return SIMDAVX2
	case f.HasAVX:
		return SIMDAVX
	case f.HasSSE2:
		return SIMDSSE2
	case f.HasNEON:
		return SIMDNEON
	}
	return SIMDNone
}

// String formats f as a one-line summary such as "amd64 AVX2 (+FMA)".
func (f Features) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", f.Architecture, f.Level())
	if f.HasFMA {
		b.WriteString(" (+FMA)")
	}
	return b.String()
}

var (
	detected   Features
	detectOnce sync.Once
)

// Detect returns the features of the host CPU.
func Detect() Features {
	detectOnce.Do(func() {
		detected = detectFeatures()
	})
	return detected
}
