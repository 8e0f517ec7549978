package cpu

import (
	"runtime"
	"sync"
	"testing"
)

func TestDetect(t *testing.T) {
	f := Detect()
	if f.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
	if runtime.GOARCH == "amd64" && !f.HasSSE2 {
		t.Fatal("amd64 without SSE2")
	}
	if runtime.GOARCH == "arm64" && !f.HasNEON {
		t.Fatal("arm64 without NEON")
	}
	if Detect() != f {
		t.Fatal("Detect is not stable")
	}
}

func TestDetectConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = Detect()
		}()
	}
	wg.Wait()
}

func TestLevel(t *testing.T) {
	tests := []struct {
		name string
		f    Features
		want SIMDLevel
	}{
		{name: "none", f: Features{}, want: SIMDNone},
		{name: "sse2", f: Features{HasSSE2: true}, want: SIMDSSE2},
		{name: "avx2", f: Features{HasSSE2: true, HasAVX: true, HasAVX2: true}, want: SIMDAVX2},
		{name: "avx512", f: Features{HasSSE2: true, HasAVX2: true, HasAVX512: true}, want: SIMDAVX512},
		{name: "neon", f: Features{HasNEON: true}, want: SIMDNEON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Level(); got != tt.want {
				t.Fatalf("Level() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	f := Features{HasSSE2: true, HasAVX: true, HasAVX2: true, HasFMA: true, Architecture: "amd64"}
	if got := f.String(); got != "amd64 AVX2 (+FMA)" {
		t.Fatalf("String() = %q", got)
	}
	if got := (Features{Architecture: "wasm"}).String(); got != "wasm None" {
		t.Fatalf("String() = %q", got)
	}
	if got := SIMDLevel(99).String(); got != "Unknown" {
		t.Fatalf("String() = %q", got)
	}
}
