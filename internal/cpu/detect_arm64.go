//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Advanced SIMD and fused multiply-add are mandatory on ARMv8.
func detectFeatures() Features {
	return Features{
		HasNEON:      cpu.ARM64.HasASIMD,
		HasFMA:       cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
