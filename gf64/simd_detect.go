// simd_detect.go decides at runtime whether the wide (2-lane) region
// kernels are safe to use, matching §4.3/§9: "the SIMD kernel is
// available only when a 128-bit lane-XOR/shift primitive is present;
// otherwise the scalar kernel is used," selected "at runtime based on
// CPU feature probing."
//
// The wide kernels in this package are portable Go (see bytwo.go)
// rather than hand-written assembly, so simdAvailable does
// not gate correctness - both paths are bit-exact - only which grouping
// of the same arithmetic runs. It is still driven by a real feature
// probe rather than a build tag, because that is the actual decision
// §9 describes and because klauspost/cpuid/v2 (in the corpus's own
// dependency graph) is the natural library for it.
package gf64

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// simdAvailable reports whether the running CPU has a 128-bit
// vector unit suitable for lane-wise XOR/shift (SSE2 on amd64, NEON on
// arm64). cpuid.CPU covers amd64/386; golang.org/x/sys/cpu covers the
// architectures cpuid does not probe.
func simdAvailable() bool {
	if cpuid.CPU.Supports(cpuid.SSE2) {
		return true
	}
	return cpu.ARM64.HasASIMD
}
