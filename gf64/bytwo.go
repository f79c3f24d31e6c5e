// bytwo.go implements the two ByTwo strategies. ByTwo-b scans the
// multiplicand from the LSB up, doubling the multiplier each step;
// ByTwo-p scans from the MSB down, doubling the accumulating product
// each step. Both have a portable scalar region kernel and a wide
// kernel that processes two field elements per iteration, the latter
// gated on simdAvailable() per §4.3/§9 (real 128-bit lane-xor/shift
// hardware is probed for, but the kernel itself stays portable Go -
// see simd_detect.go).
package gf64

import "fmt"

func setupByTwo(f *Field, cfg Config, isP bool) error {
	if cfg.Arg1 != 0 || cfg.Arg2 != 0 {
		return fmt.Errorf("%w: BYTWO takes no strategy arguments", ErrInvalidConfig)
	}
	allowed := RegionSSE | RegionNoSSE | RegionCauchy
	if cfg.RegionFlags&^allowed != 0 {
		return fmt.Errorf("%w: BYTWO only accepts SSE/NOSSE/CAUCHY region flags", ErrInvalidConfig)
	}
	if cfg.RegionFlags != RegionCauchy {
		if cfg.RegionFlags&RegionSSE != 0 && cfg.RegionFlags&RegionNoSSE != 0 {
			return fmt.Errorf("%w: BYTWO region flags cannot request both SSE and NOSSE", ErrInvalidConfig)
		}
	}

	p := f.primPoly
	if isP {
		f.multiplyFn = func(a, b uint64) uint64 { return byTwoPMultiply(p, a, b) }
	} else {
		f.multiplyFn = func(a, b uint64) uint64 { return byTwoBMultiply(p, a, b) }
	}

	wide := simdAvailable() && cfg.RegionFlags&RegionNoSSE == 0
	if wide {
		f.regionFn = func(src, dst []byte, val uint64, xorFlag bool) {
			kernel := func(s, d []byte, v uint64, x bool) { byTwoWideKernel(p, isP, s, d, v, x) }
			multiplyRegion(f.multiplyFn, kernel, 16, src, dst, val, xorFlag)
		}
	} else {
		f.regionFn = func(src, dst []byte, val uint64, xorFlag bool) {
			kernel := func(s, d []byte, v uint64, x bool) { byTwoScalarKernel(p, isP, s, d, v, x) }
			multiplyRegion(f.multiplyFn, kernel, 8, src, dst, val, xorFlag)
		}
	}
	return nil
}

// byTwoBMultiply is "by two on b": scan a from the LSB, XORing b into
// the product whenever the current bit is set, doubling b (with
// conditional reduction) each step. Stops as soon as a becomes zero.
func byTwoBMultiply(p, a, b uint64) uint64 {
	var prod uint64
	for {
		if a&1 != 0 {
			prod ^= b
		}
		a >>= 1
		if a == 0 {
			return prod
		}
		b = multiplyByTwo(p, b)
	}
}

// byTwoPMultiply is "by two on product": scan a from the MSB down,
// doubling the accumulating product every step and XORing in b whenever
// the current bit of a is set.
func byTwoPMultiply(p, a, b uint64) uint64 {
	var prod uint64
	for mask := topBit; mask != 0; mask >>= 1 {
		prod = multiplyByTwo(p, prod)
		if a&mask != 0 {
			prod ^= b
		}
	}
	return prod
}

// byTwoScalarKernel applies the chosen ByTwo loop to every 64-bit word
// of an 8-byte-aligned chunk.
func byTwoScalarKernel(p uint64, isP bool, src, dst []byte, val uint64, xorFlag bool) {
	n := len(src) / 8
	for i := 0; i < n; i++ {
		s := decodeWord(src[i*8:])
		var prod uint64
		if isP {
			prod = byTwoPMultiply(p, val, s)
		} else {
			prod = byTwoBMultiply(p, val, s)
		}
		if xorFlag {
			prod ^= decodeWord(dst[i*8:])
		}
		encodeWord(dst[i*8:], prod)
	}
}

// byTwoWideKernel is the portable stand-in for the reference SIMD
// kernel: it runs the identical ByTwo loop over two field elements in
// lockstep (one pair of lanes per 16-byte chunk), which is what the
// real 128-bit SSE kernel does in hardware. Results are bit-exact with
// byTwoScalarKernel; only the grouping differs.
func byTwoWideKernel(p uint64, isP bool, src, dst []byte, val uint64, xorFlag bool) {
	n := len(src) / 16
	for i := 0; i < n; i++ {
		off := i * 16
		s0 := decodeWord(src[off:])
		s1 := decodeWord(src[off+8:])
		var p0, p1 uint64
		if isP {
			p0 = byTwoPMultiply(p, val, s0)
			p1 = byTwoPMultiply(p, val, s1)
		} else {
			p0 = byTwoBMultiply(p, val, s0)
			p1 = byTwoBMultiply(p, val, s1)
		}
		if xorFlag {
			p0 ^= decodeWord(dst[off:])
			p1 ^= decodeWord(dst[off+8:])
		}
		encodeWord(dst[off:], p0)
		encodeWord(dst[off+8:], p1)
	}
}
