// composite.go implements the Composite(2, arg2) strategy: GF(2^64) is
// built as GF((2^32)^2), modulus x^2 + s*x + 1, delegating every 32-bit
// operation to a gf32.Field "base field" B. Arg2 selects which B:
// 0 picks the primitive GF(2^32), 1 picks B itself built as
// GF((2^16)^2) (gf32's Composite1616 mode), one level of nesting down.
package gf64

import (
	"fmt"

	"github.com/eth2030/gf64field/gf32"
)

// compositeBasePoly is x^32 + x^22 + x^2 + x + 1, the degree-32
// polynomial of the primitive GF(2^32) base field (arg2 = 0). gf32's own
// zero-argument default is a placeholder that is not irreducible, so it
// is not used here.
const compositeBasePoly uint32 = 0x400007

type compositeScratch struct {
	base *gf32.Field
	s    uint32
}

func setupComposite(f *Field, cfg Config) error {
	if cfg.Arg1 != 2 {
		return fmt.Errorf("%w: COMPOSITE only supports arg1=2 (GF((2^32))^2)", ErrInvalidConfig)
	}
	if cfg.Arg2 != 0 && cfg.Arg2 != 1 {
		return fmt.Errorf("%w: COMPOSITE arg2 must be 0 (primitive base) or 1 (composite 16x16 base)", ErrInvalidConfig)
	}
	allowed := RegionSTDMap | RegionAltMap
	if cfg.RegionFlags&^allowed != 0 {
		return fmt.Errorf("%w: COMPOSITE only accepts STDMAP/ALTMAP region flags", ErrInvalidConfig)
	}
	if cfg.RegionFlags&RegionSTDMap != 0 && cfg.RegionFlags&RegionAltMap != 0 {
		return fmt.Errorf("%w: COMPOSITE cannot request both STDMAP and ALTMAP", ErrInvalidConfig)
	}

	var base *gf32.Field
	if cfg.Arg2 == 1 {
		base = gf32.NewComposite1616()
	} else {
		base = gf32.NewPrimitive(compositeBasePoly)
	}
	cs := &compositeScratch{base: base, s: base.S()}

	f.multiplyFn = func(a, b uint64) uint64 { return cs.multiply(a, b) }
	f.inverseFn = func(a uint64) uint64 { return cs.inverse(a) }
	f.divideFn = func(a, b uint64) uint64 {
		if b == 0 {
			return noInverse
		}
		return cs.multiply(a, cs.inverse(b))
	}

	if cfg.RegionFlags&RegionAltMap != 0 {
		f.regionFn = func(src, dst []byte, val uint64, xorFlag bool) {
			compositeAltmapRegion(cs, src, dst, val, xorFlag)
		}
		f.extractFn = func(buf []byte, index int) uint64 { return extractWordCompositeAltmap(cs.base, buf, index) }
	} else {
		f.regionFn = func(src, dst []byte, val uint64, xorFlag bool) {
			multiplyRegionFromSingle(f.multiplyFn, src, dst, val, xorFlag)
		}
	}
	return nil
}

func splitHalves(v uint64) (hi, lo uint32) {
	return uint32(v >> 32), uint32(v)
}

func joinHalves(hi, lo uint32) uint64 {
	return uint64(hi)<<32 | uint64(lo)
}

// multiply is gf_w64_composite_multiply: a1*b1 is computed once and
// reused in both the low and high halves.
func (cs *compositeScratch) multiply(a, b uint64) uint64 {
	a1, a0 := splitHalves(a)
	b1, b0 := splitHalves(b)
	base := cs.base

	a1b1 := base.Multiply(a1, b1)
	low := base.Multiply(a0, b0)
	low ^= a1b1

	high := base.Multiply(a1, b0)
	high ^= base.Multiply(a0, b1)
	high ^= base.Multiply(a1b1, cs.s)

	return joinHalves(high, low)
}

// inverse is gf_w64_composite_inverse: three cases depending on which
// half is zero, matching the GF((2^m)^2) inverse formula for modulus
// x^2+s*x+1.
func (cs *compositeScratch) inverse(a uint64) uint64 {
	a1, a0 := splitHalves(a)
	base := cs.base

	var c0, c1 uint32
	switch {
	case a0 == 0:
		a1inv := base.Inverse(a1)
		c0 = base.Multiply(a1inv, cs.s)
		c1 = a1inv
	case a1 == 0:
		c0 = base.Inverse(a0)
		c1 = 0
	default:
		a0inv := base.Inverse(a0)
		a1inv := base.Inverse(a1)
		d := base.Multiply(a1, a0inv)
		tmp := base.Multiply(a1, a0inv) ^ base.Multiply(a0, a1inv) ^ cs.s
		tmp = base.Inverse(tmp)
		d = base.Multiply(d, tmp)
		c0 = base.Multiply(d^1, a0inv)
		c1 = base.Multiply(d, a1inv)
	}
	return joinHalves(c1, c0)
}

// compositeAltmapRegion is gf_w64_composite_multiply_region_alt: the
// ALTMAP layout holds every element's low 32-bit half contiguously,
// followed by every element's high 32-bit half, so the whole region
// reduces to five calls into the base field's own MultiplyRegion - no
// per-word loop runs in gf64 at all. val0/val1 are val's low/high
// halves; slow/shigh (resp. dlow/dhigh) are the low-half and high-half
// sub-regions of src (resp. dst), each half the total length.
func compositeAltmapRegion(cs *compositeScratch, src, dst []byte, val uint64, xorFlag bool) {
	half := len(src) / 2
	slow, shigh := src[:half], src[half:]
	dlow, dhigh := dst[:half], dst[half:]
	val1, val0 := splitHalves(val)
	base := cs.base

	base.MultiplyRegion(slow, dlow, val0, xorFlag)
	base.MultiplyRegion(shigh, dlow, val1, true)
	base.MultiplyRegion(slow, dhigh, val1, xorFlag)
	base.MultiplyRegion(shigh, dhigh, val0, true)
	base.MultiplyRegion(shigh, dhigh, base.Multiply(cs.s, val1), true)
}

// extractWordCompositeAltmap is gf_w64_composite_extract_word: the
// logical element at index is reassembled from the low half at index
// in the first half of buf and the high half at index in the second.
func extractWordCompositeAltmap(base *gf32.Field, buf []byte, index int) uint64 {
	half := len(buf) / 2
	lo := base.ExtractWord(buf[:half], index)
	hi := base.ExtractWord(buf[half:], index)
	return joinHalves(hi, lo)
}

// compositeLinearToAltmap converts a linear buffer of 64-bit
// little-endian words into the ALTMAP layout compositeAltmapRegion and
// extractWordCompositeAltmap expect: all low halves, then all high
// halves, each in the words' original order.
func compositeLinearToAltmap(linear []byte) []byte {
	n := len(linear) / 8
	alt := make([]byte, len(linear))
	half := len(linear) / 2
	for i := 0; i < n; i++ {
		hi, lo := splitHalves(decodeWord(linear[i*8:]))
		encodeWord32(alt[i*4:], lo)
		encodeWord32(alt[half+i*4:], hi)
	}
	return alt
}

// compositeAltmapToLinear is the inverse of compositeLinearToAltmap.
func compositeAltmapToLinear(alt []byte) []byte {
	n := len(alt) / 8
	linear := make([]byte, len(alt))
	half := len(alt) / 2
	for i := 0; i < n; i++ {
		lo := decodeWord32(alt[i*4:])
		hi := decodeWord32(alt[half+i*4:])
		encodeWord(linear[i*8:], joinHalves(hi, lo))
	}
	return linear
}

func decodeWord32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func encodeWord32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
