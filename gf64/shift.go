// shift.go wires up the Shift strategy: the reference shift-multiply
// with no precomputed state, serving as the field's slowest but
// zero-precompute option.
package gf64

import "fmt"

func setupShift(f *Field, cfg Config) error {
	if cfg.Arg1 != 0 || cfg.Arg2 != 0 || cfg.RegionFlags != RegionDefault {
		return fmt.Errorf("%w: SHIFT takes no arguments or region flags", ErrInvalidConfig)
	}

	p := f.primPoly
	f.multiplyFn = func(a, b uint64) uint64 { return shiftMultiply(p, a, b) }
	f.regionFn = func(src, dst []byte, val uint64, xorFlag bool) {
		multiplyRegionFromSingle(f.multiplyFn, src, dst, val, xorFlag)
	}
	return nil
}

// multiplyRegionFromSingle is the fallback every strategy without a
// dedicated region kernel uses: gf_w64_multiply_region_from_single,
// a plain scalar loop over every 64-bit word.
func multiplyRegionFromSingle(mul func(a, b uint64) uint64, src, dst []byte, val uint64, xorFlag bool) {
	n := len(src) / 8
	for i := 0; i < n; i++ {
		s := decodeWord(src[i*8:])
		p := mul(val, s)
		if xorFlag {
			p ^= decodeWord(dst[i*8:])
		}
		encodeWord(dst[i*8:], p)
	}
}
