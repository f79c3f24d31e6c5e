// group.go implements the Group(g_s,g_r) strategy: a's g_s-bit windows
// are processed top-down (Horner's rule), each window folded in via a
// lazily-rebuilt "shift" table (one digit's worth of scalar*digit
// products, built the same halving-walk way split.go's lazy tables
// are), and the running product's overflow above bit 63 is folded back
// in g_r bits at a time via a "reduce" table that depends only on the
// modulus, not the scalar, so it is built once at construction and
// never rebuilt.
//
// When g_s == g_r the two windows coincide and every digit step folds
// its own overflow in one reduce lookup; that is simply this same loop
// with equal window widths, not a separate code path.
package gf64

import "fmt"

type groupScratch struct {
	gs, gr       int
	shiftMask    uint64
	reduceMask   uint64
	shift        []uint64 // size 1<<gs, lazily rebuilt per scalar
	reduce       []uint64 // size 1<<gr, fixed for the field's modulus
	lastValue    uint64
	haveValue    bool
}

func newGroupScratch(p uint64, gs, gr int) *groupScratch {
	g := &groupScratch{
		gs:         gs,
		gr:         gr,
		shiftMask:  uint64(1)<<uint(gs) - 1,
		reduceMask: uint64(1)<<uint(gr) - 1,
		shift:      make([]uint64, 1<<uint(gs)),
		reduce:     make([]uint64, 1<<uint(gr)),
	}
	// reduce[i] = x^64 * i mod modulus. Since x^64 == p (mod modulus)
	// in this representation, that's just i*p reduced the ordinary way.
	for i := range g.reduce {
		g.reduce[i] = shiftMultiply(p, uint64(i), p)
	}
	return g
}

// rebuildShift recomputes shift[] = {digit * val mod p : digit in
// [0, 2^gs)} via the same halving walk splitLazyScratch.rebuild uses for
// a single digit table.
func (g *groupScratch) rebuildShift(p, val uint64) {
	if g.haveValue && g.lastValue == val {
		return
	}
	v := val
	g.shift[0] = 0
	for j := 1; j <= int(g.shiftMask); j <<= 1 {
		for k := 0; k < j; k++ {
			g.shift[k^j] = v ^ g.shift[k]
		}
		v = multiplyByTwo(p, v)
	}
	g.lastValue = val
	g.haveValue = true
}

// foldXPower multiplies v by x^n mod p (n a non-negative bit count),
// applying reduce[] gr bits at a time and falling back to single-bit
// doubling for whatever doesn't divide evenly by gr.
func (g *groupScratch) foldXPower(p, v uint64, n int) uint64 {
	for n >= g.gr {
		top := v >> uint(64-g.gr)
		v = (v << uint(g.gr)) ^ g.reduce[top&g.reduceMask]
		n -= g.gr
	}
	for ; n > 0; n-- {
		v = multiplyByTwo(p, v)
	}
	return v
}

// multiply evaluates a*val by Horner's rule from a's most significant
// bit down, in g_s-bit windows (the last window is narrower than g_s
// when g_s does not divide 64 - its position doesn't matter, only that
// the total width sums to 64).
func (g *groupScratch) multiply(p, a, val uint64) uint64 {
	g.rebuildShift(p, val)
	var prod uint64
	bitsLeft := 64
	for bitsLeft > 0 {
		width := g.gs
		if width > bitsLeft {
			width = bitsLeft
		}
		chunk := a >> uint(64-width)
		prod = g.foldXPower(p, prod, width) ^ g.shift[chunk]
		a <<= uint(width)
		bitsLeft -= width
	}
	return prod
}

func setupGroup(f *Field, cfg Config) error {
	gs, gr := cfg.Arg1, cfg.Arg2
	if gs == 0 && gr == 0 {
		gs, gr = 4, 8
	}
	// g_s and g_r size the shift[] and reduce[] tables at 2^g_s and 2^g_r
	// entries respectively; beyond about 2^20 that precompute is no
	// longer practical, so values are capped well short of the 64-bit
	// window that would make shift[]'s size overflow a table index.
	if gs <= 0 || gs > 32 || gr <= 0 || gr > 32 {
		return fmt.Errorf("%w: GROUP(%d,%d) requires 0 < g_s,g_r <= 32", ErrInvalidConfig, gs, gr)
	}
	allowed := RegionSSE | RegionNoSSE
	if cfg.RegionFlags&^allowed != 0 {
		return fmt.Errorf("%w: GROUP only accepts SSE/NOSSE region flags", ErrInvalidConfig)
	}
	if cfg.RegionFlags&RegionSSE != 0 && cfg.RegionFlags&RegionNoSSE != 0 {
		return fmt.Errorf("%w: GROUP cannot request both SSE and NOSSE", ErrInvalidConfig)
	}

	p := f.primPoly
	g := newGroupScratch(p, gs, gr)
	f.multiplyFn = func(a, b uint64) uint64 { return g.multiply(p, b, a) }
	f.regionFn = func(src, dst []byte, val uint64, xorFlag bool) {
		groupRegion(p, g, src, dst, val, xorFlag)
	}
	return nil
}

func groupRegion(p uint64, g *groupScratch, src, dst []byte, val uint64, xorFlag bool) {
	kernel := func(s, d []byte, v uint64, x bool) {
		g.rebuildShift(p, v)
		n := len(s) / 8
		for i := 0; i < n; i++ {
			word := decodeWord(s[i*8:])
			acc := g.multiply(p, word, v)
			if x {
				acc ^= decodeWord(d[i*8:])
			}
			encodeWord(d[i*8:], acc)
		}
	}
	scalarMul := func(a, b uint64) uint64 { return g.multiply(p, b, a) }
	multiplyRegion(scalarMul, kernel, 8, src, dst, val, xorFlag)
}
