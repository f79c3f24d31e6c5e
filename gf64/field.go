// Package gf64 implements GF(2^64) arithmetic: scalar multiply/divide/
// inverse and bulk region multiply-and-XOR, for a field defined as
// GF(2)[x] modulo a caller-chosen primitive polynomial of degree 64.
// Several multiplication strategies are offered (Shift, ByTwo, Split
// tables, Group, Composite) with different precompute/throughput
// tradeoffs; callers select one via Config at construction time. Every
// strategy except Composite is bit-exact with every other for the same
// primitive polynomial and scalar; Composite represents elements in
// GF((2^32)^2) and yields different products.
//
// A Field is synchronous, single-threaded, and not safe for concurrent
// use: the lazy split-table and Group strategies mutate cached tables
// in place whenever the scalar changes, even on calls a caller might
// otherwise view as read-only. Construct one Field per goroutine that
// needs one, or synchronize externally.
package gf64

import (
	"errors"
	"fmt"
)

// MultType selects a multiplication strategy.
type MultType int

const (
	// Default resolves to Group(4,8), matching the reference
	// implementation's default strategy.
	Default MultType = iota
	Shift
	BytwoP
	BytwoB
	SplitTable
	Group
	Composite
)

func (m MultType) String() string {
	switch m {
	case Default:
		return "DEFAULT"
	case Shift:
		return "SHIFT"
	case BytwoP:
		return "BYTWO_p"
	case BytwoB:
		return "BYTWO_b"
	case SplitTable:
		return "SPLIT_TABLE"
	case Group:
		return "GROUP"
	case Composite:
		return "COMPOSITE"
	default:
		return fmt.Sprintf("MultType(%d)", int(m))
	}
}

// DivideType selects how Divide/Inverse are derived.
type DivideType int

const (
	// DivideDefault lets the strategy choose (Euclid for everything
	// except Composite, which has its own closed-form inverse).
	DivideDefault DivideType = iota
	DivideEuclid
	// DivideMatrix is accepted as a value but never supported for w64 -
	// construction fails, matching gf_w64_scratch_size's unconditional
	// rejection of GF_DIVIDE_MATRIX.
	DivideMatrix
)

// RegionFlags is a bitmask of region_type options. Not every combination
// is legal for every strategy; New validates the combination actually
// requested against the chosen strategy.
type RegionFlags uint32

const (
	RegionDefault RegionFlags = 0
	RegionSSE     RegionFlags = 1 << iota
	RegionNoSSE
	RegionSTDMap
	RegionAltMap
	RegionCauchy
	RegionLazy
)

// ErrInvalidConfig is returned by New for any unsupported combination of
// MultType, RegionFlags, Arg1/Arg2, and DivideType. Construction never
// returns a partially built Field alongside an error.
var ErrInvalidConfig = errors.New("gf64: invalid configuration")

// noInverse is the all-ones sentinel returned by Divide (divisor zero)
// and Inverse (argument zero).
const noInverse = ^uint64(0)

// defaultPrimPoly is the modulus used when Config.PrimPoly is zero. It
// is a direct placeholder inherited from the reference implementation,
// NOT an irreducible polynomial of degree 64 (its top, implicit bit
// aside, it is simply 0x1B). Real callers must supply an actual
// degree-64 irreducible; this default exists only for drop-in
// compatibility with code that relied on the reference library's own
// unchecked default. See DESIGN.md.
const defaultPrimPoly uint64 = 0x1B

// Config describes how to construct a Field.
type Config struct {
	MultType    MultType
	RegionFlags RegionFlags
	// Arg1, Arg2 are strategy-specific: Split table digit widths (e.g.
	// 4,64 or 8,8), Group's (g_s, g_r), or Composite's (2, 0|1) where
	// Arg2 selects the base field (0 = primitive GF(2^32), 1 = composite
	// GF((2^16)^2)).
	Arg1, Arg2 int
	// PrimPoly is the degree-64 primitive polynomial; zero selects
	// defaultPrimPoly.
	PrimPoly   uint64
	DivideType DivideType
}

// Field is a constructed GF(2^64) handle: one strategy's multiply/
// divide/inverse/region/extract_word functions, bound to one primitive
// polynomial, plus that strategy's precomputed scratch state.
type Field struct {
	primPoly    uint64
	multType    MultType
	regionFlags RegionFlags
	arg1, arg2  int

	multiplyFn func(a, b uint64) uint64
	divideFn   func(a, b uint64) uint64
	inverseFn  func(a uint64) uint64
	regionFn   func(src, dst []byte, val uint64, xorFlag bool)
	extractFn  func(buf []byte, index int) uint64
}

// New validates cfg and constructs a Field. It never returns a partial
// Field alongside a non-nil error.
func New(cfg Config) (*Field, error) {
	if cfg.DivideType == DivideMatrix {
		return nil, fmt.Errorf("%w: divide_type MATRIX is unsupported for GF(2^64)", ErrInvalidConfig)
	}

	f := &Field{
		primPoly:    cfg.PrimPoly,
		multType:    cfg.MultType,
		regionFlags: cfg.RegionFlags,
		arg1:        cfg.Arg1,
		arg2:        cfg.Arg2,
	}
	if f.primPoly == 0 {
		f.primPoly = defaultPrimPoly
	}

	var err error
	switch cfg.MultType {
	case Shift:
		err = setupShift(f, cfg)
	case BytwoP:
		err = setupByTwo(f, cfg, true)
	case BytwoB:
		err = setupByTwo(f, cfg, false)
	case SplitTable:
		err = setupSplit(f, cfg)
	case Default, Group:
		err = setupGroup(f, cfg)
	case Composite:
		err = setupComposite(f, cfg)
	default:
		err = fmt.Errorf("%w: unknown mult_type %d", ErrInvalidConfig, int(cfg.MultType))
	}
	if err != nil {
		return nil, err
	}

	if f.inverseFn == nil {
		mul := f.multiplyFn
		f.inverseFn = func(a uint64) uint64 { return euclidInverse(f.primPoly, mul, a) }
	}
	if f.divideFn == nil {
		inv := f.inverseFn
		mul := f.multiplyFn
		f.divideFn = func(a, b uint64) uint64 {
			if b == 0 {
				return noInverse
			}
			return mul(a, inv(b))
		}
	}
	if f.extractFn == nil {
		f.extractFn = extractWordLinear
	}

	return f, nil
}

// Multiply returns a*b.
func (f *Field) Multiply(a, b uint64) uint64 { return f.multiplyFn(a, b) }

// Divide returns a/b, or the all-ones sentinel if b is zero.
func (f *Field) Divide(a, b uint64) uint64 {
	if b == 0 {
		return noInverse
	}
	return f.divideFn(a, b)
}

// Inverse returns a^-1, or the all-ones sentinel if a is zero.
func (f *Field) Inverse(a uint64) uint64 {
	if a == 0 {
		return noInverse
	}
	return f.inverseFn(a)
}

// MultiplyRegion multiplies every 64-bit little-endian element of src by
// val, writing the result to dst (or XORing it in if xorFlag is set).
// len(src) must equal len(dst) and be a multiple of 8.
func (f *Field) MultiplyRegion(src, dst []byte, val uint64, xorFlag bool) {
	f.regionFn(src, dst, val, xorFlag)
}

// ExtractWord returns the logical 64-bit element at index within a buffer
// previously written by MultiplyRegion (or, for the linear layout, any
// plain little-endian uint64 array).
func (f *Field) ExtractWord(buf []byte, index int) uint64 {
	return f.extractFn(buf, index)
}

// NoInverseValue exposes the all-ones sentinel for callers that want to
// compare against it without calling Divide/Inverse with a zero operand.
func NoInverseValue() uint64 { return noInverse }
