// Package gf32 implements the GF(2^32) "base field" collaborator that
// gf64's Composite(2,32) strategy delegates to (see gf64/composite.go).
// It mirrors gf64's own Shift/ByTwo/Euclid approach one width down: a
// 32-bit field has no practical log/antilog table (2^32 entries), so
// multiplication here uses the same shift-and-reduce / "by-two" techniques
// gf64 uses for its own Shift and ByTwo strategies, rather than the
// lookup-table techniques gf16 uses.
//
// Field supports two modes, matching the two base fields gf64's spec
// allows for Composite: a primitive GF(2^32) (Mode Primitive) and a
// composite GF((2^16)^2) (Mode Composite1616) built on top of gf16.
package gf32

import "github.com/eth2030/gf64field/gf16"

// Mode selects which GF(2^32) construction a Field implements.
type Mode int

const (
	// Primitive is GF(2^32) = GF(2)[x]/(p) for a degree-32 irreducible p.
	Primitive Mode = iota
	// Composite1616 is GF((2^16)^2), built from two gf16 halves.
	Composite1616
)

// NoInverse is the sentinel returned by Inverse and used as Divide's
// result when dividing by zero, matching gf64's all-ones convention
// scaled to 32 bits.
const NoInverse uint32 = 0xFFFFFFFF

// defaultPrimPoly32 is a placeholder default, exactly as gf64's own
// default of 0x1B is a documented placeholder rather than an asserted
// irreducible of degree 32 (see gf64's DESIGN.md entry on prim_poly
// defaults). Callers configuring a real base field should supply one.
const defaultPrimPoly32 uint32 = 0x1B

// compositeS1616 is the base-field multiplier s used when Composite(2,32)
// itself nests on a composite GF((2^16)^2) base field (arg2 = 1 in the
// spec's configuration), matching gf_w64.c's GF_S_GF_16_2_2.
const compositeS1616 uint32 = 1000587

// compositeS16 is the s of Composite1616's own inner modulus
// x^2 + s*x + 1 over GF(2^16) (gf_w32.c's GF_S_GF_16_2); it is
// irreducible under gf16's modulus.
const compositeS16 gf16.Element = 40188

// compositeS32 is the s used when the base field for gf64's Composite is
// itself a primitive GF(2^32) (arg2 = 0), matching gf_w64.c's
// GF_S_GF_32_2. gf64's Composite strategy reads this from Field.S.
const compositeS32 uint32 = 1000012

// Field is a GF(2^32) handle bound to one mode and (for Primitive mode)
// one primitive polynomial.
type Field struct {
	mode     Mode
	primPoly uint32 // only meaningful in Primitive mode
}

// NewPrimitive constructs a primitive GF(2^32) field over primPoly. A
// zero primPoly is replaced with defaultPrimPoly32.
func NewPrimitive(primPoly uint32) *Field {
	if primPoly == 0 {
		primPoly = defaultPrimPoly32
	}
	return &Field{mode: Primitive, primPoly: primPoly}
}

// NewComposite1616 constructs the composite GF((2^16)^2) base field.
func NewComposite1616() *Field {
	return &Field{mode: Composite1616}
}

// S returns the composite multiplier gf64's Composite strategy should use
// when this Field is its base field (gf_w64.c's w64_composite_int_t.s).
func (f *Field) S() uint32 {
	if f.mode == Composite1616 {
		return compositeS1616
	}
	return compositeS32
}

// Multiply returns a*b in this field.
func (f *Field) Multiply(a, b uint32) uint32 {
	if f.mode == Composite1616 {
		return multiplyComposite1616(a, b)
	}
	return byTwoBMultiply(f.primPoly, a, b)
}

// byTwoBMultiply is gf_w64_bytwo_b_multiply narrowed to 32 bits: scan a
// from the LSB, accumulating b into the product whenever the current bit
// of a is set, doubling b (with conditional reduction by p) each step.
func byTwoBMultiply(primPoly, a, b uint32) uint32 {
	const topBit = uint32(1) << 31
	var prod uint32
	for {
		if a&1 != 0 {
			prod ^= b
		}
		a >>= 1
		if a == 0 {
			return prod
		}
		if b&topBit != 0 {
			b = (b << 1) ^ primPoly
		} else {
			b <<= 1
		}
	}
}

// Divide returns a/b. Returns NoInverse when b is zero.
func (f *Field) Divide(a, b uint32) uint32 {
	if b == 0 {
		return NoInverse
	}
	return f.Multiply(a, f.Inverse(b))
}

// Inverse returns the multiplicative inverse of a, or NoInverse if a==0.
func (f *Field) Inverse(a uint32) uint32 {
	if a == 0 {
		return NoInverse
	}
	if f.mode == Composite1616 {
		return inverseComposite1616(a)
	}
	return euclidInverse32(f.primPoly, a)
}

// euclidInverse32 is gf_w64_euclid narrowed to 32 bits: extended
// Euclidean algorithm over GF(2)[x] on (primPoly, b), tracking Bezout
// coefficients via the field's own multiply.
func euclidInverse32(primPoly, b uint32) uint32 {
	const one = uint32(1)
	eim1 := primPoly
	ei := b
	dim1 := 32
	di := dim1 - 1
	for (one<<uint(di))&ei == 0 {
		di--
	}
	yi := uint32(1)
	yim1 := uint32(0)

	for ei != 1 {
		eip1 := eim1
		dip1 := dim1
		var ci uint32

		for dip1 >= di {
			shift := uint(dip1 - di)
			ci ^= one << shift
			eip1 ^= ei << shift
			dip1--
			for (eip1 & (one << uint(dip1))) == 0 {
				dip1--
			}
		}

		yip1 := yim1 ^ byTwoBMultiply(primPoly, ci, yi)
		yim1 = yi
		yi = yip1

		eim1 = ei
		dim1 = di
		ei = eip1
		di = dip1
	}
	return yi
}

// MultiplyRegion multiplies every 32-bit little-endian word of src by val,
// writing (or XOR-accumulating) into dst. len(src) must equal len(dst) and
// be a multiple of 4, matching the spec's multiply_region(w32) contract.
func (f *Field) MultiplyRegion(src, dst []byte, val uint32, xorFlag bool) {
	n := len(src) / 4
	for i := 0; i < n; i++ {
		s := decodeWord(src[i*4:])
		p := f.Multiply(val, s)
		if xorFlag {
			p ^= decodeWord(dst[i*4:])
		}
		encodeWord(dst[i*4:], p)
	}
}

// ExtractWord returns the logical 32-bit element at index within buf.
func (f *Field) ExtractWord(buf []byte, index int) uint32 {
	return decodeWord(buf[index*4:])
}

func decodeWord(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func encodeWord(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func multiplyComposite1616(a, b uint32) uint32 {
	a0, a1 := gf16.Element(a), gf16.Element(a>>16)
	b0, b1 := gf16.Element(b), gf16.Element(b>>16)
	a1b1 := gf16.Mul(a1, b1)
	low := gf16.Add(gf16.Mul(a0, b0), a1b1)
	s := compositeS16
	high := gf16.Add(gf16.Add(gf16.Mul(a1, b0), gf16.Mul(a0, b1)), gf16.Mul(a1b1, s))
	return uint32(low) | uint32(high)<<16
}

// inverseComposite1616 applies the same composite-inverse construction
// gf64/composite.go uses at the 64-bit level, one level down: a = a0 +
// a1*x in GF(2^16)[x]/(x^2 + s*x + 1).
func inverseComposite1616(a uint32) uint32 {
	a0, a1 := gf16.Element(a), gf16.Element(a>>16)
	s := compositeS16

	var c0, c1 gf16.Element
	switch {
	case a0 == 0:
		a1inv := gf16.Inverse(a1)
		c0 = gf16.Mul(a1inv, s)
		c1 = a1inv
	case a1 == 0:
		c0 = gf16.Inverse(a0)
		c1 = 0
	default:
		a0inv := gf16.Inverse(a0)
		a1inv := gf16.Inverse(a1)
		d := gf16.Mul(a1, a0inv)
		tmp := gf16.Add(gf16.Add(gf16.Mul(a1, a0inv), gf16.Mul(a0, a1inv)), s)
		tmp = gf16.Inverse(tmp)
		d = gf16.Mul(d, tmp)
		c0 = gf16.Mul(gf16.Add(d, 1), a0inv)
		c1 = gf16.Mul(d, a1inv)
	}
	return uint32(c0) | uint32(c1)<<16
}
