package gf64

import (
	"math/rand"
	"testing"
)

func allStrategies(t *testing.T) map[string]*Field {
	t.Helper()
	configs := map[string]Config{
		"shift":        {MultType: Shift},
		"bytwo_b":      {MultType: BytwoB},
		"bytwo_p":      {MultType: BytwoP},
		"default":      {MultType: Default},
		"group_4_8":    {MultType: Group, Arg1: 4, Arg2: 8},
		"split_4_64":   {MultType: SplitTable, Arg1: 4, Arg2: 64},
		"split_8_64":   {MultType: SplitTable, Arg1: 8, Arg2: 64},
		"split_16_64":  {MultType: SplitTable, Arg1: 16, Arg2: 64},
		"split_8_8":    {MultType: SplitTable, Arg1: 8, Arg2: 8},
		"composite_32": {MultType: Composite, Arg1: 2, Arg2: 0},
		"composite_16": {MultType: Composite, Arg1: 2, Arg2: 1},
	}
	out := make(map[string]*Field, len(configs))
	for name, cfg := range configs {
		f, err := New(cfg)
		if err != nil {
			t.Fatalf("New(%s): %v", name, err)
		}
		out[name] = f
	}
	return out
}

func TestAllStrategiesAgreeOnRandomProducts(t *testing.T) {
	fields := allStrategies(t)
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		a, b := r.Uint64(), r.Uint64()
		want := fields["shift"].Multiply(a, b)
		for name, f := range fields {
			// Composite represents elements in GF((2^32)^2), not modulo
			// the primitive polynomial, so its products differ from the
			// other strategies'.
			if f.multType == Composite {
				continue
			}
			if got := f.Multiply(a, b); got != want {
				t.Fatalf("%s.Multiply(%#x,%#x) = %#x, want %#x", name, a, b, got, want)
			}
		}
	}
}

func TestMultiplicationCommutative(t *testing.T) {
	fields := allStrategies(t)
	r := rand.New(rand.NewSource(7))
	for name, f := range fields {
		for i := 0; i < 50; i++ {
			a, b := r.Uint64(), r.Uint64()
			if got, want := f.Multiply(a, b), f.Multiply(b, a); got != want {
				t.Errorf("%s: Multiply(%#x,%#x)=%#x != Multiply(%#x,%#x)=%#x", name, a, b, got, b, a, want)
			}
		}
	}
}

func TestMultiplicationDistributesOverAddition(t *testing.T) {
	fields := allStrategies(t)
	r := rand.New(rand.NewSource(11))
	for name, f := range fields {
		for i := 0; i < 50; i++ {
			a, b, c := r.Uint64(), r.Uint64(), r.Uint64()
			lhs := f.Multiply(a, b^c)
			rhs := f.Multiply(a, b) ^ f.Multiply(a, c)
			if lhs != rhs {
				t.Errorf("%s: a*(b^c) = %#x, (a*b)^(a*c) = %#x", name, lhs, rhs)
			}
		}
	}
}

func TestMultiplicativeIdentityAndZero(t *testing.T) {
	fields := allStrategies(t)
	r := rand.New(rand.NewSource(13))
	for name, f := range fields {
		for i := 0; i < 20; i++ {
			a := r.Uint64()
			if got := f.Multiply(a, 1); got != a {
				t.Errorf("%s: Multiply(%#x,1) = %#x, want %#x", name, a, got, a)
			}
			if got := f.Multiply(a, 0); got != 0 {
				t.Errorf("%s: Multiply(%#x,0) = %#x, want 0", name, a, got)
			}
		}
	}
}

func TestInverseRoundTripAcrossStrategies(t *testing.T) {
	fields := allStrategies(t)
	r := rand.New(rand.NewSource(17))
	for name, f := range fields {
		for i := 0; i < 50; i++ {
			a := r.Uint64()
			if a == 0 {
				continue
			}
			inv := f.Inverse(a)
			if inv == noInverse {
				t.Fatalf("%s: Inverse(%#x) returned sentinel for nonzero input", name, a)
			}
			if got := f.Multiply(a, inv); got != 1 {
				t.Errorf("%s: a=%#x, a*Inverse(a) = %#x, want 1", name, a, got)
			}
		}
	}
}

func TestDivideAndInverseZeroSentinel(t *testing.T) {
	fields := allStrategies(t)
	for name, f := range fields {
		if got := f.Inverse(0); got != noInverse {
			t.Errorf("%s: Inverse(0) = %#x, want sentinel", name, got)
		}
		if got := f.Divide(5, 0); got != noInverse {
			t.Errorf("%s: Divide(5,0) = %#x, want sentinel", name, got)
		}
		if got := NoInverseValue(); got != noInverse {
			t.Errorf("NoInverseValue() = %#x, want %#x", got, noInverse)
		}
	}
}

func TestDivideMatchesMultiplyByInverse(t *testing.T) {
	fields := allStrategies(t)
	r := rand.New(rand.NewSource(19))
	for name, f := range fields {
		for i := 0; i < 30; i++ {
			a, b := r.Uint64(), r.Uint64()
			if b == 0 {
				b = 1
			}
			want := f.Multiply(a, f.Inverse(b))
			if got := f.Divide(a, b); got != want {
				t.Errorf("%s: Divide(%#x,%#x) = %#x, want %#x", name, a, b, got, want)
			}
		}
	}
}

func TestRegionAgreesWithScalarAcrossStrategies(t *testing.T) {
	fields := allStrategies(t)
	words := []uint64{1, 2, 3, 0xdeadbeefcafef00d, 0x123456789abcdef0, 0xffffffffffffffff, 9, 17, 0}
	src := make([]byte, len(words)*8)
	for i, w := range words {
		encodeWord(src[i*8:], w)
	}
	val := uint64(0x777)

	for name, f := range fields {
		dst := make([]byte, len(src))
		f.MultiplyRegion(src, dst, val, false)
		for i, w := range words {
			want := f.Multiply(val, w)
			if got := decodeWord(dst[i*8:]); got != want {
				t.Errorf("%s: region[%d] = %#x, want %#x", name, i, got, want)
			}
			if got := f.ExtractWord(dst, i); got != want {
				t.Errorf("%s: ExtractWord(%d) = %#x, want %#x", name, i, got, want)
			}
		}
	}
}

func TestDivideMatrixRejected(t *testing.T) {
	if _, err := New(Config{MultType: Shift, DivideType: DivideMatrix}); err == nil {
		t.Fatalf("expected error for DivideType MATRIX")
	}
}

func TestMultTypeString(t *testing.T) {
	cases := map[MultType]string{
		Default:    "DEFAULT",
		Shift:      "SHIFT",
		BytwoP:     "BYTWO_p",
		BytwoB:     "BYTWO_b",
		SplitTable: "SPLIT_TABLE",
		Group:      "GROUP",
		Composite:  "COMPOSITE",
	}
	for m, want := range cases {
		if got := m.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(m), got, want)
		}
	}
}
