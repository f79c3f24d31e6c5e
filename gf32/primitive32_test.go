package gf32

import "testing"

func TestPrimitiveMulCommutative(t *testing.T) {
	f := NewPrimitive(0)
	cases := []uint32{0, 1, 2, 0xDEADBEEF, 0xFFFFFFFF, 0x12345678}
	for _, a := range cases {
		for _, b := range cases {
			if f.Multiply(a, b) != f.Multiply(b, a) {
				t.Fatalf("Multiply(%x,%x) not commutative", a, b)
			}
		}
	}
}

func TestPrimitiveIdentityAndZero(t *testing.T) {
	f := NewPrimitive(0)
	for _, a := range []uint32{0, 1, 42, 0xDEADBEEF} {
		if f.Multiply(a, 1) != a {
			t.Errorf("Multiply(%x,1) = %x, want %x", a, f.Multiply(a, 1), a)
		}
		if f.Multiply(a, 0) != 0 {
			t.Errorf("Multiply(%x,0) = %x, want 0", a, f.Multiply(a, 0))
		}
	}
}

func TestPrimitiveInverse(t *testing.T) {
	f := NewPrimitive(0)
	for _, a := range []uint32{1, 2, 3, 0xDEADBEEF, 0x12345678} {
		inv := f.Inverse(a)
		if f.Multiply(a, inv) != 1 {
			t.Errorf("Multiply(%x, Inverse=%x) = %x, want 1", a, inv, f.Multiply(a, inv))
		}
	}
}

func TestPrimitiveInverseZeroSentinel(t *testing.T) {
	f := NewPrimitive(0)
	if f.Inverse(0) != NoInverse {
		t.Errorf("Inverse(0) = %x, want %x", f.Inverse(0), NoInverse)
	}
	if f.Divide(5, 0) != NoInverse {
		t.Errorf("Divide(5,0) = %x, want %x", f.Divide(5, 0), NoInverse)
	}
}

func TestPrimitiveRegionMatchesScalar(t *testing.T) {
	f := NewPrimitive(0)
	val := uint32(0xCAFEBABE)
	src := make([]byte, 4*16)
	for i := range src {
		src[i] = byte(i * 7)
	}
	dst := make([]byte, len(src))
	f.MultiplyRegion(src, dst, val, false)
	for i := 0; i < 16; i++ {
		want := f.Multiply(val, f.ExtractWord(src, i))
		got := f.ExtractWord(dst, i)
		if got != want {
			t.Errorf("word %d: got %x want %x", i, got, want)
		}
	}
}

func TestComposite1616MulAndInverse(t *testing.T) {
	f := NewComposite1616()
	cases := []uint32{1, 2, 0xDEADBEEF, 0x0001FFFF}
	for _, a := range cases {
		inv := f.Inverse(a)
		if f.Multiply(a, inv) != 1 {
			t.Errorf("composite Multiply(%x, Inverse=%x) = %x, want 1", a, inv, f.Multiply(a, inv))
		}
	}
	if f.S() != compositeS1616 {
		t.Errorf("S() = %d, want %d", f.S(), compositeS1616)
	}
}
