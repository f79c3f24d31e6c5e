package gf64

import (
	"math/rand"
	"testing"
)

func TestShiftMultiplyIdentityAndZero(t *testing.T) {
	const p = defaultPrimPoly
	if got := shiftMultiply(p, 0, 12345); got != 0 {
		t.Errorf("shiftMultiply(0,x) = %#x, want 0", got)
	}
	if got := shiftMultiply(p, 1, 12345); got != 12345 {
		t.Errorf("shiftMultiply(1,x) = %#x, want x", got)
	}
}

func TestShiftMultiplyKnownProduct(t *testing.T) {
	const p = defaultPrimPoly
	got := shiftMultiply(p, 0x2, 0x8000000000000000)
	if got != p {
		t.Errorf("shiftMultiply(2, 0x8000000000000000) = %#x, want %#x (the modulus itself, since x^64 reduces to p)", got, p)
	}
}

func TestShiftMultiplyCommutative(t *testing.T) {
	const p = defaultPrimPoly
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		a, b := r.Uint64(), r.Uint64()
		if got, want := shiftMultiply(p, a, b), shiftMultiply(p, b, a); got != want {
			t.Fatalf("shiftMultiply(%#x,%#x) = %#x, want %#x (commutativity)", a, b, got, want)
		}
	}
}

func TestEuclidInverseRoundTrip(t *testing.T) {
	const p = defaultPrimPoly
	mul := func(a, b uint64) uint64 { return shiftMultiply(p, a, b) }
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		a := r.Uint64()
		if a == 0 {
			continue
		}
		inv := euclidInverse(p, mul, a)
		if inv == noInverse {
			t.Fatalf("euclidInverse(%#x) returned sentinel", a)
		}
		if got := mul(a, inv); got != 1 {
			t.Fatalf("a=%#x: a * inverse(a) = %#x, want 1", a, got)
		}
	}
}

func TestEuclidInverseZero(t *testing.T) {
	const p = defaultPrimPoly
	mul := func(a, b uint64) uint64 { return shiftMultiply(p, a, b) }
	if got := euclidInverse(p, mul, 0); got != noInverse {
		t.Errorf("euclidInverse(0) = %#x, want sentinel", got)
	}
}

func TestMultiplyByTwoMatchesShiftByX(t *testing.T) {
	const p = defaultPrimPoly
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		v := r.Uint64()
		if got, want := multiplyByTwo(p, v), shiftMultiply(p, 2, v); got != want {
			t.Fatalf("multiplyByTwo(%#x) = %#x, want %#x", v, got, want)
		}
	}
}
