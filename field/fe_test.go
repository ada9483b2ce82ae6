// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"bytes"
	"crypto/rand"
	"math/big"
	mathrand "math/rand"
	"reflect"
	"testing"
	"testing/quick"
)

var quickCheckConfig1024 = &quick.Config{MaxCountScale: 1 << 10}

var primeBig, _ = new(big.Int).SetString("57896044618658097711785492504343953926634992332820282019728792003956564819949", 10)

// Generate returns a random Element, weighted towards edge values (0, 1,
// p-1, and non-canonical representatives), matching the teacher's own
// Generate strategy in fe_test.go of biasing towards edge cases.
func (Element) Generate(rand *mathrand.Rand, size int) reflect.Value {
	var b [32]byte
	switch rand.Intn(8) {
	case 0:
		// zero
	case 1:
		b[0] = 1
	case 2:
		// p - 1, canonical
		e := new(Element).Subtract(Zero, One)
		copy(b[:], e.Bytes())
	case 3:
		// non-canonical: p itself
		copy(b[:], (&[32]byte{
			0xed, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
			0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
			0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
			0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f,
		})[:])
	default:
		rand.Read(b[:])
		b[31] &= 127
	}
	e, _ := new(Element).SetBytes(b[:])
	return reflect.ValueOf(*e)
}

func toBig(e *Element) *big.Int {
	b := e.Bytes()
	n := new(big.Int)
	for i := len(b) - 1; i >= 0; i-- {
		n.Lsh(n, 8)
		n.Or(n, big.NewInt(int64(b[i])))
	}
	return n
}

func fromBig(n *big.Int) *Element {
	n = new(big.Int).Mod(n, primeBig)
	b := make([]byte, 32)
	nb := n.Bytes()
	for i, v := range nb {
		b[len(nb)-1-i] = v
	}
	e, err := new(Element).SetBytes(b)
	if err != nil {
		panic(err)
	}
	return e
}

func TestAddAgainstBig(t *testing.T) {
	f := func(a, b Element) bool {
		var got Element
		got.Add(&a, &b)

		want := fromBig(new(big.Int).Add(toBig(&a), toBig(&b)))
		return got.Equal(want) == 1
	}
	if err := quick.Check(f, quickCheckConfig1024); err != nil {
		t.Error(err)
	}
}

func TestSubAgainstBig(t *testing.T) {
	f := func(a, b Element) bool {
		var got Element
		got.Subtract(&a, &b)

		want := fromBig(new(big.Int).Sub(toBig(&a), toBig(&b)))
		return got.Equal(want) == 1
	}
	if err := quick.Check(f, quickCheckConfig1024); err != nil {
		t.Error(err)
	}
}

func TestMulAgainstBig(t *testing.T) {
	f := func(a, b Element) bool {
		var got Element
		got.Multiply(&a, &b)

		want := fromBig(new(big.Int).Mul(toBig(&a), toBig(&b)))
		return got.Equal(want) == 1
	}
	if err := quick.Check(f, quickCheckConfig1024); err != nil {
		t.Error(err)
	}
}

func TestMulSmallAgainstBig(t *testing.T) {
	f := func(a Element, k uint32) bool {
		var got Element
		got.MulSmall(&a, k)

		want := fromBig(new(big.Int).Mul(toBig(&a), big.NewInt(int64(k))))
		return got.Equal(want) == 1
	}
	if err := quick.Check(f, quickCheckConfig1024); err != nil {
		t.Error(err)
	}
}

// TestInvertRoundTrip covers invariant 2 of §8: mul(a, inv(a)) normalizes to 1.
func TestInvertRoundTrip(t *testing.T) {
	f := func(a Element) bool {
		if a.IsZero() == 1 {
			return true
		}
		var inv, product Element
		inv.Invert(&a)
		product.Multiply(&a, &inv)
		return product.Equal(One) == 1
	}
	if err := quick.Check(f, quickCheckConfig1024); err != nil {
		t.Error(err)
	}
}

func TestInvertZero(t *testing.T) {
	var v Element
	v.Invert(Zero)
	if v.Equal(Zero) != 1 {
		t.Errorf("Invert(0) = %x, want 0", v.Bytes())
	}
}

// TestSqrtRoundTrip covers invariant 2 of §8: sqrt(mul(a,a)) returns ±a.
func TestSqrtRoundTrip(t *testing.T) {
	f := func(a Element) bool {
		var square, root Element
		square.Square(&a)
		_, ok := root.Sqrt(&square)
		if ok != 1 {
			return false
		}
		var negRoot Element
		negRoot.Negate(&root)
		return root.Equal(&a) == 1 || negRoot.Equal(&a) == 1
	}
	if err := quick.Check(f, quickCheckConfig1024); err != nil {
		t.Error(err)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	f := func(a Element) bool {
		var once, twice Element
		once.Normalize(&a)
		twice.Normalize(&once)
		if once.Equal(&twice) != 1 {
			return false
		}
		return toBig(&once).Cmp(primeBig) < 0
	}
	if err := quick.Check(f, quickCheckConfig1024); err != nil {
		t.Error(err)
	}
}

func TestSelect(t *testing.T) {
	f := func(a, b Element) bool {
		var out Element
		out.Select(&a, &b, 1)
		if out.Equal(&a) != 1 {
			return false
		}
		out.Select(&a, &b, 0)
		return out.Equal(&b) == 1
	}
	if err := quick.Check(f, quickCheckConfig1024); err != nil {
		t.Error(err)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	f := func(a Element) bool {
		var b [32]byte
		rand.Read(b[:])
		b[31] &= 127

		e, err := new(Element).SetBytes(b[:])
		if err != nil {
			return false
		}
		return bytes.Equal(e.Bytes(), (&Element{}).Normalize(e).Bytes())
	}
	if err := quick.Check(f, quickCheckConfig1024); err != nil {
		t.Error(err)
	}
}

func TestConstants(t *testing.T) {
	// A = 486662.
	if got := toBig(A); got.Cmp(big.NewInt(486662)) != 0 {
		t.Errorf("A = %v, want 486662", got)
	}
	// delta = (p + A) / 3 mod p.
	want := new(big.Int).Add(primeBig, big.NewInt(486662))
	inv3 := new(big.Int).ModInverse(big.NewInt(3), primeBig)
	want.Mul(want, inv3)
	want.Mod(want, primeBig)
	if got := toBig(Delta); got.Cmp(want) != 0 {
		t.Errorf("Delta = %v, want %v", got, want)
	}
	// c^2 = -(A+2) mod p.
	var c2 Element
	c2.Square(C)
	wantC2 := fromBig(new(big.Int).Neg(big.NewInt(486664)))
	if c2.Equal(wantC2) != 1 {
		t.Errorf("C^2 != -(A+2)")
	}
}
