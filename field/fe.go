// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field implements arithmetic modulo 2^255-19, the prime field
// underlying Curve25519, Ed25519 and Wei25519.
package field

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"

	fiat "github.com/mit-plv/fiat-crypto/fiat-go/64/curve25519"
)

// Element represents an element of the field GF(2^255-19). All arguments and
// receivers are allowed to alias. The zero value is a valid zero element.
type Element struct {
	limbs fiat.TightFieldElement
}

func newElementFromLimbs(l0, l1, l2, l3, l4 uint64) *Element {
	e := new(Element)
	fiat.Carry(&e.limbs, &fiat.LooseFieldElement{l0, l1, l2, l3, l4})
	return e
}

func mustElement(h string) *Element {
	b, err := hex.DecodeString(h)
	if err != nil {
		panic(err)
	}
	e, err := new(Element).SetBytes(b)
	if err != nil {
		panic(err)
	}
	return e
}

var feZero = newElementFromLimbs(0, 0, 0, 0, 0)

// Zero sets v = 0, and returns v.
func (v *Element) Zero() *Element {
	*v = *feZero
	return v
}

var feOne = newElementFromLimbs(1, 0, 0, 0, 0)

// One sets v = 1, and returns v.
func (v *Element) One() *Element {
	*v = *feOne
	return v
}

// Constants required by §4.1: the curve-25519 Montgomery constant A, the
// small constant 3, the isomorphism shift delta = (p+A)/3 mod p, and the
// isomorphism factor c = sqrt(-(A+2)) mod p. Hex values are the bit-exact
// little-endian encodings of §6.2.
var (
	Zero  = newElementFromLimbs(0, 0, 0, 0, 0)
	One   = newElementFromLimbs(1, 0, 0, 0, 0)
	Three = newElementFromLimbs(3, 0, 0, 0, 0)
	A     = newElementFromLimbs(486662, 0, 0, 0, 0)
	Delta = mustElement("5124adaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa2a")
	C     = mustElement("e781ba0055fb91337de582b42e2c5e3a81b003fc23f7842d44f95f9f0b12d970")
)

// Add sets v = a + b, and returns v.
func (v *Element) Add(a, b *Element) *Element {
	fiat.CarryAdd(&v.limbs, &a.limbs, &b.limbs)
	return v
}

// Subtract sets v = a - b, and returns v.
func (v *Element) Subtract(a, b *Element) *Element {
	fiat.CarrySub(&v.limbs, &a.limbs, &b.limbs)
	return v
}

// Negate sets v = -a, and returns v.
func (v *Element) Negate(a *Element) *Element {
	fiat.CarryOpp(&v.limbs, &a.limbs)
	return v
}

// Invert sets v = 1/z mod p, and returns v.
//
// If z == 0, Invert returns v = 0, matching §4.1's total-function contract.
func (v *Element) Invert(z *Element) *Element {
	// Exponentiation by p-2, using the same addition chain as the reference
	// Curve25519 implementation: 254 squarings and 11 multiplications.
	var z2, z9, z11, z2_5_0, z2_10_0, z2_20_0, z2_50_0, z2_100_0, t Element

	z2.Square(z)             // 2
	t.Square(&z2)            // 4
	t.Square(&t)              // 8
	z9.Multiply(&t, z)       // 9
	z11.Multiply(&z9, &z2)   // 11
	t.Square(&z11)           // 22
	z2_5_0.Multiply(&t, &z9) // 31 = 2^5 - 2^0

	t.Square(&z2_5_0) // 2^6 - 2^1
	for i := 0; i < 4; i++ {
		t.Square(&t) // 2^10 - 2^5
	}
	z2_10_0.Multiply(&t, &z2_5_0) // 2^10 - 2^0

	t.Square(&z2_10_0) // 2^11 - 2^1
	for i := 0; i < 9; i++ {
		t.Square(&t) // 2^20 - 2^10
	}
	z2_20_0.Multiply(&t, &z2_10_0) // 2^20 - 2^0

	t.Square(&z2_20_0) // 2^21 - 2^1
	for i := 0; i < 19; i++ {
		t.Square(&t) // 2^40 - 2^20
	}
	t.Multiply(&t, &z2_20_0) // 2^40 - 2^0

	t.Square(&t) // 2^41 - 2^1
	for i := 0; i < 9; i++ {
		t.Square(&t) // 2^50 - 2^10
	}
	z2_50_0.Multiply(&t, &z2_10_0) // 2^50 - 2^0

	t.Square(&z2_50_0) // 2^51 - 2^1
	for i := 0; i < 49; i++ {
		t.Square(&t) // 2^100 - 2^50
	}
	z2_100_0.Multiply(&t, &z2_50_0) // 2^100 - 2^0

	t.Square(&z2_100_0) // 2^101 - 2^1
	for i := 0; i < 99; i++ {
		t.Square(&t) // 2^200 - 2^100
	}
	t.Multiply(&t, &z2_100_0) // 2^200 - 2^0

	t.Square(&t) // 2^201 - 2^1
	for i := 0; i < 49; i++ {
		t.Square(&t) // 2^250 - 2^50
	}
	t.Multiply(&t, &z2_50_0) // 2^250 - 2^0

	t.Square(&t) // 2^251 - 2^1
	t.Square(&t) // 2^252 - 2^2
	t.Square(&t) // 2^253 - 2^3
	t.Square(&t) // 2^254 - 2^4
	t.Square(&t) // 2^255 - 2^5

	return v.Multiply(&t, &z11) // 2^255 - 21 = p - 2
}

// pow22523 sets v = x^((p-5)/8), and returns v. (p-5)/8 = 2^252-3.
func (v *Element) pow22523(x *Element) *Element {
	var t0, t1, t2 Element

	t0.Square(x)             // x^2
	t1.Square(&t0)           // x^4
	t1.Square(&t1)           // x^8
	t1.Multiply(x, &t1)      // x^9
	t0.Multiply(&t0, &t1)    // x^11
	t0.Square(&t0)           // x^22
	t0.Multiply(&t1, &t0)    // x^31
	t1.Square(&t0)           // x^62
	for i := 1; i < 5; i++ { // x^992
		t1.Square(&t1)
	}
	t0.Multiply(&t1, &t0) // x^1023 -> 1023 = 2^10 - 1
	t1.Square(&t0)        // 2^11 - 2
	for i := 1; i < 10; i++ {
		t1.Square(&t1) // 2^20 - 2^10
	}
	t1.Multiply(&t1, &t0) // 2^20 - 1
	t2.Square(&t1)        // 2^21 - 2
	for i := 1; i < 20; i++ {
		t2.Square(&t2) // 2^40 - 2^20
	}
	t1.Multiply(&t2, &t1) // 2^40 - 1
	t1.Square(&t1)        // 2^41 - 2
	for i := 1; i < 10; i++ {
		t1.Square(&t1) // 2^50 - 2^10
	}
	t0.Multiply(&t1, &t0) // 2^50 - 1
	t1.Square(&t0)        // 2^51 - 2
	for i := 1; i < 50; i++ {
		t1.Square(&t1) // 2^100 - 2^50
	}
	t1.Multiply(&t1, &t0) // 2^100 - 1
	t2.Square(&t1)        // 2^101 - 2
	for i := 1; i < 100; i++ {
		t2.Square(&t2) // 2^200 - 2^100
	}
	t1.Multiply(&t2, &t1) // 2^200 - 1
	t1.Square(&t1)        // 2^201 - 2
	for i := 1; i < 50; i++ {
		t1.Square(&t1) // 2^250 - 2^50
	}
	t0.Multiply(&t1, &t0) // 2^250 - 1
	t0.Square(&t0)        // 2^251 - 2
	t0.Square(&t0)        // 2^252 - 4
	return v.Multiply(&t0, x) // x^(2^252-3)
}

// sqrtM1 is 2^((p-1)/4), which squared is equal to -1 by Euler's criterion.
var sqrtM1 = newElementFromLimbs(1718705420411056, 234908883556509,
	2233514472574048, 2117202627021982, 765476049583133)

// Sqrt sets v to a candidate square root of a and returns v and a
// verification bit: 1 if v*v == a, 0 otherwise. Per §4.1, the candidate is
// a^((p+3)/8), twist-corrected by sqrt(-1) when its square doesn't match a;
// callers that require a real square root must check the returned bit.
func (v *Element) Sqrt(a *Element) (*Element, int) {
	var c, c2, corrected Element
	c.pow22523(a)
	c.Multiply(&c, a) // c = a^((p+3)/8)

	c2.Square(&c)
	wrongSign := 1 - c2.Equal(a)
	corrected.Multiply(&c, sqrtM1)
	c.Select(&corrected, &c, wrongSign)

	c2.Square(&c)
	ok := c2.Equal(a)
	v.Set(&c)
	return v, ok
}

// Set sets v = a, and returns v.
func (v *Element) Set(a *Element) *Element {
	*v = *a
	return v
}

// Normalize reduces a to its canonical residue in [0, p) and stores it in v.
func (v *Element) Normalize(a *Element) *Element {
	b := a.Bytes()
	v.SetBytes(b) //nolint:errcheck // b is always 32 bytes
	return v
}

// SetBytes sets v to x, where x is a 32-byte little-endian encoding. If x is
// not of the right length, SetBytes returns nil and an error, and the
// receiver is unchanged.
//
// Non-canonical values (2^255-19 through 2^255-1) are accepted, as required
// by §3: arithmetic is total over any 256-bit representative. The top bit of
// the last byte is ignored, matching RFC 7748.
func (v *Element) SetBytes(x []byte) (*Element, error) {
	if len(x) != 32 {
		return nil, errors.New("field: invalid field element input size")
	}

	var xCopy [32]byte
	copy(xCopy[:], x)
	xCopy[31] &= 127 // ignore the MSB

	fiat.FromBytes(&v.limbs, &xCopy)

	return v, nil
}

// Bytes returns the canonical 32-byte little-endian encoding of v.
func (v *Element) Bytes() []byte {
	var out [32]byte
	fiat.ToBytes(&out, &v.limbs)
	return out[:]
}

// Equal returns 1 if v and u are equal, and 0 otherwise. Constant time in
// the value of v and u.
func (v *Element) Equal(u *Element) int {
	sa, sv := u.Bytes(), v.Bytes()
	return subtle.ConstantTimeCompare(sa, sv)
}

// IsZero returns 1 if v is zero, and 0 otherwise.
func (v *Element) IsZero() int {
	return v.Equal(Zero)
}

// mask64Bits returns 0xffffffffffffffff if cond is 1, and 0 if cond is 0.
func mask64Bits(cond int) uint64 { return ^(uint64(cond) - 1) }

// Select sets v to a if cond == 1, and to b if cond == 0. Select is
// branchless: it is the shared conditional-select primitive used throughout
// the ladder and the sqrt sign selection (§9).
func (v *Element) Select(a, b *Element, cond int) *Element {
	m := mask64Bits(cond)
	v.limbs[0] = (m & a.limbs[0]) | (^m & b.limbs[0])
	v.limbs[1] = (m & a.limbs[1]) | (^m & b.limbs[1])
	v.limbs[2] = (m & a.limbs[2]) | (^m & b.limbs[2])
	v.limbs[3] = (m & a.limbs[3]) | (^m & b.limbs[3])
	v.limbs[4] = (m & a.limbs[4]) | (^m & b.limbs[4])
	return v
}

// Swap swaps v and u if cond == 1, or leaves them unchanged if cond == 0.
func (v *Element) Swap(u *Element, cond int) {
	m := mask64Bits(cond)
	for i := range v.limbs {
		t := m & (v.limbs[i] ^ u.limbs[i])
		v.limbs[i] ^= t
		u.limbs[i] ^= t
	}
}

// Multiply sets v = x * y, and returns v. x and y must not alias v's
// backing storage in the underlying fiat-crypto call, but this wrapper
// buffers internally so the public method tolerates aliasing, per §9's
// output-aliasing policy.
func (v *Element) Multiply(x, y *Element) *Element {
	var out fiat.TightFieldElement
	fiat.CarryMul(&out, (*fiat.LooseFieldElement)(&x.limbs), (*fiat.LooseFieldElement)(&y.limbs))
	v.limbs = out
	return v
}

// Square sets v = x * x, and returns v.
func (v *Element) Square(x *Element) *Element {
	var out fiat.TightFieldElement
	fiat.CarrySquare(&out, (*fiat.LooseFieldElement)(&x.limbs))
	v.limbs = out
	return v
}

// MulSmall sets v = x * k for a constant k of at most 32 bits, and returns
// v. This is the mul_c primitive of §4.1, used for the curve constant
// 486662 and the Okeya-Sakurai recovery constants 2A and 2B.
func (v *Element) MulSmall(x *Element, k uint32) *Element {
	kLimbs := fiat.LooseFieldElement{uint64(k), 0, 0, 0, 0}
	var out fiat.TightFieldElement
	fiat.CarryMul(&out, (*fiat.LooseFieldElement)(&x.limbs), &kLimbs)
	v.limbs = out
	return v
}
