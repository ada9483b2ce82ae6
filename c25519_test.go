// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package c25519

import (
	"crypto/sha256"
	"testing"

	"github.com/ncme/c25519/curve25519"
	"github.com/ncme/c25519/edwards25519"
)

func baseXBytes() [32]byte {
	var b [32]byte
	b[0] = 9
	return b
}

// TestS1BaseTimesZero covers scenario S1: the clamped-zero ladder
// output equals the Edwards path mapped through ey2mx.
func TestS1BaseTimesZero(t *testing.T) {
	var e [32]byte
	curve25519.Clamp(&e)

	got := Curve25519ScalarMult(e, baseXBytes())

	var p edwards25519.Point
	p.ScalarMult(&e, edwards25519.NewGeneratorPoint())
	_, ey := p.Affine()
	var eyBytes [32]byte
	copy(eyBytes[:], ey.Bytes())

	want := Ey2Mx(eyBytes)
	if got != want {
		t.Fatal("S1: ladder output disagrees with the Edwards path")
	}
}

// TestS2BaseTimesOneClamped covers scenario S2: e=1 before clamping
// becomes 2^254 after clamping.
func TestS2BaseTimesOneClamped(t *testing.T) {
	e := [32]byte{1}
	curve25519.Clamp(&e)
	if e[0] != 0 {
		t.Fatal("S2: byte 0 should be cleared by clamping")
	}
	if e[31]&0x40 == 0 {
		t.Fatal("S2: bit 254 should be set by clamping")
	}

	got := Curve25519ScalarMult(e, baseXBytes())

	var p edwards25519.Point
	p.ScalarMult(&e, edwards25519.NewGeneratorPoint())
	_, ey := p.Affine()
	var eyBytes [32]byte
	copy(eyBytes[:], ey.Bytes())

	want := Ey2Mx(eyBytes)
	if got != want {
		t.Fatal("S2: ladder output disagrees with the Edwards path")
	}
}

// TestS3MorphRoundTripBase covers scenario S3: e -> w -> e recovers the
// Ed25519 base point exactly.
func TestS3MorphRoundTripBase(t *testing.T) {
	ex, ey := edwards25519.NewGeneratorPoint().Affine()
	var exB, eyB [32]byte
	copy(exB[:], ex.Bytes())
	copy(eyB[:], ey.Bytes())

	wx, wy := EToW(exB, eyB)
	gotEx, gotEy := WToE(wx, wy)

	if gotEx != exB || gotEy != eyB {
		t.Fatal("S3: e->w->e did not recover the base point")
	}
}

// TestS4Wx2WyOnBase covers scenario S4.
func TestS4Wx2WyOnBase(t *testing.T) {
	ex, ey := edwards25519.NewGeneratorPoint().Affine()
	var exB, eyB [32]byte
	copy(exB[:], ex.Bytes())
	copy(eyB[:], ey.Bytes())

	wx, wy := EToW(exB, eyB)
	gotWy, ok := Wx2Wy(wx, EdwardsParity(exB))
	if !ok {
		t.Fatal("S4: wx2wy failed the curve equation check")
	}
	if gotWy != wy {
		t.Fatal("S4: wx2wy did not recover wy_B")
	}
}

// TestS6ECDSASignVerify covers scenario S6.
func TestS6ECDSASignVerify(t *testing.T) {
	var d, k [32]byte
	d[0], d[1] = 0x07, 0x11
	k[0], k[1] = 0x0b, 0x11
	e := sha256.Sum256([]byte("test"))

	wx, wy := ECDSAPubkey(d)

	r, s, ok := ECDSASign(d, e, k)
	if !ok {
		t.Fatal("S6: Sign returned ok = false")
	}
	if !ECDSAVerify(wx, wy, e, r, s) {
		t.Fatal("S6: Verify rejected a valid signature")
	}

	tampered := e
	tampered[0] ^= 1
	if ECDSAVerify(wx, wy, tampered, r, s) {
		t.Fatal("S6: Verify accepted a signature over a tampered digest")
	}
}
