// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve25519

import (
	"testing"

	"github.com/ncme/c25519/edwards25519"
	"github.com/ncme/c25519/field"
	"github.com/ncme/c25519/morph"
)

func baseX() *field.Element {
	var b [32]byte
	b[0] = 9
	x, _ := new(field.Element).SetBytes(b[:])
	return x
}

func TestClamp(t *testing.T) {
	var e [32]byte
	for i := range e {
		e[i] = 0xff
	}
	Clamp(&e)
	if e[0]&7 != 0 {
		t.Error("low 3 bits of byte 0 not cleared")
	}
	if e[31]&0x80 != 0 {
		t.Error("top bit of byte 31 not cleared")
	}
	if e[31]&0x40 == 0 {
		t.Error("bit 6 of byte 31 not set")
	}
}

// TestLadderAgreesWithEdwards covers §8 invariant 3: the Montgomery
// ladder output equals ey2mx(y(e*G_Ed)) for a clamped scalar e.
func TestLadderAgreesWithEdwards(t *testing.T) {
	scalars := [][32]byte{
		{0x00},
		{0x01},
		{0x02, 0x03, 0x04},
	}
	for _, raw := range scalars {
		e := raw
		Clamp(&e)

		got := ScalarMult(&e, baseX())

		var p edwards25519.Point
		p.ScalarMult(&e, edwards25519.NewGeneratorPoint())
		_, ey := p.Affine()
		want := morph.EyToMx(ey)
		want.Normalize(want)

		if got.Equal(want) != 1 {
			t.Errorf("ladder disagrees with Edwards path for e=%x", raw)
		}
	}
}

// TestScalarMultXYAgreesWithEdwards covers §8 scenario S5: running
// ScalarMultXY from the base point and mapping the recovered affine
// point through Montgomery->Edwards must agree with the Edwards engine's
// own e*G_Ed, for a clamped scalar e.
func TestScalarMultXYAgreesWithEdwards(t *testing.T) {
	var e [32]byte
	e[0], e[1] = 0x02, 0x03
	Clamp(&e)

	x9 := baseX()
	baseEx, baseEy := edwards25519.NewGeneratorPoint().Affine()
	baseMx, baseMy := morph.EToM(baseEx, baseEy)
	if baseMx.Equal(x9) != 1 {
		t.Fatalf("Edwards base point does not map to the Montgomery base x=9")
	}

	gotMx, gotMy := ScalarMultXY(&e, x9, baseMy)

	gotEx, gotEy := morph.MToE(gotMx, gotMy)

	var want edwards25519.Point
	want.ScalarMult(&e, edwards25519.NewGeneratorPoint())
	wantEx, wantEy := want.Affine()

	if gotEx.Equal(wantEx) != 1 || gotEy.Equal(wantEy) != 1 {
		t.Fatal("ScalarMultXY disagrees with the Edwards engine")
	}
}

func TestScalarMultZero(t *testing.T) {
	var e [32]byte
	Clamp(&e)
	got := ScalarMult(&e, baseX())
	if got.IsZero() == 1 {
		t.Error("clamped zero scalar should not collapse to the identity's x=0")
	}
}
