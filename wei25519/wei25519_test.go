// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wei25519

import (
	"testing"

	"github.com/ncme/c25519/edwards25519"
	"github.com/ncme/c25519/morph"
)

// TestWx2WyOnBase covers §8 scenario S4: wx2wy(wx_B, parity(ex_B))
// returns wy_B with ok = 1.
func TestWx2WyOnBase(t *testing.T) {
	ex, ey := edwards25519.NewGeneratorPoint().Affine()
	wx, wy := morph.EToW(ex, ey)

	gotWy, ok := Wx2Wy(wx, morph.EdwardsParity(ex))
	if ok != 1 {
		t.Fatal("wx2wy failed the curve equation check on the base point")
	}
	if gotWy.Equal(wy) != 1 {
		t.Fatal("wx2wy did not recover the base point's wy")
	}
}

func TestBaseIsOnCurve(t *testing.T) {
	ex, ey := edwards25519.NewGeneratorPoint().Affine()
	wx, wy := morph.EToW(ex, ey)

	p := Point{}
	p.X.Set(wx)
	p.Y.Set(wy)
	if !p.IsOnCurve() {
		t.Fatal("Weierstrass image of the Ed25519 base point is not on the curve")
	}
}
