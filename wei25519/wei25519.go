// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wei25519 implements the short Weierstrass curve
//
//	y^2 = x^3 + a*x + b
//
// known as Wei25519, the curve ECDSA is defined over in this library.
package wei25519

import (
	"encoding/hex"

	"github.com/ncme/c25519/field"
)

func mustElement(h string) *field.Element {
	b, err := hex.DecodeString(h)
	if err != nil {
		panic(err)
	}
	e, err := new(field.Element).SetBytes(b)
	if err != nil {
		panic(err)
	}
	return e
}

// A and B are the curve equation constants, the bit-exact values of §6.2.
var (
	A = mustElement("44a1144998aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa2a")
	B = mustElement("64c810779c5e0b26b497d05e427b09ed25b497d05e427b09ed25b497d05e427b")
)

// Point is an affine Wei25519 point. The point at infinity is not
// representable and is out-of-band per §3.
type Point struct {
	X, Y field.Element
}

// IsOnCurve reports whether p satisfies y^2 = x^3 + a*x + b.
func (p *Point) IsOnCurve() bool {
	var lhs, x2, x3, ax, rhs field.Element
	lhs.Square(&p.Y)
	x2.Square(&p.X)
	x3.Multiply(&x2, &p.X)
	ax.Multiply(A, &p.X)
	rhs.Add(&x3, &ax)
	rhs.Add(&rhs, B)
	return lhs.Equal(&rhs) == 1
}

// Wx2Wy recovers the Weierstrass y-coordinate from x and a sign bit,
// per §4.5.2's wx2wy: t = wx^3 + a*wx + b, wy = +-sqrt(t) selected via
// the sign bit, verified against the curve equation. Per §9's Open
// Question resolution, the sign bit callers composing e->w->Wx2Wy must
// pass is the parity of the corresponding point's Edwards x-coordinate
// (morph.EdwardsParity).
func Wx2Wy(wx *field.Element, sign int) (wy *field.Element, ok int) {
	var x2, x3, ax, t, root, negRoot field.Element
	x2.Square(wx)
	x3.Multiply(&x2, wx)
	ax.Multiply(A, wx)
	t.Add(&x3, &ax)
	t.Add(&t, B)

	_, sqrtOK := root.Sqrt(&t)
	negRoot.Negate(&root)

	var selected field.Element
	selected.Select(&negRoot, &root, sign)

	var check field.Element
	check.Square(&selected)
	eqOK := check.Equal(&t)

	return &selected, sqrtOK & eqOK
}
