// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package edwards25519 implements group logic for the twisted Edwards curve
//
//	-x^2 + y^2 = 1 + d*x^2*y^2
//
// better known as Ed25519, the curve used by the Ed25519 signature scheme
// and, via the isomorphism layer, by ECDSA over Wei25519.
package edwards25519

import (
	"encoding/hex"

	"github.com/ncme/c25519/field"
)

func mustHex(h string) []byte {
	b, err := hex.DecodeString(h)
	if err != nil {
		panic(err)
	}
	return b
}

// D is the curve equation constant, the bit-exact value of §6.2.
var D = mustElement("a3785913ca4deb75abd841414d0a700098e879777940c78c73fe6f2bee6c0352")

var d2 = new(field.Element).Add(D, D)

func mustElement(h string) *field.Element {
	b := mustHex(h)
	e, err := new(field.Element).SetBytes(b)
	if err != nil {
		panic(err)
	}
	return e
}

// Point is a point on the Ed25519 curve, held in extended projective
// coordinates (X:Y:Z:T) with x = X/Z, y = Y/Z, xy = T/Z, per §3.
type Point struct {
	x, y, z, t field.Element
}

// projP1xP1 and projP2 are the intermediate representations used by the
// addition and doubling formulas, following Hisil-Wong-Carter-Dawson.
type projP1xP1 struct {
	X, Y, Z, T field.Element
}

type projP2 struct {
	X, Y, Z field.Element
}

type projCached struct {
	YplusX, YminusX, Z, T2d field.Element
}

// NewIdentityPoint returns a new Point set to the identity (0, 1).
func NewIdentityPoint() *Point {
	return (&Point{}).Identity()
}

// Identity sets v to the identity element, and returns v.
func (v *Point) Identity() *Point {
	v.x.Zero()
	v.y.One()
	v.z.One()
	v.t.Zero()
	return v
}

// NewGeneratorPoint returns a new Point set to the canonical Ed25519
// generator, the base point used as G_Ed throughout §4.5-§4.6.
func NewGeneratorPoint() *Point {
	return (&Point{}).Generator()
}

// Generator sets v to the canonical generator, and returns v.
func (v *Point) Generator() *Point {
	x := mustElement("1ad5258f602d56c9b2a7259560c72c695cdcd6fd31e2a4c0fe536ecdd3366921")
	y := mustElement("5866666666666666666666666666666666666666666666666666666666666666")
	v.x.Set(x)
	v.y.Set(y)
	v.z.One()
	v.t.Multiply(x, y)
	return v
}

// Set sets v = u, and returns v.
func (v *Point) Set(u *Point) *Point {
	*v = *u
	return v
}

// Affine returns the affine (x, y) coordinates of v.
func (v *Point) Affine() (x, y *field.Element) {
	var zInv field.Element
	zInv.Invert(&v.z)
	x = new(field.Element).Multiply(&v.x, &zInv)
	y = new(field.Element).Multiply(&v.y, &zInv)
	return
}

// SetAffine sets v to the point with affine coordinates (x, y), assumed to
// already lie on the curve, and returns v.
func (v *Point) SetAffine(x, y *field.Element) *Point {
	v.x.Set(x)
	v.y.Set(y)
	v.z.One()
	v.t.Multiply(x, y)
	return v
}

// IsOnCurve reports whether v satisfies the Ed25519 curve equation
// -x^2 + y^2 = 1 + d*x^2*y^2 in projective form
// -X^2*Z^2 + Y^2*Z^2 = Z^4 + d*X^2*Y^2, using the affine coordinates.
func (v *Point) IsOnCurve() bool {
	x, y := v.Affine()
	var x2, y2, lhs, rhs, dxy2 field.Element
	x2.Square(x)
	y2.Square(y)
	lhs.Subtract(&y2, &x2)
	dxy2.Multiply(D, &x2)
	dxy2.Multiply(&dxy2, &y2)
	rhs.Add(field.One, &dxy2)
	return lhs.Equal(&rhs) == 1
}

func (v *projP2) FromP1xP1(p *projP1xP1) *projP2 {
	v.X.Multiply(&p.X, &p.T)
	v.Y.Multiply(&p.Y, &p.Z)
	v.Z.Multiply(&p.Z, &p.T)
	return v
}

func (v *projP2) FromP3(p *Point) *projP2 {
	v.X.Set(&p.x)
	v.Y.Set(&p.y)
	v.Z.Set(&p.z)
	return v
}

func (v *Point) fromP1xP1(p *projP1xP1) *Point {
	v.x.Multiply(&p.X, &p.T)
	v.y.Multiply(&p.Y, &p.Z)
	v.z.Multiply(&p.Z, &p.T)
	v.t.Multiply(&p.X, &p.Y)
	return v
}

func (v *Point) fromP2(p *projP2) *Point {
	v.x.Multiply(&p.X, &p.Z)
	v.y.Multiply(&p.Y, &p.Z)
	v.z.Square(&p.Z)
	v.t.Multiply(&p.X, &p.Y)
	return v
}

func (v *projCached) FromP3(p *Point) *projCached {
	v.YplusX.Add(&p.y, &p.x)
	v.YminusX.Subtract(&p.y, &p.x)
	v.Z.Set(&p.z)
	v.T2d.Multiply(&p.t, d2)
	return v
}

// Add sets v = p + q, and returns v.
func (v *Point) Add(p, q *Point) *Point {
	result := projP1xP1{}
	qCached := projCached{}
	qCached.FromP3(q)
	result.Add(p, &qCached)
	return v.fromP1xP1(&result)
}

// Subtract sets v = p - q, and returns v.
func (v *Point) Subtract(p, q *Point) *Point {
	result := projP1xP1{}
	qCached := projCached{}
	qCached.FromP3(q)
	result.Sub(p, &qCached)
	return v.fromP1xP1(&result)
}

func (v *projP1xP1) Add(p *Point, q *projCached) *projP1xP1 {
	var YplusX, YminusX, PP, MM, TT2d, ZZ2 field.Element

	YplusX.Add(&p.y, &p.x)
	YminusX.Subtract(&p.y, &p.x)

	PP.Multiply(&YplusX, &q.YplusX)
	MM.Multiply(&YminusX, &q.YminusX)
	TT2d.Multiply(&p.t, &q.T2d)
	ZZ2.Multiply(&p.z, &q.Z)
	ZZ2.Add(&ZZ2, &ZZ2)

	v.X.Subtract(&PP, &MM)
	v.Y.Add(&PP, &MM)
	v.Z.Add(&ZZ2, &TT2d)
	v.T.Subtract(&ZZ2, &TT2d)
	return v
}

func (v *projP1xP1) Sub(p *Point, q *projCached) *projP1xP1 {
	var YplusX, YminusX, PP, MM, TT2d, ZZ2 field.Element

	YplusX.Add(&p.y, &p.x)
	YminusX.Subtract(&p.y, &p.x)

	PP.Multiply(&YplusX, &q.YminusX) // flipped sign
	MM.Multiply(&YminusX, &q.YplusX) // flipped sign
	TT2d.Multiply(&p.t, &q.T2d)
	ZZ2.Multiply(&p.z, &q.Z)
	ZZ2.Add(&ZZ2, &ZZ2)

	v.X.Subtract(&PP, &MM)
	v.Y.Add(&PP, &MM)
	v.Z.Subtract(&ZZ2, &TT2d) // flipped sign
	v.T.Add(&ZZ2, &TT2d)      // flipped sign
	return v
}

// Double sets v = 2p, and returns v.
func (v *Point) Double(p *Point) *Point {
	p2 := projP2{}
	p2.FromP3(p)
	result := projP1xP1{}
	result.Double(&p2)
	return v.fromP1xP1(&result)
}

func (v *projP1xP1) Double(p *projP2) *projP1xP1 {
	var XX, YY, ZZ2, XplusYsq field.Element

	XX.Square(&p.X)
	YY.Square(&p.Y)
	ZZ2.Square(&p.Z)
	ZZ2.Add(&ZZ2, &ZZ2)
	XplusYsq.Add(&p.X, &p.Y)
	XplusYsq.Square(&XplusYsq)

	v.Y.Add(&YY, &XX)
	v.Z.Subtract(&YY, &XX)

	v.X.Subtract(&XplusYsq, &v.Y)
	v.T.Subtract(&ZZ2, &v.Z)
	return v
}

// Negate sets v = -p, and returns v.
func (v *Point) Negate(p *Point) *Point {
	v.x.Negate(&p.x)
	v.y.Set(&p.y)
	v.z.Set(&p.z)
	v.t.Negate(&p.t)
	return v
}

// Equal returns 1 if v is equivalent to u, and 0 otherwise.
func (v *Point) Equal(u *Point) int {
	var t1, t2, t3, t4 field.Element
	t1.Multiply(&v.x, &u.z)
	t2.Multiply(&u.x, &v.z)
	t3.Multiply(&v.y, &u.z)
	t4.Multiply(&u.y, &v.z)
	return t1.Equal(&t2) & t3.Equal(&t4)
}

// Select sets v to a if cond == 1, and to b if cond == 0.
func (v *Point) Select(a, b *Point, cond int) *Point {
	v.x.Select(&a.x, &b.x, cond)
	v.y.Select(&a.y, &b.y, cond)
	v.z.Select(&a.z, &b.z, cond)
	v.t.Select(&a.t, &b.t, cond)
	return v
}

// ScalarMult sets v = s*q, where s is a 32-byte little-endian scalar (all
// 256 bits are used; s is not reduced modulo n first), and returns v. The
// loop is a constant-time, bit-conditional double-and-add: it inspects every
// bit of s and performs exactly one doubling and one conditional addition
// per iteration regardless of the bit's value, per §5's timing discipline.
func (v *Point) ScalarMult(s *[32]byte, q *Point) *Point {
	acc := NewIdentityPoint()
	tmp := new(Point)

	for i := 255; i >= 0; i-- {
		acc.Double(acc)
		tmp.Add(acc, q)
		bit := int((s[i/8] >> uint(i%8)) & 1)
		acc.Select(tmp, acc, bit)
	}

	return v.Set(acc)
}

// ScalarBaseMult sets v = s*G_Ed, and returns v.
func (v *Point) ScalarBaseMult(s *[32]byte) *Point {
	return v.ScalarMult(s, NewGeneratorPoint())
}
