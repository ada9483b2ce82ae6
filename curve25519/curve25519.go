// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curve25519 implements the Montgomery-form curve
//
//	y^2 = x^3 + A*x^2 + x, A = 486662
//
// known as Curve25519, via the XZ-projective differential ladder.
package curve25519

import (
	"github.com/ncme/c25519/field"
	"github.com/ncme/c25519/morph"
)

// xz is a projective x-coordinate, x = X/Z when Z != 0.
type xz struct {
	X, Z field.Element
}

// xDBL computes the Montgomery doubling of p, per §4.3:
//
//	X3 = (X1^2 - Z1^2)^2
//	Z3 = 4*X1*Z1*(X1^2 + A*X1*Z1 + Z1^2)
func xDBL(p *xz) xz {
	var x1sq, z1sq, x1z1, aTerm, inner, four, diff field.Element
	x1sq.Square(&p.X)
	z1sq.Square(&p.Z)
	x1z1.Multiply(&p.X, &p.Z)

	aTerm.MulSmall(&x1z1, 486662)
	inner.Add(&x1sq, &aTerm)
	inner.Add(&inner, &z1sq)
	four.MulSmall(&x1z1, 4)

	var out xz
	diff.Subtract(&x1sq, &z1sq)
	out.X.Square(&diff)
	out.Z.Multiply(&four, &inner)
	return out
}

// xADD computes the Montgomery differential addition of (X2:Z2) and
// (X3:Z3) given the x-coordinate (X1:Z1) of their difference, per §4.3:
//
//	A = X2+Z2, B = X2-Z2, C = X3+Z3, D = X3-Z3
//	DA = D*A, CB = C*B
//	X5 = Z1*(DA+CB)^2, Z5 = X1*(DA-CB)^2
func xADD(diff, p2, p3 *xz) xz {
	var a, b, c, d, da, cb, sum, sub field.Element
	a.Add(&p2.X, &p2.Z)
	b.Subtract(&p2.X, &p2.Z)
	c.Add(&p3.X, &p3.Z)
	d.Subtract(&p3.X, &p3.Z)

	da.Multiply(&d, &a)
	cb.Multiply(&c, &b)

	sum.Add(&da, &cb)
	sum.Square(&sum)
	sub.Subtract(&da, &cb)
	sub.Square(&sub)

	var out xz
	out.X.Multiply(&diff.Z, &sum)
	out.Z.Multiply(&diff.X, &sub)
	return out
}

// Clamp applies the standard Curve25519 clamp to a 32-byte scalar,
// clearing the low three bits of byte 0 and the top bit of byte 31, and
// setting bit 6 of byte 31, per RFC 7748 and §4.3.
func Clamp(e *[32]byte) {
	e[0] &= 248
	e[31] &= 127
	e[31] |= 64
}

// ladder runs the 254-iteration constant-time Montgomery ladder of §4.3
// on the clamped scalar e and the XZ pair q, and returns the terminal
// states (P_m, P_{m+1}) — the successor pair Okeya-Sakurai recovery
// requires, since it needs x(Q) and x(P+Q) for a known base point P.
func ladder(e *[32]byte, q *xz) (pm, pm1 xz) {
	// Bit 254 is fixed at 1, so after consuming it k=1: the pair starts
	// at (P, 2P).
	pm = *q
	pm1 = xDBL(q)

	for i := 253; i >= 0; i-- {
		bit := int((e[i/8] >> uint(i%8)) & 1)

		// sum = P_m + P_{m+1} = P_{2m+1}, using diff = P_{m+1} - P_m = q.
		sum := xADD(q, &pm, &pm1)
		d1 := xDBL(&pm)  // P_2m
		d2 := xDBL(&pm1) // P_2m+2

		// bit==0 routes (P_2m, P_2m+1); bit==1 routes (P_2m+1, P_2m+2).
		var nextPm, nextPm1 xz
		nextPm.X.Select(&sum.X, &d1.X, bit)
		nextPm.Z.Select(&sum.Z, &d1.Z, bit)
		nextPm1.X.Select(&d2.X, &sum.X, bit)
		nextPm1.Z.Select(&d2.Z, &sum.Z, bit)

		pm, pm1 = nextPm, nextPm1
	}

	return pm, pm1
}

// ScalarMult implements curve25519_scalar_mult (§6.3): it runs the
// ladder on the clamped scalar e and the affine x-coordinate x, and
// returns normalize(X_m * Z_m^-1).
func ScalarMult(e *[32]byte, x *field.Element) *field.Element {
	q := xz{}
	q.X.Set(x)
	q.Z.One()

	pm, _ := ladder(e, &q)

	var zInv, out field.Element
	zInv.Invert(&pm.Z)
	out.Multiply(&pm.X, &zInv)
	return out.Normalize(&out)
}

// ScalarMultXY implements curve25519_scalar_mult_xy (§6.3): it runs the
// ladder on (xP, yP) and e, then invokes Okeya-Sakurai y-recovery
// (§4.5.4) to produce the full affine point (xR, yR).
func ScalarMultXY(e *[32]byte, xP, yP *field.Element) (xR, yR *field.Element) {
	state := Ladder(e, xP)

	X, Y, Z := morph.MontgomeryRecovery(xP, yP, &state.Xm, &state.Zm, &state.Xm1, &state.Zm1)

	var zInv field.Element
	zInv.Invert(Z)
	var x, y field.Element
	x.Multiply(X, &zInv)
	y.Multiply(Y, &zInv)
	return x.Normalize(&x), y.Normalize(&y)
}

// LadderState exposes the raw ladder terminal (X_m, Z_m, X_{m+1}, Z_{m+1})
// for callers, such as the isomorphism layer's Okeya-Sakurai recovery,
// that need more than the affine x-coordinate.
type LadderState struct {
	Xm, Zm, Xm1, Zm1 field.Element
}

// Ladder runs the constant-time Montgomery ladder of §4.3 on the clamped
// scalar e and the affine x-coordinate x, and returns the terminal state.
func Ladder(e *[32]byte, x *field.Element) LadderState {
	q := xz{}
	q.X.Set(x)
	q.Z.One()

	pm, pm1 := ladder(e, &q)
	return LadderState{Xm: pm.X, Zm: pm.Z, Xm1: pm1.X, Zm1: pm1.Z}
}
