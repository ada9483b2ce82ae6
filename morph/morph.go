// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package morph implements the birational maps between the Montgomery
// (Curve25519), twisted Edwards (Ed25519) and short Weierstrass
// (Wei25519) presentations of the same curve, plus Okeya-Sakurai
// y-coordinate recovery from a Montgomery ladder state.
package morph

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

func mustElement(h string) *field.Element {
	e, err := new(field.Element).SetBytes(mustHex(h))
	if err != nil {
		panic(err)
	}
	return e
}

// D is the Ed25519 curve constant.
var D = mustElement("a3785913ca4deb75abd841414d0a700098e879777940c78c73fe6f2bee6c0352")

// EyToMx computes mx = (1+ey)/(1-ey) mod p. Undefined at ey = 1.
func EyToMx(ey *field.Element) *field.Element {
	var num, den, inv field.Element
	num.Add(field.One, ey)
	den.Subtract(field.One, ey)
	inv.Invert(&den)
	return num.Multiply(&num, &inv)
}

// MxToEy computes ey = (mx-1)/(mx+1) mod p. Undefined at mx = -1.
func MxToEy(mx *field.Element) *field.Element {
	var num, den, inv field.Element
	num.Subtract(mx, field.One)
	den.Add(mx, field.One)
	inv.Invert(&den)
	return num.Multiply(&num, &inv)
}

// MxToWx computes wx = mx + delta, or 0 if mx == 0, per the library's
// zero convention of §4.5.1.
func MxToWx(mx *field.Element) *field.Element {
	var shifted, out field.Element
	shifted.Add(mx, field.Delta)
	out.Select(&shifted, field.Zero, 1-mx.IsZero())
	return &out
}

// WxToMx computes mx = wx - delta, or 0 if wx == 0, the inverse
// convention of MxToWx.
func WxToMx(wx *field.Element) *field.Element {
	var shifted, out field.Element
	shifted.Subtract(wx, field.Delta)
	out.Select(&shifted, field.Zero, 1-wx.IsZero())
	return &out
}

// EyToEx recovers the Edwards x-coordinate from y and a parity bit,
// per §4.5.2's ey2ex: c = y^2, b = (1+d*y^2)^-1, a = y^2-1, t = a*b,
// x = sqrt(t) with sign selected so that (x[0] ^ parity) & 1 == 0.
func EyToEx(ey *field.Element, parity int) (x *field.Element, ok int) {
	var y2, dy2, onePlusDy2, b, a, t, root, negRoot field.Element
	y2.Square(ey)
	dy2.Multiply(D, &y2)
	onePlusDy2.Add(field.One, &dy2)
	b.Invert(&onePlusDy2)
	a.Subtract(&y2, field.One)
	t.Multiply(&a, &b)

	_, sqrtOK := root.Sqrt(&t)

	negRoot.Negate(&root)
	rootByte := root.Bytes()[0]
	wantsFlip := int(rootByte^byte(parity)) & 1
	var selected field.Element
	selected.Select(&negRoot, &root, wantsFlip)

	var check field.Element
	check.Square(&selected)
	eqOK := check.Equal(&t)

	return &selected, sqrtOK & eqOK
}

// EdwardsParity returns the parity bit of the Edwards x-coordinate ex,
// the convention this library requires callers to pass into
// wei25519.Wx2Wy when
// composing e->w->wx2wy (§9's Open Question resolution).
func EdwardsParity(ex *field.Element) int {
	return int(ex.Bytes()[0] & 1)
}

// EToW maps a full Edwards affine point to its Weierstrass image:
// wx = (1+ey)/(1-ey) + delta; wy = c*(1+ey)/((1-ey)*ex).
func EToW(ex, ey *field.Element) (wx, wy *field.Element) {
	var onePlusEy, oneMinusEy, invDen, ratio, wxv field.Element
	onePlusEy.Add(field.One, ey)
	oneMinusEy.Subtract(field.One, ey)
	invDen.Invert(&oneMinusEy)
	ratio.Multiply(&onePlusEy, &invDen)
	wxv.Add(&ratio, field.Delta)

	var denom, invDenom, wyv field.Element
	denom.Multiply(&oneMinusEy, ex)
	invDenom.Invert(&denom)
	wyv.Multiply(&onePlusEy, &invDenom)
	wyv.Multiply(&wyv, field.C)

	return &wxv, &wyv
}

// WToE maps a full Weierstrass affine point to its Edwards image:
// pa = 3*wx - A; ex = c*pa/(3*wy); ey = (pa-3)/(pa+3).
func WToE(wx, wy *field.Element) (ex, ey *field.Element) {
	var threeWx, pa field.Element
	threeWx.MulSmall(wx, 3)
	pa.Subtract(&threeWx, field.A)

	var threeWy, invThreeWy, exv field.Element
	threeWy.MulSmall(wy, 3)
	invThreeWy.Invert(&threeWy)
	exv.Multiply(field.C, &pa)
	exv.Multiply(&exv, &invThreeWy)

	var paMinus3, paPlus3, invPaPlus3, eyv field.Element
	paMinus3.Subtract(&pa, field.Three)
	paPlus3.Add(&pa, field.Three)
	invPaPlus3.Invert(&paPlus3)
	eyv.Multiply(&paMinus3, &invPaPlus3)

	return &exv, &eyv
}

// EToM maps a full Edwards affine point to its Montgomery image:
// mx = (1+ey)/(1-ey); my = c*(1+ey)/((1-ey)*ex).
func EToM(ex, ey *field.Element) (mx, my *field.Element) {
	mxv := EyToMx(ey)

	var onePlusEy, oneMinusEy, denom, invDenom, myv field.Element
	onePlusEy.Add(field.One, ey)
	oneMinusEy.Subtract(field.One, ey)
	denom.Multiply(&oneMinusEy, ex)
	invDenom.Invert(&denom)
	myv.Multiply(&onePlusEy, &invDenom)
	myv.Multiply(&myv, field.C)

	return mxv, &myv
}

// MToE maps a full Montgomery affine point to its Edwards image:
// ex = c*mx/my; ey = (mx-1)/(mx+1).
func MToE(mx, my *field.Element) (ex, ey *field.Element) {
	var invMy, exv field.Element
	invMy.Invert(my)
	exv.Multiply(field.C, mx)
	exv.Multiply(&exv, &invMy)

	eyv := MxToEy(mx)
	return &exv, eyv
}

// MToW maps a full Montgomery affine point to its Weierstrass image: the
// y-coordinate is unchanged, x is shifted per MxToWx.
func MToW(mx, my *field.Element) (wx, wy *field.Element) {
	wxv := MxToWx(mx)
	var wyv field.Element
	wyv.Set(my)
	return wxv, &wyv
}

// WToM maps a full Weierstrass affine point to its Montgomery image: the
// y-coordinate is unchanged, x is shifted per WxToMx.
func WToM(wx, wy *field.Element) (mx, my *field.Element) {
	mxv := WxToMx(wx)
	var myv field.Element
	myv.Set(wy)
	return mxv, &myv
}

// MontgomeryRecovery implements the Okeya-Sakurai y-recovery of §4.5.4.
// Given the affine base point (xP, yP), the ladder terminal x(Q) = (XQ,
// ZQ) and x(P+Q) = (XD, ZD), it returns the projective Montgomery point
// (X', Y', Z') representing Q = e*P for the scalar e consumed by the
// ladder that produced (XQ, ZQ, XD, ZD).
func MontgomeryRecovery(xP, yP, XQ, ZQ, XD, ZD *field.Element) (X, Y, Z *field.Element) {
	var v1, v2, v3, v4 field.Element

	v1.Multiply(xP, ZQ)          // 1: v1 = xP*ZQ
	v2.Add(XQ, &v1)              // 2: v2 = XQ+v1
	var xqMinusV1 field.Element
	xqMinusV1.Subtract(XQ, &v1)
	v3.Square(&xqMinusV1)
	v3.Multiply(&v3, XD) // 3: v3 = (XQ-v1)^2 * XD

	v1.MulSmall(ZQ, 973324) // 4: v1 = 2A*ZQ
	v2.Add(&v2, &v1)        // 5: v2 = v2+v1

	v4.Multiply(xP, XQ)
	v4.Add(&v4, ZQ) // 6: v4 = xP*XQ+ZQ

	v2.Multiply(&v2, &v4) // 7: v2 = v2*v4
	v1.Multiply(&v1, ZQ)  // 8: v1 = v1*ZQ
	v2.Subtract(&v2, &v1)
	v2.Multiply(&v2, ZD) // 9: v2 = (v2-v1)*ZD

	var y field.Element
	y.Subtract(&v2, &v3) // 10: Y' = v2-v3

	var yTerm field.Element
	yTerm.MulSmall(yP, 2)
	v1.Multiply(&yTerm, ZQ)
	v1.Multiply(&v1, ZD) // 11: v1 = 2*yP*ZQ*ZD

	var x, z field.Element
	x.Multiply(&v1, XQ) // 12: X' = v1*XQ
	z.Multiply(&v1, ZQ) // 13: Z' = v1*ZQ

	return &x, &y, &z
}
