// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package c25519 is the public façade of §6.3: a set of fixed entry
// points, each taking and returning the 32-byte little-endian encodings
// of §6.1, composed from the field, scalar, curve25519, edwards25519,
// wei25519, morph and ecdsa packages.
package c25519

import (
	"github.com/ncme/c25519/curve25519"
	"github.com/ncme/c25519/ecdsa"
	"github.com/ncme/c25519/edwards25519"
	"github.com/ncme/c25519/field"
	"github.com/ncme/c25519/morph"
	"github.com/ncme/c25519/scalar"
	"github.com/ncme/c25519/wei25519"
)

func elem(b [32]byte) *field.Element {
	e, _ := new(field.Element).SetBytes(b[:])
	return e
}

func bytesOf(e *field.Element) [32]byte {
	var out [32]byte
	copy(out[:], e.Bytes())
	return out
}

func sc(b [32]byte) *scalar.Scalar {
	s, _ := new(scalar.Scalar).SetCanonicalBytes(b[:])
	return s
}

func scBytesOf(s *scalar.Scalar) [32]byte {
	var out [32]byte
	copy(out[:], s.Bytes())
	return out
}

// Curve25519ScalarMult implements curve25519_scalar_mult: scalar e
// (clamped per RFC 7748 by the caller), x-coordinate q, returns x(e*Q).
func Curve25519ScalarMult(e, q [32]byte) [32]byte {
	return bytesOf(curve25519.ScalarMult(&e, elem(q)))
}

// Curve25519ScalarMultXY implements curve25519_scalar_mult_xy: scalar e,
// affine (xP, yP), returns the affine (xR, yR) of e*P.
func Curve25519ScalarMultXY(e, xP, yP [32]byte) (xR, yR [32]byte) {
	rx, ry := curve25519.ScalarMultXY(&e, elem(xP), elem(yP))
	return bytesOf(rx), bytesOf(ry)
}

// Ed25519ScalarMult implements ed25519_scalar_mult: scalar e, Edwards
// point (ex, ey), returns the affine coordinates of e*P.
func Ed25519ScalarMult(e, ex, ey [32]byte) (rx, ry [32]byte) {
	var p edwards25519.Point
	p.SetAffine(elem(ex), elem(ey))
	var result edwards25519.Point
	result.ScalarMult(&e, &p)
	x, y := result.Affine()
	return bytesOf(x), bytesOf(y)
}

// Ey2Mx, Mx2Ey, Mx2Wx and Wx2Mx implement the coordinate-only maps of
// §4.5.1.
func Ey2Mx(ey [32]byte) [32]byte { return bytesOf(morph.EyToMx(elem(ey))) }
func Mx2Ey(mx [32]byte) [32]byte { return bytesOf(morph.MxToEy(elem(mx))) }
func Mx2Wx(mx [32]byte) [32]byte { return bytesOf(morph.MxToWx(elem(mx))) }
func Wx2Mx(wx [32]byte) [32]byte { return bytesOf(morph.WxToMx(elem(wx))) }

// Ey2Ex implements the ey2ex recovery of §4.5.2.
func Ey2Ex(ey [32]byte, parity byte) (ex [32]byte, ok bool) {
	x, bit := morph.EyToEx(elem(ey), int(parity))
	return bytesOf(x), bit == 1
}

// Wx2Wy implements the wx2wy recovery of §4.5.2. Per §9's Open Question
// resolution, callers composing e->w->Wx2Wy must pass the parity of the
// point's Edwards x-coordinate (see EdwardsParity) as sign.
func Wx2Wy(wx [32]byte, sign byte) (wy [32]byte, ok bool) {
	y, bit := wei25519.Wx2Wy(elem(wx), int(sign))
	return bytesOf(y), bit == 1
}

// EdwardsParity returns the parity bit of an Edwards x-coordinate, for
// use as the sign argument to Wx2Wy.
func EdwardsParity(ex [32]byte) byte {
	return byte(morph.EdwardsParity(elem(ex)))
}

// EToW, WToE, EToM, MToE, MToW and WToM implement the full affine maps
// of §4.5.3.
func EToW(ex, ey [32]byte) (wx, wy [32]byte) {
	x, y := morph.EToW(elem(ex), elem(ey))
	return bytesOf(x), bytesOf(y)
}

func WToE(wx, wy [32]byte) (ex, ey [32]byte) {
	x, y := morph.WToE(elem(wx), elem(wy))
	return bytesOf(x), bytesOf(y)
}

func EToM(ex, ey [32]byte) (mx, my [32]byte) {
	x, y := morph.EToM(elem(ex), elem(ey))
	return bytesOf(x), bytesOf(y)
}

func MToE(mx, my [32]byte) (ex, ey [32]byte) {
	x, y := morph.MToE(elem(mx), elem(my))
	return bytesOf(x), bytesOf(y)
}

func MToW(mx, my [32]byte) (wx, wy [32]byte) {
	x, y := morph.MToW(elem(mx), elem(my))
	return bytesOf(x), bytesOf(y)
}

func WToM(wx, wy [32]byte) (mx, my [32]byte) {
	x, y := morph.WToM(elem(wx), elem(wy))
	return bytesOf(x), bytesOf(y)
}

// ECDSAPubkey implements ecdsa_pubkey: secret d, returns Weierstrass
// (wx, wy).
func ECDSAPubkey(d [32]byte) (wx, wy [32]byte) {
	x, y := ecdsa.Pubkey(sc(d))
	return bytesOf(x), bytesOf(y)
}

// ECDSASign implements ecdsa_sign: d, digest e, nonce k, returns (r, s,
// ok). ok == false signals a bad nonce; the caller should retry with a
// different k.
func ECDSASign(d, e, k [32]byte) (r, s [32]byte, ok bool) {
	rs, ss, bit := ecdsa.Sign(sc(d), sc(k), &e)
	return scBytesOf(rs), scBytesOf(ss), bit == 1
}

// ECDSAVerify implements ecdsa_verify: pubkey (wx, wy), digest e,
// signature (r, s).
func ECDSAVerify(wx, wy, e, r, s [32]byte) bool {
	return ecdsa.Verify(elem(wx), elem(wy), &e, sc(r), sc(s))
}
