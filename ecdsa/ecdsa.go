// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ecdsa implements the ECDSA signature scheme over Wei25519,
// §4.6, composed from the Edwards engine (for its fast scalar
// multiplication), the isomorphism layer (to move between the Edwards
// and Weierstrass presentations) and the scalar field.
package ecdsa

import (
	"github.com/ncme/c25519/edwards25519"
	"github.com/ncme/c25519/field"
	"github.com/ncme/c25519/morph"
	"github.com/ncme/c25519/scalar"
)

func toArray(b []byte) [32]byte {
	var a [32]byte
	copy(a[:], b)
	return a
}

// deriveZ folds a 32-byte digest e into a scalar representative, per §4.6
// step 4 and the SUPPLEMENTED FEATURES note on ecdsa_sign: e is read as a
// big-endian 256-bit integer and right-shifted by 3 bits — not reduced
// first — and the shifted value, stored little-endian, is then reduced
// modulo n. This retains the leftmost 253 bits of e when e is read
// big-endian.
func deriveZ(e *[32]byte) *scalar.Scalar {
	var shifted [32]byte
	for i := 0; i < 32; i++ {
		var next byte
		if i+1 < 32 {
			next = e[30-i]
		}
		shifted[i] = (e[31-i] >> 3) | ((next & 0x7) << 5)
	}
	z, _ := new(scalar.Scalar).SetCanonicalBytes(shifted[:])
	return z
}

// Pubkey implements ecdsa_pubkey (§6.3): P = d*G_Ed via the Edwards
// engine, unprojected and mapped to the Weierstrass form.
func Pubkey(d *scalar.Scalar) (wx, wy *field.Element) {
	var p edwards25519.Point
	db := toArray(d.Bytes())
	p.ScalarMult(&db, edwards25519.NewGeneratorPoint())
	ex, ey := p.Affine()
	return morph.EToW(ex, ey)
}

// Sign implements ecdsa_sign (§4.6): it returns ok = 0 to signal a bad
// nonce (k == 0, r == 0, or s == 0), matching §7's "retry with a
// different k" contract.
func Sign(d, k *scalar.Scalar, e *[32]byte) (r, s *scalar.Scalar, ok int) {
	if k.IsZero() == 1 {
		return new(scalar.Scalar), new(scalar.Scalar), 0
	}

	var p edwards25519.Point
	kb := toArray(k.Bytes())
	p.ScalarMult(&kb, edwards25519.NewGeneratorPoint())
	ex1, ey1 := p.Affine()
	wx1, _ := morph.EToW(ex1, ey1)

	r, _ = new(scalar.Scalar).SetCanonicalBytes(wx1.Bytes())
	if r.IsZero() == 1 {
		return r, new(scalar.Scalar), 0
	}

	z := deriveZ(e)

	var kInv, rd, sum scalar.Scalar
	kInv.Invert(k)
	rd.Multiply(r, d)
	sum.Add(z, &rd)
	s = new(scalar.Scalar).Multiply(&kInv, &sum)
	if s.IsZero() == 1 {
		return r, s, 0
	}

	return r, s, 1
}

// Verify implements ecdsa_verify (§4.6). It is total: it never panics
// and always returns a boolean, unlike Sign's retry signal.
func Verify(wx, wy *field.Element, e *[32]byte, r, s *scalar.Scalar) bool {
	if r.InRange() == 0 || s.InRange() == 0 {
		return false
	}

	z := deriveZ(e)

	var w, u1, u2 scalar.Scalar
	w.Invert(s)
	u1.Multiply(z, &w)
	u2.Multiply(r, &w)

	qEx, qEy := morph.WToE(wx, wy)
	var q edwards25519.Point
	q.SetAffine(qEx, qEy)

	var u1G, u2Q, sum edwards25519.Point
	u1b := toArray(u1.Bytes())
	u2b := toArray(u2.Bytes())
	u1G.ScalarMult(&u1b, edwards25519.NewGeneratorPoint())
	u2Q.ScalarMult(&u2b, &q)
	sum.Add(&u1G, &u2Q)

	rex, rey := sum.Affine()
	rwx, _ := morph.EToW(rex, rey)
	rScalar, _ := new(scalar.Scalar).SetCanonicalBytes(rwx.Bytes())

	return rScalar.Equal(r) == 1
}
