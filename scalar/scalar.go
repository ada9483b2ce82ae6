// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scalar implements arithmetic modulo n, the order of the
// Ed25519/Curve25519 group, which doubles as the ECDSA scalar field of
// Wei25519.
package scalar

import (
	"encoding/hex"
	"errors"
	"math/big"
)

// N is the group order, n = 2^252 + 27742317777372353535851937790883648493,
// the bit-exact little-endian encoding given in §6.2.
var N = leBytesToBig(mustHex("edd3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010"))

func mustHex(h string) []byte {
	b, err := hex.DecodeString(h)
	if err != nil {
		panic(err)
	}
	return b
}

func leBytesToBig(b []byte) *big.Int {
	n := new(big.Int)
	for i := len(b) - 1; i >= 0; i-- {
		n.Lsh(n, 8)
		n.Or(n, big.NewInt(int64(b[i])))
	}
	return n
}

// Scalar represents an element of Z/nZ. The zero value is a valid zero
// scalar. All arguments and receivers are allowed to alias.
type Scalar struct {
	v big.Int
}

func reduced(v *big.Int) *big.Int {
	return new(big.Int).Mod(v, N)
}

// Zero sets v = 0, and returns v.
func (s *Scalar) Zero() *Scalar {
	s.v.SetInt64(0)
	return s
}

// One sets v = 1, and returns v.
func (s *Scalar) One() *Scalar {
	s.v.SetInt64(1)
	return s
}

// Set sets s = a, and returns s.
func (s *Scalar) Set(a *Scalar) *Scalar {
	s.v.Set(&a.v)
	return s
}

// Add sets s = a + b mod n, and returns s.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	s.v = *reduced(new(big.Int).Add(&a.v, &b.v))
	return s
}

// Subtract sets s = a - b mod n, and returns s.
func (s *Scalar) Subtract(a, b *Scalar) *Scalar {
	s.v = *reduced(new(big.Int).Sub(&a.v, &b.v))
	return s
}

// Negate sets s = -a mod n, and returns s.
func (s *Scalar) Negate(a *Scalar) *Scalar {
	s.v = *reduced(new(big.Int).Neg(&a.v))
	return s
}

// Multiply sets s = a * b mod n, and returns s.
func (s *Scalar) Multiply(a, b *Scalar) *Scalar {
	s.v = *reduced(new(big.Int).Mul(&a.v, &b.v))
	return s
}

// Invert sets s = 1/a mod n, and returns s.
//
// If a == 0, Invert returns s = 0.
func (s *Scalar) Invert(a *Scalar) *Scalar {
	if a.v.Sign() == 0 {
		s.v.SetInt64(0)
		return s
	}
	s.v = *new(big.Int).ModInverse(&a.v, N)
	return s
}

// Equal returns 1 if s and t are equal, and 0 otherwise.
func (s *Scalar) Equal(t *Scalar) int {
	if s.v.Cmp(&t.v) == 0 {
		return 1
	}
	return 0
}

// IsZero returns 1 if s is zero, and 0 otherwise.
func (s *Scalar) IsZero() int {
	if s.v.Sign() == 0 {
		return 1
	}
	return 0
}

// InRange returns 1 if 1 <= s <= n-1, and 0 otherwise. This is the range
// ECDSA requires of r, s and of the private key d (§3).
func (s *Scalar) InRange() int {
	if s.v.Sign() <= 0 {
		return 0
	}
	if s.v.Cmp(N) >= 0 {
		return 0
	}
	return 1
}

// SetCanonicalBytes sets s to x, interpreted as a 32-byte little-endian
// integer, reduced modulo n. Unlike the field layer, scalar inputs need not
// already be less than n; reduction always occurs, matching §4.2's
// from_bytes contract.
func (s *Scalar) SetCanonicalBytes(x []byte) (*Scalar, error) {
	if len(x) != 32 {
		return nil, errors.New("scalar: invalid scalar input size")
	}
	s.v.Set(reduced(leBytesToBig(x)))
	return s, nil
}

// Bytes returns the 32-byte little-endian encoding of the canonical
// representative of s (always < n, per §3).
func (s *Scalar) Bytes() []byte {
	out := make([]byte, 32)
	b := s.v.Bytes() // big-endian, no leading zeros
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
