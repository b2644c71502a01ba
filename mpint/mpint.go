//
// mpint.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package mpint implements exact multi-precision integer helpers for
// the RSA and oblivious transfer protocols. All operations allocate
// their results and never modify their arguments, and none of them
// involves floating point.
package mpint

import (
	"math/big"

	"github.com/cockroachdb/errors"
)

// ErrNoInverse signals that a modular inverse does not exist because
// the operands are not coprime.
var ErrNoInverse = errors.New("mpint: modular inverse does not exist")

var one = big.NewInt(1)

// FromBytes creates a big.Int from big-endian data.
func FromBytes(data []byte) *big.Int {
	return big.NewInt(0).SetBytes(data)
}

// Add returns a+b.
func Add(a, b *big.Int) *big.Int {
	return big.NewInt(0).Add(a, b)
}

// Sub returns a-b.
func Sub(a, b *big.Int) *big.Int {
	return big.NewInt(0).Sub(a, b)
}

// Mod returns the non-negative remainder x mod y.
func Mod(x, y *big.Int) *big.Int {
	return big.NewInt(0).Mod(x, y)
}

// Exp returns x^y mod m. A negative exponent is resolved by first
// inverting x mod m; the result is nil if that inverse does not
// exist.
func Exp(x, y, m *big.Int) *big.Int {
	if y.Sign() < 0 {
		inv, err := ModInverse(x, m)
		if err != nil {
			return nil
		}
		return big.NewInt(0).Exp(inv, big.NewInt(0).Neg(y), m)
	}
	return big.NewInt(0).Exp(x, y, m)
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b *big.Int) *big.Int {
	x := big.NewInt(0).Abs(a)
	y := big.NewInt(0).Abs(b)
	for y.Sign() != 0 {
		x, y = y, x.Mod(x, y)
	}
	return x
}

// LCM returns the least common multiple |a*b| / gcd(a, b).
func LCM(a, b *big.Int) *big.Int {
	g := GCD(a, b)
	if g.Sign() == 0 {
		return big.NewInt(0)
	}
	p := big.NewInt(0).Mul(a, b)
	p.Abs(p)
	return p.Div(p, g)
}

// Carmichael returns the Carmichael totient λ(p*q) = lcm(p-1, q-1)
// for distinct primes p and q.
func Carmichael(p, q *big.Int) *big.Int {
	return LCM(Sub(p, one), Sub(q, one))
}

// ModInverse returns x such that (a*x) mod m == 1, computed with the
// extended Euclidean algorithm. It fails with ErrNoInverse when a and
// m are not coprime.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, errors.Wrap(ErrNoInverse, "non-positive modulus")
	}
	// Invariant: s_i * a == r_i (mod m).
	r0 := big.NewInt(0).Mod(a, m)
	r1 := big.NewInt(0).Set(m)
	s0 := big.NewInt(1)
	s1 := big.NewInt(0)

	for r1.Sign() != 0 {
		q := big.NewInt(0).Div(r0, r1)
		r0, r1 = r1, r0.Sub(r0, big.NewInt(0).Mul(q, r1))
		s0, s1 = s1, s0.Sub(s0, big.NewInt(0).Mul(q, s1))
	}
	if r0.Cmp(one) != 0 {
		return nil, errors.Wrapf(ErrNoInverse, "gcd is %s", r0)
	}
	if s0.Sign() < 0 {
		s0.Add(s0, m)
	}
	return s0, nil
}
