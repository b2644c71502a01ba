//
// rsa.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package rsa implements textbook RSA from first principles: key
// generation from two random primes, raw modular-exponentiation
// encryption, and a hash-and-sign signature pair. There is no
// padding, no blinding, and no side-channel hardening; the package
// exists as the trapdoor primitive of the oblivious transfer
// protocol, not as a production cipher.
package rsa

import (
	"context"
	"io"
	"math/big"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/sha3"

	"github.com/markkurossi/oblivious/mpint"
	"github.com/markkurossi/oblivious/prime"
)

// PublicExponent is the fixed public exponent e.
const PublicExponent = 65537

// maxGenerateAttempts bounds key-generation retries. A retry happens
// only when e is not coprime to λ(n), i.e. when p or q is congruent
// to 1 mod 65537, or when the two prime draws collide.
const maxGenerateAttempts = 64

// ErrOutOfField signals a value outside the field [0, n).
var ErrOutOfField = errors.New("rsa: value out of field")

// PublicKey is the shareable half of a key pair: the modulus n and
// the public exponent e. It is freely copyable.
type PublicKey struct {
	N *big.Int
	E *big.Int
}

// KeyPair holds the full RSA parameters. The private members never
// leave the key pair; only the value returned by Public is ever
// shared.
type KeyPair struct {
	p       *big.Int
	q       *big.Int
	n       *big.Int
	lambda  *big.Int
	e       *big.Int
	d       *big.Int
	keySize int
}

// GenerateKey creates a key pair from two fresh random primes of the
// given bit length, drawn from random. When e is not coprime to the
// Carmichael totient λ(n), both primes are discarded and generation
// retries from scratch; an invalid key pair is never returned. The
// context cancels the prime search between candidate draws.
func GenerateKey(ctx context.Context, random io.Reader, bits int) (
	*KeyPair, error) {

	e := big.NewInt(PublicExponent)

	for i := 0; i < maxGenerateAttempts; i++ {
		p, err := prime.Search(ctx, random, bits)
		if err != nil {
			return nil, err
		}
		q, err := prime.Search(ctx, random, bits)
		if err != nil {
			return nil, err
		}
		if p.Cmp(q) == 0 {
			continue
		}
		lambda := mpint.Carmichael(p, q)
		d, err := mpint.ModInverse(e, lambda)
		if err != nil {
			// gcd(e, λ(n)) != 1: the trapdoor exponent does
			// not exist for these primes.
			continue
		}
		n := big.NewInt(0).Mul(p, q)
		return &KeyPair{
			p:       p,
			q:       q,
			n:       n,
			lambda:  lambda,
			e:       e,
			d:       d,
			keySize: n.BitLen(),
		}, nil
	}
	return nil, errors.Newf("rsa: no valid key pair in %d attempts",
		maxGenerateAttempts)
}

// Public returns the shareable public key.
func (kp *KeyPair) Public() *PublicKey {
	return &PublicKey{
		N: big.NewInt(0).Set(kp.n),
		E: big.NewInt(0).Set(kp.e),
	}
}

// KeySize returns the bit length of the modulus n.
func (kp *KeyPair) KeySize() int {
	return kp.keySize
}

// CheckInField verifies 0 <= v < n.
func CheckInField(v, n *big.Int) error {
	if v.Sign() < 0 || v.Cmp(n) >= 0 {
		return errors.Wrapf(ErrOutOfField,
			"%d-bit value vs %d-bit modulus", v.BitLen(), n.BitLen())
	}
	return nil
}

// Encrypt computes m^e mod n under the recipient's public key. The
// message must lie in [0, n).
func Encrypt(m *big.Int, pub *PublicKey) (*big.Int, error) {
	if err := CheckInField(m, pub.N); err != nil {
		return nil, err
	}
	return mpint.Exp(m, pub.E, pub.N), nil
}

// Decrypt computes c^d mod n with the private exponent.
func (kp *KeyPair) Decrypt(c *big.Int) *big.Int {
	return mpint.Exp(c, kp.d, kp.n)
}

// digest hashes m into the field [0, n) with SHA3-256.
func digest(m, n *big.Int) *big.Int {
	sum := sha3.Sum256(m.Bytes())
	return mpint.Mod(mpint.FromBytes(sum[:]), n)
}

// EncryptAndSign encrypts m for the recipient and signs it with the
// sender's private exponent: signature = H(m)^d mod n where H is
// SHA3-256 reduced into the sender's field.
func (kp *KeyPair) EncryptAndSign(m *big.Int, recipient *PublicKey) (
	cipher, signature *big.Int, err error) {

	cipher, err = Encrypt(m, recipient)
	if err != nil {
		return nil, nil, err
	}
	signature = mpint.Exp(digest(m, kp.n), kp.d, kp.n)
	return cipher, signature, nil
}

// DecryptAndVerify decrypts the ciphertext with the recipient's
// private key and checks the signature against the sender's public
// key. A signature mismatch is not an error: the decrypted plaintext
// is returned with valid=false and the caller decides its
// disposition.
func (kp *KeyPair) DecryptAndVerify(cipher, signature *big.Int,
	sender *PublicKey) (valid bool, plain *big.Int) {

	plain = kp.Decrypt(cipher)
	check := mpint.Exp(signature, sender.E, sender.N)
	valid = digest(plain, sender.N).Cmp(check) == 0
	return valid, plain
}
