//
// sender.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ot

import (
	"context"
	"crypto/rand"
	"io"
	"math/big"

	"github.com/cockroachdb/errors"

	"github.com/markkurossi/oblivious/mpint"
	"github.com/markkurossi/oblivious/rsa"
)

// Sender is the party owning the two candidate messages and the RSA
// trapdoor. A Sender serves a single protocol run: the nonces are
// drawn at construction and the unblinding values k0, k1 are cached
// when the blinded choice arrives.
type Sender struct {
	key    *rsa.KeyPair
	pub    *rsa.PublicKey
	m0, m1 *big.Int
	x0, x1 *big.Int
	k0, k1 *big.Int
}

// NewSender generates a fresh RSA key pair from two random primes of
// the given bit length and prepares one transfer of the message pair
// (m0, m1).
func NewSender(ctx context.Context, random io.Reader, primeBits int,
	m0, m1 *big.Int) (*Sender, error) {

	key, err := rsa.GenerateKey(ctx, random, primeBits)
	if err != nil {
		return nil, errors.Wrap(err, "ot: sender key generation")
	}
	return NewSenderKey(random, key, m0, m1)
}

// NewSenderKey prepares one transfer of (m0, m1) under an existing
// key pair. Both messages must lie in [0, n); the nonces x0, x1 are
// drawn uniformly from [0, n).
func NewSenderKey(random io.Reader, key *rsa.KeyPair, m0, m1 *big.Int) (
	*Sender, error) {

	pub := key.Public()
	if err := rsa.CheckInField(m0, pub.N); err != nil {
		return nil, errors.Wrap(err, "ot: m0")
	}
	if err := rsa.CheckInField(m1, pub.N); err != nil {
		return nil, errors.Wrap(err, "ot: m1")
	}
	x0, err := rand.Int(random, pub.N)
	if err != nil {
		return nil, errors.Wrap(err, "ot: nonce x0")
	}
	x1, err := rand.Int(random, pub.N)
	if err != nil {
		return nil, errors.Wrap(err, "ot: nonce x1")
	}
	return &Sender{
		key: key,
		pub: pub,
		m0:  big.NewInt(0).Set(m0),
		m1:  big.NewInt(0).Set(m1),
		x0:  x0,
		x1:  x1,
	}, nil
}

// PublicKey returns the shareable key half. Step 1 of the exchange.
func (s *Sender) PublicKey() *rsa.PublicKey {
	return s.pub
}

// Nonces returns the blinding nonces x0, x1. Step 2 of the exchange.
// The nonces carry no secret and travel in the clear.
func (s *Sender) Nonces() (x0, x1 *big.Int) {
	return big.NewInt(0).Set(s.x0), big.NewInt(0).Set(s.x1)
}

// ReceiveChoice consumes the receiver's blinded choice v and caches
// the unblinding values k_i = (v - x_i)^d mod n. This is the
// trapdoor step: exactly one k_i equals the receiver's blinding
// factor, but nothing here tells the sender which.
func (s *Sender) ReceiveChoice(v *big.Int) error {
	if err := rsa.CheckInField(v, s.pub.N); err != nil {
		return errors.Wrap(err, "ot: blinded choice")
	}
	s.k0 = s.key.Decrypt(mpint.Mod(mpint.Sub(v, s.x0), s.pub.N))
	s.k1 = s.key.Decrypt(mpint.Mod(mpint.Sub(v, s.x1), s.pub.N))
	return nil
}

// Response returns the masked message pair ((m0+k0) mod n,
// (m1+k1) mod n). Step 4 of the exchange. It fails with ErrSequence
// until ReceiveChoice has been called.
func (s *Sender) Response() (m0p, m1p *big.Int, err error) {
	if s.k0 == nil || s.k1 == nil {
		return nil, nil, errors.Wrap(ErrSequence,
			"response before blinded choice")
	}
	m0p = mpint.Mod(mpint.Add(s.m0, s.k0), s.pub.N)
	m1p = mpint.Mod(mpint.Add(s.m1, s.k1), s.pub.N)
	return m0p, m1p, nil
}
