//
// receiver.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ot

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/cockroachdb/errors"

	"github.com/markkurossi/oblivious/mpint"
	"github.com/markkurossi/oblivious/rsa"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Receiver is the party holding the secret choice bit. The bit and
// the blinding factor k never leave the receiver; the only value it
// sends is the blinded choice, which is indistinguishable from a
// blinding of either nonce. A Receiver serves a single protocol run.
type Receiver struct {
	random  io.Reader
	pub     *rsa.PublicKey
	x0, x1  *big.Int
	bit     int
	k       *big.Int
	v       *big.Int
	message *big.Int
}

// NewReceiver creates a receiver for the sender's public key.
func NewReceiver(random io.Reader, pub *rsa.PublicKey) *Receiver {
	return &Receiver{
		random: random,
		pub:    pub,
	}
}

// ReceiveNonces imports the sender's nonce pair. Step 2 of the
// exchange. Both nonces must lie in [0, n).
func (r *Receiver) ReceiveNonces(x0, x1 *big.Int) error {
	if err := rsa.CheckInField(x0, r.pub.N); err != nil {
		return errors.Wrap(err, "ot: nonce x0")
	}
	if err := rsa.CheckInField(x1, r.pub.N); err != nil {
		return errors.Wrap(err, "ot: nonce x1")
	}
	r.x0 = big.NewInt(0).Set(x0)
	r.x1 = big.NewInt(0).Set(x1)
	return nil
}

// Choose samples a uniform choice bit and fixes it with a blinding
// factor of the given bit length. This is the only point where the
// receiver's intent is set; it is not observable from any message
// the receiver sends.
func (r *Receiver) Choose(bits int) error {
	b, err := rand.Int(r.random, two)
	if err != nil {
		return errors.Wrap(err, "ot: choice bit")
	}
	return r.ChooseMessage(int(b.Int64()), bits)
}

// ChooseMessage fixes the choice bit and samples the blinding factor
// k uniformly from [0, 2^bits]. The bit length must stay below the
// modulus size so that k < n, which the unblinding identity
// (k^e)^d == k (mod n) depends on.
func (r *Receiver) ChooseMessage(bit, bits int) error {
	if r.x0 == nil {
		return errors.Wrap(ErrSequence, "choose before nonces")
	}
	if bit != 0 && bit != 1 {
		return errors.Newf("ot: invalid choice bit %d", bit)
	}
	if bits <= 0 || bits >= r.pub.N.BitLen() {
		return errors.Newf(
			"ot: blinding factor of %d bits vs %d-bit modulus",
			bits, r.pub.N.BitLen())
	}
	max := big.NewInt(0).Lsh(one, uint(bits))
	max.Add(max, one)
	k, err := rand.Int(r.random, max)
	if err != nil {
		return errors.Wrap(err, "ot: blinding factor")
	}
	r.bit = bit
	r.k = k
	return nil
}

// BlindedChoice returns v = (x_b + k^e) mod n. Step 3 of the
// exchange. Without the trapdoor, k^e mod n looks random, so v does
// not reveal which nonce it blinds.
func (r *Receiver) BlindedChoice() (*big.Int, error) {
	if r.k == nil {
		return nil, errors.Wrap(ErrSequence, "blinded choice before choose")
	}
	xb := r.x0
	if r.bit == 1 {
		xb = r.x1
	}
	ke := mpint.Exp(r.k, r.pub.E, r.pub.N)
	r.v = mpint.Mod(mpint.Add(xb, ke), r.pub.N)
	return big.NewInt(0).Set(r.v), nil
}

// Resolve unblinds the chosen slot of the sender's response pair and
// returns the recovered message. Step 5, terminal. The unchosen slot
// is masked by an unrelated field element and stays unrecoverable.
func (r *Receiver) Resolve(m0p, m1p *big.Int) (*big.Int, error) {
	if r.v == nil {
		return nil, errors.Wrap(ErrSequence, "resolve before blinded choice")
	}
	if err := rsa.CheckInField(m0p, r.pub.N); err != nil {
		return nil, errors.Wrap(err, "ot: response m0'")
	}
	if err := rsa.CheckInField(m1p, r.pub.N); err != nil {
		return nil, errors.Wrap(err, "ot: response m1'")
	}
	mbp := m0p
	if r.bit == 1 {
		mbp = m1p
	}
	r.message = mpint.Mod(mpint.Sub(mbp, r.k), r.pub.N)
	return big.NewInt(0).Set(r.message), nil
}

// Message returns the resolved message and the choice bit, or nil
// before the run has completed.
func (r *Receiver) Message() (*big.Int, int) {
	return r.message, r.bit
}
