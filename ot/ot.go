//
// ot.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package ot implements the Even-Goldreich-Lempel 1-out-of-2
// oblivious transfer protocol over textbook RSA. The sender owns two
// candidate messages and the RSA trapdoor; the receiver obtains
// exactly the message selected by its secret choice bit. The sender
// never learns the bit and the receiver never learns the other
// message.
//
// One protocol run is the five-step exchange
//
//	Sender -> Receiver: public key (n, e)
//	Sender -> Receiver: nonces (x0, x1)
//	Receiver -> Sender: blinded choice v = (x_b + k^e) mod n
//	Sender -> Receiver: response ((m0+k0) mod n, (m1+k1) mod n)
//	Receiver:           m_b = (response_b - k) mod n
//
// where k_i = (v - x_i)^d mod n. Exactly one k_i equals the
// receiver's blinding factor k; the trapdoor gives the sender no way
// to tell which. Each Sender and Receiver instance serves a single
// run; steps invoked out of order fail with ErrSequence.
package ot

import (
	"github.com/cockroachdb/errors"
)

// ErrSequence signals a protocol step invoked out of order.
var ErrSequence = errors.New("ot: protocol step out of sequence")
