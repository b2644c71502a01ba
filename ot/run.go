//
// run.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ot

import (
	"context"
	"io"
	"math/big"
)

// Run executes one complete in-process transfer: it creates a sender
// with a fresh key pair from primes of primeBits bits, walks both
// roles through the five-step exchange with the given choice bit,
// and returns the message the receiver recovers. The blinding factor
// uses the same bit length as the primes.
func Run(ctx context.Context, random io.Reader, primeBits int,
	m0, m1 *big.Int, bit int) (*big.Int, error) {

	sender, err := NewSender(ctx, random, primeBits, m0, m1)
	if err != nil {
		return nil, err
	}
	return RunSender(random, sender, primeBits, bit)
}

// RunSender executes one transfer with an existing sender, walking
// both roles through the exchange in order.
func RunSender(random io.Reader, sender *Sender, blindBits, bit int) (
	*big.Int, error) {

	receiver := NewReceiver(random, sender.PublicKey())
	if err := receiver.ReceiveNonces(sender.Nonces()); err != nil {
		return nil, err
	}
	if err := receiver.ChooseMessage(bit, blindBits); err != nil {
		return nil, err
	}
	v, err := receiver.BlindedChoice()
	if err != nil {
		return nil, err
	}
	if err := sender.ReceiveChoice(v); err != nil {
		return nil, err
	}
	m0p, m1p, err := sender.Response()
	if err != nil {
		return nil, err
	}
	return receiver.Resolve(m0p, m1p)
}
