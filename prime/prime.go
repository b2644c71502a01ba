//
// prime.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package prime implements Miller-Rabin probabilistic primality
// testing and random prime search for RSA key generation.
package prime

import (
	"context"
	"crypto/rand"
	"io"
	"math/big"

	"github.com/cockroachdb/errors"
)

// DefaultRounds is the number of Miller-Rabin witness rounds used by
// Search. Each round fails to detect a composite with probability at
// most 1/4, so 65 rounds push the false-positive probability below
// 2^-128.
const DefaultRounds = 65

// maxAttempts bounds the candidate draws in Search. By the prime
// number theorem a random odd bits-bit number is prime with
// probability about 2/(bits*ln 2), so the cap leaves a wide margin
// for any practical bit length.
const maxAttempts = 16384

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// IsProbablePrime reports whether n is prime with one-sided error: a
// false result is always correct, a true result is wrong with
// probability at most 4^-rounds. The inputs 2 and 3 are prime, and 1
// and even numbers are composite, all without running the
// probabilistic test. Witnesses are drawn from random.
func IsProbablePrime(random io.Reader, n *big.Int, rounds int) (bool, error) {
	if n.Cmp(two) == 0 || n.Cmp(three) == 0 {
		return true, nil
	}
	if n.Cmp(one) <= 0 || n.Bit(0) == 0 {
		return false, nil
	}

	// Decompose n-1 = 2^r * d with d odd.
	nm1 := big.NewInt(0).Sub(n, one)
	d := big.NewInt(0).Set(nm1)
	var r int
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	nm3 := big.NewInt(0).Sub(n, three)
	x := big.NewInt(0)
	for i := 0; i < rounds; i++ {
		// Witness a uniform in [2, n-2].
		a, err := rand.Int(random, nm3)
		if err != nil {
			return false, errors.Wrap(err, "prime: witness")
		}
		a.Add(a, two)

		x.Exp(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nm1) == 0 {
			continue
		}
		witness := true
		for j := 0; j < r-1; j++ {
			x.Mul(x, x)
			x.Mod(x, n)
			if x.Cmp(nm1) == 0 {
				witness = false
				break
			}
		}
		if witness {
			return false, nil
		}
	}
	return true, nil
}

// Search draws uniformly random odd candidates in [2^bits, 2^(bits+1))
// and tests each with DefaultRounds Miller-Rabin rounds until a
// probable prime is found. Cancellation is checked before each
// candidate draw, never in the middle of a candidate's witness
// rounds.
func Search(ctx context.Context, random io.Reader, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, errors.Newf("prime: bit length %d too small", bits)
	}
	lo := big.NewInt(0).Lsh(one, uint(bits))

	for i := 0; i < maxAttempts; i++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "prime: search cancelled")
		}
		off, err := rand.Int(random, lo)
		if err != nil {
			return nil, errors.Wrap(err, "prime: candidate")
		}
		p := off.Add(off, lo)
		p.SetBit(p, 0, 1)

		ok, err := IsProbablePrime(random, p, DefaultRounds)
		if err != nil {
			return nil, err
		}
		if ok {
			return p, nil
		}
	}
	return nil, errors.Newf("prime: no %d-bit prime in %d candidates",
		bits, maxAttempts)
}
