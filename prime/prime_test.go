//
// prime_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package prime

import (
	"context"
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

var smallPrimes = []int64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59,
	61, 67, 71, 73, 79, 83, 89, 97, 101, 7919, 104729,
}

// Carmichael numbers defeat Fermat tests for every coprime base.
var carmichaelNumbers = []int64{
	561, 1105, 1729, 2465, 2821, 6601, 8911, 41041, 62745, 63973,
	101101,
}

// Strong pseudoprimes to base 2.
var strongPseudoprimes = []int64{
	2047, 3277, 4033, 4681, 8321, 15841, 29341,
}

func TestSmallPrimes(t *testing.T) {
	for _, p := range smallPrimes {
		ok, err := IsProbablePrime(rand.Reader, big.NewInt(p),
			DefaultRounds)
		require.NoError(t, err)
		require.True(t, ok, "%d is prime", p)
	}
}

func TestTrivialComposites(t *testing.T) {
	for _, n := range []int64{-7, 0, 1, 4, 6, 8, 9, 15, 21, 25, 100} {
		ok, err := IsProbablePrime(rand.Reader, big.NewInt(n),
			DefaultRounds)
		require.NoError(t, err)
		require.False(t, ok, "%d is not prime", n)
	}
}

func TestAdversarialComposites(t *testing.T) {
	composites := append([]int64{}, carmichaelNumbers...)
	composites = append(composites, strongPseudoprimes...)

	for _, n := range composites {
		for trial := 0; trial < 10; trial++ {
			ok, err := IsProbablePrime(rand.Reader, big.NewInt(n),
				DefaultRounds)
			require.NoError(t, err)
			require.False(t, ok, "%d is composite", n)
		}
	}
}

func TestLargeValues(t *testing.T) {
	// Mersenne prime 2^127-1.
	m127, ok := big.NewInt(0).SetString(
		"170141183460469231731687303715884105727", 10)
	require.True(t, ok)

	isPrime, err := IsProbablePrime(rand.Reader, m127, DefaultRounds)
	require.NoError(t, err)
	require.True(t, isPrime)

	// 3 * (2^127-1) is an odd composite of similar magnitude.
	composite := big.NewInt(0).Mul(m127, big.NewInt(3))
	isPrime, err = IsProbablePrime(rand.Reader, composite, DefaultRounds)
	require.NoError(t, err)
	require.False(t, isPrime)
}

func TestSearch(t *testing.T) {
	for _, bits := range []int{16, 32, 128} {
		p, err := Search(context.Background(), rand.Reader, bits)
		require.NoError(t, err)

		// Candidates come from [2^bits, 2^(bits+1)).
		require.Equal(t, bits+1, p.BitLen())
		require.Equal(t, uint(1), p.Bit(0))

		isPrime, err := IsProbablePrime(rand.Reader, p, DefaultRounds)
		require.NoError(t, err)
		require.True(t, isPrime)
	}
}

func TestSearchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Search(ctx, rand.Reader, 128)
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
}

func BenchmarkSearch128(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := Search(context.Background(), rand.Reader, 128)
		if err != nil {
			b.Fatal(err)
		}
	}
}
