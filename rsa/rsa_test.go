//
// rsa_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package rsa

import (
	"context"
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/markkurossi/oblivious/mpint"
)

func testKey(t *testing.T, bits int) *KeyPair {
	t.Helper()
	kp, err := GenerateKey(context.Background(), rand.Reader, bits)
	require.NoError(t, err)
	return kp
}

func TestKeyValidity(t *testing.T) {
	for i := 0; i < 3; i++ {
		kp := testKey(t, 64)

		require.Equal(t, int64(1),
			mpint.GCD(kp.e, kp.lambda).Int64())

		// (e*d) mod λ(n) == 1 is the trapdoor precondition.
		ed := mpint.Mod(big.NewInt(0).Mul(kp.e, kp.d), kp.lambda)
		require.Equal(t, int64(1), ed.Int64())

		require.Equal(t, kp.n.BitLen(), kp.KeySize())
		require.True(t, kp.KeySize() >= 2*64)
		require.NotEqual(t, 0, kp.p.Cmp(kp.q))
	}
}

func TestRoundTrip(t *testing.T) {
	kp := testKey(t, 64)
	pub := kp.Public()

	messages := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(1234),
		big.NewInt(0).Sub(pub.N, big.NewInt(1)),
	}
	for i := 0; i < 8; i++ {
		m, err := rand.Int(rand.Reader, pub.N)
		require.NoError(t, err)
		messages = append(messages, m)
	}

	for _, m := range messages {
		c, err := Encrypt(m, pub)
		require.NoError(t, err)
		require.Equal(t, 0, kp.Decrypt(c).Cmp(m))
	}
}

func TestEncryptOutOfField(t *testing.T) {
	kp := testKey(t, 64)
	pub := kp.Public()

	_, err := Encrypt(pub.N, pub)
	require.ErrorIs(t, err, ErrOutOfField)

	_, err = Encrypt(big.NewInt(-1), pub)
	require.ErrorIs(t, err, ErrOutOfField)
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GenerateKey(ctx, rand.Reader, 128)
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSignVerify(t *testing.T) {
	alice := testKey(t, 64)
	bob := testKey(t, 64)

	m := big.NewInt(12345678)
	cipher, sig, err := alice.EncryptAndSign(m, bob.Public())
	require.NoError(t, err)

	valid, plain := bob.DecryptAndVerify(cipher, sig, alice.Public())
	require.True(t, valid)
	require.Equal(t, 0, plain.Cmp(m))
}

func TestSignVerifyTampered(t *testing.T) {
	alice := testKey(t, 64)
	bob := testKey(t, 64)

	m := big.NewInt(12345678)
	cipher, sig, err := alice.EncryptAndSign(m, bob.Public())
	require.NoError(t, err)

	// Flipped ciphertext decrypts to garbage the signature does not
	// cover.
	badCipher := mpint.Mod(mpint.Add(cipher, big.NewInt(1)),
		bob.Public().N)
	valid, _ := bob.DecryptAndVerify(badCipher, sig, alice.Public())
	require.False(t, valid)

	// Flipped signature no longer matches the digest.
	badSig := mpint.Mod(mpint.Add(sig, big.NewInt(1)),
		alice.Public().N)
	valid, plain := bob.DecryptAndVerify(cipher, badSig, alice.Public())
	require.False(t, valid)
	require.Equal(t, 0, plain.Cmp(m))
}

func BenchmarkGenerateKey128(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := GenerateKey(context.Background(), rand.Reader, 128)
		if err != nil {
			b.Fatal(err)
		}
	}
}
