//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Binary rsademo generates two key pairs and runs the standalone
// encrypt-and-sign / decrypt-and-verify exchange between them.
package main

import (
	"context"
	"crypto/rand"
	"flag"
	"math/big"
	"os"

	"github.com/rs/zerolog"

	"github.com/markkurossi/oblivious/rsa"
)

func main() {
	bits := flag.Int("bits", 128, "prime bit length")
	plain := flag.Int64("m", 12345678, "plaintext message")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	ctx := context.Background()
	alice, err := rsa.GenerateKey(ctx, rand.Reader, *bits)
	if err != nil {
		log.Fatal().Err(err).Msg("alice key generation")
	}
	bob, err := rsa.GenerateKey(ctx, rand.Reader, *bits)
	if err != nil {
		log.Fatal().Err(err).Msg("bob key generation")
	}

	m := big.NewInt(*plain)
	log.Info().Msgf("original message: %v", m)

	cipher, sig, err := alice.EncryptAndSign(m, bob.Public())
	if err != nil {
		log.Fatal().Err(err).Msg("encrypt and sign")
	}
	log.Info().Msgf("ciphertext: %v", cipher)
	log.Info().Msgf("signature:  %v", sig)

	valid, decrypted := bob.DecryptAndVerify(cipher, sig, alice.Public())
	log.Info().Bool("signature-valid", valid).
		Msgf("bob decrypted: %v", decrypted)
	if !valid || decrypted.Cmp(m) != 0 {
		log.Fatal().Msg("round trip failed")
	}
}
