//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Binary otdemo runs one 1-out-of-2 oblivious transfer between an
// in-process sender and receiver and prints the wire sequence. The
// -disclose flag additionally logs the intermediate values of both
// parties, including the secrets the protocol normally hides.
package main

import (
	"context"
	"crypto/rand"
	"flag"
	"math/big"
	"os"
	"strconv"

	"github.com/markkurossi/tabulate"
	"github.com/rs/zerolog"

	"github.com/markkurossi/oblivious/ot"
)

func main() {
	bits := flag.Int("bits", 128, "prime bit length")
	m0Flag := flag.Int64("m0", 1234, "message 0")
	m1Flag := flag.Int64("m1", 5678, "message 1")
	bitFlag := flag.Int("b", -1, "choice bit, random when negative")
	disclose := flag.Bool("disclose", false,
		"log intermediate values, including secrets")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if *disclose {
		log = log.Level(zerolog.DebugLevel)
	}

	m0 := big.NewInt(*m0Flag)
	m1 := big.NewInt(*m1Flag)

	sender, err := ot.NewSender(context.Background(), rand.Reader,
		*bits, m0, m1)
	if err != nil {
		log.Fatal().Err(err).Msg("sender setup")
	}
	log.Debug().Msgf("sender messages: %v, %v", m0, m1)

	receiver := ot.NewReceiver(rand.Reader, sender.PublicKey())

	pub := sender.PublicKey()
	log.Debug().Msgf("public key: n=%v e=%v", pub.N, pub.E)

	x0, x1 := sender.Nonces()
	if err := receiver.ReceiveNonces(x0, x1); err != nil {
		log.Fatal().Err(err).Msg("nonces")
	}
	log.Debug().Msgf("nonces: x0=%v x1=%v", x0, x1)

	if *bitFlag < 0 {
		err = receiver.Choose(*bits)
	} else {
		err = receiver.ChooseMessage(*bitFlag, *bits)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("choose")
	}

	v, err := receiver.BlindedChoice()
	if err != nil {
		log.Fatal().Err(err).Msg("blinded choice")
	}
	log.Debug().Msgf("blinded choice v=%v (sender cannot tell which nonce it blinds)", v)

	if err := sender.ReceiveChoice(v); err != nil {
		log.Fatal().Err(err).Msg("receive choice")
	}
	m0p, m1p, err := sender.Response()
	if err != nil {
		log.Fatal().Err(err).Msg("response")
	}
	log.Debug().Msgf("response: m0'=%v m1'=%v", m0p, m1p)

	if _, err := receiver.Resolve(m0p, m1p); err != nil {
		log.Fatal().Err(err).Msg("resolve")
	}
	msg, bit := receiver.Message()
	log.Info().Int("bit", bit).Msgf("receiver resolved message %v", msg)

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Step").SetAlign(tabulate.ML)
	tab.Header("Direction").SetAlign(tabulate.ML)
	tab.Header("Value").SetAlign(tabulate.ML)

	rows := []struct {
		step, dir, value string
	}{
		{"1", "Sender → Receiver", "public key (n, e)"},
		{"2", "Sender → Receiver", "nonces x0=" + x0.String() +
			" x1=" + x1.String()},
		{"3", "Receiver → Sender", "blinded choice v=" + v.String()},
		{"4", "Sender → Receiver", "response m0'=" + m0p.String() +
			" m1'=" + m1p.String()},
		{"5", "Receiver", "resolved m" + strconv.Itoa(bit) +
			"=" + msg.String()},
	}
	for _, r := range rows {
		row := tab.Row()
		row.Column(r.step)
		row.Column(r.dir)
		row.Column(r.value)
	}
	tab.Print(os.Stdout)
}
