// Command blockchain is a terminal front end to an in-memory ledger whose
// blocks are sealed with a bit vector SHA-256 proof of work.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"github.com/TomFardell/blockchain/internal/ledger"
)

func main() {
	cfg := ledger.DefaultConfig()
	flag.IntVar(&cfg.Difficulty, "difficulty", cfg.Difficulty,
		"leading zero bits required of a block hash")
	flag.Uint64Var(&cfg.MaxNonce, "max-nonce", cfg.MaxNonce,
		"nonces tried before mining gives up")
	flag.IntVar(&cfg.MaxID, "max-id", cfg.MaxID, "largest account id")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	log.SetFlags(0)
	logger := log.New(io.Discard, "blockchain: ", log.LstdFlags)
	if *verbose {
		logger.SetOutput(os.Stderr)
	}

	chain, err := ledger.NewChain(cfg)
	if err != nil {
		log.Fatal(err)
	}
	logger.Printf("difficulty=%d max-nonce=%d max-id=%d",
		cfg.Difficulty, cfg.MaxNonce, cfg.MaxID)

	p := newPrompt(os.Stdin, os.Stdout, logger, chain)
	p.interruptible = true
	if err := p.run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
