// Package ledger keeps an append-only chain of blocks of transactions, each
// block sealed by a proof-of-work search over the bit vector SHA-256.
package ledger

import (
	"errors"
	"fmt"
)

const (
	// DefaultDifficulty is the number of leading zero bits a block hash needs.
	DefaultDifficulty = 8

	// DefaultMaxNonce bounds the proof-of-work search.
	DefaultMaxNonce = 1 << 32

	// DefaultMaxID is the largest accepted account id.
	DefaultMaxID = 1023

	// AmountPrecision is the number of decimals kept when an amount is serialised.
	AmountPrecision = 6
)

var (
	ErrInvalidAmount   = errors.New("INVALID: amount must not be negative")
	ErrInvalidID       = errors.New("INVALID: account id out of range")
	ErrInvalidConfig   = errors.New("INVALID: configuration")
	ErrNoTransactions  = errors.New("no pending transactions")
	ErrNonceExhausted  = errors.New("nonce search exhausted")
	ErrBrokenLink      = errors.New("INVALID: block does not link to its predecessor")
	ErrBadProof        = errors.New("INVALID: block hash does not match its contents")
	ErrBadSignature    = errors.New("INVALID: transaction signature")
	ErrBlockOutOfRange = errors.New("block index out of range")
)

// Config holds the ledger parameters.
type Config struct {
	// Difficulty is the number of leading zero bits every mined block hash must have.
	Difficulty int
	// MaxNonce is the number of nonces tried before mining gives up.
	MaxNonce uint64
	// MaxID is the largest valid payer or payee id.
	MaxID int
}

// DefaultConfig returns the parameters used by the command line program.
func DefaultConfig() Config {
	return Config{
		Difficulty: DefaultDifficulty,
		MaxNonce:   DefaultMaxNonce,
		MaxID:      DefaultMaxID,
	}
}

// Validate checks that cfg describes a usable ledger.
func (cfg Config) Validate() error {
	if cfg.Difficulty < 0 || cfg.Difficulty > 256 {
		return fmt.Errorf("%w: difficulty %d not in [0, 256]", ErrInvalidConfig, cfg.Difficulty)
	}
	if cfg.MaxNonce == 0 {
		return fmt.Errorf("%w: max nonce must be positive", ErrInvalidConfig)
	}
	if cfg.MaxID < 0 {
		return fmt.Errorf("%w: max id %d is negative", ErrInvalidConfig, cfg.MaxID)
	}
	return nil
}
