package ledger

import (
	"context"
	"fmt"

	"github.com/TomFardell/blockchain"
	"github.com/TomFardell/blockchain/bitvec"
)

// Mine seals the pending transactions into a new block. It tries nonces
// from zero until the block hash has Difficulty leading zero bits, giving
// up after MaxNonce attempts or when ctx is done. On failure the pending
// pool is left as it was.
func (c *Chain) Mine(ctx context.Context) (Block, error) {
	if len(c.pending) == 0 {
		return Block{}, ErrNoTransactions
	}

	head := c.Head()
	b := Block{
		Index:        len(c.blocks),
		Prev:         head.Index,
		PrevHash:     head.Hash,
		Transactions: c.Pending(),
	}

	nonce, hash, err := search(ctx, &b, c.cfg)
	if err != nil {
		return Block{}, err
	}
	b.Nonce = nonce
	b.Hash = hash

	c.blocks = append(c.blocks, b)
	c.pending = nil
	return b.clone(), nil
}

func search(ctx context.Context, b *Block, cfg Config) (uint64, *bitvec.BitVector, error) {
	for nonce := uint64(0); nonce < cfg.MaxNonce; nonce++ {
		select {
		case <-ctx.Done():
			return 0, nil, ctx.Err()
		default:
		}

		hash, err := b.hash(nonce)
		if err != nil {
			return 0, nil, err
		}
		if blockchain.MeetsDifficulty(hash, cfg.Difficulty) {
			return nonce, hash, nil
		}
	}
	return 0, nil, fmt.Errorf("%w: no hash with %d leading zeros in %d attempts",
		ErrNonceExhausted, cfg.Difficulty, cfg.MaxNonce)
}
