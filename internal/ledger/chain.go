package ledger

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/TomFardell/blockchain"
	"github.com/TomFardell/blockchain/bitvec"
)

// Chain is an arena of blocks addressed by index together with the pool of
// transactions waiting to be mined. A Chain is not safe for concurrent use.
type Chain struct {
	cfg     Config
	blocks  []Block
	pending []Transaction
}

// NewChain creates a chain holding only the genesis block.
func NewChain(cfg Config) (*Chain, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	zero, err := bitvec.New(blockchain.DigestBits)
	if err != nil {
		return nil, err
	}
	genesis := Block{
		Index:    0,
		Prev:     -1,
		PrevHash: zero,
	}
	genesis.Hash, err = genesis.hash(0)
	if err != nil {
		return nil, err
	}

	return &Chain{
		cfg:    cfg,
		blocks: []Block{genesis},
	}, nil
}

// Config returns the parameters the chain was created with.
func (c *Chain) Config() Config {
	return c.cfg
}

// Len returns the number of blocks, genesis included.
func (c *Chain) Len() int {
	return len(c.blocks)
}

// Block returns the block at index i.
func (c *Chain) Block(i int) (Block, error) {
	if i < 0 || i >= len(c.blocks) {
		return Block{}, fmt.Errorf("%w: %d of %d", ErrBlockOutOfRange, i, len(c.blocks))
	}
	return c.blocks[i].clone(), nil
}

// Blocks returns copies of the blocks in chain order.
func (c *Chain) Blocks() []Block {
	out := make([]Block, len(c.blocks))
	for i := range c.blocks {
		out[i] = c.blocks[i].clone()
	}
	return out
}

// Head returns a copy of the most recent block.
func (c *Chain) Head() Block {
	return c.blocks[len(c.blocks)-1].clone()
}

// Submit adds a copy of tx to the pending pool.
func (c *Chain) Submit(tx Transaction) {
	c.pending = append(c.pending, tx.clone())
}

// SubmitSigned adds tx to the pending pool if it carries a valid signature
// by the holder of pk.
func (c *Chain) SubmitSigned(pk []byte, tx Transaction) error {
	ok, err := VerifyTransaction(pk, tx)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: transaction %d", ErrBadSignature, tx.ID)
	}
	c.Submit(tx)
	return nil
}

// Pending returns copies of the transactions waiting to be mined.
func (c *Chain) Pending() []Transaction {
	return lo.Map(c.pending, func(tx Transaction, _ int) Transaction {
		return tx.clone()
	})
}

// Verify checks every block: its hash must match its contents, mined blocks
// must meet the difficulty, and each block must link to its predecessor.
func (c *Chain) Verify() error {
	for i := range c.blocks {
		b := &c.blocks[i]

		hash, err := b.hash(b.Nonce)
		if err != nil {
			return err
		}
		if !bitvec.Equal(hash, b.Hash) {
			return fmt.Errorf("%w: block %d", ErrBadProof, i)
		}
		if i == 0 {
			continue
		}
		if !blockchain.MeetsDifficulty(b.Hash, c.cfg.Difficulty) {
			return fmt.Errorf("%w: block %d has %d leading zeros, need %d",
				ErrBadProof, i, blockchain.LeadingZeros(b.Hash), c.cfg.Difficulty)
		}
		if b.Prev != i-1 || !bitvec.Equal(b.PrevHash, c.blocks[b.Prev].Hash) {
			return fmt.Errorf("%w: block %d", ErrBrokenLink, i)
		}
	}
	return nil
}
