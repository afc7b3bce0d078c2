package ledger

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/TomFardell/blockchain"
	"github.com/TomFardell/blockchain/bitvec"
)

// Block is one entry of the chain. Prev is the arena index of the previous
// block, or -1 for the genesis block.
type Block struct {
	Index        int
	Prev         int
	PrevHash     *bitvec.BitVector
	Transactions []Transaction
	Nonce        uint64
	Hash         *bitvec.BitVector
}

// Serialise renders the block contents hashed under the given nonce.
func (b *Block) Serialise(nonce uint64) string {
	lines := []string{
		strconv.Itoa(b.Index),
		b.PrevHash.Hex(),
		strconv.FormatUint(nonce, 10),
	}
	lines = append(lines, lo.Map(b.Transactions, func(tx Transaction, _ int) string {
		return tx.Serialise()
	})...)
	return strings.Join(lines, "\n")
}

// hash computes the block hash under the given nonce.
func (b *Block) hash(nonce uint64) (*bitvec.BitVector, error) {
	return blockchain.Hash([]byte(b.Serialise(nonce)))
}

// clone returns a copy of b that shares no memory with it.
func (b *Block) clone() Block {
	out := *b
	out.PrevHash = b.PrevHash.Clone()
	out.Hash = b.Hash.Clone()
	out.Transactions = lo.Map(b.Transactions, func(tx Transaction, _ int) Transaction {
		return tx.clone()
	})
	return out
}
