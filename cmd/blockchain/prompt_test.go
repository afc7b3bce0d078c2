package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/TomFardell/blockchain/internal/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runPrompt(t *testing.T, input string) (*ledger.Chain, string) {
	t.Helper()
	cfg := ledger.DefaultConfig()
	cfg.Difficulty = 2
	chain, err := ledger.NewChain(cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	p := newPrompt(strings.NewReader(input), &out, log.New(io.Discard, "", 0), chain)
	require.NoError(t, p.run(context.Background()))
	return chain, out.String()
}

func TestPromptAddTransaction(t *testing.T) {
	chain, out := runPrompt(t, "1\n7\n3\n2.5\n0\n")

	pending := chain.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, 7, pending[0].PayeeID)
	assert.Equal(t, 3, pending[0].PayerID)
	assert.Equal(t, 2.5, pending[0].Amount)
	assert.Contains(t, out, "Transaction of 2.500000 from 3 to 7 added.")
}

func TestPromptRepromptsInvalidInput(t *testing.T) {
	chain, out := runPrompt(t, "1\nabc\n2000\n7\n3\n-1\nx\n4\n0\n")

	require.Len(t, chain.Pending(), 1)
	assert.Equal(t, 2, strings.Count(out, "ID must be a number between 0 and 1023."))
	assert.Equal(t, 2, strings.Count(out, "Amount must be a non-negative number."))
}

func TestPromptSignsTransactions(t *testing.T) {
	chain, err := ledger.NewChain(ledger.DefaultConfig())
	require.NoError(t, err)

	var out bytes.Buffer
	input := "1\n7\n3\n0\n1\n8\n3\n1\n1\n3\n4\n1\n0\n"
	p := newPrompt(strings.NewReader(input), &out, log.New(io.Discard, "", 0), chain)
	require.NoError(t, p.run(context.Background()))

	pending := chain.Pending()
	require.Len(t, pending, 3)
	assert.Equal(t, 0.0, pending[0].Amount)
	require.Len(t, p.keys, 2)

	for _, tx := range pending {
		sk, ok := p.keys[tx.PayerID]
		require.True(t, ok)
		valid, err := ledger.VerifyTransaction(ledger.PublicKey(sk), tx)
		require.NoError(t, err)
		assert.True(t, valid, "transaction %d", tx.ID)
	}

	other := p.keys[4]
	valid, err := ledger.VerifyTransaction(ledger.PublicKey(other), pending[0])
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestPromptMineAndList(t *testing.T) {
	chain, out := runPrompt(t, "1\n1\n2\n5\n2\n3\n0\n")

	require.Equal(t, 2, chain.Len())
	require.NoError(t, chain.Verify())
	head := chain.Head()
	assert.Contains(t, out, "Mined block 1")
	assert.Contains(t, out, head.Hash.Hex())
	assert.Contains(t, out, "Hash")
}

func TestPromptMineWithoutTransactions(t *testing.T) {
	_, out := runPrompt(t, "2\n0\n")
	assert.Contains(t, out, "Mining failed: no pending transactions")
}

func TestPromptEndOfInput(t *testing.T) {
	chain, out := runPrompt(t, "9\n1\n4\n")
	assert.Contains(t, out, `Unknown option "9".`)
	assert.Empty(t, chain.Pending())
}
