package ledger

import (
	"fmt"
	"slices"
	"strconv"
)

// IDGenerator hands out sequential transaction ids.
type IDGenerator struct {
	next int
}

// NewIDGenerator returns a generator whose first id is start.
func NewIDGenerator(start int) *IDGenerator {
	return &IDGenerator{next: start}
}

// Next returns the next id.
func (g *IDGenerator) Next() int {
	id := g.next
	g.next++
	return id
}

// Transaction moves Amount from PayerID to PayeeID.
type Transaction struct {
	ID        int
	Amount    float64
	PayerID   int
	PayeeID   int
	Signature []byte
}

// NewTransaction validates the fields and takes the next id from ids.
func NewTransaction(ids *IDGenerator, cfg Config, amount float64, payerID, payeeID int) (Transaction, error) {
	if amount < 0 {
		return Transaction{}, fmt.Errorf("%w: %f", ErrInvalidAmount, amount)
	}
	for _, id := range []int{payerID, payeeID} {
		if id < 0 || id > cfg.MaxID {
			return Transaction{}, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidID, id, cfg.MaxID)
		}
	}

	return Transaction{
		ID:      ids.Next(),
		Amount:  amount,
		PayerID: payerID,
		PayeeID: payeeID,
	}, nil
}

// Serialise renders the signed fields as id:payer:payee:amount.
func (tx Transaction) Serialise() string {
	return strconv.Itoa(tx.ID) + ":" + strconv.Itoa(tx.PayerID) + ":" + strconv.Itoa(tx.PayeeID) + ":" +
		strconv.FormatFloat(tx.Amount, 'f', AmountPrecision, 64)
}

func (tx Transaction) clone() Transaction {
	tx.Signature = slices.Clone(tx.Signature)
	return tx
}
