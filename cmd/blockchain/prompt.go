package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/markkurossi/tabulate"

	"github.com/TomFardell/blockchain/internal/ledger"
)

const menu = `-----| Blockchain Program |-----
1 - Add transaction
2 - Mine block
3 - List chain
0 - Quit
Enter option > `

type prompt struct {
	in     *bufio.Scanner
	out    io.Writer
	logger *log.Logger
	chain  *ledger.Chain
	ids    *ledger.IDGenerator

	// keys holds the signing key of every payer seen so far.
	keys map[int]fr.Element

	// interruptible lets SIGINT cancel a running mine.
	interruptible bool
}

func newPrompt(in io.Reader, out io.Writer, logger *log.Logger, chain *ledger.Chain) *prompt {
	return &prompt{
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
		chain:  chain,
		ids:    ledger.NewIDGenerator(0),
		keys:   make(map[int]fr.Element),
	}
}

// readLine returns the next trimmed input line. It fails with
// io.ErrUnexpectedEOF when the input ends.
func (p *prompt) readLine(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *prompt) run(ctx context.Context) error {
	for {
		option, err := p.readLine(menu)
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch option {
		case "1":
			err = p.addTransaction()
		case "2":
			p.mine(ctx)
		case "3":
			p.list()
		case "0":
			return nil
		default:
			fmt.Fprintf(p.out, "Unknown option %q.\n", option)
		}
		if err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return nil
			}
			return err
		}
	}
}

func (p *prompt) readID(label string) (int, error) {
	maxID := p.chain.Config().MaxID
	for {
		line, err := p.readLine(label)
		if err != nil {
			return 0, err
		}
		id, err := strconv.Atoi(line)
		if err == nil && id >= 0 && id <= maxID {
			return id, nil
		}
		fmt.Fprintf(p.out, "ID must be a number between 0 and %d.\n", maxID)
	}
}

func (p *prompt) readAmount() (float64, error) {
	for {
		line, err := p.readLine("Enter amount > ")
		if err != nil {
			return 0, err
		}
		amount, err := strconv.ParseFloat(line, 64)
		if err == nil && amount >= 0 {
			return amount, nil
		}
		fmt.Fprintln(p.out, "Amount must be a non-negative number.")
	}
}

func (p *prompt) addTransaction() error {
	payeeID, err := p.readID("Enter payee ID > ")
	if err != nil {
		return err
	}
	payerID, err := p.readID("Enter payer ID > ")
	if err != nil {
		return err
	}
	amount, err := p.readAmount()
	if err != nil {
		return err
	}

	tx, err := ledger.NewTransaction(p.ids, p.chain.Config(), amount, payerID, payeeID)
	if err != nil {
		fmt.Fprintf(p.out, "Transaction rejected: %v\n", err)
		return nil
	}
	sk, err := p.accountKey(payerID)
	if err != nil {
		return err
	}
	if err := ledger.SignTransaction(sk, &tx); err != nil {
		return err
	}
	if err := p.chain.SubmitSigned(ledger.PublicKey(sk), tx); err != nil {
		fmt.Fprintf(p.out, "Transaction rejected: %v\n", err)
		return nil
	}
	p.logger.Printf("transaction %s signed and pending", tx.Serialise())

	fmt.Fprintf(p.out, "Transaction of %.*f from %d to %d added.\n",
		ledger.AmountPrecision, amount, payerID, payeeID)
	return nil
}

// accountKey returns the key of account id, creating it on first use.
func (p *prompt) accountKey(id int) (fr.Element, error) {
	if sk, ok := p.keys[id]; ok {
		return sk, nil
	}
	material, err := ledger.GenerateRandomKeyMaterial(ledger.MinKeyMaterial)
	if err != nil {
		return fr.Element{}, err
	}
	sk, err := ledger.KeyGen(material, []byte("account-"+strconv.Itoa(id)))
	if err != nil {
		return fr.Element{}, err
	}
	p.keys[id] = sk
	p.logger.Printf("created key for account %d", id)
	return sk, nil
}

func (p *prompt) mine(ctx context.Context) {
	if p.interruptible {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, os.Interrupt)
		defer stop()
	}

	start := time.Now()
	block, err := p.chain.Mine(ctx)
	if err != nil {
		fmt.Fprintf(p.out, "Mining failed: %v\n", err)
		return
	}
	p.logger.Printf("block %d mined in %s", block.Index, time.Since(start))
	fmt.Fprintf(p.out, "Mined block %d with nonce %d: %s\n", block.Index, block.Nonce, block.Hash.Hex())
}

func (p *prompt) list() {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Block").SetAlign(tabulate.MR)
	tab.Header("Nonce").SetAlign(tabulate.MR)
	tab.Header("Txs").SetAlign(tabulate.MR)
	tab.Header("Hash").SetAlign(tabulate.ML)

	for _, b := range p.chain.Blocks() {
		row := tab.Row()
		row.Column(strconv.Itoa(b.Index))
		row.Column(strconv.FormatUint(b.Nonce, 10))
		row.Column(strconv.Itoa(len(b.Transactions)))
		row.Column(b.Hash.Hex())
	}
	tab.Print(p.out)

	if pending := len(p.chain.Pending()); pending > 0 {
		fmt.Fprintf(p.out, "%d pending transaction(s)\n", pending)
	}
}
