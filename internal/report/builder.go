package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"safestats/internal/safe"

	"github.com/ethereum/go-ethereum/common"
)

// MetadataProvider fetches a wallet's on-chain configuration
type MetadataProvider interface {
	SafeInfo(ctx context.Context, address common.Address) (*safe.Info, error)
}

// HistoryProvider fetches a wallet's complete multisig transaction history
type HistoryProvider interface {
	MultisigTransactions(ctx context.Context, address common.Address) ([]safe.Transaction, error)
}

// Builder folds a wallet's transaction history into per-signer ledgers and
// wallet-wide aggregates, then renders the text report. One builder serves
// one report run.
type Builder struct {
	info      *safe.Info
	fromBlock int64

	ledgers map[common.Address]*SignerLedger
	order   []common.Address // addresses in first-seen order

	executionLatencies []float64 // minutes, one per eligible transaction
	nonOwnerExecutions int
	eligibleTxs        int
}

// NewBuilder creates a builder for the given wallet configuration.
// Transactions below fromBlock are excluded from all statistics.
func NewBuilder(info *safe.Info, fromBlock int64) *Builder {
	return &Builder{
		info:      info,
		fromBlock: fromBlock,
		ledgers:   make(map[common.Address]*SignerLedger),
	}
}

// ledger returns the ledger for the given address, creating it on first reference
func (b *Builder) ledger(address common.Address) *SignerLedger {
	led, ok := b.ledgers[address]
	if !ok {
		led = NewSignerLedger(address)
		b.ledgers[address] = led
		b.order = append(b.order, address)
	}
	return led
}

// Ingest applies the attribution rules to every eligible transaction, in
// the order the history provider supplied them.
func (b *Builder) Ingest(txs []safe.Transaction) {
	for _, tx := range txs {
		if !tx.Executed || !tx.Successful {
			continue
		}
		if tx.BlockNumber < b.fromBlock {
			continue
		}
		b.eligibleTxs++

		b.executionLatencies = append(b.executionLatencies, minutesBetween(tx.SubmissionDate, tx.ExecutionDate))

		executor := common.HexToAddress(tx.Executor)
		if !b.info.IsOwner(executor) {
			b.nonOwnerExecutions++
		} else {
			led := b.ledger(executor)
			led.RecordExecution()
			led.AddGasSpent(tx.Fee)
		}

		// The service returns confirmations in signing order with the
		// proposer first. That ordering is a trust assumption on the data
		// source; it is made explicit here rather than inside the ledger.
		for i, conf := range tx.Confirmations {
			led := b.ledger(common.HexToAddress(conf.Owner))
			led.RecordSigning()

			isCreator := i == 0
			if isCreator {
				led.RecordCreation()
			} else {
				led.RecordLatency(tx.SubmissionDate, conf.SubmissionDate)
			}
		}
	}
}

// Run fetches the wallet configuration and transaction history, ingests
// the history and writes the report to w.
func Run(ctx context.Context, meta MetadataProvider, history HistoryProvider, address common.Address, fromBlock int64, w io.Writer) error {
	info, err := meta.SafeInfo(ctx, address)
	if err != nil {
		return fmt.Errorf("failed to fetch safe configuration: %w", err)
	}

	txs, err := history.MultisigTransactions(ctx, address)
	if err != nil {
		return fmt.Errorf("failed to fetch transaction history: %w", err)
	}

	b := NewBuilder(info, fromBlock)
	b.Ingest(txs)

	slog.Info("Transaction history ingested",
		"safe", info.Address.Hex(),
		"total_txs", len(txs),
		"eligible_txs", b.eligibleTxs,
		"signers_seen", len(b.order),
	)

	b.Render(w)
	return nil
}
