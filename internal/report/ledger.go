package report

import (
	"time"

	"safestats/internal/stats"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// SignerLedger accumulates activity counters for one signer address over a
// single report run. Ledgers are created lazily by the builder on first
// reference and discarded after rendering.
type SignerLedger struct {
	Address     common.Address
	TxsCreated  int
	TxsSigned   int
	TxsExecuted int
	GasSpent    decimal.Decimal // ether

	// Minutes from transaction creation to signature, only for signings
	// where this signer was not the creator
	SigningLatencies []float64
}

// NewSignerLedger creates an empty ledger for the given address
func NewSignerLedger(address common.Address) *SignerLedger {
	return &SignerLedger{
		Address:  address,
		GasSpent: decimal.Zero,
	}
}

// RecordCreation counts a transaction proposed by this signer
func (l *SignerLedger) RecordCreation() {
	l.TxsCreated++
}

// RecordSigning counts a confirmation by this signer, creation included
func (l *SignerLedger) RecordSigning() {
	l.TxsSigned++
}

// RecordExecution counts a transaction executed by this signer
func (l *SignerLedger) RecordExecution() {
	l.TxsExecuted++
}

// AddGasSpent converts a wei-denominated execution cost to ether and adds
// it to the running total. Decimal arithmetic keeps the sum exact across
// any number of additions.
func (l *SignerLedger) AddGasSpent(wei decimal.Decimal) {
	l.GasSpent = l.GasSpent.Add(wei.Shift(-18))
}

// RecordLatency appends the time from transaction creation to this
// signature, in minutes. Negative durations from skewed timestamps are
// passed through unmodified.
func (l *SignerLedger) RecordLatency(createdAt, signedAt time.Time) {
	l.SigningLatencies = append(l.SigningLatencies, minutesBetween(createdAt, signedAt))
}

// SigningSummary returns summary statistics over the signing latencies.
// Returns stats.ErrEmptySample when the signer has no non-creation signings.
func (l *SignerLedger) SigningSummary() (stats.SummaryStats, error) {
	return stats.Summarize(l.SigningLatencies)
}

func minutesBetween(from, to time.Time) float64 {
	return to.Sub(from).Seconds() / 60
}
