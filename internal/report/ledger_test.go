package report

import (
	"testing"
	"time"

	"safestats/internal/stats"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSigner = common.HexToAddress("0x1111111111111111111111111111111111111111")

func TestSignerLedgerCounters(t *testing.T) {
	led := NewSignerLedger(testSigner)

	led.RecordSigning()
	led.RecordCreation()
	led.RecordSigning()
	led.RecordExecution()

	assert.Equal(t, 1, led.TxsCreated)
	assert.Equal(t, 2, led.TxsSigned)
	assert.Equal(t, 1, led.TxsExecuted)
}

func TestSignerLedgerLatencyMinutes(t *testing.T) {
	led := NewSignerLedger(testSigner)
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	led.RecordLatency(createdAt, createdAt.Add(300*time.Second))
	led.RecordLatency(createdAt, createdAt.Add(90*time.Second))

	require.Len(t, led.SigningLatencies, 2)
	assert.Equal(t, 5.0, led.SigningLatencies[0])
	assert.Equal(t, 1.5, led.SigningLatencies[1])
}

func TestSignerLedgerNegativeLatencyPassesThrough(t *testing.T) {
	led := NewSignerLedger(testSigner)
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	// Skewed timestamps: signature recorded before creation
	led.RecordLatency(createdAt, createdAt.Add(-120*time.Second))

	require.Len(t, led.SigningLatencies, 1)
	assert.Equal(t, -2.0, led.SigningLatencies[0])
}

func TestSignerLedgerGasConversion(t *testing.T) {
	led := NewSignerLedger(testSigner)

	// 1050000 wei = 1050000e-18 ether, exactly
	led.AddGasSpent(decimal.NewFromInt(1050000))

	expected := decimal.NewFromInt(1050000).Shift(-18)
	assert.True(t, led.GasSpent.Equal(expected), "got %s", led.GasSpent)
}

func TestSignerLedgerGasSumOrderIndependent(t *testing.T) {
	costs := []decimal.Decimal{
		decimal.RequireFromString("480651001934364"),
		decimal.RequireFromString("21000"),
		decimal.RequireFromString("999999999999999999"),
	}

	forward := NewSignerLedger(testSigner)
	for _, c := range costs {
		forward.AddGasSpent(c)
	}

	backward := NewSignerLedger(testSigner)
	for i := len(costs) - 1; i >= 0; i-- {
		backward.AddGasSpent(costs[i])
	}

	assert.True(t, forward.GasSpent.Equal(backward.GasSpent),
		"forward %s != backward %s", forward.GasSpent, backward.GasSpent)
}

func TestSignerLedgerSigningSummaryEmpty(t *testing.T) {
	led := NewSignerLedger(testSigner)

	_, err := led.SigningSummary()
	require.ErrorIs(t, err, stats.ErrEmptySample)
}

func TestSignerLedgerSigningSummary(t *testing.T) {
	led := NewSignerLedger(testSigner)
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	led.RecordLatency(createdAt, createdAt.Add(2*time.Minute))
	led.RecordLatency(createdAt, createdAt.Add(4*time.Minute))

	s, err := led.SigningSummary()
	require.NoError(t, err)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 4.0, s.Max)
	assert.Equal(t, 3.0, s.Mean)
	assert.Equal(t, 3.0, s.Median)
}
