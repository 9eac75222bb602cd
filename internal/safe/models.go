package safe

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Info holds the on-chain configuration of a Safe multisig wallet
type Info struct {
	Address   common.Address
	Version   string
	Threshold uint64
	Owners    []common.Address
}

// IsOwner reports whether the given address is in the current owner set
func (i *Info) IsOwner(address common.Address) bool {
	for _, owner := range i.Owners {
		if owner == address {
			return true
		}
	}
	return false
}

// Transaction is one multisig transaction as served by the Safe
// Transaction Service. Only the fields the reporter reads are mapped.
type Transaction struct {
	Safe           string          `json:"safe"`
	Executed       bool            `json:"isExecuted"`
	Successful     bool            `json:"isSuccessful"`
	BlockNumber    int64           `json:"blockNumber"`
	SubmissionDate time.Time       `json:"submissionDate"`
	ExecutionDate  time.Time       `json:"executionDate"`
	Executor       string          `json:"executor"`
	Fee            decimal.Decimal `json:"fee"` // wei
	Nonce          int64           `json:"nonce"`
	TxHash         string          `json:"transactionHash"`
	Confirmations  []Confirmation  `json:"confirmations"`
}

// Confirmation is one signer's timestamped approval of a transaction.
// The service returns confirmations in signing order, proposer first.
type Confirmation struct {
	Owner          string    `json:"owner"`
	SubmissionDate time.Time `json:"submissionDate"`
}
