package safe

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"safestats/internal/retry"

	"github.com/ethereum/go-ethereum/common"
)

// txPage is one page of the multisig-transactions listing
type txPage struct {
	Count   int           `json:"count"`
	Next    string        `json:"next"`
	Results []Transaction `json:"results"`
}

// TxServiceClient fetches multisig transaction history from the
// Safe Transaction Service REST API
type TxServiceClient struct {
	baseURL    string
	httpClient *http.Client
	strategy   retry.Strategy
}

// NewTxServiceClient creates a client for the given service base URL
func NewTxServiceClient(baseURL string, timeout time.Duration, strategy retry.Strategy) *TxServiceClient {
	return &TxServiceClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		strategy:   strategy,
	}
}

// MultisigTransactions returns the wallet's complete multisig transaction
// history. All pages are fetched and materialized before returning, since
// the statistics need the full sample.
func (c *TxServiceClient) MultisigTransactions(ctx context.Context, address common.Address) ([]Transaction, error) {
	url := fmt.Sprintf("%s/api/v1/safes/%s/multisig-transactions/", c.baseURL, address.Hex())

	var all []Transaction
	pages := 0

	for url != "" {
		var page txPage
		err := c.strategy.Execute(ctx, func() error {
			return c.fetchPage(ctx, url, &page)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch transaction page %d: %w", pages+1, err)
		}

		all = append(all, page.Results...)
		pages++
		url = page.Next
	}

	slog.Info("Transaction history fetched",
		"safe", address.Hex(),
		"transactions", len(all),
		"pages", pages,
	)

	return all, nil
}

// fetchPage performs one page request and decodes the result into page
func (c *TxServiceClient) fetchPage(ctx context.Context, url string, page *txPage) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("transaction service returned status %d", resp.StatusCode)
	}

	*page = txPage{}
	if err := json.NewDecoder(resp.Body).Decode(page); err != nil {
		return fmt.Errorf("failed to decode transaction page: %w", err)
	}

	return nil
}
