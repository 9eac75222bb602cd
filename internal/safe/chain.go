package safe

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Minimal slice of the Gnosis Safe contract ABI, enough to read its configuration
const safeABI = `[
	{"constant":true,"inputs":[],"name":"getOwners","outputs":[{"name":"","type":"address[]"}],"payable":false,"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"getThreshold","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"VERSION","outputs":[{"name":"","type":"string"}],"payable":false,"stateMutability":"view","type":"function"}
]`

// ChainClient reads Safe wallet configuration from an Ethereum node
type ChainClient struct {
	eth *ethclient.Client
	abi abi.ABI
}

// NewChainClient connects to the given Ethereum node endpoint
func NewChainClient(endpoint string) (*ChainClient, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("eth endpoint is required")
	}

	parsed, err := abi.JSON(strings.NewReader(safeABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse safe abi: %w", err)
	}

	client, err := ethclient.Dial(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to dial eth endpoint: %w", err)
	}

	return &ChainClient{
		eth: client,
		abi: parsed,
	}, nil
}

// SafeInfo fetches the wallet's version, threshold and owner set
func (c *ChainClient) SafeInfo(ctx context.Context, address common.Address) (*Info, error) {
	version, err := c.call(ctx, address, "VERSION")
	if err != nil {
		return nil, err
	}

	threshold, err := c.call(ctx, address, "getThreshold")
	if err != nil {
		return nil, err
	}

	owners, err := c.call(ctx, address, "getOwners")
	if err != nil {
		return nil, err
	}

	info := &Info{
		Address:   address,
		Version:   version[0].(string),
		Threshold: threshold[0].(*big.Int).Uint64(),
		Owners:    owners[0].([]common.Address),
	}

	slog.Debug("Safe configuration fetched",
		"safe", info.Address.Hex(),
		"version", info.Version,
		"threshold", info.Threshold,
		"owners", len(info.Owners),
	)

	return info, nil
}

// call performs a read-only contract call against the Safe
func (c *ChainClient) call(ctx context.Context, to common.Address, method string) ([]interface{}, error) {
	data, err := c.abi.Pack(method)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	raw, err := c.eth.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("%s call failed: %w", method, err)
	}

	out, err := c.abi.Unpack(method, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s result: %w", method, err)
	}

	return out, nil
}

// Close closes the underlying node connection
func (c *ChainClient) Close() {
	c.eth.Close()
}
