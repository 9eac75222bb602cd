package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"safestats/internal/config"
	"safestats/internal/report"
	"safestats/internal/retry"
	"safestats/internal/safe"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
)

const usageText = `
Usage:
    safestats [flags] <safe_address> <eth_endpoint> [from_block_number]

    where
        safe_address: address of the Gnosis Safe multisig
        eth_endpoint: ETH node endpoint URI
        from_block_number (optional): the starting block number for the data collection

    flags:
        -log-level string    override log level ( debug | info | warn | error )
`

func usage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	// 1. Load configuration
	_ = godotenv.Load()
	cfg := config.Load()

	logLevel := flag.String("log-level", "", "override log level ( debug | info | warn | error )")
	flag.Usage = usage
	flag.Parse()

	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	// 2. Validate arguments
	args := flag.Args()
	if len(args) != 2 && len(args) != 3 {
		fmt.Fprintln(os.Stderr, "Insufficient parameters provided")
		usage()
		os.Exit(2)
	}

	if !common.IsHexAddress(args[0]) {
		fmt.Fprintf(os.Stderr, "Invalid safe address: %s\n", args[0])
		usage()
		os.Exit(2)
	}
	safeAddress := common.HexToAddress(args[0])
	endpoint := args[1]

	var fromBlock int64
	if len(args) == 3 {
		parsed, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil || parsed < 0 {
			fmt.Fprintf(os.Stderr, "Invalid from_block_number: %s\n", args[2])
			usage()
			os.Exit(2)
		}
		fromBlock = parsed
	}

	// 3. Configure logger. The report owns stdout, logs go to stderr.
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	slog.Debug("Configuration loaded",
		"tx_service", cfg.TxServiceURL,
		"eth_endpoint", endpoint,
		"from_block", fromBlock,
	)

	// 4. Connect to the Ethereum node
	ctx := context.Background()
	chain, err := safe.NewChainClient(endpoint)
	if err != nil {
		slog.Error("Failed to connect to eth endpoint", "error", err)
		os.Exit(1)
	}
	defer chain.Close()

	// 5. Create transaction-service client
	strategy := retry.NewStrategy(retry.LoadConfig())
	history := safe.NewTxServiceClient(cfg.TxServiceURL, cfg.HTTPTimeout, strategy)

	// 6. Fetch, aggregate and print the report
	if err := report.Run(ctx, chain, history, safeAddress, fromBlock, os.Stdout); err != nil {
		slog.Error("Report failed", "error", err)
		os.Exit(1)
	}
}
