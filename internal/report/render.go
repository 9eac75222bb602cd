package report

import (
	"fmt"
	"io"
	"strings"

	"safestats/internal/stats"
)

// Render writes the fixed-layout text report. Section order: banner,
// optional from-block note, overview, transaction info, per-signer blocks
// in first-seen order.
func (b *Builder) Render(w io.Writer) {
	banner := strings.Repeat("=", 55)
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "Gnosis Safe: %s\n", b.info.Address.Hex())
	fmt.Fprintln(w, banner)

	if b.fromBlock != 0 {
		fmt.Fprintf(w, "\n*NOTE*: Only transactions from block number %d\n", b.fromBlock)
	}

	fmt.Fprintf(w, "\n** OVERVIEW **\n\n")
	fmt.Fprintf(w, "Contract Version .............. %s\n", b.info.Version)
	fmt.Fprintf(w, "Threshold ..................... %d\n", b.info.Threshold)
	fmt.Fprintf(w, "Signers ....................... %d\n", len(b.info.Owners))
	for _, owner := range b.info.Owners {
		fmt.Fprintf(w, "\t%s\n", owner.Hex())
	}

	fmt.Fprintf(w, "\n** TRANSACTION INFO **\n\n")
	fmt.Fprintf(w, "Num Executed Txs .............. %d\n", b.eligibleTxs)
	fmt.Fprintf(w, "Non-owner Executions .......... %d\n", b.nonOwnerExecutions)

	if len(b.executionLatencies) > 0 {
		summary, err := stats.Summarize(b.executionLatencies)
		if err == nil {
			fmt.Fprintf(w, "Execution Time (%d txs):\n", len(b.executionLatencies))
			fmt.Fprintf(w, "\tMin Time to Execution ....... %.0f mins.\n", summary.Min)
			fmt.Fprintf(w, "\tMax Time to Execution ....... %.0f mins.\n", summary.Max)
			fmt.Fprintf(w, "\tMean Time to Execution ...... %.0f mins.\n", summary.Mean)
			fmt.Fprintf(w, "\tMedian Time to Execution .... %.0f mins.\n", summary.Median)
			fmt.Fprintf(w, "\tStdev Time to Execution ..... %.0f mins.\n", summary.Stdev)
		}
	}

	fmt.Fprintln(w, "Signer Stats")
	for _, address := range b.order {
		led := b.ledgers[address]
		fmt.Fprintf(w, "\tSigner: %s\n", led.Address.Hex())
		fmt.Fprintf(w, "\t\tNum Txs Created ............ %d%s\n", led.TxsCreated, b.pct(led.TxsCreated))
		fmt.Fprintf(w, "\t\tNum Txs Signed ............. %d%s\n", led.TxsSigned, b.pct(led.TxsSigned))

		// An empty latency sample (the signer created every tx they
		// touched) renders as all-zero statistics, keeping the block
		// shape stable across signers.
		var summary stats.SummaryStats
		if s, err := led.SigningSummary(); err == nil {
			summary = s
		}
		fmt.Fprintf(w, "\t\tStatistics for txs signed but not created (%d txs):\n", led.TxsSigned-led.TxsCreated)
		fmt.Fprintf(w, "\t\t\tMin Tx Signing Time ........ %.0f mins.\n", summary.Min)
		fmt.Fprintf(w, "\t\t\tMax Tx Signing Time ........ %.0f mins.\n", summary.Max)
		fmt.Fprintf(w, "\t\t\tMean Tx Signing Time ....... %.0f mins.\n", summary.Mean)
		fmt.Fprintf(w, "\t\t\tMedian Tx Signing Time ..... %.0f mins.\n", summary.Median)
		fmt.Fprintf(w, "\t\t\tStdev Tx Signing Time ...... %.0f mins.\n", summary.Stdev)

		fmt.Fprintf(w, "\t\tNum Txs Executed ........... %d%s\n", led.TxsExecuted, b.pct(led.TxsExecuted))
		fmt.Fprintf(w, "\t\t\tGas Spent .................. %s ETH\n", led.GasSpent.StringFixed(2))
		fmt.Fprintln(w)
	}
}

// pct formats a count as a percentage of the eligible transaction count.
// Suppressed entirely when there are no eligible transactions.
func (b *Builder) pct(n int) string {
	if b.eligibleTxs == 0 {
		return ""
	}
	return fmt.Sprintf(" (%.1f%%)", float64(n)/float64(b.eligibleTxs)*100)
}
