package renderer

import (
	"fmt"
	"strings"

	"github.com/mstokes/cgt"
	"github.com/mstokes/cgt/stockplan"
)

// TransactionsMarkdown renders every transaction with its audit trail, the
// narrative explaining how each one was resolved.
func TransactionsMarkdown(result *cgt.Result) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Transactions\n\n")
	for _, tx := range result.Transactions {
		fmt.Fprintf(&b, "- **%s**\n", tx)
		for _, e := range tx.Log() {
			fmt.Fprintf(&b, "  - %s\n", e.Narrative())
		}
	}

	return b.String()
}

// DiagnosticsMarkdown renders the ingestion failures that prevented a
// calculation from running.
func DiagnosticsMarkdown(diags []stockplan.Diagnostic) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Unusable Rows\n\n")
	fmt.Fprint(&b, "The reports contain rows that could not be read. Gains are not\n")
	fmt.Fprint(&b, "computed from a partial history: fix the rows below and retry.\n\n")
	for _, d := range diags {
		fmt.Fprintf(&b, "- %s\n", d)
	}

	return b.String()
}
