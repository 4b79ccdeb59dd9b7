// Package renderer builds markdown reports from computation results.
// The markdown is printed to the terminal through glamour by the cgt
// command, or converted to HTML for the web report.
package renderer

import (
	"fmt"
	"strings"

	"github.com/mstokes/cgt"
)

// GainsMarkdown renders the full capital gains report: the per-tax-year
// summary followed by every realized disposal.
func GainsMarkdown(result *cgt.Result) string {
	var b strings.Builder

	fmt.Fprint(&b, "# UK Capital Gains Report\n\n")
	writeTaxYears(&b, result.TaxYears)

	fmt.Fprint(&b, "## Disposals\n\n")
	if len(result.Gains) == 0 {
		fmt.Fprint(&b, "No disposals.\n")
		return b.String()
	}
	fmt.Fprintln(&b, "| Date | Proceeds | Cost | Gain |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, g := range result.Gains {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", g.Date, g.Proceeds, g.Cost, g.Gain().SignedString())
	}

	return b.String()
}

// TaxYearsMarkdown renders only the per-tax-year summary.
func TaxYearsMarkdown(result *cgt.Result) string {
	var b strings.Builder
	fmt.Fprint(&b, "# UK Capital Gains per Tax Year\n\n")
	writeTaxYears(&b, result.TaxYears)
	return b.String()
}

func writeTaxYears(b *strings.Builder, years []cgt.TaxYearSummary) {
	fmt.Fprint(b, "## Tax Years\n\n")
	if len(years) == 0 {
		fmt.Fprint(b, "No realized gains.\n\n")
		return
	}
	fmt.Fprintln(b, "| Tax Year | Proceeds | Gain |")
	fmt.Fprintln(b, "|:---|---:|---:|")
	var proceeds, gain cgt.Money
	for _, y := range years {
		fmt.Fprintf(b, "| %s | %s | %s |\n", y.Label, y.Proceeds, y.Gain.SignedString())
		proceeds = proceeds.Add(y.Proceeds)
		gain = gain.Add(y.Gain)
	}
	fmt.Fprintf(b, "| **Total** | **%s** | **%s** |\n\n", proceeds, gain.SignedString())
}
