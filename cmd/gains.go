package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mstokes/cgt"
	"github.com/mstokes/cgt/renderer"
)

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct {
	year string
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "capital gain per disposal" }
func (*gainsCmd) Usage() string {
	return `cgt gains [-year <tax year>]

  Calculates and displays the capital gain for each share disposal.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.year, "year", "", "Restrict the report to one tax year, e.g. 2017-2018")
}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	result, err := loadResult()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing gains: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.year != "" {
		result = filterYear(result, c.year)
		if len(result.Gains) == 0 {
			fmt.Fprintf(os.Stderr, "No disposals in tax year %s\n", c.year)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.GainsMarkdown(result))
	return subcommands.ExitSuccess
}

// filterYear keeps only the gains, transactions and summaries of one tax year.
func filterYear(r *cgt.Result, year string) *cgt.Result {
	out := &cgt.Result{Holdings: r.Holdings}
	for _, g := range r.Gains {
		if cgt.TaxYear(g.Date) == year {
			out.Gains = append(out.Gains, g)
		}
	}
	for _, t := range r.Transactions {
		if cgt.TaxYear(t.Date) == year {
			out.Transactions = append(out.Transactions, t)
		}
	}
	for _, y := range r.TaxYears {
		if y.Label == year {
			out.TaxYears = append(out.TaxYears, y)
		}
	}
	return out
}
