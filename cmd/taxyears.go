package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mstokes/cgt/renderer"
)

// taxYearsCmd holds the flags for the 'taxyears' subcommand.
type taxYearsCmd struct{}

func (*taxYearsCmd) Name() string     { return "taxyears" }
func (*taxYearsCmd) Synopsis() string { return "proceeds and gain totals per UK tax year" }
func (*taxYearsCmd) Usage() string {
	return `cgt taxyears

  Displays total proceeds and total gain grouped by UK tax year
  (6 April to 5 April), the figures a self-assessment return needs.
`
}

func (c *taxYearsCmd) SetFlags(f *flag.FlagSet) {}

func (c *taxYearsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	result, err := loadResult()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing gains: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TaxYearsMarkdown(result))
	return subcommands.ExitSuccess
}
