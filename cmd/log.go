package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mstokes/cgt/renderer"
)

// logCmd holds the flags for the 'log' subcommand.
type logCmd struct{}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "full audit trail of the calculation" }
func (*logCmd) Usage() string {
	return `cgt log

  Displays every transaction with the matching, pooling and
  corporate-action steps applied to it. Useful to check a figure
  before putting it on a tax return.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	result, err := loadResult()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing gains: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TransactionsMarkdown(result))
	return subcommands.ExitSuccess
}
