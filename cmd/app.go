// Package cmd implements the CLI application to compute UK capital gains
// from Stock Plan Connect activity reports.
package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/mstokes/cgt"
	"github.com/mstokes/cgt/stockplan"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&gainsCmd{}, "reports")
	c.Register(&taxYearsCmd{}, "reports")
	c.Register(&logCmd{}, "reports")
	c.Register(&serveCmd{}, "web")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var releasesFile = flag.String("releases", "Releases Report.csv", "Path to the Stock Plan Connect releases report")
var withdrawalsFile = flag.String("withdrawals", "Withdrawals Report.csv", "Path to the Stock Plan Connect withdrawals report")
var actionsFile = flag.String("actions", "", "Path to a JSON file overriding the built-in corporate actions")

// loadResult parses the two reports and runs the gains calculation.
// It fails when the reports contain unusable rows: gains computed from a
// partial history would be silently wrong.
func loadResult() (*cgt.Result, error) {
	releases, err := os.Open(*releasesFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open releases report: %w", err)
	}
	defer releases.Close()

	withdrawals, err := os.Open(*withdrawalsFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open withdrawals report: %w", err)
	}
	defer withdrawals.Close()

	txs, diags := stockplan.Parse(releases, withdrawals)
	if len(diags) > 0 {
		for _, d := range diags {
			fmt.Fprintln(os.Stderr, d)
		}
		return nil, fmt.Errorf("%d unusable rows in the reports", len(diags))
	}

	actions, err := loadActions()
	if err != nil {
		return nil, err
	}
	return cgt.Calculate(txs, actions)
}

// loadActions returns the corporate actions for the run: the built-in
// stock-plan facts, unless a JSON override file is given.
func loadActions() (cgt.CorporateActions, error) {
	if *actionsFile == "" {
		return stockplan.CorporateActions(), nil
	}
	data, err := os.ReadFile(*actionsFile)
	if err != nil {
		return nil, fmt.Errorf("cannot read corporate actions %q: %w", *actionsFile, err)
	}
	var actions cgt.CorporateActions
	if err := json.Unmarshal(data, &actions); err != nil {
		return nil, fmt.Errorf("cannot parse corporate actions %q: %w", *actionsFile, err)
	}
	return actions, nil
}

// printMarkdown renders markdown for the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// fall back to the raw markdown, which is readable enough
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
