package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/mstokes/cgt/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: runs and exits when invoked by the shell,
	// no-op otherwise.
	csv := predict.Files("*.csv")
	completer := &complete.Command{
		Sub: map[string]*complete.Command{
			"gains":    {Flags: map[string]complete.Predictor{"year": predict.Nothing}},
			"taxyears": {},
			"log":      {},
			"serve":    {Flags: map[string]complete.Predictor{"addr": predict.Nothing}},
			"topic":    {Args: predict.Set{"readme", "matching", "taxyears", "reports"}},
		},
		Flags: map[string]complete.Predictor{
			"releases":    csv,
			"withdrawals": csv,
			"actions":     predict.Files("*.json"),
		},
	}
	completer.Complete("cgt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
