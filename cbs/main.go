// Command cbs computes the realized gains of a trade log under the weighted
// average cost, FIFO and LIFO cost basis methods.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/costbasis/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Does nothing unless invoked by the shell completion.
	cmd.Completion(commander).Complete("cbs")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
