package cmd

import (
	"context"
	"flag"

	"github.com/etnz/costbasis"
	"github.com/etnz/costbasis/renderer"
	"github.com/google/subcommands"
)

// realizedCmd holds the flags for the 'realized' subcommand.
type realizedCmd struct {
	method  string
	matches bool
}

func (*realizedCmd) Name() string     { return "realized" }
func (*realizedCmd) Synopsis() string { return "realized gains of the trade log" }
func (*realizedCmd) Usage() string {
	return `cbs realized [-method <method>] [-matches]

  Calculates and displays the realized gain and the remaining cost basis of each security.
`
}

func (c *realizedCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.method, "method", "", "Cost basis method (average, fifo, lifo). Defaults to the configured method.")
	f.BoolVar(&c.matches, "matches", false, "Detail how each sell was matched against its cost basis")
}

func (c *realizedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return execute(c.Name(), func(a *app) error {
		method, err := a.method(c.method)
		if err != nil {
			return err
		}
		trades, err := a.decodeTrades()
		if err != nil {
			return err
		}
		report, err := costbasis.NewReport(method, trades)
		if err != nil {
			return err
		}
		return a.printMarkdown(renderer.ReportMarkdown(report, a.cfg.Currency, c.matches))
	})
}
