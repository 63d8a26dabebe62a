package cmd

import (
	"context"
	"flag"

	"github.com/etnz/costbasis"
	"github.com/etnz/costbasis/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type compareCmd struct{}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "realized gains under every cost basis method" }
func (*compareCmd) Usage() string {
	return `cbs compare

  Calculates the realized gains of the trade log with every cost basis method
  and displays them side by side.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return execute(c.Name(), func(a *app) error {
		trades, err := a.decodeTrades()
		if err != nil {
			return err
		}
		return compare(a, trades)
	})
}

// compare prints the comparison of all methods over trades.
func compare(a *app, trades []costbasis.Trade) error {
	comparison := costbasis.NewComparison(trades)
	for m, err := range comparison.Errors {
		a.log.Warn("cost basis method failed", zap.Stringer("method", m), zap.Error(err))
	}
	return a.printMarkdown(renderer.ComparisonMarkdown(comparison, a.cfg.Currency))
}
