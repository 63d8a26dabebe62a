package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/costbasis"
	"github.com/etnz/costbasis/renderer"
	"github.com/google/subcommands"
)

// demoTrades is the sample trade sequence used by the demo command.
func demoTrades() []costbasis.Trade {
	return []costbasis.Trade{
		costbasis.NewBuy("AAPL", costbasis.Q(10), costbasis.M(150)),
		costbasis.NewBuy("AAPL", costbasis.Q(5), costbasis.M(155)),
		costbasis.NewSell("AAPL", costbasis.Q(8), costbasis.M(160)),
		costbasis.NewBuy("GOOGL", costbasis.Q(8), costbasis.M(2000)),
		costbasis.NewSell("GOOGL", costbasis.Q(3), costbasis.M(2100)),
	}
}

type demoCmd struct{}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "compare the cost basis methods on sample trades" }
func (*demoCmd) Usage() string {
	return `cbs demo

  Runs every cost basis method on a fixed set of sample trades and displays
  the realized gains side by side. The trade log is not read.
`
}

func (c *demoCmd) SetFlags(f *flag.FlagSet) {}

func (c *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return execute(c.Name(), func(a *app) error {
		trades := demoTrades()
		var sb strings.Builder
		fmt.Fprintf(&sb, "# Sample Trades\n\n")
		sb.WriteString(renderer.Trades(trades, a.cfg.Currency))
		if err := a.printMarkdown(sb.String()); err != nil {
			return err
		}
		return compare(a, trades)
	})
}
