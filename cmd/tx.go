package cmd

import (
	"context"
	"flag"

	"github.com/etnz/costbasis"
	"github.com/etnz/costbasis/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	symbol string
	head   int
	tail   int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the trades of the trade log" }
func (*txCmd) Usage() string {
	return `cbs tx [-s <symbol>] [-head <n>] [-tail <n>]

  Lists trades from the trade log, in trade order, with options for filtering and limiting the output.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Show only the trades of this symbol.")
	f.IntVar(&c.head, "head", 0, "Show only the first N trades.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N trades.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return execute(c.Name(), func(a *app) error {
		if c.head > 0 && c.tail > 0 {
			return usagef("-head and -tail flags cannot be used together")
		}

		trades, err := a.decodeTrades()
		if err != nil {
			return err
		}

		var selected []costbasis.Trade
		for _, t := range trades {
			if c.symbol == "" || t.Symbol == c.symbol {
				selected = append(selected, t)
			}
		}
		if c.head > 0 && len(selected) > c.head {
			selected = selected[:c.head]
		}
		if c.tail > 0 && len(selected) > c.tail {
			selected = selected[len(selected)-c.tail:]
		}

		return a.printMarkdown(renderer.Trades(selected, a.cfg.Currency))
	})
}
