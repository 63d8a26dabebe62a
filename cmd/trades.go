package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/costbasis"
	"github.com/etnz/costbasis/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// tradeFlags holds the flags common to buy and sell.
type tradeFlags struct {
	symbol   string
	quantity string
	price    string
}

func (c *tradeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Symbol of the security (e.g. AAPL)")
	f.StringVar(&c.quantity, "q", "", "Quantity exchanged")
	f.StringVar(&c.price, "p", "", "Unit price")
}

// trade builds the trade described by the flags.
func (c *tradeFlags) trade(side costbasis.Side) (costbasis.Trade, error) {
	var t costbasis.Trade
	if c.symbol == "" {
		return t, usagef("-s flag is required")
	}
	q, err := costbasis.ParseQuantity(c.quantity)
	if err != nil {
		return t, usagef("invalid quantity %q: %w", c.quantity, err)
	}
	if !q.IsPositive() {
		return t, usagef("quantity must be positive, got %v", q)
	}
	p, err := costbasis.ParseMoney(c.price)
	if err != nil {
		return t, usagef("invalid price %q: %w", c.price, err)
	}
	return costbasis.Trade{Symbol: c.symbol, Side: side, Quantity: q, Price: p}, nil
}

// record appends a trade to the trade log if the log can absorb it.
func record(a *app, t costbasis.Trade) error {
	trades, err := a.decodeTrades()
	if err != nil {
		return err
	}
	// Whether a sell is covered does not depend on the method, check it
	// with the configured one.
	if _, err := costbasis.Realize(a.cfg.Method, append(trades, t)); err != nil {
		return fmt.Errorf("trade rejected: %w", err)
	}
	if err := a.appendTrades(t); err != nil {
		return err
	}
	a.log.Debug("trade recorded", zap.Stringer("trade", t))
	fmt.Fprintln(stdout, renderer.Trade(t, a.cfg.Currency))
	return nil
}

type buyCmd struct {
	tradeFlags
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "append a buy to the trade log" }
func (*buyCmd) Usage() string {
	return `cbs buy -s <symbol> -q <quantity> -p <price>

  Appends a buy to the trade log.
`
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return execute(c.Name(), func(a *app) error {
		t, err := c.trade(costbasis.Buy)
		if err != nil {
			return err
		}
		return record(a, t)
	})
}

type sellCmd struct {
	tradeFlags
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "append a sell to the trade log" }
func (*sellCmd) Usage() string {
	return `cbs sell -s <symbol> -q <quantity> -p <price>

  Appends a sell to the trade log. The sell is rejected if it exceeds the
  quantity held.
`
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return execute(c.Name(), func(a *app) error {
		t, err := c.trade(costbasis.Sell)
		if err != nil {
			return err
		}
		return record(a, t)
	})
}
