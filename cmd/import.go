package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/costbasis"
	"github.com/etnz/costbasis/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// importCmd appends trades extracted from a foreign JSON document.
type importCmd struct {
	file   string
	dryRun bool

	trades   string
	symbol   string
	side     string
	quantity string
	price    string
}

func (*importCmd) Name() string { return "import" }
func (*importCmd) Synopsis() string {
	return "import trades from a JSON document"
}
func (*importCmd) Usage() string {
	return `cbs import -f <file.json> [-trades <path>] [-symbol <path>] [-side <path>] [-quantity <path>] [-price <path>] [-dry-run]

  Extracts trades from a JSON document using JSONPath expressions and appends
  them to the trade log. Paths default to the 'import' section of the
  configuration. An empty -side path reads the side from the sign of the quantity.

  See 'cbs topic import' for details.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "-", "JSON document to import, '-' for stdin")
	f.BoolVar(&c.dryRun, "dry-run", false, "Print the imported trades without appending them")
	f.StringVar(&c.trades, "trades", "", "JSONPath selecting the trade records")
	f.StringVar(&c.symbol, "symbol", "", "JSONPath of the symbol within a record")
	f.StringVar(&c.side, "side", "", "JSONPath of the side within a record")
	f.StringVar(&c.quantity, "quantity", "", "JSONPath of the quantity within a record")
	f.StringVar(&c.price, "price", "", "JSONPath of the unit price within a record")
}

// mapping overrides the configured mapping with the flags that were set.
func (c *importCmd) mapping(f *flag.FlagSet, m costbasis.ImportMapping) costbasis.ImportMapping {
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "trades":
			m.Trades = c.trades
		case "symbol":
			m.Symbol = c.symbol
		case "side":
			m.Side = c.side
		case "quantity":
			m.Quantity = c.quantity
		case "price":
			m.Price = c.price
		}
	})
	return m
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return execute(c.Name(), func(a *app) error {
		var r io.Reader = os.Stdin
		if c.file != "-" {
			file, err := os.Open(c.file)
			if err != nil {
				return fmt.Errorf("cannot open %q: %w", c.file, err)
			}
			defer file.Close()
			r = file
		}

		mapping := c.mapping(f, a.cfg.Import)
		imported, err := costbasis.ImportTrades(r, mapping)
		if err != nil {
			return fmt.Errorf("cannot import %q: %w", c.file, err)
		}
		for i, t := range imported {
			if !t.Quantity.IsPositive() {
				return fmt.Errorf("cannot import %q: record #%d (%v): quantity must be positive", c.file, i+1, t)
			}
		}
		a.log.Debug("trades imported", zap.String("file", c.file), zap.Int("trades", len(imported)))

		trades, err := a.decodeTrades()
		if err != nil {
			return err
		}
		if _, err := costbasis.Realize(a.cfg.Method, append(trades, imported...)); err != nil {
			return fmt.Errorf("import rejected: %w", err)
		}

		if !c.dryRun {
			if err := a.appendTrades(imported...); err != nil {
				return err
			}
		}
		return a.printMarkdown(renderer.Trades(imported, a.cfg.Currency))
	})
}
