package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/costbasis"
)

// Trade renders a trade to a sentence.
func Trade(t costbasis.Trade, currency string) string {
	switch t.Side {
	case costbasis.Buy:
		return fmt.Sprintf("Bought %v %s at %s", t.Quantity, t.Symbol, t.Price.Format(currency))
	case costbasis.Sell:
		return fmt.Sprintf("Sold %v %s at %s", t.Quantity, t.Symbol, t.Price.Format(currency))
	default:
		return t.String()
	}
}

// Trades renders a list of trades as a markdown table, in trade order.
func Trades(trades []costbasis.Trade, currency string) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Trades\n\n")
	if len(trades) == 0 {
		fmt.Fprintln(&b, "No trades.")
		return b.String()
	}
	fmt.Fprintln(&b, "| # | Side | Symbol | Quantity | Price | Amount |")
	fmt.Fprintln(&b, "|---:|:---|:---|---:|---:|---:|")
	for i, t := range trades {
		fmt.Fprintf(&b, "| %d | %s | %s | %v | %s | %s |\n",
			i+1,
			t.Side,
			t.Symbol,
			t.Quantity,
			t.Price.Format(currency),
			t.Amount().Format(currency),
		)
	}
	return b.String()
}
