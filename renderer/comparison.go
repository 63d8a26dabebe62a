package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/costbasis"
)

// ComparisonMarkdown renders the realized gains of every method side by side.
// A method that failed has empty cells and its error is listed below the table.
func ComparisonMarkdown(c *costbasis.Comparison, currency string) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Realized Gains by Cost Basis Method\n\n")

	fmt.Fprint(&b, "| Security |")
	for _, m := range c.Methods {
		fmt.Fprintf(&b, " %s |", m)
	}
	fmt.Fprint(&b, "\n|:---|")
	for range c.Methods {
		fmt.Fprint(&b, "---:|")
	}
	fmt.Fprintln(&b)

	for _, row := range c.Rows {
		fmt.Fprintf(&b, "| %s |", row.Symbol)
		for _, m := range c.Methods {
			fmt.Fprintf(&b, " %s |", cell(row.Realized, m, currency))
		}
		fmt.Fprintln(&b)
	}
	fmt.Fprint(&b, "| **Total** |")
	for _, m := range c.Methods {
		total := cell(c.Totals, m, currency)
		if total != "" {
			total = "**" + total + "**"
		}
		fmt.Fprintf(&b, " %s |", total)
	}
	fmt.Fprintln(&b)

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "\n## Errors\n\n")
		for _, m := range c.Methods {
			if err := c.Errors[m]; err != nil {
				fmt.Fprintf(w, "- %s: %v\n", m, err)
			}
		}
		return len(c.Errors) > 0
	})

	return b.String()
}

func cell(values map[costbasis.CostBasisMethod]costbasis.Money, m costbasis.CostBasisMethod, currency string) string {
	v, ok := values[m]
	if !ok {
		return ""
	}
	return v.SignedFormat(currency)
}
