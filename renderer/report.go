package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/costbasis"
)

// ReportMarkdown renders the realized gains report of a single method.
// Matches are listed only when withMatches is set and there is at least one.
func ReportMarkdown(r *costbasis.Report, currency string, withMatches bool) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Realized Gains Report\n\n")
	fmt.Fprintf(&b, "Method: %s\n\n", r.Method)

	fmt.Fprint(&b, "## Gains per Security\n\n")
	fmt.Fprintln(&b, "| Security | Realized | Held | Cost Basis |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, row := range r.Rows {
		realized := "n/a"
		if row.Sold {
			realized = row.Realized.SignedFormat(currency)
		}
		fmt.Fprintf(&b, "| %s | %s | %v | %s |\n",
			row.Symbol,
			realized,
			row.Quantity,
			row.Cost.Format(currency),
		)
	}
	fmt.Fprintf(&b, "| **%s** | **%s** | | |\n", "Total", r.Total.SignedFormat(currency))

	if withMatches {
		ConditionalBlock(&b, func(w io.Writer) bool {
			fmt.Fprint(w, "\n## Matches\n\n")
			fmt.Fprintln(w, "| Security | Quantity | Sale Price | Unit Cost | Gain |")
			fmt.Fprintln(w, "|:---|---:|---:|---:|---:|")
			for _, m := range r.Matches {
				fmt.Fprintf(w, "| %s | %v | %s | %s | %s |\n",
					m.Symbol,
					m.Quantity,
					m.SalePrice.Format(currency),
					m.UnitCost.Format(currency),
					m.Gain().SignedFormat(currency),
				)
			}
			return len(r.Matches) > 0
		})
	}

	return b.String()
}
