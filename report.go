package costbasis

import (
	"fmt"
	"maps"
	"slices"
)

// ReportRow holds the figures of a single security in a Report.
type ReportRow struct {
	Symbol   string
	Realized Money    // realized gain since the first trade
	Sold     bool     // true if the security has been sold at least once
	Quantity Quantity // quantity still held
	Cost     Money    // cost basis of the quantity still held
}

// Report is the realized gains of a trade log under one method.
type Report struct {
	Method  CostBasisMethod
	Rows    []ReportRow // sorted by symbol
	Matches []Match     // in trade order
	Total   Money       // total realized gain
}

// NewReport processes trades with the method and reports, for each security
// that has been sold or is still held, its realized gain and its remaining
// cost basis.
func NewReport(method CostBasisMethod, trades []Trade) (*Report, error) {
	book, err := NewBook(method)
	if err != nil {
		return nil, err
	}

	report := &Report{Method: method}
	for i, t := range trades {
		matches, err := book.Apply(t)
		if err != nil {
			return nil, fmt.Errorf("trade #%d (%v): %w", i+1, t, err)
		}
		report.Matches = append(report.Matches, matches...)
	}

	realized := book.Realized()
	rows := make(map[string]*ReportRow)
	for symbol, gain := range realized {
		rows[symbol] = &ReportRow{Symbol: symbol, Realized: gain, Sold: true}
	}
	for _, h := range book.Holdings() {
		row, ok := rows[h.Symbol]
		if !ok {
			row = &ReportRow{Symbol: h.Symbol}
			rows[h.Symbol] = row
		}
		row.Quantity = h.Quantity
		row.Cost = h.Cost
	}
	for _, symbol := range slices.Sorted(maps.Keys(rows)) {
		report.Rows = append(report.Rows, *rows[symbol])
	}
	report.Total = realized.Total()
	return report, nil
}

// ComparisonRow holds the realized gain of a security under each method.
type ComparisonRow struct {
	Symbol   string
	Realized map[CostBasisMethod]Money // absent when the method failed or the security was never sold
}

// Comparison is the realized gains of a trade log under every method.
type Comparison struct {
	Methods []CostBasisMethod
	Rows    []ComparisonRow // sorted by symbol
	Totals  map[CostBasisMethod]Money
	Errors  map[CostBasisMethod]error // methods that could not process the trades
}

// NewComparison processes trades independently with every method.
// A method that fails is reported in Errors and does not affect the others.
func NewComparison(trades []Trade) *Comparison {
	c := &Comparison{
		Methods: Methods(),
		Totals:  make(map[CostBasisMethod]Money),
		Errors:  make(map[CostBasisMethod]error),
	}
	rows := make(map[string]*ComparisonRow)
	for _, method := range c.Methods {
		realized, err := Realize(method, trades)
		if err != nil {
			c.Errors[method] = err
			continue
		}
		for symbol, gain := range realized {
			row, ok := rows[symbol]
			if !ok {
				row = &ComparisonRow{Symbol: symbol, Realized: make(map[CostBasisMethod]Money)}
				rows[symbol] = row
			}
			row.Realized[method] = gain
		}
		c.Totals[method] = realized.Total()
	}
	for _, symbol := range slices.Sorted(maps.Keys(rows)) {
		c.Rows = append(c.Rows, *rows[symbol])
	}
	return c
}
