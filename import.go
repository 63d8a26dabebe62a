package costbasis

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// ImportMapping tells where trades are in a foreign JSON document, using
// JSONPath expressions.
//
// Trades selects the list of trade records in the document. The other paths
// are evaluated on each record. When Side is empty, the sign of the quantity
// gives the side: negative quantities are sells.
type ImportMapping struct {
	Trades   string `yaml:"trades"`
	Symbol   string `yaml:"symbol"`
	Side     string `yaml:"side"`
	Quantity string `yaml:"quantity"`
	Price    string `yaml:"price"`
}

// DefaultImportMapping matches documents shaped like
// {"trades":[{"symbol":"AAPL","side":"BUY","quantity":10,"price":150}]}.
func DefaultImportMapping() ImportMapping {
	return ImportMapping{
		Trades:   "$.trades[*]",
		Symbol:   "$.symbol",
		Side:     "$.side",
		Quantity: "$.quantity",
		Price:    "$.price",
	}
}

// ImportTrades reads a single JSON document from r and extracts trades from it
// following the mapping. The order of the records is kept.
func ImportTrades(r io.Reader, m ImportMapping) ([]Trade, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("not a correct json document: %w", err)
	}

	jrecords, err := jsonpath.Get(m.Trades, jobj)
	if err != nil {
		return nil, fmt.Errorf("error selecting trades with %q: %w", m.Trades, err)
	}
	records, ok := jrecords.([]any)
	if !ok {
		// a path to a single record
		records = []any{jrecords}
	}

	trades := make([]Trade, 0, len(records))
	for i, record := range records {
		t, err := m.trade(record)
		if err != nil {
			return nil, fmt.Errorf("record #%d: %w", i+1, err)
		}
		trades = append(trades, t)
	}
	return trades, nil
}

// trade extracts a single trade from a record.
func (m ImportMapping) trade(record any) (Trade, error) {
	var t Trade
	symbol, err := lookup(m.Symbol, record)
	if err != nil {
		return t, err
	}
	s, ok := symbol.(string)
	if !ok || s == "" {
		return t, fmt.Errorf("symbol at %q is not a string: %v", m.Symbol, symbol)
	}
	t.Symbol = s

	qty, err := lookupDecimal(m.Quantity, record)
	if err != nil {
		return t, err
	}
	price, err := lookupDecimal(m.Price, record)
	if err != nil {
		return t, err
	}
	t.Price = M(price)

	if m.Side == "" {
		t.Side = Buy
		if qty.IsNegative() {
			t.Side = Sell
		}
		t.Quantity = Q(qty.Abs())
		return t, nil
	}

	jside, err := lookup(m.Side, record)
	if err != nil {
		return t, err
	}
	side, ok := jside.(string)
	if !ok {
		return t, fmt.Errorf("side at %q is not a string: %v", m.Side, jside)
	}
	if t.Side, err = ParseSide(side); err != nil {
		return t, err
	}
	t.Quantity = Q(qty)
	return t, nil
}

// lookup evaluates path on record and returns a single value.
func lookup(path string, record any) (any, error) {
	jval, err := jsonpath.Get(path, record)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return nil, fmt.Errorf("nothing found at %q", path)
		}
		jval = jlist[0]
	}
	return jval, nil
}

// lookupDecimal evaluates path on record and reads a number, either a JSON
// number or a string like "1 234,50".
func lookupDecimal(path string, record any) (decimal.Decimal, error) {
	jval, err := lookup(path, record)
	if err != nil {
		return decimal.Zero, err
	}
	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		sval := strings.ReplaceAll(v, ",", ".")
		sval = strings.ReplaceAll(sval, " ", "")
		d, err := decimal.NewFromString(sval)
		if err != nil {
			return decimal.Zero, fmt.Errorf("value at %q is an invalid number %q: %w", path, v, err)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("value at %q is neither a number nor a string: %v", path, jval)
	}
}
