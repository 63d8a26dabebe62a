package costbasis

import (
	"fmt"
	"maps"
	"slices"
)

// Realized maps a symbol to its realized gain.
//
// Only symbols that have been sold at least once have an entry: a symbol that
// was only bought is absent, not zero.
type Realized map[string]Money

// Symbols returns the symbols in alphabetical order.
func (r Realized) Symbols() []string {
	return slices.Sorted(maps.Keys(r))
}

// Total returns the sum of the realized gains of all symbols.
func (r Realized) Total() Money {
	var total Money
	for _, gain := range r {
		total = total.Add(gain)
	}
	return total
}

// RealizedAverageCost computes the realized gains of trades using the
// weighted average cost method.
//
// Each symbol keeps a single position and its average cost. A sell that
// exceeds the held position aborts the computation with an
// *InsufficientPositionError.
func RealizedAverageCost(trades []Trade) (Realized, error) {
	return realize(newAverageBook(), trades)
}

// RealizedLIFO computes the realized gains of trades matching each sell
// against the most recently acquired open lots first.
//
// A sell that exceeds the open lots aborts the computation with an
// *InsufficientInventoryError.
func RealizedLIFO(trades []Trade) (Realized, error) {
	return realize(newLotBook(LIFO, func() lotCollection { return &lotStack{} }), trades)
}

// RealizedFIFO computes the realized gains of trades matching each sell
// against the oldest open lots first.
//
// A sell that exceeds the open lots aborts the computation with an
// *InsufficientInventoryError.
func RealizedFIFO(trades []Trade) (Realized, error) {
	return realize(newLotBook(FIFO, func() lotCollection { return &lotQueue{} }), trades)
}

// Realize computes the realized gains of trades using the given method.
func Realize(method CostBasisMethod, trades []Trade) (Realized, error) {
	switch method {
	case AverageCost:
		return RealizedAverageCost(trades)
	case FIFO:
		return RealizedFIFO(trades)
	case LIFO:
		return RealizedLIFO(trades)
	default:
		return nil, fmt.Errorf("unsupported cost basis method: %v", method)
	}
}

// realize applies all trades in order and returns the realized gains.
// There is no partial result: the first failing trade aborts everything.
func realize(b Book, trades []Trade) (Realized, error) {
	for i, t := range trades {
		if _, err := b.Apply(t); err != nil {
			return nil, fmt.Errorf("trade #%d (%v): %w", i+1, t, err)
		}
	}
	return b.Realized(), nil
}
