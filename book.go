package costbasis

import (
	"fmt"
	"maps"
	"slices"
)

// Match is the part of a sell that has been matched against a cost basis.
//
// The average cost method produces one match per sell, the lot matching
// methods one match per lot (or part of a lot) consumed.
type Match struct {
	Symbol    string
	Quantity  Quantity
	SalePrice Money // price of the sell
	UnitCost  Money // cost basis of one unit
}

// Proceeds returns the revenue of the match.
func (m Match) Proceeds() Money { return m.SalePrice.Mul(m.Quantity) }

// Cost returns the cost basis consumed by the match.
func (m Match) Cost() Money { return m.UnitCost.Mul(m.Quantity) }

// Gain returns the realized gain (or loss, if negative) of the match.
func (m Match) Gain() Money { return m.SalePrice.Sub(m.UnitCost).Mul(m.Quantity) }

// Holding is the open position of a security, valued at cost.
type Holding struct {
	Symbol   string
	Quantity Quantity
	Cost     Money // total cost basis of the held quantity
}

// UnitCost returns the average cost of one held unit.
func (h Holding) UnitCost() Money {
	if h.Quantity.IsZero() {
		return Money{}
	}
	return h.Cost.Div(h.Quantity)
}

// Book applies trades one by one under a cost basis method, keeping the state
// of every security seen so far.
//
// A Book is not safe for concurrent use.
type Book interface {
	// Method returns the cost basis method used by the book.
	Method() CostBasisMethod
	// Apply processes a trade and returns the matches it produced (none for a buy).
	// A failing trade leaves the book unchanged.
	Apply(t Trade) ([]Match, error)
	// Realized returns a copy of the realized gains so far, for each security
	// that has been sold at least once.
	Realized() Realized
	// Holdings returns the non-empty positions, sorted by symbol.
	Holdings() []Holding
}

// NewBook returns an empty Book for the method.
func NewBook(method CostBasisMethod) (Book, error) {
	switch method {
	case AverageCost:
		return newAverageBook(), nil
	case FIFO:
		return newLotBook(FIFO, func() lotCollection { return &lotQueue{} }), nil
	case LIFO:
		return newLotBook(LIFO, func() lotCollection { return &lotStack{} }), nil
	default:
		return nil, fmt.Errorf("unsupported cost basis method: %v", method)
	}
}

// averageBook implements the weighted average cost method.
type averageBook struct {
	positions map[string]*position
	realized  Realized
}

func newAverageBook() *averageBook {
	return &averageBook{
		positions: make(map[string]*position),
		realized:  make(Realized),
	}
}

func (b *averageBook) Method() CostBasisMethod { return AverageCost }

func (b *averageBook) Apply(t Trade) ([]Match, error) {
	switch t.Side {
	case Buy:
		p, ok := b.positions[t.Symbol]
		if !ok {
			p = &position{}
			b.positions[t.Symbol] = p
		}
		p.buy(t.Quantity, t.Price)
		return nil, nil
	case Sell:
		var p position
		if held, ok := b.positions[t.Symbol]; ok {
			p = *held
		}
		m, err := p.sell(t.Symbol, t.Quantity, t.Price)
		if err != nil {
			return nil, err
		}
		b.positions[t.Symbol] = &p
		b.realized[t.Symbol] = b.realized[t.Symbol].Add(m.Gain())
		return []Match{m}, nil
	default:
		return nil, fmt.Errorf("%w: %v for %s", ErrInvalidSide, t.Side, t.Symbol)
	}
}

func (b *averageBook) Realized() Realized { return maps.Clone(b.realized) }

func (b *averageBook) Holdings() []Holding {
	var holdings []Holding
	for _, symbol := range slices.Sorted(maps.Keys(b.positions)) {
		p := b.positions[symbol]
		if p.quantity.IsZero() {
			continue
		}
		holdings = append(holdings, Holding{Symbol: symbol, Quantity: p.quantity, Cost: p.averageCost.Mul(p.quantity)})
	}
	return holdings
}

// lotBook implements the lot matching methods, the lot collection decides
// which lot a sell consumes first.
type lotBook struct {
	method   CostBasisMethod
	newLots  func() lotCollection
	lots     map[string]lotCollection
	realized Realized
}

func newLotBook(method CostBasisMethod, newLots func() lotCollection) *lotBook {
	return &lotBook{
		method:   method,
		newLots:  newLots,
		lots:     make(map[string]lotCollection),
		realized: make(Realized),
	}
}

func (b *lotBook) Method() CostBasisMethod { return b.method }

func (b *lotBook) Apply(t Trade) ([]Match, error) {
	switch t.Side {
	case Buy:
		lots, ok := b.lots[t.Symbol]
		if !ok {
			lots = b.newLots()
			b.lots[t.Symbol] = lots
		}
		lots.push(lot{Quantity: t.Quantity, Cost: t.Price})
		return nil, nil
	case Sell:
		return b.sell(t)
	default:
		return nil, fmt.Errorf("%w: %v for %s", ErrInvalidSide, t.Side, t.Symbol)
	}
}

// sell consumes open lots until the sell quantity is matched.
func (b *lotBook) sell(t Trade) ([]Match, error) {
	lots, ok := b.lots[t.Symbol]
	var available Quantity
	if ok {
		available = lots.total()
	}
	// Checked upfront so that a failing sell consumes nothing.
	if available.LessThan(t.Quantity) {
		return nil, &InsufficientInventoryError{Symbol: t.Symbol, Available: available, Quantity: t.Quantity}
	}

	gain := b.realized[t.Symbol]
	var matches []Match
	remaining := t.Quantity
	for remaining.IsPositive() {
		current := lots.next()
		if current == nil {
			// only reachable with lots of negative quantity
			return nil, &InsufficientInventoryError{Symbol: t.Symbol, Available: available, Quantity: t.Quantity}
		}
		matched := remaining.Min(current.Quantity)
		m := Match{Symbol: t.Symbol, Quantity: matched, SalePrice: t.Price, UnitCost: current.Cost}
		matches = append(matches, m)
		gain = gain.Add(m.Gain())

		remaining = remaining.Sub(matched)
		current.Quantity = current.Quantity.Sub(matched)
		if current.Quantity.IsZero() {
			lots.drop()
		}
	}
	if len(matches) > 0 {
		b.realized[t.Symbol] = gain
	}
	return matches, nil
}

func (b *lotBook) Realized() Realized { return maps.Clone(b.realized) }

func (b *lotBook) Holdings() []Holding {
	var holdings []Holding
	for _, symbol := range slices.Sorted(maps.Keys(b.lots)) {
		open := b.lots[symbol].all()
		if len(open) == 0 {
			continue
		}
		holdings = append(holdings, Holding{Symbol: symbol, Quantity: sumLots(open), Cost: costOf(open)})
	}
	return holdings
}
