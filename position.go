package costbasis

// position is the weighted average cost state of a single security.
//
// averageCost is only meaningful while quantity is positive. It is recomputed
// on every buy and left as is after a sell, even one that closes the position.
type position struct {
	quantity    Quantity
	averageCost Money
}

// buy adds quantity at price and recomputes the average cost.
func (p *position) buy(quantity Quantity, price Money) {
	newQty := p.quantity.Add(quantity)
	// A buy that lands exactly on zero keeps the previous average cost,
	// there is no held quantity to divide by.
	if !newQty.IsZero() {
		p.averageCost = p.averageCost.Mul(p.quantity).Add(price.Mul(quantity)).Div(newQty)
	}
	p.quantity = newQty
}

// sell removes quantity at price and returns the matched portion.
// It fails, leaving p untouched, if quantity exceeds the held position.
func (p *position) sell(symbol string, quantity Quantity, price Money) (Match, error) {
	newQty := p.quantity.Sub(quantity)
	if newQty.IsNegative() {
		return Match{}, &InsufficientPositionError{Symbol: symbol, Held: p.quantity, Quantity: quantity}
	}
	p.quantity = newQty
	return Match{Symbol: symbol, Quantity: quantity, SalePrice: price, UnitCost: p.averageCost}, nil
}
