package costbasis

import (
	"encoding/json"
	"fmt"
)

// Trade is a single buy or sell of a quantity of a security at a unit price.
//
// Trades are plain values: the engines only read them, in the order they are
// given.
type Trade struct {
	Symbol   string   // Symbol identifies the security (e.g. "AAPL").
	Side     Side     // Side is either Buy or Sell.
	Quantity Quantity // Quantity is the number of units exchanged.
	Price    Money    // Price is the execution price of one unit.
}

// NewBuy creates a buy trade.
func NewBuy(symbol string, quantity Quantity, price Money) Trade {
	return Trade{Symbol: symbol, Side: Buy, Quantity: quantity, Price: price}
}

// NewSell creates a sell trade.
func NewSell(symbol string, quantity Quantity, price Money) Trade {
	return Trade{Symbol: symbol, Side: Sell, Quantity: quantity, Price: price}
}

// Amount returns the total value exchanged, quantity times price.
func (t Trade) Amount() Money { return t.Price.Mul(t.Quantity) }

// Equal reports whether t and u describe the same trade.
func (t Trade) Equal(u Trade) bool {
	return t.Symbol == u.Symbol && t.Side == u.Side && t.Quantity.Equal(u.Quantity) && t.Price.Equal(u.Price)
}

func (t Trade) String() string {
	return fmt.Sprintf("%s %v %s @ %v", t.Side, t.Quantity, t.Symbol, t.Price)
}

// MarshalJSON implements the json.Marshaler interface for Trade.
// Keys are always written in the same order so that trade logs diff cleanly.
func (t Trade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("side", t.Side)
	w.Append("symbol", t.Symbol)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Trade.
func (t *Trade) UnmarshalJSON(data []byte) error {
	var temp struct {
		Side     *Side    `json:"side"`
		Symbol   string   `json:"symbol"`
		Quantity Quantity `json:"quantity"`
		Price    Money    `json:"price"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	if temp.Side == nil {
		return fmt.Errorf("%w: missing property %q", ErrInvalidSide, "side")
	}
	if temp.Symbol == "" {
		return fmt.Errorf("missing property %q", "symbol")
	}
	*t = Trade{Symbol: temp.Symbol, Side: *temp.Side, Quantity: temp.Quantity, Price: temp.Price}
	return nil
}
