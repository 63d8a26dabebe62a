package costbasis

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount: a price, a cost or a gain.
//
// Amounts carry no currency, the engines never convert between currencies.
// A reporting currency is only applied when formatting, see Format.
type Money struct {
	value decimal.Decimal // as major unit value
}

// M returns the amount for a native value.
func M[T number](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses a decimal string like "151.25".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d}, nil
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(amount Money) bool      { return m.value.LessThan(amount.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(n Quantity) Money            { return Money{value: m.value.Mul(n.value)} }
func (m Money) Div(n Quantity) Money            { return Money{value: m.value.Div(n.value)} }
func (m Money) Round(places int32) Money        { return Money{value: m.value.Round(places)} }
func (m Money) String() string                  { return m.value.String() }
func (m Money) StringFixed(places int32) string { return m.value.StringFixed(places) }

// InexactFloat64 returns the nearest float64, for callers that need native arithmetic.
func (m Money) InexactFloat64() float64 { return m.value.InexactFloat64() }

// currency returns the definition of a currency code.
func currency(code string) money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, code).Currency()
}

// Format returns the amount formatted in the given currency (e.g. "$1,234.50").
// An empty code formats the amount with two decimals and no symbol.
func (m Money) Format(code string) string {
	if code == "" {
		return m.value.StringFixed(2)
	}
	cur := currency(code)
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// SignedFormat is like Format with an explicit sign, 0 is represented as "-".
func (m Money) SignedFormat(code string) string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.Format(code)
	}
	return m.Format(code)
}

// MarshalJSON writes the amount as a bare JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal.
func (m *Money) UnmarshalJSON(decimalBytes []byte) error {
	return m.value.UnmarshalJSON(decimalBytes)
}
