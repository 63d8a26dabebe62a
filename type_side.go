package costbasis

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Side tells whether a trade acquires or disposes of a security.
//
// Side is a closed enumeration: only Buy and Sell are valid. The zero value
// is deliberately invalid so that an uninitialized trade is rejected instead
// of being silently ignored.
type Side int

const (
	// Buy acquires quantity at a price, opening or increasing a position.
	Buy Side = iota + 1
	// Sell disposes of previously acquired quantity, realizing a gain or a loss.
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// Valid reports whether s is Buy or Sell.
func (s Side) Valid() bool { return s == Buy || s == Sell }

// ParseSide parses "buy" or "sell", case-insensitively.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSide, s)
	}
}

// MarshalJSON implements the json.Marshaler interface for Side.
func (s Side) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSide, s)
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for Side.
func (s *Side) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("side must be a string: %w", err)
	}
	v, err := ParseSide(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
