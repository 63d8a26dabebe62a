package costbasis

import "fmt"

// CostBasisMethod defines the method for calculating cost basis.
type CostBasisMethod int

const (
	// AverageCost calculates the cost basis by averaging the cost of all shares.
	AverageCost CostBasisMethod = iota
	// FIFO (First-In, First-Out) calculates the cost basis by assuming the first shares purchased are the first ones sold.
	FIFO
	// LIFO (Last-In, First-Out) calculates the cost basis by assuming the last shares purchased are the first ones sold.
	LIFO
)

// Methods returns all the supported methods, in display order.
func Methods() []CostBasisMethod {
	return []CostBasisMethod{AverageCost, FIFO, LIFO}
}

func (m CostBasisMethod) String() string {
	switch m {
	case AverageCost:
		return "average"
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	default:
		return "unknown"
	}
}

// ParseCostBasisMethod parses a string into a CostBasisMethod.
func ParseCostBasisMethod(s string) (CostBasisMethod, error) {
	switch s {
	case "average", "avg":
		return AverageCost, nil
	case "fifo":
		return FIFO, nil
	case "lifo":
		return LIFO, nil
	default:
		return 0, fmt.Errorf("unknown cost basis method: %q", s)
	}
}

// Set implements flag.Value.
func (m *CostBasisMethod) Set(s string) error {
	v, err := ParseCostBasisMethod(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler, used by config decoding.
func (m *CostBasisMethod) UnmarshalText(text []byte) error {
	return m.Set(string(text))
}

// MarshalText implements encoding.TextMarshaler.
func (m CostBasisMethod) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
