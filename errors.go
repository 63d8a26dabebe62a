package costbasis

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientPosition is matched by errors.Is on every *InsufficientPositionError.
	ErrInsufficientPosition = errors.New("insufficient position")
	// ErrInsufficientInventory is matched by errors.Is on every *InsufficientInventoryError.
	ErrInsufficientInventory = errors.New("insufficient inventory")
	// ErrInvalidSide is returned for a trade that is neither a buy nor a sell.
	ErrInvalidSide = errors.New("invalid trade side")
)

// InsufficientPositionError is returned by the average cost method when a
// sell would drive the held position below zero.
type InsufficientPositionError struct {
	Symbol   string
	Held     Quantity // position before the sell
	Quantity Quantity // quantity the sell tried to dispose of
}

func (e *InsufficientPositionError) Error() string {
	return fmt.Sprintf("cannot sell %v %s: only %v held", e.Quantity, e.Symbol, e.Held)
}

func (e *InsufficientPositionError) Is(target error) bool { return target == ErrInsufficientPosition }

// InsufficientInventoryError is returned by the lot matching methods when a
// sell exceeds the sum of the open lots of its symbol.
type InsufficientInventoryError struct {
	Symbol    string
	Available Quantity // sum of the open lots before the sell
	Quantity  Quantity // quantity the sell tried to dispose of
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("not enough inventory to sell %v %s: only %v in open lots", e.Quantity, e.Symbol, e.Available)
}

func (e *InsufficientInventoryError) Is(target error) bool {
	return target == ErrInsufficientInventory
}
