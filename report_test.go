package costbasis

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewReport(t *testing.T) {
	trades := append(sampleTrades(), NewBuy("MSFT", Q(2), M(300)))
	report, err := NewReport(FIFO, trades)
	if err != nil {
		t.Fatalf("NewReport() returned unexpected error: %v", err)
	}
	want := &Report{
		Method: FIFO,
		Rows: []ReportRow{
			{Symbol: "AAPL", Realized: M(80), Sold: true, Quantity: Q(7), Cost: M(2*150 + 5*155)},
			{Symbol: "GOOGL", Realized: M(300), Sold: true, Quantity: Q(5), Cost: M(5 * 2000)},
			{Symbol: "MSFT", Quantity: Q(2), Cost: M(600)},
		},
		Matches: []Match{
			{Symbol: "AAPL", Quantity: Q(8), SalePrice: M(160), UnitCost: M(150)},
			{Symbol: "GOOGL", Quantity: Q(3), SalePrice: M(2100), UnitCost: M(2000)},
		},
		Total: M(380),
	}
	if diff := cmp.Diff(want, report, equalMoney); diff != "" {
		t.Errorf("NewReport() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewReport_Error(t *testing.T) {
	trades := []Trade{NewSell("X", Q(1), M(1))}
	if _, err := NewReport(LIFO, trades); !errors.Is(err, ErrInsufficientInventory) {
		t.Errorf("NewReport() error = %v, want %v", err, ErrInsufficientInventory)
	}
}

func TestNewComparison(t *testing.T) {
	c := NewComparison(sampleTrades())
	if len(c.Errors) != 0 {
		t.Fatalf("NewComparison() errors = %v, want none", c.Errors)
	}
	if len(c.Rows) != 2 || c.Rows[0].Symbol != "AAPL" || c.Rows[1].Symbol != "GOOGL" {
		t.Fatalf("NewComparison() rows = %v, want AAPL then GOOGL", c.Rows)
	}
	wantAAPL := map[CostBasisMethod]Money{AverageCost: M(66.67), FIFO: M(80), LIFO: M(55)}
	gotAAPL := make(map[CostBasisMethod]Money)
	for m, v := range c.Rows[0].Realized {
		gotAAPL[m] = v.Round(2)
	}
	if diff := cmp.Diff(wantAAPL, gotAAPL, equalMoney); diff != "" {
		t.Errorf("AAPL mismatch (-want +got):\n%s", diff)
	}
	if !c.Totals[LIFO].Equal(M(355)) {
		t.Errorf("Totals[LIFO] = %v, want 355", c.Totals[LIFO])
	}
}

func TestNewComparison_FailingMethodIsIsolated(t *testing.T) {
	// Sufficiency does not depend on the method, a sell of an unknown symbol
	// fails everywhere and each failure is recorded on its own.
	trades := []Trade{
		NewBuy("X", Q(1), M(10)),
		NewSell("X", Q(1), M(12)),
		NewSell("Y", Q(1), M(12)),
	}
	c := NewComparison(trades)
	for _, m := range Methods() {
		if c.Errors[m] == nil {
			t.Errorf("Errors[%v] = nil, want an error", m)
		}
		if _, ok := c.Totals[m]; ok {
			t.Errorf("Totals[%v] is set for a failing method", m)
		}
	}
	if len(c.Rows) != 0 {
		t.Errorf("Rows = %v, want none", c.Rows)
	}
	if !errors.Is(c.Errors[AverageCost], ErrInsufficientPosition) {
		t.Errorf("Errors[average] = %v, want %v", c.Errors[AverageCost], ErrInsufficientPosition)
	}
}
