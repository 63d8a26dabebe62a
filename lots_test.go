package costbasis

import "testing"

func TestLotCollections_ConsumptionOrder(t *testing.T) {
	testCases := []struct {
		name     string
		lots     lotCollection
		wantCost []Money // unit cost of the lots in consumption order
	}{
		{name: "stack", lots: &lotStack{}, wantCost: []Money{M(3), M(2), M(1)}},
		{name: "queue", lots: &lotQueue{}, wantCost: []Money{M(1), M(2), M(3)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for i := 1; i <= 3; i++ {
				tc.lots.push(lot{Quantity: Q(i), Cost: M(i)})
			}
			if got := tc.lots.total(); !got.Equal(Q(6)) {
				t.Errorf("total() = %v, want 6", got)
			}
			if got := costOf(tc.lots.all()); !got.Equal(M(14)) {
				t.Errorf("costOf(all()) = %v, want 14", got)
			}
			for _, want := range tc.wantCost {
				next := tc.lots.next()
				if next == nil {
					t.Fatalf("next() = nil, want a lot with cost %v", want)
				}
				if !next.Cost.Equal(want) {
					t.Errorf("next().Cost = %v, want %v", next.Cost, want)
				}
				tc.lots.drop()
			}
			if next := tc.lots.next(); next != nil {
				t.Errorf("next() = %v on an empty collection, want nil", next)
			}
			if got := tc.lots.total(); !got.IsZero() {
				t.Errorf("total() = %v on an empty collection, want 0", got)
			}
		})
	}
}

func TestLotCollections_PartialConsumptionStaysInPlace(t *testing.T) {
	for _, lots := range []lotCollection{&lotStack{}, &lotQueue{}} {
		lots.push(lot{Quantity: Q(10), Cost: M(5)})
		next := lots.next()
		next.Quantity = next.Quantity.Sub(Q(4))
		if got := lots.next().Quantity; !got.Equal(Q(6)) {
			t.Errorf("%T: remaining quantity = %v, want 6", lots, got)
		}
		if got := len(lots.all()); got != 1 {
			t.Errorf("%T: len(all()) = %d, want 1", lots, got)
		}
	}
}
