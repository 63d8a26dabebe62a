package costbasis

import "github.com/google/go-cmp/cmp"

// sampleTrades is the reference trade set used across tests.
func sampleTrades() []Trade {
	return []Trade{
		NewBuy("AAPL", Q(10), M(150)),
		NewBuy("AAPL", Q(5), M(155)),
		NewSell("AAPL", Q(8), M(160)),
		NewBuy("GOOGL", Q(8), M(2000)),
		NewSell("GOOGL", Q(3), M(2100)),
	}
}

// equalMoney compares amounts by value, go-cmp cannot look into decimals.
var equalMoney = cmp.Options{
	cmp.Comparer(func(a, b Money) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Quantity) bool { return a.Equal(b) }),
}

// rounded returns a copy of r with every gain rounded to cents.
func rounded(r Realized) Realized {
	out := make(Realized, len(r))
	for symbol, gain := range r {
		out[symbol] = gain.Round(2)
	}
	return out
}
