package costbasis

import (
	"encoding/json"
	"errors"
	"flag"
	"testing"
)

func TestParseSide(t *testing.T) {
	testCases := []struct {
		in      string
		want    Side
		wantErr bool
	}{
		{"buy", Buy, false},
		{"BUY", Buy, false},
		{" Sell ", Sell, false},
		{"SELL", Sell, false},
		{"short", 0, true},
		{"", 0, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseSide(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseSide(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidSide) {
				t.Errorf("ParseSide(%q) error = %v, want %v", tc.in, err, ErrInvalidSide)
			}
			if got != tc.want {
				t.Errorf("ParseSide(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSide_ZeroValueIsInvalid(t *testing.T) {
	var s Side
	if s.Valid() {
		t.Error("zero Side is valid, want invalid")
	}
	if _, err := json.Marshal(s); err == nil {
		t.Error("json.Marshal(zero Side) expected an error, got nil")
	}
}

func TestCostBasisMethod_RoundTrip(t *testing.T) {
	for _, m := range Methods() {
		got, err := ParseCostBasisMethod(m.String())
		if err != nil {
			t.Fatalf("ParseCostBasisMethod(%q) returned unexpected error: %v", m.String(), err)
		}
		if got != m {
			t.Errorf("ParseCostBasisMethod(%q) = %v, want %v", m.String(), got, m)
		}
	}
	if _, err := ParseCostBasisMethod("hifo"); err == nil {
		t.Error("ParseCostBasisMethod(\"hifo\") expected an error, got nil")
	}
}

func TestCostBasisMethod_Flag(t *testing.T) {
	var m CostBasisMethod
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&m, "method", "cost basis method")
	if err := fs.Parse([]string{"-method", "lifo"}); err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}
	if m != LIFO {
		t.Errorf("method = %v, want %v", m, LIFO)
	}
}

func TestMoney_Format(t *testing.T) {
	testCases := []struct {
		amount Money
		code   string
		want   string
	}{
		{M(1234.5), "USD", "$1,234.50"},
		{M(-80), "USD", "-$80.00"},
		{M(66.666666), "", "66.67"},
		{M(-0.004), "", "0.00"},
	}
	for _, tc := range testCases {
		if got := tc.amount.Format(tc.code); got != tc.want {
			t.Errorf("%v.Format(%q) = %q, want %q", tc.amount, tc.code, got, tc.want)
		}
	}
	if got := M(0).SignedFormat("USD"); got != "-" {
		t.Errorf("SignedFormat(0) = %q, want %q", got, "-")
	}
	if got := M(3).SignedFormat(""); got != "+3.00" {
		t.Errorf("SignedFormat(3) = %q, want %q", got, "+3.00")
	}
}

func TestTrade_JSON(t *testing.T) {
	trade := NewSell("AAPL", Q(8), M(160.25))
	data, err := json.Marshal(trade)
	if err != nil {
		t.Fatalf("json.Marshal() returned unexpected error: %v", err)
	}
	want := `{"side":"sell","symbol":"AAPL","quantity":8,"price":160.25}`
	if string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}

	var got Trade
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("json.Unmarshal() returned unexpected error: %v", err)
	}
	if !got.Equal(trade) {
		t.Errorf("json.Unmarshal() = %v, want %v", got, trade)
	}
}

func TestTrade_UnmarshalRejectsMissingFields(t *testing.T) {
	for _, line := range []string{
		`{"symbol":"AAPL","quantity":1,"price":1}`,
		`{"side":"buy","quantity":1,"price":1}`,
		`{"side":"hold","symbol":"AAPL","quantity":1,"price":1}`,
	} {
		var got Trade
		if err := json.Unmarshal([]byte(line), &got); err == nil {
			t.Errorf("json.Unmarshal(%s) expected an error, got %v", line, got)
		}
	}
}
