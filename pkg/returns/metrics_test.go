package returns

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/OverlordBaconPants/rei-analyzer/pkg/money"
)

func assertFinite(t *testing.T, label string, r Ratio, want float64, tolerance float64) {
	t.Helper()
	value, ok := r.Value()
	if !ok {
		t.Fatalf("%s = %s, expected a finite value", label, r)
	}
	diff := value.Sub(decimal.NewFromFloat(want)).Abs()
	if diff.GreaterThan(decimal.NewFromFloat(tolerance)) {
		t.Errorf("%s = %s, expected %v (±%v)", label, value, want, tolerance)
	}
}

func TestCapRate(t *testing.T) {
	rate, err := CapRate(money.FromFloat(14400), money.FromFloat(200000))
	if err != nil {
		t.Fatalf("CapRate failed: %v", err)
	}
	if !rate.Value().Equal(decimal.RequireFromString("7.2")) {
		t.Errorf("cap rate = %s, expected 7.2", rate)
	}
}

func TestCapRateZeroValue(t *testing.T) {
	for _, value := range []float64{0, -100} {
		_, err := CapRate(money.FromFloat(14400), money.FromFloat(value))
		var divErr *DivisionByZeroError
		if !errors.As(err, &divErr) {
			t.Fatalf("CapRate with value %v: expected DivisionByZeroError, got %v", value, err)
		}
		if divErr.Metric != "cap_rate" {
			t.Errorf("error metric = %q, expected cap_rate", divErr.Metric)
		}
	}
}

func TestCashOnCash(t *testing.T) {
	tests := []struct {
		name       string
		cashFlow   float64
		invested   float64
		wantFinite bool
		want       float64
		infinite   bool
	}{
		{"Typical deal", 3000, 45000, true, 6.666667, false},
		{"Zero down with positive cash flow", 1200, 0, false, 0, true},
		{"Zero down with negative cash flow", -500, 0, false, 0, false},
		{"Negative cash flow", -1200, 40000, true, -3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CashOnCash(money.FromFloat(tt.cashFlow), money.FromFloat(tt.invested))
			switch {
			case tt.wantFinite:
				assertFinite(t, "cash-on-cash", got, tt.want, 0.0001)
			case tt.infinite:
				if !got.IsInfinite() {
					t.Errorf("cash-on-cash = %s, expected the infinite-return sentinel", got)
				}
			default:
				if !got.IsUndefined() {
					t.Errorf("cash-on-cash = %s, expected N/A", got)
				}
			}
		})
	}
}

func TestInfiniteReturnIsNotAnError(t *testing.T) {
	// $1,200 annual cash flow with nothing invested is a legitimate
	// zero-cash-down infinite return, not an error condition.
	got := CashOnCash(money.FromFloat(1200), money.Zero())
	if !got.IsInfinite() {
		t.Fatalf("expected infinite-return sentinel, got %s", got)
	}
	if got.String() != "∞" {
		t.Errorf("sentinel renders as %q, expected ∞", got.String())
	}
	if _, ok := got.Value(); ok {
		t.Error("sentinel must not expose a numeric value")
	}
}

func TestDSCR(t *testing.T) {
	got := DSCR(money.FromFloat(14400), money.FromFloat(11511.36))
	assertFinite(t, "DSCR", got, 1.2509, 0.001)

	// No debt means DSCR is undefined, not a crash.
	noDebt := DSCR(money.FromFloat(14400), money.Zero())
	if !noDebt.IsUndefined() {
		t.Errorf("DSCR with no debt = %s, expected N/A", noDebt)
	}
	if noDebt.String() != "N/A" {
		t.Errorf("undefined DSCR renders as %q, expected N/A", noDebt.String())
	}
}

func TestGRM(t *testing.T) {
	got := GRM(money.FromFloat(200000), money.FromFloat(24000))
	assertFinite(t, "GRM", got, 8.3333, 0.001)

	if !GRM(money.FromFloat(200000), money.Zero()).IsUndefined() {
		t.Error("GRM with zero rent should be N/A")
	}
}

func TestExpenseRatio(t *testing.T) {
	got := ExpenseRatio(money.FromFloat(9600), money.FromFloat(24000))
	assertFinite(t, "expense ratio", got, 40, 0.0001)

	if !ExpenseRatio(money.FromFloat(9600), money.Zero()).IsUndefined() {
		t.Error("expense ratio with zero income should be N/A")
	}
}

func TestROI(t *testing.T) {
	got := ROI(money.FromFloat(3000), money.FromFloat(6000), money.FromFloat(45000))
	assertFinite(t, "ROI", got, 20, 0.0001)

	if !ROI(money.FromFloat(3000), money.FromFloat(6000), money.Zero()).IsInfinite() {
		t.Error("ROI with zero invested and positive gain should be infinite")
	}
}

func TestBreakevenOccupancy(t *testing.T) {
	got := BreakevenOccupancy(
		money.FromFloat(300),
		money.FromFloat(959.28),
		money.FromFloat(2000),
		money.PercentFromFloat(25),
	)
	assertFinite(t, "breakeven occupancy", got, 83.952, 0.001)

	undefined := BreakevenOccupancy(money.FromFloat(300), money.Zero(), money.Zero(), money.ZeroPercent())
	if !undefined.IsUndefined() {
		t.Error("breakeven with zero income should be N/A")
	}
}

func TestRatioJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		ratio Ratio
	}{
		{"Finite", FiniteFloat(7.2)},
		{"Undefined", Undefined()},
		{"Infinite", Infinite()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := json.Marshal(tt.ratio)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			var decoded Ratio
			if err := json.Unmarshal(encoded, &decoded); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if decoded.String() != tt.ratio.String() {
				t.Errorf("round trip changed ratio: %s != %s", decoded, tt.ratio)
			}
		})
	}
}
