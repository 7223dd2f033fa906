package money

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyArithmeticIsExact(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3, not 0.30000000000000004.
	a := FromFloat(0.1)
	b := FromFloat(0.2)
	sum := a.Add(b)
	want, _ := FromString("0.3")
	if !sum.Equal(want) {
		t.Errorf("0.1 + 0.2 = %s, expected exactly 0.3", sum.Decimal())
	}
}

func TestMoneyAddSub(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		add, sub string
	}{
		{"Whole dollars", 100, 40, "140.00", "60.00"},
		{"Cents", 10.25, 0.75, "11.00", "9.50"},
		{"Negative result allowed", 50, 75, "125.00", "-25.00"},
		{"Zero operand", 12.34, 0, "12.34", "12.34"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := FromFloat(tt.a)
			b := FromFloat(tt.b)
			if got := a.Add(b).String(); got != tt.add {
				t.Errorf("%v + %v = %s, expected %s", tt.a, tt.b, got, tt.add)
			}
			if got := a.Sub(b).String(); got != tt.sub {
				t.Errorf("%v - %v = %s, expected %s", tt.a, tt.b, got, tt.sub)
			}
		})
	}
}

func TestMoneyScaling(t *testing.T) {
	m := FromFloat(1500)
	if got := m.MulInt(12).String(); got != "18000.00" {
		t.Errorf("1500 * 12 = %s, expected 18000.00", got)
	}
	if got := m.Annualized().String(); got != "18000.00" {
		t.Errorf("Annualized(1500) = %s, expected 18000.00", got)
	}
	if got := m.DivInt(3).String(); got != "500.00" {
		t.Errorf("1500 / 3 = %s, expected 500.00", got)
	}
	if got := m.Mul(decimal.NewFromFloat(0.2)).String(); got != "300.00" {
		t.Errorf("1500 * 0.2 = %s, expected 300.00", got)
	}
}

func TestMoneyFloorZero(t *testing.T) {
	if got := FromFloat(-10).FloorZero(); !got.IsZero() {
		t.Errorf("FloorZero(-10) = %s, expected 0", got)
	}
	if got := FromFloat(10).FloorZero(); !got.Equal(FromFloat(10)) {
		t.Errorf("FloorZero(10) = %s, expected 10", got)
	}
}

func TestMoneyComparisons(t *testing.T) {
	small := FromFloat(1)
	large := FromFloat(2)
	if !small.LessThan(large) || large.LessThan(small) {
		t.Error("LessThan ordering wrong")
	}
	if !large.GreaterThan(small) {
		t.Error("GreaterThan ordering wrong")
	}
	if small.Cmp(large) != -1 || large.Cmp(small) != 1 || small.Cmp(small) != 0 {
		t.Error("Cmp ordering wrong")
	}
	if !FromFloat(-0.01).IsNegative() || FromFloat(0.01).IsNegative() {
		t.Error("IsNegative wrong")
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	original := FromFloat(1234.56)
	encoded, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var decoded Money
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !decoded.Equal(original) {
		t.Errorf("round trip changed value: %s != %s", decoded, original)
	}
}

func TestCents(t *testing.T) {
	if got := Cents(123456).String(); got != "1234.56" {
		t.Errorf("Cents(123456) = %s, expected 1234.56", got)
	}
}

func TestPercentageMultiplier(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"Typical rate", 6.5, "0.065"},
		{"Whole percent", 100, "1"},
		{"Zero", 0, "0"},
		{"Fractional", 0.5, "0.005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentFromFloat(tt.value).Multiplier()
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("Multiplier(%v) = %s, expected %s", tt.value, got, tt.want)
			}
		})
	}
}

func TestPercentageApplyTo(t *testing.T) {
	rent := FromFloat(2000)
	fee := PercentFromFloat(10)
	if got := fee.ApplyTo(rent).String(); got != "200.00" {
		t.Errorf("10%% of 2000 = %s, expected 200.00", got)
	}
}

func TestPercentageMonthlyRate(t *testing.T) {
	// 6% annual must convert to exactly 0.005 monthly.
	rate := PercentFromFloat(6).MonthlyRate()
	if !rate.Equal(decimal.RequireFromString("0.005")) {
		t.Errorf("MonthlyRate(6) = %s, expected 0.005", rate)
	}
}

func TestPercentageJSONRoundTrip(t *testing.T) {
	original := PercentFromFloat(7.25)
	encoded, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var decoded Percentage
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !decoded.Value().Equal(original.Value()) {
		t.Errorf("round trip changed value: %s != %s", decoded, original)
	}
}
