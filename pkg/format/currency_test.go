package format

import (
	"testing"

	"github.com/OverlordBaconPants/rei-analyzer/pkg/money"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/returns"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"Small", 42.5, "$42.50"},
		{"Thousands", 1234.56, "$1,234.56"},
		{"Millions", 1234567.89, "$1,234,567.89"},
		{"Negative", -1234.56, "-$1,234.56"},
		{"Zero", 0, "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(money.FromFloat(tt.amount)); got != tt.want {
				t.Errorf("Currency(%v) = %s, expected %s", tt.amount, got, tt.want)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	if got := NumericCurrency(money.FromFloat(-9876543.21)); got != "-9,876,543.21" {
		t.Errorf("NumericCurrency = %s, expected -9,876,543.21", got)
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(money.PercentFromFloat(7.2)); got != "7.200%" {
		t.Errorf("Percent = %s, expected 7.200%%", got)
	}
}

func TestRatio(t *testing.T) {
	if got := Ratio(returns.FiniteFloat(1.2509)); got != "1.251" {
		t.Errorf("Ratio = %s, expected 1.251", got)
	}
	if got := Ratio(returns.Undefined()); got != "N/A" {
		t.Errorf("Ratio sentinel = %s, expected N/A", got)
	}
	if got := Ratio(returns.Infinite()); got != "∞" {
		t.Errorf("Ratio sentinel = %s, expected ∞", got)
	}
}

func TestRatioPercent(t *testing.T) {
	if got := RatioPercent(returns.FiniteFloat(83.952)); got != "83.952%" {
		t.Errorf("RatioPercent = %s, expected 83.952%%", got)
	}
	if got := RatioPercent(returns.Infinite()); got != "∞" {
		t.Errorf("RatioPercent sentinel = %s, expected ∞", got)
	}
}
