package money

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/OverlordBaconPants/rei-analyzer/pkg/constants"
)

// Percentage is a decimal rate conventionally stored on the 0-100 scale
// (6.5 means 6.5%), matching how rates appear in deal files. Convert to a
// multiplier with Multiplier before applying to amounts.
type Percentage struct {
	value decimal.Decimal
}

// ZeroPercent returns a zero Percentage.
func ZeroPercent() Percentage {
	return Percentage{}
}

// PercentFromFloat converts a 0-100 scale float into a Percentage.
func PercentFromFloat(f float64) Percentage {
	return Percentage{value: decimal.NewFromFloat(f)}
}

// PercentFromDecimal wraps a 0-100 scale decimal.
func PercentFromDecimal(d decimal.Decimal) Percentage {
	return Percentage{value: d}
}

// PercentFromString parses a 0-100 scale decimal string.
func PercentFromString(s string) (Percentage, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Percentage{}, fmt.Errorf("invalid percentage %q: %w", s, err)
	}
	return Percentage{value: d}, nil
}

// Multiplier converts the 0-100 scale value into a fraction (6.5 -> 0.065).
func (p Percentage) Multiplier() decimal.Decimal {
	return p.value.Div(decimal.NewFromInt(int64(constants.PercentageMultiplier)))
}

// ApplyTo returns amount scaled by the percentage (the "X% of" operation).
func (p Percentage) ApplyTo(m Money) Money {
	return m.Mul(p.Multiplier())
}

// MonthlyRate divides an annual percentage into a monthly fractional rate
// (6.0 -> 0.005). Used by amortization.
func (p Percentage) MonthlyRate() decimal.Decimal {
	return p.Multiplier().Div(decimal.NewFromInt(constants.MonthsPerYear))
}

// Value returns the 0-100 scale decimal.
func (p Percentage) Value() decimal.Decimal {
	return p.value
}

// InexactFloat64 returns the 0-100 scale value as a float64.
func (p Percentage) InexactFloat64() float64 {
	return p.value.InexactFloat64()
}

// IsZero reports whether the percentage is exactly zero.
func (p Percentage) IsZero() bool {
	return p.value.IsZero()
}

// IsNegative reports whether the percentage is below zero.
func (p Percentage) IsNegative() bool {
	return p.value.IsNegative()
}

// GreaterThan reports whether p > o.
func (p Percentage) GreaterThan(o Percentage) bool {
	return p.value.GreaterThan(o.value)
}

// String renders the 0-100 scale value with a percent sign.
func (p Percentage) String() string {
	return p.value.String() + "%"
}

// MarshalJSON encodes the 0-100 scale value as a JSON string.
func (p Percentage) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.value.String() + `"`), nil
}

// UnmarshalJSON decodes either a JSON string or bare number.
func (p *Percentage) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	p.value = d
	return nil
}
