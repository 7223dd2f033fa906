// Package money defines the exact decimal value types used for all monetary
// and rate values. Money arithmetic never passes through binary floats; the
// only float bridge in the repository is the (1+r)^n power factor in the
// amortization formula, which is immediately rounded back to cents.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/OverlordBaconPants/rei-analyzer/pkg/constants"
)

// Money is an exact decimal amount in a single currency unit. The zero value
// is $0.00 and is ready to use. Negative amounts are permitted for signed
// quantities such as cash flow; validation of sign requirements is the
// caller's concern.
//
// Multiplication only accepts scalar or Percentage operands, so multiplying
// Money by Money is unrepresentable.
type Money struct {
	amount decimal.Decimal
}

// Zero returns a zero Money value.
func Zero() Money {
	return Money{}
}

// New returns a Money wrapping the given decimal amount.
func New(d decimal.Decimal) Money {
	return Money{amount: d}
}

// FromFloat converts a float64 into Money. Deal files carry plain numbers, so
// conversion happens exactly once at the input boundary.
func FromFloat(f float64) Money {
	return Money{amount: decimal.NewFromFloat(f)}
}

// FromString parses a decimal string (e.g. "1234.56") into Money.
func FromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money amount %q: %w", s, err)
	}
	return Money{amount: d}, nil
}

// Cents returns a Money from an integer number of cents.
func Cents(n int64) Money {
	return Money{amount: decimal.New(n, -constants.CurrencyScale)}
}

// Add returns m + o.
func (m Money) Add(o Money) Money {
	return Money{amount: m.amount.Add(o.amount)}
}

// Sub returns m - o.
func (m Money) Sub(o Money) Money {
	return Money{amount: m.amount.Sub(o.amount)}
}

// Neg returns -m.
func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg()}
}

// Mul returns m scaled by the given decimal factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

// MulInt returns m scaled by an integer factor.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// Div returns m divided by the given decimal divisor. The divisor must be
// non-zero; ratio-style divisions with zero denominators are handled by the
// returns package sentinels before reaching this point.
func (m Money) Div(divisor decimal.Decimal) Money {
	return Money{amount: m.amount.Div(divisor)}
}

// DivInt returns m divided by an integer divisor.
func (m Money) DivInt(n int) Money {
	return Money{amount: m.amount.Div(decimal.NewFromInt(int64(n)))}
}

// Annualized returns the monthly amount scaled to a year.
func (m Money) Annualized() Money {
	return m.MulInt(constants.MonthsPerYear)
}

// Round returns m rounded to cents.
func (m Money) Round() Money {
	return Money{amount: m.amount.Round(constants.CurrencyScale)}
}

// FloorZero clamps negative amounts to zero.
func (m Money) FloorZero() Money {
	if m.amount.IsNegative() {
		return Money{}
	}
	return m
}

// Cmp compares m and o: -1 if m < o, 0 if equal, +1 if m > o.
func (m Money) Cmp(o Money) int {
	return m.amount.Cmp(o.amount)
}

// Equal reports whether m and o represent the same amount.
func (m Money) Equal(o Money) bool {
	return m.amount.Equal(o.amount)
}

// LessThan reports whether m < o.
func (m Money) LessThan(o Money) bool {
	return m.amount.LessThan(o.amount)
}

// GreaterThan reports whether m > o.
func (m Money) GreaterThan(o Money) bool {
	return m.amount.GreaterThan(o.amount)
}

// IsZero reports whether m is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative reports whether m is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsPositive reports whether m is above zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// InexactFloat64 returns the nearest float64. Display and the amortization
// power factor are the only intended consumers.
func (m Money) InexactFloat64() float64 {
	return m.amount.InexactFloat64()
}

// String returns the plain decimal representation rounded to cents, without
// a currency symbol. Display formatting lives in pkg/format.
func (m Money) String() string {
	return m.amount.Round(constants.CurrencyScale).StringFixed(constants.CurrencyScale)
}

// MarshalJSON encodes the amount as a JSON string to preserve exactness.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.amount.String() + `"`), nil
}

// UnmarshalJSON decodes either a JSON string or bare number.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	m.amount = d
	return nil
}
