// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/OverlordBaconPants/rei-analyzer/pkg/constants"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/money"
)

// AssertMoneyNear fails the test when got differs from want by more than one
// cent.
func AssertMoneyNear(t *testing.T, label string, got money.Money, want float64) {
	t.Helper()
	tolerance := decimal.NewFromFloat(constants.CurrencyTolerance)
	diff := got.Decimal().Sub(decimal.NewFromFloat(want)).Abs()
	if diff.GreaterThan(tolerance) {
		t.Errorf("%s = %s, expected %.2f (±%.2f)", label, got, want, constants.CurrencyTolerance)
	}
}

// AssertMoneyEqual fails the test when got and want differ at all.
func AssertMoneyEqual(t *testing.T, label string, got, want money.Money) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %s, expected %s", label, got, want)
	}
}

// AssertDecimalNear fails the test when got differs from want by more than
// the given tolerance.
func AssertDecimalNear(t *testing.T, label string, got decimal.Decimal, want, tolerance float64) {
	t.Helper()
	diff := got.Sub(decimal.NewFromFloat(want)).Abs()
	if diff.GreaterThan(decimal.NewFromFloat(tolerance)) {
		t.Errorf("%s = %s, expected %v (±%v)", label, got, want, tolerance)
	}
}
