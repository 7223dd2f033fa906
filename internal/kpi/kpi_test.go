package kpi

import (
	"testing"
	"time"

	"github.com/OverlordBaconPants/rei-analyzer/pkg/datetime"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/money"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/returns"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/testutil"
)

func month(dateStr string) time.Time {
	return datetime.MustParseTime(datetime.DateTimeLayout, dateStr)
}

// steadySamples is six months of $2,000 rent, $800 operating expenses, and a
// $959.28 loan payment: the realized version of the reference rental.
func steadySamples() []TransactionSample {
	var samples []TransactionSample
	for m := time.January; m <= time.June; m++ {
		date := time.Date(2026, m, 1, 0, 0, 0, 0, time.UTC)
		samples = append(samples,
			TransactionSample{Date: date, Amount: money.FromFloat(2000), Kind: Income, Category: "rent"},
			TransactionSample{Date: date, Amount: money.FromFloat(800), Kind: Expense, Category: "operating"},
			TransactionSample{Date: date, Amount: money.FromFloat(959.28), Kind: Expense, Category: "mortgage", IsDebtService: true},
		)
	}
	return samples
}

func TestComputeActuals(t *testing.T) {
	actuals, err := ComputeActuals(nil, steadySamples(), month("2026-01"), month("2026-06"),
		money.FromFloat(200000), money.FromFloat(45000))
	if err != nil {
		t.Fatalf("ComputeActuals failed: %v", err)
	}

	if actuals.Months != 6 {
		t.Errorf("period = %d months, expected 6", actuals.Months)
	}
	testutil.AssertMoneyNear(t, "total income", actuals.TotalIncome, 12000)
	testutil.AssertMoneyNear(t, "operating expenses", actuals.TotalOperatingExpenses, 4800)
	testutil.AssertMoneyNear(t, "debt service", actuals.TotalDebtService, 5755.68)
	testutil.AssertMoneyNear(t, "monthly NOI", actuals.MonthlyNOI, 1200)
	testutil.AssertMoneyNear(t, "annual NOI", actuals.AnnualNOI, 14400)
}

func TestActualsMatchProjectedRatios(t *testing.T) {
	// Realized history that exactly hits the projection must reproduce the
	// projected ratios, since both paths share the same ratio math.
	actuals, err := ComputeActuals(nil, steadySamples(), month("2026-01"), month("2026-06"),
		money.FromFloat(200000), money.FromFloat(45000))
	if err != nil {
		t.Fatalf("ComputeActuals failed: %v", err)
	}

	projectedCap, err := returns.CapRate(money.FromFloat(14400), money.FromFloat(200000))
	if err != nil {
		t.Fatalf("CapRate failed: %v", err)
	}
	actualCap, ok := actuals.CapRate.Value()
	if !ok {
		t.Fatalf("actual cap rate = %s, expected finite", actuals.CapRate)
	}
	if !actualCap.Equal(projectedCap.Value()) {
		t.Errorf("actual cap rate %s != projected %s", actualCap, projectedCap.Value())
	}

	dscr, ok := actuals.DSCR.Value()
	if !ok {
		t.Fatalf("DSCR = %s, expected finite", actuals.DSCR)
	}
	if dscr.InexactFloat64() < 1.25 || dscr.InexactFloat64() > 1.252 {
		t.Errorf("DSCR = %s, expected about 1.251", dscr)
	}
}

func TestComputeActualsFiltersByPeriod(t *testing.T) {
	samples := steadySamples()
	samples = append(samples, TransactionSample{
		Date:   month("2026-09"),
		Amount: money.FromFloat(50000),
		Kind:   Income,
	})

	actuals, err := ComputeActuals(nil, samples, month("2026-01"), month("2026-06"),
		money.FromFloat(200000), money.FromFloat(45000))
	if err != nil {
		t.Fatalf("ComputeActuals failed: %v", err)
	}
	testutil.AssertMoneyNear(t, "total income excludes out-of-period samples", actuals.TotalIncome, 12000)
}

func TestComputeActualsNoDebt(t *testing.T) {
	samples := []TransactionSample{
		{Date: month("2026-01"), Amount: money.FromFloat(2000), Kind: Income},
		{Date: month("2026-01"), Amount: money.FromFloat(800), Kind: Expense},
	}
	actuals, err := ComputeActuals(nil, samples, month("2026-01"), month("2026-01"),
		money.FromFloat(200000), money.Zero())
	if err != nil {
		t.Fatalf("ComputeActuals failed: %v", err)
	}
	if !actuals.DSCR.IsUndefined() {
		t.Errorf("DSCR = %s, expected N/A without debt service", actuals.DSCR)
	}
	if !actuals.CashOnCash.IsInfinite() {
		t.Errorf("cash-on-cash = %s, expected infinite with nothing invested", actuals.CashOnCash)
	}
}

func TestComputeActualsInvertedPeriod(t *testing.T) {
	_, err := ComputeActuals(nil, nil, month("2026-06"), month("2026-01"),
		money.FromFloat(200000), money.Zero())
	if err == nil {
		t.Fatal("expected error for an inverted reporting period")
	}
}
