package engine

import (
	"github.com/shopspring/decimal"

	"github.com/OverlordBaconPants/rei-analyzer/pkg/money"
)

// MultiFamilyMetrics holds the unit-level extensions of a multi-family
// analysis.
type MultiFamilyMetrics struct {
	TotalUnits       int         `json:"total_units"`
	OccupiedUnits    int         `json:"occupied_units"`
	GrossMonthlyRent money.Money `json:"gross_monthly_rent"`
	PricePerUnit     money.Money `json:"price_per_unit"`
}

// computeMultiFamily derives metrics for a multi-family property. Income
// aggregates the rent roll by occupied units; the percentage-based expense
// rates apply against gross income (rent plus other income), not rent alone,
// and the multi-family-only expense categories join the fixed line items.
func (c *Calculator) computeMultiFamily(a *Analysis) (*MetricsResult, error) {
	portfolio, err := a.Portfolio()
	if err != nil {
		return nil, err
	}
	debtService, err := portfolio.DebtServiceAt(0)
	if err != nil {
		return nil, err
	}

	totalUnits := 0
	occupiedUnits := 0
	grossRent := money.Zero()
	potentialRent := money.Zero()
	for _, unit := range a.UnitTypes {
		totalUnits += unit.Count
		occupiedUnits += unit.Occupied
		grossRent = grossRent.Add(unit.MonthlyRent.MulInt(unit.Occupied))
		potentialRent = potentialRent.Add(unit.MonthlyRent.MulInt(unit.Count))
	}

	income := grossRent.Add(a.OtherMonthlyIncome)
	fixed := a.fixedMonthlyExpenses().
		Add(a.Expenses.CommonAreaMaintenance).
		Add(a.Expenses.ElevatorMaintenance).
		Add(a.Expenses.StaffPayroll).
		Add(a.Expenses.TrashRemoval).
		Add(a.Expenses.CommonUtilities)

	bd := a.breakdown(income, fixed, income, money.Zero(), debtService)
	// Breakeven occupancy measures against full-count rent; the occupancy
	// picture is already carried by the occupied counts.
	bd.PotentialIncome = potentialRent.Add(a.OtherMonthlyIncome)
	result := c.baseMetrics(a, bd, a.MarketValue(), grossRent.Annualized(), a.acquisitionCapital())

	result.MultiFamily = &MultiFamilyMetrics{
		TotalUnits:       totalUnits,
		OccupiedUnits:    occupiedUnits,
		GrossMonthlyRent: grossRent.Round(),
		PricePerUnit:     a.PurchasePrice.Div(decimal.NewFromInt(int64(totalUnits))).Round(),
	}
	return result, nil
}
