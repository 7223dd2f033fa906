package engine

import (
	"github.com/OverlordBaconPants/rei-analyzer/pkg/money"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/transitions"
)

// LeaseOptionMetrics holds the rent-credit and exercise economics of a
// lease-option analysis.
type LeaseOptionMetrics struct {
	MonthlyCredit          money.Money `json:"monthly_credit"`
	TotalAccruedCredit     money.Money `json:"total_accrued_credit"`
	EffectivePurchasePrice money.Money `json:"effective_purchase_price"`
	ProjectedValue         money.Money `json:"projected_value"`
	OptionEquity           money.Money `json:"option_equity"`
}

// computeLeaseOption derives metrics for a lease-option deal: the shared
// cash-flow picture plus rent-credit accrual toward the strike price.
func (c *Calculator) computeLeaseOption(a *Analysis) (*MetricsResult, error) {
	portfolio, err := a.Portfolio()
	if err != nil {
		return nil, err
	}
	debtService, err := portfolio.DebtServiceAt(0)
	if err != nil {
		return nil, err
	}

	income := a.MonthlyRent.Add(a.OtherMonthlyIncome)
	bd := a.breakdown(income, a.fixedMonthlyExpenses(), a.MonthlyRent, money.Zero(), debtService)
	result := c.baseMetrics(a, bd, a.MarketValue(), a.MonthlyRent.Annualized(), a.acquisitionCapital())

	exercise := transitions.LeaseOptionExercise(
		a.StrikePrice,
		a.MonthlyRent,
		a.MonthlyRentCreditPercent,
		a.RentCreditCap,
		a.OptionTermMonths,
		a.AnnualAppreciation,
	)
	result.LeaseOption = &LeaseOptionMetrics{
		MonthlyCredit:          exercise.MonthlyCredit,
		TotalAccruedCredit:     exercise.TotalAccruedCredit,
		EffectivePurchasePrice: exercise.EffectivePurchasePrice,
		ProjectedValue:         exercise.ProjectedValue,
		OptionEquity:           exercise.OptionEquity,
	}
	return result, nil
}
