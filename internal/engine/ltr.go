package engine

import (
	"github.com/OverlordBaconPants/rei-analyzer/pkg/money"
)

// computeLTR derives metrics for a long-term rental: the shared cash-flow
// picture with no structural extensions. DSCR and expense ratio come
// straight from the base computation.
func (c *Calculator) computeLTR(a *Analysis) (*MetricsResult, error) {
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
	return c.baseMetrics(a, bd, a.MarketValue(), a.MonthlyRent.Annualized(), a.acquisitionCapital()), nil
}
