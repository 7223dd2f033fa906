package engine

import (
	"github.com/OverlordBaconPants/rei-analyzer/pkg/money"
)

// PadSplitMetrics holds the co-living extensions of a PadSplit analysis.
type PadSplitMetrics struct {
	FurnishingCosts    money.Money `json:"furnishing_costs"`
	MonthlyPlatformFee money.Money `json:"monthly_platform_fee"`
}

// computePadSplit derives metrics for a PadSplit co-living deal. The
// platform fee applies against gross rent as a recurring expense; furnishing
// is a one-time cost kept out of monthly cash flow but counted in total cash
// invested.
func (c *Calculator) computePadSplit(a *Analysis) (*MetricsResult, error) {
	portfolio, err := a.Portfolio()
	if err != nil {
		return nil, err
	}
	debtService, err := portfolio.DebtServiceAt(0)
	if err != nil {
		return nil, err
	}

	income := a.MonthlyRent.Add(a.OtherMonthlyIncome)
	bd := a.breakdown(income, a.fixedMonthlyExpenses(), a.MonthlyRent, a.MonthlyRent, debtService)

	invested := a.acquisitionCapital().Add(a.FurnishingCosts)
	result := c.baseMetrics(a, bd, a.MarketValue(), a.MonthlyRent.Annualized(), invested)

	result.PadSplit = &PadSplitMetrics{
		FurnishingCosts:    a.FurnishingCosts.Round(),
		MonthlyPlatformFee: a.PercentExpenses.PadSplitPlatform.ApplyTo(a.MonthlyRent).Round(),
	}
	return result, nil
}
