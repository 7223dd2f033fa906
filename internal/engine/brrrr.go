package engine

import (
	"go.uber.org/zap"

	"github.com/OverlordBaconPants/rei-analyzer/pkg/loans"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/mao"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/money"
)

// BRRRRMetrics holds the refinance-window extensions of a BRRRR analysis.
type BRRRRMetrics struct {
	PreRefinanceCashFlow  money.Money `json:"pre_refinance_cash_flow"`
	PostRefinanceCashFlow money.Money `json:"post_refinance_cash_flow"`
	RefinancePayoff       money.Money `json:"refinance_payoff"`
	CashRecovered         money.Money `json:"cash_recovered"`
	MAO                   money.Money `json:"mao"`
}

// computeBRRRR derives metrics for a buy-rehab-rent-refinance deal. The
// stabilized (post-refinance) figures drive the headline metrics; the
// pre-refinance window is reported alongside. The refinance is assumed to
// retire the initial loan at the refinance month.
func (c *Calculator) computeBRRRR(a *Analysis) (*MetricsResult, error) {
	prePortfolio, err := loans.NewPortfolio(a.InitialLoan, a.Loan1, a.Loan2, a.Loan3)
	if err != nil {
		return nil, err
	}
	postPortfolio, err := loans.NewPortfolio(a.RefinanceLoan, a.Loan1, a.Loan2, a.Loan3)
	if err != nil {
		return nil, err
	}

	preService, err := prePortfolio.DebtServiceAt(0)
	if err != nil {
		return nil, err
	}
	postService, err := postPortfolio.DebtServiceAt(a.RefinanceMonth)
	if err != nil {
		return nil, err
	}

	income := a.MonthlyRent.Add(a.OtherMonthlyIncome)
	fixed := a.fixedMonthlyExpenses()
	preBD := a.breakdown(income, fixed, a.MonthlyRent, money.Zero(), preService)
	postBD := a.breakdown(income, fixed, a.MonthlyRent, money.Zero(), postService)

	// Cash pulled back out at the refinance: new loan proceeds less the
	// payoff of the initial loan and the refinance closing costs.
	payoff := money.Zero()
	if !a.InitialLoan.IsZero() {
		payoff, err = a.InitialLoan.BalanceAfter(a.RefinanceMonth - a.InitialLoan.StartMonth)
		if err != nil {
			return nil, err
		}
	}
	capital := a.acquisitionCapital().
		Add(a.MonthlyHoldingCosts.MulInt(a.RenovationMonths))
	recovered := a.RefinanceLoan.Principal.
		Sub(payoff).
		Sub(a.RefinanceClosingCosts).
		FloorZero()
	invested := capital.Sub(recovered).FloorZero()

	result := c.baseMetrics(a, postBD, a.AfterRepairValue, a.MonthlyRent.Annualized(), invested)

	brrrr := &BRRRRMetrics{
		PreRefinanceCashFlow:  preBD.CashFlow.Round(),
		PostRefinanceCashFlow: postBD.CashFlow.Round(),
		RefinancePayoff:       payoff.Round(),
		CashRecovered:         recovered.Round(),
	}

	if a.TargetLTV.IsZero() {
		c.logger.Debug("skipping MAO: no target LTV configured",
			zap.String("op", "engine.computeBRRRR"),
		)
	} else {
		offer, warning, err := mao.ComputeBRRRR(c.logger, mao.Inputs{
			ARV:             a.AfterRepairValue,
			RenovationCosts: a.RenovationCosts,
			ClosingCosts:    a.ClosingCosts,
			MonthlyHolding:  a.MonthlyHoldingCosts,
			HoldingMonths:   a.RenovationMonths,
			TargetLTV:       a.TargetLTV,
			MaxCashLeft:     a.MaxCashLeft,
		}, a.RefinanceLoan.Principal)
		if err != nil {
			return nil, err
		}
		brrrr.MAO = offer
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
	}

	result.BRRRR = brrrr
	return result, nil
}
