package engine

import (
	"github.com/OverlordBaconPants/rei-analyzer/pkg/loans"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/money"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/transitions"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/validation"
)

// monthlyNOI computes the analysis's monthly NOI the same way the strategy
// computations do, without debt service.
func (c *Calculator) monthlyNOI(a *Analysis) (money.Money, error) {
	result, err := c.Compute(a)
	if err != nil {
		return money.Zero(), err
	}
	return result.MonthlyNOI, nil
}

// BalloonTransition computes the balloon maturity event for an analysis
// whose financing carries a balloon: the payoff at the due month and cash
// flow before and after the balloon-refinance loan replaces the original.
func (c *Calculator) BalloonTransition(a *Analysis) (*transitions.BalloonOutcome, error) {
	if !a.HasBalloonPayment {
		return nil, validation.Errorf("has_balloon_payment", "analysis has no balloon payment")
	}
	if a.InitialLoan.IsZero() {
		return nil, validation.Errorf("initial_loan", "required for a balloon transition")
	}
	if a.BalloonRefinance.IsZero() {
		return nil, validation.Errorf("balloon_refinance", "balloon refinance loan terms are required")
	}
	if a.BalloonDueMonth < a.InitialLoan.StartMonth {
		return nil, validation.Errorf("balloon_due_month",
			"must not precede the loan start month %d", a.InitialLoan.StartMonth)
	}

	// Debt service on both sides of the due month keeps concurrent loans in
	// the picture: the balloon-refinance loan replaces the original in the
	// portfolio. The original's recurring share is its level payment; its
	// terminal period is the balloon itself and is reported as the payoff.
	others, err := loans.NewPortfolio(a.Loan1, a.Loan2, a.Loan3)
	if err != nil {
		return nil, err
	}
	after, err := loans.NewPortfolio(a.BalloonRefinance, a.Loan1, a.Loan2, a.Loan3)
	if err != nil {
		return nil, err
	}
	originalService, err := a.InitialLoan.LevelPayment()
	if err != nil {
		return nil, err
	}
	othersService, err := others.DebtServiceAt(a.BalloonDueMonth - 1)
	if err != nil {
		return nil, err
	}
	preService := originalService.Add(othersService)
	postService, err := after.DebtServiceAt(a.BalloonDueMonth)
	if err != nil {
		return nil, err
	}

	noi, err := c.monthlyNOI(a)
	if err != nil {
		return nil, err
	}
	outcome, err := transitions.Balloon(a.InitialLoan, a.BalloonDueMonth, preService, postService, noi)
	if err != nil {
		return nil, err
	}
	return &outcome, nil
}

// RefinanceImpact compares debt service and cash flow before and after the
// analysis's refinance event, including the break-even month for the
// refinance closing costs.
func (c *Calculator) RefinanceImpact(a *Analysis) (*transitions.RefinanceImpact, error) {
	if a.RefinanceLoan.IsZero() {
		return nil, validation.Errorf("refinance_loan", "required for a refinance impact comparison")
	}

	before, err := loans.NewPortfolio(a.InitialLoan, a.Loan1, a.Loan2, a.Loan3)
	if err != nil {
		return nil, err
	}
	after, err := loans.NewPortfolio(a.RefinanceLoan, a.Loan1, a.Loan2, a.Loan3)
	if err != nil {
		return nil, err
	}

	beforeService, err := before.DebtServiceAt(0)
	if err != nil {
		return nil, err
	}
	afterService, err := after.DebtServiceAt(a.RefinanceMonth)
	if err != nil {
		return nil, err
	}

	impact := transitions.Refinance(beforeService, afterService, a.RefinanceClosingCosts)
	return &impact, nil
}
