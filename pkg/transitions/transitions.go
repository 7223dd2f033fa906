// Package transitions computes pre/post-event cash flow deltas for balloon
// maturity, refinance execution, and lease-option exercise.
package transitions

import (
	"math"

	"github.com/OverlordBaconPants/rei-analyzer/pkg/constants"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/loans"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/money"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/returns"
)

// BalloonOutcome describes the economics of a balloon maturity event: the
// payoff owed at the due month and the cash flow on either side of replacing
// the original loan with the balloon-refinance loan.
type BalloonOutcome struct {
	PayoffAmount    money.Money
	PreDebtService  money.Money
	PostDebtService money.Money
	PreCashFlow     money.Money
	PostCashFlow    money.Money
	CashFlowDelta   money.Money
}

// Balloon computes the balloon transition for a loan due at the given
// deal-relative month. preService and postService are the portfolio-level
// monthly debt service on either side of the due month, so loans running
// concurrently with the ballooning note stay in both cash-flow figures.
// monthlyNOI is income less operating expenses, before any debt service.
func Balloon(original *loans.Details, dueMonth int, preService, postService, monthlyNOI money.Money) (BalloonOutcome, error) {
	payoff, err := original.BalanceAfter(dueMonth - original.StartMonth)
	if err != nil {
		return BalloonOutcome{}, err
	}
	if original.InterestOnly {
		// An interest-only note balloons for its full principal.
		payoff = original.Principal
	}

	pre := monthlyNOI.Sub(preService)
	post := monthlyNOI.Sub(postService)
	return BalloonOutcome{
		PayoffAmount:    payoff,
		PreDebtService:  preService,
		PostDebtService: postService,
		PreCashFlow:     pre,
		PostCashFlow:    post,
		CashFlowDelta:   post.Sub(pre),
	}, nil
}

// RefinanceImpact compares debt service before and after a refinance event.
type RefinanceImpact struct {
	BeforeDebtService money.Money
	AfterDebtService  money.Money
	MonthlySavings    money.Money
	// BreakEvenMonths is closing costs divided by monthly savings: the number
	// of months until the refinance pays for itself. Infinite when the
	// refinance never saves money.
	BreakEvenMonths returns.Ratio
}

// Refinance computes the impact of replacing beforeService of monthly debt
// service with afterService at the given closing cost.
func Refinance(beforeService, afterService, closingCosts money.Money) RefinanceImpact {
	savings := beforeService.Sub(afterService)

	var breakEven returns.Ratio
	switch {
	case !closingCosts.IsPositive():
		breakEven = returns.Finite(money.Zero().Decimal())
	case !savings.IsPositive():
		breakEven = returns.Infinite()
	default:
		breakEven = returns.Finite(closingCosts.Decimal().Div(savings.Decimal()))
	}

	return RefinanceImpact{
		BeforeDebtService: beforeService,
		AfterDebtService:  afterService,
		MonthlySavings:    savings,
		BreakEvenMonths:   breakEven,
	}
}

// LeaseOptionOutcome describes the exercise economics of a lease option.
type LeaseOptionOutcome struct {
	MonthlyCredit          money.Money
	TotalAccruedCredit     money.Money
	EffectivePurchasePrice money.Money
	ProjectedValue         money.Money
	OptionEquity           money.Money
}

// LeaseOptionExercise computes rent-credit accrual and exercise economics.
// Accrual is monthlyRent * creditPercent per month, capped at creditCap (a
// zero cap means uncapped) and naturally bounded by the option term. The
// effective purchase price is the strike less accrued credit, floored at
// zero. Option equity is the appreciation of the strike over the option term.
func LeaseOptionExercise(strike, monthlyRent money.Money, creditPercent money.Percentage,
	creditCap money.Money, optionTermMonths int, annualAppreciation money.Percentage) LeaseOptionOutcome {

	monthlyCredit := creditPercent.ApplyTo(monthlyRent).Round()

	months := optionTermMonths
	if months < 0 {
		months = 0
	}
	accrued := monthlyCredit.MulInt(months)
	if creditCap.IsPositive() && accrued.GreaterThan(creditCap) {
		accrued = creditCap
	}

	effective := strike.Sub(accrued).FloorZero()

	projected := strike
	if months > 0 && !annualAppreciation.IsZero() {
		growth := math.Pow(
			1+annualAppreciation.Multiplier().InexactFloat64(),
			float64(months)/constants.MonthsPerYear,
		)
		projected = money.FromFloat(strike.InexactFloat64() * growth).Round()
	}
	equity := projected.Sub(strike).FloorZero()

	return LeaseOptionOutcome{
		MonthlyCredit:          monthlyCredit,
		TotalAccruedCredit:     accrued,
		EffectivePurchasePrice: effective,
		ProjectedValue:         projected,
		OptionEquity:           equity,
	}
}
