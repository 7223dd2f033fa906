package returns

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/OverlordBaconPants/rei-analyzer/pkg/constants"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/money"
)

var hundred = decimal.NewFromInt(int64(constants.PercentageMultiplier))

// DivisionByZeroError reports a metric whose denominator was zero where no
// sentinel fallback is defined; the caller substitutes "N/A" for display.
type DivisionByZeroError struct {
	Metric string
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("metric %s: division by zero denominator", e.Metric)
}

// CapRate computes annual NOI as a percentage of property value.
// A non-positive property value fails with DivisionByZeroError.
func CapRate(annualNOI, propertyValue money.Money) (money.Percentage, error) {
	if !propertyValue.IsPositive() {
		return money.ZeroPercent(), &DivisionByZeroError{Metric: "cap_rate"}
	}
	rate := annualNOI.Decimal().Div(propertyValue.Decimal()).Mul(hundred)
	return money.PercentFromDecimal(rate), nil
}

// CashOnCash computes annual cash flow as a percentage of total cash
// invested. Zero cash invested with positive cash flow is a legitimate
// zero-cash-down structure and yields the infinite-return sentinel; zero
// invested with non-positive cash flow is undefined.
func CashOnCash(annualCashFlow, totalCashInvested money.Money) Ratio {
	if totalCashInvested.IsZero() {
		if annualCashFlow.IsPositive() {
			return Infinite()
		}
		return Undefined()
	}
	return Finite(annualCashFlow.Decimal().Div(totalCashInvested.Decimal()).Mul(hundred))
}

// ROI computes total first-year return (cash flow plus appreciation) as a
// percentage of total cash invested, with the same zero-invested sentinels
// as CashOnCash.
func ROI(annualCashFlow, annualAppreciation, totalCashInvested money.Money) Ratio {
	gain := annualCashFlow.Add(annualAppreciation)
	if totalCashInvested.IsZero() {
		if gain.IsPositive() {
			return Infinite()
		}
		return Undefined()
	}
	return Finite(gain.Decimal().Div(totalCashInvested.Decimal()).Mul(hundred))
}

// DSCR computes annual NOI over annual debt service. With no debt the ratio
// is undefined ("N/A"), not an error.
func DSCR(annualNOI, annualDebtService money.Money) Ratio {
	if annualDebtService.IsZero() {
		return Undefined()
	}
	return Finite(annualNOI.Decimal().Div(annualDebtService.Decimal()))
}

// GRM computes purchase price over annual gross rent.
func GRM(purchasePrice, annualGrossRent money.Money) Ratio {
	if !annualGrossRent.IsPositive() {
		return Undefined()
	}
	return Finite(purchasePrice.Decimal().Div(annualGrossRent.Decimal()))
}

// ExpenseRatio computes annual operating expenses as a percentage of annual
// gross income.
func ExpenseRatio(annualOperatingExpenses, annualGrossIncome money.Money) Ratio {
	if !annualGrossIncome.IsPositive() {
		return Undefined()
	}
	return Finite(annualOperatingExpenses.Decimal().Div(annualGrossIncome.Decimal()).Mul(hundred))
}

// BreakevenOccupancy computes the occupancy percentage at which fixed
// expenses plus debt service are exactly covered:
//
//	(fixed + debt service) / (potential gross income * (1 - variable rate))
func BreakevenOccupancy(fixedExpenses, debtService, potentialGrossIncome money.Money, variableExpenseRate money.Percentage) Ratio {
	retained := decimal.NewFromInt(1).Sub(variableExpenseRate.Multiplier())
	denominator := potentialGrossIncome.Decimal().Mul(retained)
	if !denominator.IsPositive() {
		return Undefined()
	}
	numerator := fixedExpenses.Add(debtService).Decimal()
	return Finite(numerator.Div(denominator).Mul(hundred))
}
