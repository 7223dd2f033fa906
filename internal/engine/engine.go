package engine

import (
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/OverlordBaconPants/rei-analyzer/internal/telemetry"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/loans"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/money"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/returns"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/validation"
)

// MetricsResult is the transient, read-only bundle of computed metrics for
// one analysis. It is derived on demand and never stored on the Analysis.
type MetricsResult struct {
	Strategy Strategy `json:"strategy"`

	MonthlyIncome            money.Money `json:"monthly_income"`
	MonthlyOperatingExpenses money.Money `json:"monthly_operating_expenses"`
	MonthlyDebtService       money.Money `json:"monthly_debt_service"`
	MonthlyNOI               money.Money `json:"monthly_noi"`
	MonthlyCashFlow          money.Money `json:"monthly_cash_flow"`
	AnnualNOI                money.Money `json:"annual_noi"`
	AnnualCashFlow           money.Money `json:"annual_cash_flow"`
	TotalCashInvested        money.Money `json:"total_cash_invested"`

	CapRate             returns.Ratio `json:"cap_rate"`
	CashOnCash          returns.Ratio `json:"cash_on_cash"`
	ROIWithAppreciation returns.Ratio `json:"roi_with_appreciation"`
	DSCR                returns.Ratio `json:"dscr"`
	GRM                 returns.Ratio `json:"grm"`
	ExpenseRatio        returns.Ratio `json:"expense_ratio"`
	BreakevenOccupancy  returns.Ratio `json:"breakeven_occupancy"`

	BRRRR       *BRRRRMetrics       `json:"brrrr,omitempty"`
	LeaseOption *LeaseOptionMetrics `json:"lease_option,omitempty"`
	MultiFamily *MultiFamilyMetrics `json:"multi_family,omitempty"`
	PadSplit    *PadSplitMetrics    `json:"padsplit,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

// Calculator computes MetricsResults from Analyses. It holds no cross-call
// state; concurrent use is safe.
type Calculator struct {
	logger *zap.Logger
}

// NewCalculator creates a Calculator. A nil logger is replaced with a no-op.
func NewCalculator(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

// Compute validates the analysis and derives the full metrics bundle for its
// strategy. Every value is recomputed from the raw fields; calling Compute
// twice on an unchanged Analysis yields identical results.
func (c *Calculator) Compute(a *Analysis) (*MetricsResult, error) {
	result, err := c.compute(a)
	if err != nil {
		telemetry.Calculations.WithLabelValues(string(a.Strategy), "error").Inc()
		telemetry.CalculationErrors.WithLabelValues(string(a.Strategy), errorType(err)).Inc()
		return nil, err
	}
	telemetry.Calculations.WithLabelValues(string(a.Strategy), "ok").Inc()
	return result, nil
}

func (c *Calculator) compute(a *Analysis) (*MetricsResult, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	switch a.Strategy {
	case StrategyLTR:
		return c.computeLTR(a)
	case StrategyBRRRR:
		return c.computeBRRRR(a)
	case StrategyLeaseOption:
		return c.computeLeaseOption(a)
	case StrategyMultiFamily:
		return c.computeMultiFamily(a)
	case StrategyPadSplit:
		return c.computePadSplit(a)
	}
	return nil, validation.Errorf("strategy", "unknown strategy %q", string(a.Strategy))
}

func errorType(err error) string {
	var vErr *validation.ValidationError
	if errors.As(err, &vErr) {
		return "validation"
	}
	var tErr *loans.InvalidTermError
	if errors.As(err, &tErr) {
		return "invalid_term"
	}
	var dErr *returns.DivisionByZeroError
	if errors.As(err, &dErr) {
		return "division_by_zero"
	}
	return "internal"
}

// cashFlowBreakdown is the common monthly picture every strategy shares.
// PotentialIncome is the full-occupancy income base for breakeven occupancy;
// it equals Income except for multi-family, where vacant units lower Income
// but not the potential.
type cashFlowBreakdown struct {
	Income            money.Money
	PotentialIncome   money.Money
	FixedExpenses     money.Money
	PercentExpenses   money.Money
	OperatingExpenses money.Money
	DebtService       money.Money
	NOI               money.Money
	CashFlow          money.Money
	VariableRate      money.Percentage
}

// fixedMonthlyExpenses sums the fixed line items common to all strategies.
func (a *Analysis) fixedMonthlyExpenses() money.Money {
	return a.Expenses.PropertyTaxes.
		Add(a.Expenses.Insurance).
		Add(a.Expenses.HOAFees).
		Add(a.Expenses.Utilities).
		Add(a.Expenses.OtherMonthly)
}

// variableRateSum adds the percentage-expense rates that scale with income.
func variableRateSum(rates ...money.Percentage) money.Percentage {
	total := decimal.Zero
	for _, rate := range rates {
		total = total.Add(rate.Value())
	}
	return money.PercentFromDecimal(total)
}

// breakdown computes the shared monthly cash-flow picture.
//
// income: total monthly income; percentBase: the base the management/capex/
// vacancy/repairs rates apply against (rent for single-unit strategies,
// gross income for multi-family); platformBase: the base the PadSplit
// platform fee applies against (zero except for PadSplit).
func (a *Analysis) breakdown(income, fixed, percentBase, platformBase money.Money, debtService money.Money) cashFlowBreakdown {
	rate := variableRateSum(
		a.PercentExpenses.ManagementFee,
		a.PercentExpenses.CapEx,
		a.PercentExpenses.Vacancy,
		a.PercentExpenses.Repairs,
	)
	percentExpenses := rate.ApplyTo(percentBase)

	variableRate := rate
	if platformBase.IsPositive() && !a.PercentExpenses.PadSplitPlatform.IsZero() {
		percentExpenses = percentExpenses.Add(a.PercentExpenses.PadSplitPlatform.ApplyTo(platformBase))
		variableRate = variableRateSum(rate, a.PercentExpenses.PadSplitPlatform)
	}

	operating := fixed.Add(percentExpenses)
	noi := income.Sub(operating)
	return cashFlowBreakdown{
		Income:            income,
		PotentialIncome:   income,
		FixedExpenses:     fixed,
		PercentExpenses:   percentExpenses,
		OperatingExpenses: operating,
		DebtService:       debtService,
		NOI:               noi,
		CashFlow:          noi.Sub(debtService),
		VariableRate:      variableRate,
	}
}

// baseMetrics fills the strategy-independent portion of a MetricsResult.
//
// propertyValue is the value base for cap rate and appreciation (market
// value, or ARV for BRRRR); annualGrossRent is the rent base for GRM.
func (c *Calculator) baseMetrics(a *Analysis, bd cashFlowBreakdown, propertyValue, annualGrossRent, cashInvested money.Money) *MetricsResult {
	annualNOI := bd.NOI.Annualized()
	annualCashFlow := bd.CashFlow.Annualized()
	annualDebtService := bd.DebtService.Annualized()

	capRate := returns.Undefined()
	if rate, err := returns.CapRate(annualNOI, propertyValue); err == nil {
		capRate = returns.Finite(rate.Value())
	} else {
		// Zero property value is a recoverable, expected case; the ratio
		// falls back to its display sentinel.
		c.logger.Debug("cap rate undefined",
			zap.String("op", "engine.baseMetrics"),
			zap.Error(err),
		)
	}

	appreciation := a.AnnualAppreciation.ApplyTo(propertyValue)

	return &MetricsResult{
		Strategy:                 a.Strategy,
		MonthlyIncome:            bd.Income.Round(),
		MonthlyOperatingExpenses: bd.OperatingExpenses.Round(),
		MonthlyDebtService:       bd.DebtService.Round(),
		MonthlyNOI:               bd.NOI.Round(),
		MonthlyCashFlow:          bd.CashFlow.Round(),
		AnnualNOI:                annualNOI.Round(),
		AnnualCashFlow:           annualCashFlow.Round(),
		TotalCashInvested:        cashInvested.Round(),
		CapRate:                  capRate,
		CashOnCash:               returns.CashOnCash(annualCashFlow, cashInvested),
		ROIWithAppreciation:      returns.ROI(annualCashFlow, appreciation, cashInvested),
		DSCR:                     returns.DSCR(annualNOI, annualDebtService),
		GRM:                      returns.GRM(a.PurchasePrice, annualGrossRent),
		ExpenseRatio:             returns.ExpenseRatio(bd.OperatingExpenses.Annualized(), bd.Income.Annualized()),
		BreakevenOccupancy:       returns.BreakevenOccupancy(bd.FixedExpenses, bd.DebtService, bd.PotentialIncome, bd.VariableRate),
	}
}

// acquisitionCapital is the cash a buyer brings to close and stabilize:
// down payment, closing costs, and renovation.
func (a *Analysis) acquisitionCapital() money.Money {
	return a.DownPayment.Add(a.ClosingCosts).Add(a.RenovationCosts)
}
