// Package kpi derives actual performance metrics from transaction history,
// for comparison against an analysis's projected metrics. The ratio math is
// shared with the projection path through pkg/returns, so the same inputs
// always produce the same numbers on both paths.
package kpi

import (
	"time"

	"go.uber.org/zap"

	"github.com/OverlordBaconPants/rei-analyzer/pkg/constants"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/money"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/returns"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/validation"
)

// Kind classifies a transaction sample.
type Kind int

const (
	Income Kind = iota
	Expense
)

// TransactionSample is a dated income or expense record, consumed read-only.
// IsDebtService marks expense records that are loan payments, which belong
// to debt service rather than operating expenses.
type TransactionSample struct {
	Date          time.Time
	Amount        money.Money
	Kind          Kind
	Category      string
	IsDebtService bool
}

// Actuals is the realized counterpart of a projected MetricsResult over a
// reporting period.
type Actuals struct {
	Months                 int
	TotalIncome            money.Money
	TotalOperatingExpenses money.Money
	TotalDebtService       money.Money
	MonthlyNOI             money.Money
	AnnualNOI              money.Money
	AnnualCashFlow         money.Money
	CapRate                returns.Ratio
	CashOnCash             returns.Ratio
	DSCR                   returns.Ratio
}

// ComputeActuals aggregates the samples dated within [from, to] and derives
// annualized actual KPIs. propertyValue and cashInvested come from the
// analysis under comparison.
func ComputeActuals(logger *zap.Logger, samples []TransactionSample, from, to time.Time,
	propertyValue, cashInvested money.Money) (Actuals, error) {

	if logger == nil {
		logger = zap.NewNop()
	}
	if to.Before(from) {
		return Actuals{}, validation.Errorf("period", "end %s precedes start %s",
			to.Format(constants.DateTimeLayout), from.Format(constants.DateTimeLayout))
	}

	months := (to.Year()-from.Year())*constants.MonthsPerYear +
		int(to.Month()) - int(from.Month()) + 1

	income := money.Zero()
	operating := money.Zero()
	debtService := money.Zero()
	for _, sample := range samples {
		if sample.Date.Before(from) || sample.Date.After(to) {
			continue
		}
		switch {
		case sample.Kind == Income:
			income = income.Add(sample.Amount)
		case sample.IsDebtService:
			debtService = debtService.Add(sample.Amount)
		default:
			operating = operating.Add(sample.Amount)
		}
	}

	noi := income.Sub(operating)
	monthlyNOI := noi.DivInt(months)
	annualNOI := monthlyNOI.Annualized()
	annualDebtService := debtService.DivInt(months).Annualized()
	annualCashFlow := annualNOI.Sub(annualDebtService)

	capRate := returns.Undefined()
	if rate, err := returns.CapRate(annualNOI, propertyValue); err == nil {
		capRate = returns.Finite(rate.Value())
	} else {
		logger.Debug("actual cap rate undefined",
			zap.String("op", "kpi.ComputeActuals"),
			zap.Error(err),
		)
	}

	return Actuals{
		Months:                 months,
		TotalIncome:            income.Round(),
		TotalOperatingExpenses: operating.Round(),
		TotalDebtService:       debtService.Round(),
		MonthlyNOI:             monthlyNOI.Round(),
		AnnualNOI:              annualNOI.Round(),
		AnnualCashFlow:         annualCashFlow.Round(),
		CapRate:                capRate,
		CashOnCash:             returns.CashOnCash(annualCashFlow, cashInvested),
		DSCR:                   returns.DSCR(annualNOI, annualDebtService),
	}, nil
}
