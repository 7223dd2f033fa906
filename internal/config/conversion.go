package config

import (
	"fmt"

	"github.com/OverlordBaconPants/rei-analyzer/internal/engine"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/datetime"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/loans"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/money"
)

// monthIndex converts a configured calendar month into a deal-relative
// index. An empty date means the deal start (index 0).
func (conf *Configuration) monthIndex(date string) (int, error) {
	if date == "" || conf.Deal.StartDate == "" {
		return 0, nil
	}
	return datetime.MonthsBetween(conf.Deal.StartDate, date)
}

// convertLoan turns a raw loan section into loan details.
func (conf *Configuration) convertLoan(raw *LoanConfig) (*loans.Details, error) {
	if raw == nil {
		return nil, nil
	}
	start, err := conf.monthIndex(raw.StartDate)
	if err != nil {
		return nil, fmt.Errorf("loan start date: %w", err)
	}
	return &loans.Details{
		Principal:    money.FromFloat(raw.Principal),
		AnnualRate:   money.PercentFromFloat(raw.AnnualRate),
		TermMonths:   raw.TermMonths,
		InterestOnly: raw.InterestOnly,
		StartMonth:   start,
	}, nil
}

// BuildAnalysis converts the raw deal into the engine's Analysis aggregate:
// plain numbers become exact decimals, calendar months become deal-relative
// indexes, and loan sections fill the five loan slots.
func (conf *Configuration) BuildAnalysis() (*engine.Analysis, error) {
	deal := conf.Deal

	initial, err := conf.convertLoan(deal.Loans.Initial)
	if err != nil {
		return nil, err
	}
	refinance, err := conf.convertLoan(deal.Loans.Refinance)
	if err != nil {
		return nil, err
	}
	balloonRefi, err := conf.convertLoan(deal.Loans.BalloonRefinance)
	if err != nil {
		return nil, err
	}

	var additional [3]*loans.Details
	for i, raw := range deal.Loans.Additional {
		if i >= len(additional) {
			break
		}
		raw := raw
		converted, err := conf.convertLoan(&raw)
		if err != nil {
			return nil, err
		}
		additional[i] = converted
	}

	refinanceMonth, err := conf.monthIndex(deal.RefinanceDate)
	if err != nil {
		return nil, fmt.Errorf("refinance date: %w", err)
	}
	balloonDueMonth, err := conf.monthIndex(deal.BalloonDueDate)
	if err != nil {
		return nil, fmt.Errorf("balloon due date: %w", err)
	}
	if refinance != nil && deal.Loans.Refinance.StartDate == "" {
		// A refinance loan with no explicit start begins at the refinance
		// month, not at the start of the deal.
		refinance.StartMonth = refinanceMonth
	}
	if balloonRefi != nil && deal.Loans.BalloonRefinance.StartDate == "" {
		balloonRefi.StartMonth = balloonDueMonth
	}

	unitTypes := make([]engine.UnitType, 0, len(deal.UnitTypes))
	for _, unit := range deal.UnitTypes {
		unitTypes = append(unitTypes, engine.UnitType{
			Name:        unit.Name,
			MonthlyRent: money.FromFloat(unit.MonthlyRent),
			Count:       unit.Count,
			Occupied:    unit.Occupied,
		})
	}

	return &engine.Analysis{
		Name:     deal.Name,
		Strategy: engine.Strategy(deal.Strategy),

		PurchasePrice:      money.FromFloat(deal.PurchasePrice),
		PropertyValue:      money.FromFloat(deal.PropertyValue),
		AfterRepairValue:   money.FromFloat(deal.AfterRepairValue),
		DownPayment:        money.FromFloat(deal.DownPayment),
		ClosingCosts:       money.FromFloat(deal.ClosingCosts),
		RenovationCosts:    money.FromFloat(deal.RenovationCosts),
		RenovationMonths:   deal.RenovationMonths,
		FurnishingCosts:    money.FromFloat(deal.FurnishingCosts),
		AnnualAppreciation: money.PercentFromFloat(deal.AnnualAppreciation),

		MonthlyRent:        money.FromFloat(deal.MonthlyRent),
		OtherMonthlyIncome: money.FromFloat(deal.OtherMonthlyIncome),
		UnitTypes:          unitTypes,

		Expenses: engine.Expenses{
			PropertyTaxes:         money.FromFloat(deal.Expenses.PropertyTaxes),
			Insurance:             money.FromFloat(deal.Expenses.Insurance),
			HOAFees:               money.FromFloat(deal.Expenses.HOAFees),
			Utilities:             money.FromFloat(deal.Expenses.Utilities),
			OtherMonthly:          money.FromFloat(deal.Expenses.OtherMonthly),
			CommonAreaMaintenance: money.FromFloat(deal.Expenses.CommonAreaMaintenance),
			ElevatorMaintenance:   money.FromFloat(deal.Expenses.ElevatorMaintenance),
			StaffPayroll:          money.FromFloat(deal.Expenses.StaffPayroll),
			TrashRemoval:          money.FromFloat(deal.Expenses.TrashRemoval),
			CommonUtilities:       money.FromFloat(deal.Expenses.CommonUtilities),
		},
		PercentExpenses: engine.PercentExpenses{
			ManagementFee:    money.PercentFromFloat(deal.PercentExpenses.ManagementFee),
			CapEx:            money.PercentFromFloat(deal.PercentExpenses.CapEx),
			Vacancy:          money.PercentFromFloat(deal.PercentExpenses.Vacancy),
			Repairs:          money.PercentFromFloat(deal.PercentExpenses.Repairs),
			PadSplitPlatform: money.PercentFromFloat(deal.PercentExpenses.PadSplitPlatform),
		},

		InitialLoan:   initial,
		RefinanceLoan: refinance,
		Loan1:         additional[0],
		Loan2:         additional[1],
		Loan3:         additional[2],

		RefinanceMonth:        refinanceMonth,
		RefinanceClosingCosts: money.FromFloat(deal.RefinanceClosingCosts),

		HasBalloonPayment: deal.HasBalloonPayment,
		BalloonDueMonth:   balloonDueMonth,
		BalloonRefinance:  balloonRefi,

		StrikePrice:              money.FromFloat(deal.StrikePrice),
		MonthlyRentCreditPercent: money.PercentFromFloat(deal.MonthlyRentCreditPercent),
		RentCreditCap:            money.FromFloat(deal.RentCreditCap),
		OptionTermMonths:         deal.OptionTermMonths,

		TargetLTV:           money.PercentFromFloat(deal.TargetLTV),
		MonthlyHoldingCosts: money.FromFloat(deal.MonthlyHoldingCosts),
		MaxCashLeft:         money.FromFloat(deal.MaxCashLeft),
	}, nil
}
