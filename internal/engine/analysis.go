// Package engine computes investment metrics for a property analysis under
// one of five strategies. Every metric is recomputed from the raw analysis
// fields on each request; derived values are never written back onto the
// Analysis.
package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/OverlordBaconPants/rei-analyzer/pkg/loans"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/money"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/validation"
)

// Strategy identifies the investment strategy an analysis models.
type Strategy string

const (
	StrategyLTR         Strategy = "ltr"
	StrategyBRRRR       Strategy = "brrrr"
	StrategyLeaseOption Strategy = "lease_option"
	StrategyMultiFamily Strategy = "multi_family"
	StrategyPadSplit    Strategy = "padsplit"
)

// Valid reports whether s is a known strategy tag.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyLTR, StrategyBRRRR, StrategyLeaseOption, StrategyMultiFamily, StrategyPadSplit:
		return true
	}
	return false
}

// UnitType describes one rent tier in a multi-family property.
type UnitType struct {
	Name        string
	MonthlyRent money.Money
	Count       int
	Occupied    int
}

// Expenses holds the fixed monthly expense line items. The common-area
// fields only apply to multi-family analyses and are ignored elsewhere.
type Expenses struct {
	PropertyTaxes money.Money
	Insurance     money.Money
	HOAFees       money.Money
	Utilities     money.Money
	OtherMonthly  money.Money

	CommonAreaMaintenance money.Money
	ElevatorMaintenance   money.Money
	StaffPayroll          money.Money
	TrashRemoval          money.Money
	CommonUtilities       money.Money
}

// PercentExpenses holds the percentage-based expense rates on the 0-100
// scale. Management, capex, vacancy, and repairs apply against monthly rent
// for single-unit strategies and against gross monthly income for
// multi-family; the PadSplit platform fee applies against gross rent. The
// per-strategy bases are intentional and must not be unified.
type PercentExpenses struct {
	ManagementFee    money.Percentage
	CapEx            money.Percentage
	Vacancy          money.Percentage
	Repairs          money.Percentage
	PadSplitPlatform money.Percentage
}

// Analysis is the aggregate root for a deal: property characteristics,
// purchase economics, income, expenses, loans, and the strategy tag. Fields
// irrelevant to the selected strategy are treated as absent/zero, never as
// errors.
type Analysis struct {
	Name     string
	Strategy Strategy

	PurchasePrice      money.Money
	PropertyValue      money.Money // current market value; purchase price when zero
	AfterRepairValue   money.Money
	DownPayment        money.Money
	ClosingCosts       money.Money
	RenovationCosts    money.Money
	RenovationMonths   int
	FurnishingCosts    money.Money // PadSplit one-time cost
	AnnualAppreciation money.Percentage

	MonthlyRent        money.Money
	OtherMonthlyIncome money.Money
	UnitTypes          []UnitType // multi-family rent roll

	Expenses        Expenses
	PercentExpenses PercentExpenses

	// Loan slots. Any slot may be nil or zero-principal.
	InitialLoan   *loans.Details
	RefinanceLoan *loans.Details
	Loan1         *loans.Details
	Loan2         *loans.Details
	Loan3         *loans.Details

	RefinanceMonth        int
	RefinanceClosingCosts money.Money

	HasBalloonPayment bool
	BalloonDueMonth   int
	BalloonRefinance  *loans.Details

	// Lease-option terms.
	StrikePrice              money.Money
	MonthlyRentCreditPercent money.Percentage
	RentCreditCap            money.Money
	OptionTermMonths         int

	// MAO assumptions.
	TargetLTV           money.Percentage
	MonthlyHoldingCosts money.Money
	MaxCashLeft         money.Money
}

// Portfolio assembles the analysis's loan slots into a multi-loan portfolio.
func (a *Analysis) Portfolio() (loans.Portfolio, error) {
	return loans.NewPortfolio(a.InitialLoan, a.RefinanceLoan, a.Loan1, a.Loan2, a.Loan3)
}

// MarketValue returns the property value used for cap-rate style metrics,
// falling back to the purchase price when no separate value is supplied.
func (a *Analysis) MarketValue() money.Money {
	if a.PropertyValue.IsPositive() {
		return a.PropertyValue
	}
	return a.PurchasePrice
}

// Fingerprint returns a stable hash of the exact input fields, suitable as a
// cache key: any field change produces a different fingerprint.
func (a *Analysis) Fingerprint() (string, error) {
	encoded, err := json.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("encoding analysis for fingerprint: %w", err)
	}
	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:]), nil
}

// Validate checks the fields required by the active strategy. Fields
// irrelevant to the strategy are never validated.
func (a *Analysis) Validate() error {
	if !a.Strategy.Valid() {
		return validation.Errorf("strategy", "unknown strategy %q", string(a.Strategy))
	}
	if err := validation.RequireNonNegative("purchase_price", a.PurchasePrice); err != nil {
		return err
	}
	if err := validation.RequireNonNegative("down_payment", a.DownPayment); err != nil {
		return err
	}
	if err := validation.RequireNonNegative("closing_costs", a.ClosingCosts); err != nil {
		return err
	}
	if err := a.validateCommonRates(); err != nil {
		return err
	}

	switch a.Strategy {
	case StrategyLTR:
		return validation.RequirePositive("monthly_rent", a.MonthlyRent)
	case StrategyBRRRR:
		return a.validateBRRRR()
	case StrategyLeaseOption:
		return a.validateLeaseOption()
	case StrategyMultiFamily:
		return a.validateMultiFamily()
	case StrategyPadSplit:
		return a.validatePadSplit()
	}
	return nil
}

func (a *Analysis) validateCommonRates() error {
	rates := []struct {
		field string
		value money.Percentage
	}{
		{"management_fee_percentage", a.PercentExpenses.ManagementFee},
		{"capex_percentage", a.PercentExpenses.CapEx},
		{"vacancy_percentage", a.PercentExpenses.Vacancy},
		{"repairs_percentage", a.PercentExpenses.Repairs},
	}
	for _, rate := range rates {
		if err := validation.RequirePercentage(rate.field, rate.value, 100); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analysis) validateBRRRR() error {
	if err := validation.RequirePositive("monthly_rent", a.MonthlyRent); err != nil {
		return err
	}
	if err := validation.RequirePositive("after_repair_value", a.AfterRepairValue); err != nil {
		return err
	}
	if err := validation.RequireNonNegative("renovation_costs", a.RenovationCosts); err != nil {
		return err
	}
	if a.RenovationMonths < 0 {
		return validation.Errorf("renovation_months", "must not be negative, got %d", a.RenovationMonths)
	}
	if a.RefinanceLoan.IsZero() {
		return validation.Errorf("refinance_loan", "required for the BRRRR strategy")
	}
	if a.RefinanceMonth < 0 {
		return validation.Errorf("refinance_month", "must not be negative, got %d", a.RefinanceMonth)
	}
	return nil
}

func (a *Analysis) validateLeaseOption() error {
	if err := validation.RequirePositive("monthly_rent", a.MonthlyRent); err != nil {
		return err
	}
	if err := validation.RequirePositive("strike_price", a.StrikePrice); err != nil {
		return err
	}
	if err := validation.RequirePositiveInt("option_term_months", a.OptionTermMonths); err != nil {
		return err
	}
	if err := validation.RequirePercentage("monthly_rent_credit_percentage", a.MonthlyRentCreditPercent, 100); err != nil {
		return err
	}
	return validation.RequireNonNegative("rent_credit_cap", a.RentCreditCap)
}

func (a *Analysis) validateMultiFamily() error {
	if len(a.UnitTypes) == 0 {
		return validation.Errorf("unit_types", "at least one unit type is required")
	}
	for i, unit := range a.UnitTypes {
		field := fmt.Sprintf("unit_types[%d]", i)
		if err := validation.RequirePositiveInt(field+".count", unit.Count); err != nil {
			return err
		}
		if unit.Occupied < 0 || unit.Occupied > unit.Count {
			return validation.Errorf(field+".occupied",
				"must be between 0 and count (%d), got %d", unit.Count, unit.Occupied)
		}
		if err := validation.RequireNonNegative(field+".monthly_rent", unit.MonthlyRent); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analysis) validatePadSplit() error {
	if err := validation.RequirePositive("monthly_rent", a.MonthlyRent); err != nil {
		return err
	}
	if err := validation.RequirePercentage("padsplit_platform_percentage", a.PercentExpenses.PadSplitPlatform, 100); err != nil {
		return err
	}
	return validation.RequireNonNegative("furnishing_costs", a.FurnishingCosts)
}
