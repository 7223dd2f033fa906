// Package output provides utilities for formatting and displaying computed
// analysis metrics.
package output

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/OverlordBaconPants/rei-analyzer/internal/engine"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/format"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/money"
)

var printer = message.NewPrinter(language.English)

// prettyCurrency renders a dollar amount for the human-readable table.
func prettyCurrency(m money.Money) string {
	return printer.Sprintf("$%.2f", m.InexactFloat64())
}

type row struct {
	Label string
	Value string
}

func rows(result *engine.MetricsResult, currency func(money.Money) string) []row {
	out := []row{
		{"Strategy", string(result.Strategy)},
		{"Monthly income", currency(result.MonthlyIncome)},
		{"Monthly operating expenses", currency(result.MonthlyOperatingExpenses)},
		{"Monthly debt service", currency(result.MonthlyDebtService)},
		{"Monthly cash flow", currency(result.MonthlyCashFlow)},
		{"Annual NOI", currency(result.AnnualNOI)},
		{"Annual cash flow", currency(result.AnnualCashFlow)},
		{"Total cash invested", currency(result.TotalCashInvested)},
		{"Cap rate", format.RatioPercent(result.CapRate)},
		{"Cash-on-cash return", format.RatioPercent(result.CashOnCash)},
		{"ROI with appreciation", format.RatioPercent(result.ROIWithAppreciation)},
		{"DSCR", format.Ratio(result.DSCR)},
		{"GRM", format.Ratio(result.GRM)},
		{"Expense ratio", format.RatioPercent(result.ExpenseRatio)},
		{"Breakeven occupancy", format.RatioPercent(result.BreakevenOccupancy)},
	}

	if brrrr := result.BRRRR; brrrr != nil {
		out = append(out,
			row{"Pre-refinance cash flow", currency(brrrr.PreRefinanceCashFlow)},
			row{"Post-refinance cash flow", currency(brrrr.PostRefinanceCashFlow)},
			row{"Refinance payoff", currency(brrrr.RefinancePayoff)},
			row{"Cash recovered", currency(brrrr.CashRecovered)},
			row{"Maximum allowable offer", currency(brrrr.MAO)},
		)
	}
	if lo := result.LeaseOption; lo != nil {
		out = append(out,
			row{"Monthly rent credit", currency(lo.MonthlyCredit)},
			row{"Total accrued credit", currency(lo.TotalAccruedCredit)},
			row{"Effective purchase price", currency(lo.EffectivePurchasePrice)},
			row{"Option equity", currency(lo.OptionEquity)},
		)
	}
	if mf := result.MultiFamily; mf != nil {
		out = append(out,
			row{"Total units", fmt.Sprintf("%d", mf.TotalUnits)},
			row{"Occupied units", fmt.Sprintf("%d", mf.OccupiedUnits)},
			row{"Gross monthly rent", currency(mf.GrossMonthlyRent)},
			row{"Price per unit", currency(mf.PricePerUnit)},
		)
	}
	if ps := result.PadSplit; ps != nil {
		out = append(out,
			row{"Furnishing costs", currency(ps.FurnishingCosts)},
			row{"Monthly platform fee", currency(ps.MonthlyPlatformFee)},
		)
	}
	return out
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(name string, result *engine.MetricsResult) {
	fmt.Printf("--- Results for analysis %s ---\n", name)
	fmt.Printf("Metric                     | Value\n")
	fmt.Printf("______                     | _____\n")
	for _, r := range rows(result, prettyCurrency) {
		fmt.Printf("%-26s | %s\n", r.Label, r.Value)
	}
	for _, warning := range result.Warnings {
		fmt.Printf("warning: %s\n", warning)
	}
}

// CsvFormat outputs in comma-separated value format. Amounts carry no
// currency symbol in this mode.
func CsvFormat(name string, result *engine.MetricsResult) {
	fmt.Printf("\"analysis\",\"metric\",\"value\"\n")
	for _, r := range rows(result, format.NumericCurrency) {
		fmt.Printf("%q,%q,%q\n", name, r.Label, r.Value)
	}
}
