// Package constants provides shared constants for the rei-analyzer application.
package constants

// DateTimeLayout is the format expected for month-granularity dates in deal
// files (e.g. loan start months and balloon due dates).
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyScale is the number of decimal places for currency rounding
	CurrencyScale = 2

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// MaxLoanSlots is the maximum number of concurrent loans on an analysis
	// (initial, refinance, and up to three additional loans).
	MaxLoanSlots = 5
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultDealFile is the default deal file name
	DefaultDealFile = "deal.yaml"
)
