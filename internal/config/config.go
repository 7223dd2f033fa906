// Package config defines the deal-file data structures and loads and
// converts them into an engine Analysis.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/OverlordBaconPants/rei-analyzer/pkg/constants"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/datetime"
)

// DateTimeLayout is the month format expected in deal files.
const DateTimeLayout = constants.DateTimeLayout

// Configuration holds everything a deal file can carry.
type Configuration struct {
	Deal    Deal
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Deal is the raw, unconverted deal description. Monetary fields are plain
// numbers here; conversion into exact decimal types happens in
// BuildAnalysis.
type Deal struct {
	Name      string
	Strategy  string
	StartDate string // YYYY-MM anchor for all month-indexed events

	PurchasePrice      float64
	PropertyValue      float64
	AfterRepairValue   float64
	DownPayment        float64
	ClosingCosts       float64
	RenovationCosts    float64
	RenovationMonths   int
	FurnishingCosts    float64
	AnnualAppreciation float64

	MonthlyRent        float64
	OtherMonthlyIncome float64
	UnitTypes          []UnitTypeConfig

	Expenses        ExpensesConfig
	PercentExpenses PercentExpensesConfig

	Loans LoanSlots

	RefinanceDate         string
	RefinanceClosingCosts float64

	HasBalloonPayment bool
	BalloonDueDate    string

	StrikePrice              float64
	MonthlyRentCreditPercent float64
	RentCreditCap            float64
	OptionTermMonths         int

	TargetLTV           float64
	MonthlyHoldingCosts float64
	MaxCashLeft         float64
}

// UnitTypeConfig is one rent tier of a multi-family rent roll.
type UnitTypeConfig struct {
	Name        string
	MonthlyRent float64
	Count       int
	Occupied    int
}

// ExpensesConfig holds the fixed monthly expense line items.
type ExpensesConfig struct {
	PropertyTaxes float64
	Insurance     float64
	HOAFees       float64
	Utilities     float64
	OtherMonthly  float64

	CommonAreaMaintenance float64
	ElevatorMaintenance   float64
	StaffPayroll          float64
	TrashRemoval          float64
	CommonUtilities       float64
}

// PercentExpensesConfig holds the percentage-based expense rates (0-100).
type PercentExpensesConfig struct {
	ManagementFee    float64
	CapEx            float64
	Vacancy          float64
	Repairs          float64
	PadSplitPlatform float64
}

// LoanSlots maps the deal file's loan sections onto the engine's slots.
type LoanSlots struct {
	Initial          *LoanConfig
	Refinance        *LoanConfig
	BalloonRefinance *LoanConfig
	Additional       []LoanConfig // up to three
}

// LoanConfig is a raw loan description.
type LoanConfig struct {
	Principal    float64
	AnnualRate   float64
	TermMonths   int
	InterestOnly bool
	StartDate    string // YYYY-MM; empty means the deal start
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// deal file there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration returns non-fatal warnings about the deal file.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if conf.Deal.HasBalloonPayment && conf.Deal.Loans.BalloonRefinance == nil {
		warnings = append(warnings,
			"deal has a balloon payment but no balloonRefinance loan terms; the post-balloon transition cannot be computed")
	}
	if conf.Deal.HasBalloonPayment && conf.Deal.BalloonDueDate == "" {
		warnings = append(warnings, "deal has a balloon payment but no balloonDueDate")
	}
	if len(conf.Deal.Loans.Additional) > 3 {
		warnings = append(warnings, fmt.Sprintf(
			"deal declares %d additional loans but only 3 are supported; extras are ignored",
			len(conf.Deal.Loans.Additional)))
	}
	if conf.Deal.Strategy == "brrrr" && conf.Deal.RefinanceDate == "" {
		warnings = append(warnings, "BRRRR deal has no refinanceDate; the refinance is assumed at the deal start")
	}
	warnings = append(warnings, conf.dateOrderWarnings()...)
	return warnings
}

// dateOrderWarnings flags configured dates that fall outside the deal's
// timeline. Unparseable dates are reported when conversion runs, not here.
func (conf *Configuration) dateOrderWarnings() []string {
	var warnings []string
	if conf.Deal.StartDate == "" {
		return nil
	}

	if conf.Deal.HasBalloonPayment && conf.Deal.BalloonDueDate != "" {
		if before, err := datetime.DateBeforeDate(conf.Deal.BalloonDueDate, conf.Deal.StartDate); err == nil && before {
			warnings = append(warnings, fmt.Sprintf(
				"balloonDueDate %s precedes the deal startDate %s",
				conf.Deal.BalloonDueDate, conf.Deal.StartDate))
		}
	}
	if conf.Deal.RefinanceDate != "" {
		if before, err := datetime.DateBeforeDate(conf.Deal.RefinanceDate, conf.Deal.StartDate); err == nil && before {
			warnings = append(warnings, fmt.Sprintf(
				"refinanceDate %s precedes the deal startDate %s",
				conf.Deal.RefinanceDate, conf.Deal.StartDate))
		}
		if initial := conf.Deal.Loans.Initial; initial != nil && initial.TermMonths > 0 {
			origination := conf.Deal.StartDate
			if initial.StartDate != "" {
				origination = initial.StartDate
			}
			maturity, err := datetime.OffsetDate(origination, DateTimeLayout, initial.TermMonths)
			if err == nil {
				if matured, err := datetime.DateBeforeDate(maturity, conf.Deal.RefinanceDate); err == nil && matured {
					warnings = append(warnings, fmt.Sprintf(
						"refinanceDate %s falls after the initial loan matures at %s",
						conf.Deal.RefinanceDate, maturity))
				}
			}
		}
	}
	return warnings
}
