// Package mao derives the maximum allowable offer for a property from its
// after-repair value and the costs of getting it there.
package mao

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/OverlordBaconPants/rei-analyzer/pkg/format"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/money"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/validation"
)

// Inputs holds the pricing assumptions behind a maximum allowable offer.
type Inputs struct {
	ARV             money.Money
	RenovationCosts money.Money
	ClosingCosts    money.Money
	MonthlyHolding  money.Money
	HoldingMonths   int
	TargetLTV       money.Percentage
	MaxCashLeft     money.Money
}

// Validate checks the input fields, naming the offending field on failure.
func (in Inputs) Validate() error {
	if err := validation.RequirePositive("after_repair_value", in.ARV); err != nil {
		return err
	}
	if err := validation.RequireNonNegative("renovation_costs", in.RenovationCosts); err != nil {
		return err
	}
	if err := validation.RequireNonNegative("closing_costs", in.ClosingCosts); err != nil {
		return err
	}
	if err := validation.RequireNonNegative("monthly_holding_costs", in.MonthlyHolding); err != nil {
		return err
	}
	if in.HoldingMonths < 0 {
		return validation.Errorf("holding_months", "must not be negative, got %d", in.HoldingMonths)
	}
	if err := validation.RequirePercentage("target_ltv", in.TargetLTV, 100); err != nil {
		return err
	}
	return validation.RequireNonNegative("max_cash_left", in.MaxCashLeft)
}

// Compute derives the maximum allowable offer:
//
//	MAO = ARV*LTV - renovation - closing - holding*months - max cash left
//
// floored at zero.
func Compute(in Inputs) (money.Money, error) {
	if err := in.Validate(); err != nil {
		return money.Zero(), err
	}
	offer := in.TargetLTV.ApplyTo(in.ARV).
		Sub(in.RenovationCosts).
		Sub(in.ClosingCosts).
		Sub(in.MonthlyHolding.MulInt(in.HoldingMonths)).
		Sub(in.MaxCashLeft)
	return offer.FloorZero().Round(), nil
}

// ComputeBRRRR derives the MAO for a BRRRR deal and checks that the planned
// refinance loan stays within ARV*LTV when the offer is taken as the purchase
// price. The check is advisory: an inconsistency is logged and returned as a
// warning, never an error.
func ComputeBRRRR(logger *zap.Logger, in Inputs, refinancePrincipal money.Money) (money.Money, string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	offer, err := Compute(in)
	if err != nil {
		return money.Zero(), "", err
	}

	var warning string
	maxLoan := in.TargetLTV.ApplyTo(in.ARV).Round()
	if refinancePrincipal.GreaterThan(maxLoan) {
		warning = fmt.Sprintf("refinance loan %s exceeds %s of ARV (%s)",
			format.Currency(refinancePrincipal), in.TargetLTV, format.Currency(maxLoan))
		logger.Warn(warning,
			zap.String("op", "mao.ComputeBRRRR"),
		)
	}
	return offer, warning, nil
}
