package loans

import (
	"fmt"

	"github.com/OverlordBaconPants/rei-analyzer/pkg/constants"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/money"
)

// Portfolio aggregates up to five concurrent loans (initial, refinance, and
// additional loans). Nil and zero-amount slots are skipped, not errors.
type Portfolio struct {
	loans []*Details
}

// NewPortfolio builds a Portfolio from the given loan slots.
func NewPortfolio(slots ...*Details) (Portfolio, error) {
	if len(slots) > constants.MaxLoanSlots {
		return Portfolio{}, fmt.Errorf("too many loan slots: %d exceeds maximum of %d",
			len(slots), constants.MaxLoanSlots)
	}
	loans := make([]*Details, 0, len(slots))
	for _, slot := range slots {
		if slot.IsZero() {
			continue
		}
		loans = append(loans, slot)
	}
	return Portfolio{loans: loans}, nil
}

// Loans returns the populated loan slots.
func (p Portfolio) Loans() []*Details {
	return p.loans
}

// activeAt reports whether the loan is in repayment during the given
// deal-relative month: at or after its own start and before maturity.
func activeAt(d *Details, month int) bool {
	return month >= d.StartMonth && month < d.StartMonth+d.TermMonths
}

// DebtServiceAt returns the total monthly debt service across all loans
// active in the given deal-relative month.
func (p Portfolio) DebtServiceAt(month int) (money.Money, error) {
	total := money.Zero()
	for _, loan := range p.loans {
		if !activeAt(loan, month) {
			continue
		}
		pay, err := loan.PaymentAt(month - loan.StartMonth + 1)
		if err != nil {
			return money.Zero(), err
		}
		total = total.Add(pay.Total)
	}
	return total, nil
}

// BalanceAt returns the total outstanding principal across all loans as of
// the given deal-relative month. Loans not yet originated contribute nothing.
func (p Portfolio) BalanceAt(month int) (money.Money, error) {
	total := money.Zero()
	for _, loan := range p.loans {
		if month < loan.StartMonth {
			continue
		}
		balance, err := loan.BalanceAfter(month - loan.StartMonth)
		if err != nil {
			return money.Zero(), err
		}
		total = total.Add(balance)
	}
	return total, nil
}
