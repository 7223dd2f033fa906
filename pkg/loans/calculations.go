// Package loans provides loan amortization and multi-loan aggregation.
package loans

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/OverlordBaconPants/rei-analyzer/pkg/money"
)

// nearZeroRate is the monthly-rate threshold below which the straight-line
// branch is used instead of the amortization formula. Rates this small would
// make the discount factor numerically unstable.
var nearZeroRate = decimal.New(1, -9)

// InvalidTermError reports a non-positive loan term.
type InvalidTermError struct {
	Term int
}

func (e *InvalidTermError) Error() string {
	return fmt.Sprintf("invalid loan term %d months: term must be positive", e.Term)
}

// Details holds the parameters of a single loan. StartMonth is the
// deal-relative month index at which the loan originates; the initial
// purchase loan starts at 0 while a refinance loan starts at the refinance
// month. A nil or zero-principal Details is a "null loan" slot.
type Details struct {
	Principal    money.Money
	AnnualRate   money.Percentage
	TermMonths   int
	InterestOnly bool
	StartMonth   int
}

// Payment holds the values for a single loan period. Principal and Interest
// always sum exactly to Total.
type Payment struct {
	Total     money.Money
	Principal money.Money
	Interest  money.Money
}

// Summary aggregates the full life of a loan.
type Summary struct {
	MonthlyPayment money.Money
	TotalPaid      money.Money
	TotalInterest  money.Money
}

// IsZero reports whether the loan slot is absent or carries no amount.
func (d *Details) IsZero() bool {
	return d == nil || !d.Principal.IsPositive()
}

// monthlyRate returns the exact monthly fractional rate (annual/12/100).
func (d *Details) monthlyRate() decimal.Decimal {
	return d.AnnualRate.MonthlyRate()
}

// straightLine reports whether the zero/near-zero rate branch applies.
func (d *Details) straightLine() bool {
	return d.monthlyRate().Abs().LessThan(nearZeroRate)
}

// LevelPayment returns the fixed monthly payment for the loan.
//
// For amortizing loans: payment = P * r * (1+r)^n / ((1+r)^n - 1). The power
// factor is computed in float64 and the result converted straight back to an
// exact cent amount; all subsequent arithmetic stays decimal. Zero and
// near-zero rates divide the principal evenly across the term. Interest-only
// loans pay principal * r every period.
func (d *Details) LevelPayment() (money.Money, error) {
	if d.IsZero() {
		return money.Zero(), nil
	}
	if d.TermMonths <= 0 {
		return money.Zero(), &InvalidTermError{Term: d.TermMonths}
	}

	rate := d.monthlyRate()
	if d.InterestOnly {
		return d.Principal.Mul(rate).Round(), nil
	}
	if d.straightLine() {
		return d.Principal.DivInt(d.TermMonths).Round(), nil
	}

	r := rate.InexactFloat64()
	factor := math.Pow(1+r, float64(d.TermMonths))
	payment := d.Principal.InexactFloat64() * r * factor / (factor - 1)
	return money.FromFloat(payment).Round(), nil
}

// PaymentAt returns the payment for the given 1-based period index. Periods
// outside [1, term] return zero payments, as does a zero-principal loan. The
// final period absorbs accumulated rounding so the balance lands exactly on
// zero; for interest-only loans the final period is the balloon, where the
// principal portion equals the full original principal.
func (d *Details) PaymentAt(period int) (Payment, error) {
	if d.IsZero() {
		return Payment{}, nil
	}
	if d.TermMonths <= 0 {
		return Payment{}, &InvalidTermError{Term: d.TermMonths}
	}
	if period < 1 || period > d.TermMonths {
		return Payment{}, nil
	}

	levelPayment, err := d.LevelPayment()
	if err != nil {
		return Payment{}, err
	}
	rate := d.monthlyRate()

	if d.InterestOnly {
		interest := d.Principal.Mul(rate).Round()
		if period == d.TermMonths {
			return Payment{
				Total:     d.Principal.Add(interest),
				Principal: d.Principal,
				Interest:  interest,
			}, nil
		}
		return Payment{Total: interest, Principal: money.Zero(), Interest: interest}, nil
	}

	balance := d.Principal
	var current Payment
	for p := 1; p <= period; p++ {
		current = nextPayment(balance, levelPayment, rate, p == d.TermMonths, d.straightLine())
		balance = balance.Sub(current.Principal).FloorZero()
	}
	return current, nil
}

// BalanceAfter returns the remaining principal after the given number of
// elapsed months. BalanceAfter(0) is the full principal; at or beyond term
// completion the balance is zero (for interest-only loans the terminal
// balloon retires the principal).
func (d *Details) BalanceAfter(monthsElapsed int) (money.Money, error) {
	if d.IsZero() {
		return money.Zero(), nil
	}
	if d.TermMonths <= 0 {
		return money.Zero(), &InvalidTermError{Term: d.TermMonths}
	}
	if monthsElapsed <= 0 {
		return d.Principal, nil
	}
	if monthsElapsed >= d.TermMonths {
		return money.Zero(), nil
	}
	if d.InterestOnly {
		return d.Principal, nil
	}

	levelPayment, err := d.LevelPayment()
	if err != nil {
		return money.Zero(), err
	}
	rate := d.monthlyRate()

	balance := d.Principal
	for p := 1; p <= monthsElapsed; p++ {
		pay := nextPayment(balance, levelPayment, rate, p == d.TermMonths, d.straightLine())
		balance = balance.Sub(pay.Principal).FloorZero()
	}
	return balance, nil
}

// Schedule generates the complete payment schedule for the loan.
func (d *Details) Schedule() ([]Payment, error) {
	if d.IsZero() {
		return nil, nil
	}
	if d.TermMonths <= 0 {
		return nil, &InvalidTermError{Term: d.TermMonths}
	}

	levelPayment, err := d.LevelPayment()
	if err != nil {
		return nil, err
	}
	rate := d.monthlyRate()

	schedule := make([]Payment, 0, d.TermMonths)
	if d.InterestOnly {
		for p := 1; p <= d.TermMonths; p++ {
			pay, err := d.PaymentAt(p)
			if err != nil {
				return nil, err
			}
			schedule = append(schedule, pay)
		}
		return schedule, nil
	}

	balance := d.Principal
	for p := 1; p <= d.TermMonths; p++ {
		pay := nextPayment(balance, levelPayment, rate, p == d.TermMonths, d.straightLine())
		balance = balance.Sub(pay.Principal).FloorZero()
		schedule = append(schedule, pay)
	}
	return schedule, nil
}

// Summarize returns the payment, total paid, and total interest over the
// full term.
func (d *Details) Summarize() (Summary, error) {
	levelPayment, err := d.LevelPayment()
	if err != nil {
		return Summary{}, err
	}
	schedule, err := d.Schedule()
	if err != nil {
		return Summary{}, err
	}

	totalPaid := money.Zero()
	totalInterest := money.Zero()
	for _, pay := range schedule {
		totalPaid = totalPaid.Add(pay.Total)
		totalInterest = totalInterest.Add(pay.Interest)
	}
	return Summary{
		MonthlyPayment: levelPayment,
		TotalPaid:      totalPaid,
		TotalInterest:  totalInterest,
	}, nil
}

// nextPayment computes one amortizing period against the current balance.
func nextPayment(balance, levelPayment money.Money, rate decimal.Decimal, finalPeriod, straightLine bool) Payment {
	var interest money.Money
	if straightLine {
		interest = money.Zero()
	} else {
		interest = balance.Mul(rate).Round()
	}

	principalPart := levelPayment.Sub(interest)
	if finalPeriod || principalPart.GreaterThan(balance) {
		// Absorb rounding so the balance reaches exactly zero.
		principalPart = balance
	}
	return Payment{
		Total:     principalPart.Add(interest),
		Principal: principalPart,
		Interest:  interest,
	}
}
