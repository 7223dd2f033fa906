// Package validation provides named-field input validation for analysis data.
package validation

import (
	"fmt"

	"github.com/OverlordBaconPants/rei-analyzer/pkg/constants"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/money"
)

// ValidationError reports a malformed or out-of-range input field by name.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Reason)
}

// Errorf builds a ValidationError for the named field.
func Errorf(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// RequirePositive rejects zero or negative amounts.
func RequirePositive(field string, m money.Money) error {
	if !m.IsPositive() {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be positive, got %s", m)}
	}
	return nil
}

// RequireNonNegative rejects negative amounts.
func RequireNonNegative(field string, m money.Money) error {
	if m.IsNegative() {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must not be negative, got %s", m)}
	}
	return nil
}

// RequirePercentage rejects negative percentages and values above the
// context-specific ceiling (e.g. 100 for occupancy-style rates). Pass a
// negative ceiling for unbounded rates such as ROI.
func RequirePercentage(field string, p money.Percentage, ceiling float64) error {
	if p.IsNegative() {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must not be negative, got %s", p)}
	}
	if ceiling >= 0 && p.GreaterThan(money.PercentFromFloat(ceiling)) {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must not exceed %.0f%%, got %s", ceiling, p)}
	}
	return nil
}

// RequirePositiveInt rejects zero or negative counts.
func RequirePositiveInt(field string, n int) error {
	if n <= 0 {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be positive, got %d", n)}
	}
	return nil
}

// ValidateOutputFormat checks if the provided output format is supported.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	default:
		return fmt.Errorf("unknown output format %s, must be %s or %s",
			format, constants.OutputFormatPretty, constants.OutputFormatCSV)
	}
}
