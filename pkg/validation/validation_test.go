package validation

import (
	"errors"
	"testing"

	"github.com/OverlordBaconPants/rei-analyzer/pkg/money"
)

func TestValidationErrorMessage(t *testing.T) {
	err := Errorf("monthly_rent", "must be positive, got %s", "0.00")
	if err.Error() != "field monthly_rent: must be positive, got 0.00" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestRequirePositive(t *testing.T) {
	if err := RequirePositive("amount", money.FromFloat(0.01)); err != nil {
		t.Errorf("positive amount rejected: %v", err)
	}
	for _, value := range []float64{0, -1} {
		err := RequirePositive("amount", money.FromFloat(value))
		var valErr *ValidationError
		if !errors.As(err, &valErr) {
			t.Fatalf("value %v: expected ValidationError, got %v", value, err)
		}
		if valErr.Field != "amount" {
			t.Errorf("error names field %q, expected amount", valErr.Field)
		}
	}
}

func TestRequireNonNegative(t *testing.T) {
	if err := RequireNonNegative("amount", money.Zero()); err != nil {
		t.Errorf("zero rejected: %v", err)
	}
	if err := RequireNonNegative("amount", money.FromFloat(-0.01)); err == nil {
		t.Error("negative amount accepted")
	}
}

func TestRequirePercentage(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		ceiling float64
		wantErr bool
	}{
		{"Within ceiling", 75, 100, false},
		{"At ceiling", 100, 100, false},
		{"Above ceiling", 101, 100, true},
		{"Negative", -1, 100, true},
		{"Unbounded ceiling", 500, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequirePercentage("rate", money.PercentFromFloat(tt.value), tt.ceiling)
			if (err != nil) != tt.wantErr {
				t.Errorf("RequirePercentage(%v, %v) error = %v, wantErr %v",
					tt.value, tt.ceiling, err, tt.wantErr)
			}
		})
	}
}

func TestRequirePositiveInt(t *testing.T) {
	if err := RequirePositiveInt("count", 1); err != nil {
		t.Errorf("positive count rejected: %v", err)
	}
	if err := RequirePositiveInt("count", 0); err == nil {
		t.Error("zero count accepted")
	}
}

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{"pretty", "csv"} {
		if err := ValidateOutputFormat(format); err != nil {
			t.Errorf("format %q rejected: %v", format, err)
		}
	}
	if err := ValidateOutputFormat("xml"); err == nil {
		t.Error("unknown format accepted")
	}
}
