// Package format renders Money and Percentage values for display. The core
// always operates on exact decimals; formatting happens only at the edges.
package format

import (
	"strings"

	"github.com/OverlordBaconPants/rei-analyzer/pkg/money"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/returns"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount money.Money) string {
	fixed := amount.Round().String()
	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}
	formatted := groupThousands(fixed)
	if negative {
		return "-$" + formatted
	}
	return "$" + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount money.Money) string {
	fixed := amount.Round().String()
	if strings.HasPrefix(fixed, "-") {
		return "-" + groupThousands(fixed[1:])
	}
	return groupThousands(fixed)
}

// Percent renders a Percentage as "XX.XXX%".
func Percent(p money.Percentage) string {
	return p.Value().Round(3).StringFixed(3) + "%"
}

// Ratio renders a finite ratio to three decimal places, or its sentinel.
func Ratio(r returns.Ratio) string {
	value, ok := r.Value()
	if !ok {
		return r.String()
	}
	return value.Round(3).StringFixed(3)
}

// RatioPercent renders a finite percentage-scale ratio as "XX.XXX%", or its
// sentinel unadorned.
func RatioPercent(r returns.Ratio) string {
	value, ok := r.Value()
	if !ok {
		return r.String()
	}
	return value.Round(3).StringFixed(3) + "%"
}

func groupThousands(fixed string) string {
	parts := strings.SplitN(fixed, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
