// Package returns provides the investment-return metric calculations shared
// by the projected-analysis path and the actual-transaction KPI path. Every
// function here is pure: same inputs, same outputs, regardless of caller.
package returns

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ratioState tags the three outcomes of a ratio metric.
type ratioState int

const (
	stateFinite ratioState = iota
	stateUndefined
	stateInfinite
)

// Ratio is the result of a ratio metric. Degenerate denominators are common,
// legitimate real-estate scenarios (no debt, no cash down), so they are
// modeled as explicit Undefined/Infinite variants rather than errors or magic
// numbers. The zero value is Finite(0).
type Ratio struct {
	state ratioState
	value decimal.Decimal
}

// Finite returns a Ratio carrying a real value.
func Finite(value decimal.Decimal) Ratio {
	return Ratio{state: stateFinite, value: value}
}

// FiniteFloat returns a finite Ratio from a float64.
func FiniteFloat(value float64) Ratio {
	return Finite(decimal.NewFromFloat(value))
}

// Undefined returns the "N/A" sentinel (e.g. DSCR with no debt).
func Undefined() Ratio {
	return Ratio{state: stateUndefined}
}

// Infinite returns the infinite-return sentinel (e.g. cash-on-cash with zero
// cash invested and positive cash flow).
func Infinite() Ratio {
	return Ratio{state: stateInfinite}
}

// IsFinite reports whether the ratio carries a real value.
func (r Ratio) IsFinite() bool {
	return r.state == stateFinite
}

// IsUndefined reports whether the ratio is the "N/A" sentinel.
func (r Ratio) IsUndefined() bool {
	return r.state == stateUndefined
}

// IsInfinite reports whether the ratio is the infinite-return sentinel.
func (r Ratio) IsInfinite() bool {
	return r.state == stateInfinite
}

// Value returns the finite value and true, or zero and false for sentinels.
// Callers cannot accidentally treat a sentinel as a real number.
func (r Ratio) Value() (decimal.Decimal, bool) {
	if r.state != stateFinite {
		return decimal.Decimal{}, false
	}
	return r.value, true
}

// String renders the value, or the display sentinel for degenerate cases.
func (r Ratio) String() string {
	switch r.state {
	case stateUndefined:
		return "N/A"
	case stateInfinite:
		return "∞"
	default:
		return r.value.String()
	}
}

// ratioJSON is the serialized form used by the cache and API layers.
type ratioJSON struct {
	State string          `json:"state"`
	Value decimal.Decimal `json:"value,omitempty"`
}

// MarshalJSON encodes the ratio with its state tag.
func (r Ratio) MarshalJSON() ([]byte, error) {
	switch r.state {
	case stateUndefined:
		return json.Marshal(ratioJSON{State: "undefined"})
	case stateInfinite:
		return json.Marshal(ratioJSON{State: "infinite"})
	default:
		return json.Marshal(ratioJSON{State: "finite", Value: r.value})
	}
}

// UnmarshalJSON decodes a state-tagged ratio.
func (r *Ratio) UnmarshalJSON(data []byte) error {
	var raw ratioJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.State {
	case "finite":
		*r = Finite(raw.Value)
	case "undefined":
		*r = Undefined()
	case "infinite":
		*r = Infinite()
	default:
		return fmt.Errorf("unknown ratio state %q", raw.State)
	}
	return nil
}
