package human

import (
	"fmt"
	"math"
	"strconv"
)

// Percent formats a percentage value rounded to a fixed number of decimal
// digits. Values outside [0, 100] are valid; bounds are the caller's
// concern.
type Percent struct {
	value     float64
	precision int
}

// NewPercent creates a percentage formatter rounding value half away from
// zero to precision decimal digits. Negative precision is rejected with
// ErrInvalidInput.
func NewPercent(value float64, precision int) (Percent, error) {
	if precision < 0 {
		return Percent{}, fmt.Errorf("%w: precision must be non-negative, got %d", ErrInvalidInput, precision)
	}
	return Percent{value: value, precision: precision}, nil
}

// Concise renders with a "%" suffix, such as "12.3%".
func (p Percent) Concise() string {
	s := p.rounded()
	if s == "-" {
		return s
	}
	return s + "%"
}

// Full renders with the word "percent", such as "12.3 percent".
func (p Percent) Full() string {
	s := p.rounded()
	if s == "-" {
		return s
	}
	return s + " percent"
}

// String renders the full form.
func (p Percent) String() string {
	return p.Full()
}

// rounded renders the value rounded to the configured precision, without
// trailing zeros. Non-finite values render the "-" sentinel.
func (p Percent) rounded() string {
	multiplier := math.Pow(10, float64(p.precision))
	r := math.Round(p.value*multiplier) / multiplier
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return "-"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
