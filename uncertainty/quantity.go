package uncertainty

import (
	"math"
	"strconv"
	"strings"
)

// Quantity is a nominal value with an associated uncertainty.
// The zero value is 0±0.
type Quantity struct {
	value       float64
	uncertainty float64
}

// New creates a quantity. The sign of uncertainty is not validated.
func New(value, uncertainty float64) Quantity {
	return Quantity{value: value, uncertainty: uncertainty}
}

// Exact creates a quantity with zero uncertainty.
func Exact(value float64) Quantity {
	return Quantity{value: value}
}

// Value returns the nominal value.
func (q Quantity) Value() float64 { return q.value }

// Uncertainty returns the stored uncertainty.
func (q Quantity) Uncertainty() float64 { return q.uncertainty }

// RelativeUncertainty returns uncertainty/value. It is ±Inf or NaN when the
// value is zero.
func (q Quantity) RelativeUncertainty() float64 {
	return q.uncertainty / q.value
}

// IsFinite reports whether both value and uncertainty are finite.
func (q Quantity) IsFinite() bool {
	return !math.IsInf(q.value, 0) && !math.IsNaN(q.value) &&
		!math.IsInf(q.uncertainty, 0) && !math.IsNaN(q.uncertainty)
}

// Neg returns the quantity with its value negated. Negation does not change
// dispersion, so the uncertainty keeps its magnitude.
func (q Quantity) Neg() Quantity {
	return Quantity{value: -q.value, uncertainty: math.Abs(q.uncertainty)}
}

// String renders the quantity as "<value>±<uncertainty>".
func (q Quantity) String() string {
	return formatFloat(q.value) + "±" + formatFloat(q.uncertainty)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Parse reads "<value>±<uncertainty>", "<value>+/-<uncertainty>" or a bare
// number, which yields zero uncertainty. Parse(q.String()) reproduces q.
func Parse(s string) (Quantity, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return Quantity{}, opErr("parse", s, ErrSyntax)
	}

	valueText, uncText, found := strings.Cut(text, "±")
	if !found {
		valueText, uncText, found = strings.Cut(text, "+/-")
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(valueText), 64)
	if err != nil {
		return Quantity{}, opErr("parse", s, ErrSyntax)
	}
	if !found {
		return Exact(value), nil
	}

	unc, err := strconv.ParseFloat(strings.TrimSpace(uncText), 64)
	if err != nil {
		return Quantity{}, opErr("parse", s, ErrSyntax)
	}
	return New(value, unc), nil
}
