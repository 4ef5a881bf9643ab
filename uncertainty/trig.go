package uncertainty

import (
	"fmt"
	"math"
	"strings"
)

// Sin returns sin(x) with uncertainty u·|cos(v)|.
func Sin(x Quantity) Quantity {
	return New(math.Sin(x.value), x.uncertainty*math.Abs(math.Cos(x.value)))
}

// Cos returns cos(x) with uncertainty u·|sin(v)|.
func Cos(x Quantity) Quantity {
	return New(math.Cos(x.value), x.uncertainty*math.Abs(math.Sin(x.value)))
}

// Tan returns tan(x) with uncertainty u/cos²(v). It fails with
// ErrDivideByZero only when cos(v) is exactly zero; near the pole the result
// is large but finite.
func Tan(x Quantity) (Quantity, error) {
	c := math.Cos(x.value)
	if c == 0 {
		return Quantity{}, opErr("tan", x, ErrDivideByZero)
	}
	return New(math.Tan(x.value), x.uncertainty/(c*c)), nil
}

// Trig applies the named function ("sin", "cos" or "tan") to x.
func Trig(name string, x Quantity) (Quantity, error) {
	switch strings.ToLower(name) {
	case "sin":
		return Sin(x), nil
	case "cos":
		return Cos(x), nil
	case "tan":
		return Tan(x)
	default:
		return Quantity{}, fmt.Errorf("unknown function %q", name)
	}
}
