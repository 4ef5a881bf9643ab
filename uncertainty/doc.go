// Package uncertainty propagates measurement uncertainty through arithmetic
// and trigonometric operations using first-order (linear) rules.
//
// A Quantity is an immutable (value, uncertainty) pair. Combined quantities
// are assumed statistically independent:
//   - Add, Sub: absolute uncertainties combine in quadrature
//   - Mul, Div: relative uncertainties combine in quadrature
//   - Sin, Cos, Tan: uncertainty scales by the derivative magnitude
//
// Plain numbers carry zero uncertainty. Every binary operation accepts the
// other operand as any numeric Go type (see Coerce); the R* methods are the
// reflected forms where the plain number is on the left.
//
// Example Usage:
//
//	width := uncertainty.New(2.0, 0.1)
//	height := uncertainty.New(3.0, 0.2)
//	area, err := width.Mul(height)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(area) // about 6±0.5
package uncertainty
