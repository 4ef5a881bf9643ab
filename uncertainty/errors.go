package uncertainty

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch indicates an operand that is neither a Quantity nor a number.
	ErrTypeMismatch = errors.New("operand type mismatch")

	// ErrDivideByZero indicates a zero central value where a divisor or a
	// relative uncertainty is required.
	ErrDivideByZero = errors.New("division by zero")

	// ErrInternal indicates a code path that ordinary dispatch never reaches.
	ErrInternal = errors.New("internal error")

	// ErrInsufficientSamples indicates too few samples to estimate dispersion.
	ErrInsufficientSamples = errors.New("insufficient samples")

	// ErrZeroUncertainty indicates a measurement that cannot be weighted.
	ErrZeroUncertainty = errors.New("zero uncertainty")

	// ErrSyntax indicates text that does not describe a quantity.
	ErrSyntax = errors.New("invalid syntax")

	// ErrNonFinite indicates a value or uncertainty that is ±Inf or NaN.
	ErrNonFinite = errors.New("non-finite result")
)

// OpError records a failed operation and the operand that caused it.
type OpError struct {
	Op      string
	Operand any
	Kind    error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Operand == nil {
		return fmt.Sprintf("uncertainty: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("uncertainty: %s: %s (operand %T %v)", e.Op, e.Kind, e.Operand, e.Operand)
}

func (e *OpError) Unwrap() error { return e.Kind }

func opErr(op string, operand any, kind error) error {
	return &OpError{Op: op, Operand: operand, Kind: kind}
}

// CheckFinite returns an ErrNonFinite OpError when q's value or uncertainty
// is ±Inf or NaN. Arithmetic itself never rejects overflow; callers that
// serialize results check at their boundary.
func CheckFinite(op string, q Quantity) error {
	if !q.IsFinite() {
		return opErr(op, q, ErrNonFinite)
	}
	return nil
}
