package uncertainty

import (
	"fmt"
	"math"
	"strings"
)

// Op names a binary operation.
type Op string

const (
	OpAdd Op = "add"
	OpSub Op = "sub"
	OpMul Op = "mul"
	OpDiv Op = "div"
)

// ParseOp accepts an operation name or its operator symbol.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "+", "plus":
		return OpAdd, nil
	case "sub", "-", "subtract", "minus":
		return OpSub, nil
	case "mul", "*", "multiply", "times":
		return OpMul, nil
	case "div", "/", "divide":
		return OpDiv, nil
	default:
		return "", fmt.Errorf("unknown operation %q", s)
	}
}

// Add returns q + other.
func (q Quantity) Add(other any) (Quantity, error) {
	op, err := Coerce(other)
	if err != nil {
		return Quantity{}, opErr("add", other, ErrTypeMismatch)
	}
	return q.add(op), nil
}

// RAdd returns other + q. Addition commutes, so this equals q.Add(other).
func (q Quantity) RAdd(other any) (Quantity, error) {
	return q.Add(other)
}

// Sub returns q - other, computed as q + (-other).
func (q Quantity) Sub(other any) (Quantity, error) {
	op, err := Coerce(other)
	if err != nil {
		return Quantity{}, opErr("sub", other, ErrTypeMismatch)
	}
	return q.add(negate(op)), nil
}

// RSub returns other - q, computed as (-q) + other.
func (q Quantity) RSub(other any) (Quantity, error) {
	op, err := Coerce(other)
	if err != nil {
		return Quantity{}, opErr("rsub", other, ErrTypeMismatch)
	}
	return q.Neg().add(op), nil
}

// Mul returns q * other.
//
// Multiplying by a plain number scales the uncertainty by that number's
// signed value, so a negative multiplier yields a negative uncertainty.
// Use Neg to flip a sign without touching dispersion.
func (q Quantity) Mul(other any) (Quantity, error) {
	op, err := Coerce(other)
	if err != nil {
		return Quantity{}, opErr("mul", other, ErrTypeMismatch)
	}

	switch o := op.(type) {
	case Quantity:
		if q.value == 0 || o.value == 0 {
			return Quantity{}, opErr("mul", other, ErrDivideByZero)
		}
		product := q.value * o.value
		return New(product, math.Abs(product)*quadrature(q, o)), nil
	case Scalar:
		n := float64(o)
		return New(q.value*n, q.uncertainty*n), nil
	default:
		return Quantity{}, opErr("mul", other, ErrInternal)
	}
}

// RMul returns other * q. Multiplication commutes, so this equals q.Mul(other).
func (q Quantity) RMul(other any) (Quantity, error) {
	return q.Mul(other)
}

// Div returns q / other. Dividing by a plain number scales the uncertainty
// by its signed reciprocal, as Mul does.
func (q Quantity) Div(other any) (Quantity, error) {
	op, err := Coerce(other)
	if err != nil {
		return Quantity{}, opErr("div", other, ErrTypeMismatch)
	}

	switch o := op.(type) {
	case Quantity:
		if q.value == 0 || o.value == 0 {
			return Quantity{}, opErr("div", other, ErrDivideByZero)
		}
		quotient := q.value / o.value
		return New(quotient, math.Abs(quotient)*quadrature(q, o)), nil
	case Scalar:
		n := float64(o)
		if n == 0 {
			return Quantity{}, opErr("div", other, ErrDivideByZero)
		}
		return New(q.value/n, q.uncertainty/n), nil
	default:
		return Quantity{}, opErr("div", other, ErrInternal)
	}
}

// RDiv returns other / q for a plain number other. The uncertainty is
// (other/v)·u/v, the derivative of 1/x scaled by q's relative uncertainty.
// Like Mul and Div it keeps the sign of that product, so a numerator and
// value of opposite signs yield a negative uncertainty: -2 / (4±1) is
// -0.5±-0.125.
// Quantity ÷ Quantity always goes through Div; a Quantity here is an
// ErrInternal.
func (q Quantity) RDiv(other any) (Quantity, error) {
	op, err := Coerce(other)
	if err != nil {
		return Quantity{}, opErr("rdiv", other, ErrTypeMismatch)
	}

	n, ok := op.(Scalar)
	if !ok {
		return Quantity{}, opErr("rdiv", other, ErrInternal)
	}
	if q.value == 0 {
		return Quantity{}, opErr("rdiv", q, ErrDivideByZero)
	}
	quotient := float64(n) / q.value
	return New(quotient, quotient*q.uncertainty/q.value), nil
}

// Apply evaluates a op b where at least one side is a Quantity. A plain
// number on the left selects the reflected form.
func Apply(op Op, a, b any) (Quantity, error) {
	left, err := Coerce(a)
	if err != nil {
		return Quantity{}, opErr(string(op), a, ErrTypeMismatch)
	}
	if _, err := Coerce(b); err != nil {
		return Quantity{}, opErr(string(op), b, ErrTypeMismatch)
	}

	if lq, ok := left.(Quantity); ok {
		switch op {
		case OpAdd:
			return lq.Add(b)
		case OpSub:
			return lq.Sub(b)
		case OpMul:
			return lq.Mul(b)
		case OpDiv:
			return lq.Div(b)
		}
		return Quantity{}, opErr(string(op), nil, ErrInternal)
	}

	right, _ := Coerce(b)
	rq, ok := right.(Quantity)
	if !ok {
		// Two plain numbers would yield a result with no uncertainty to track.
		return Quantity{}, opErr(string(op), b, ErrTypeMismatch)
	}
	switch op {
	case OpAdd:
		return rq.RAdd(a)
	case OpSub:
		return rq.RSub(a)
	case OpMul:
		return rq.RMul(a)
	case OpDiv:
		return rq.RDiv(a)
	}
	return Quantity{}, opErr(string(op), nil, ErrInternal)
}

func (q Quantity) add(op Operand) Quantity {
	switch o := op.(type) {
	case Quantity:
		return New(q.value+o.value, math.Hypot(q.uncertainty, o.uncertainty))
	case Scalar:
		return New(q.value+float64(o), q.uncertainty)
	}
	return q
}

func negate(op Operand) Operand {
	switch o := op.(type) {
	case Quantity:
		return o.Neg()
	case Scalar:
		return -o
	}
	return op
}

// quadrature combines the relative uncertainties of a and b.
// Both values must be non-zero.
func quadrature(a, b Quantity) float64 {
	return math.Hypot(a.uncertainty/a.value, b.uncertainty/b.value)
}
