package uncertainty

import (
	"encoding/json"
	"math/big"
)

// Operand is one side of a binary operation: either a Quantity or a Scalar.
type Operand interface {
	isOperand()
}

// Scalar is a plain number. It carries zero uncertainty.
type Scalar float64

func (Scalar) isOperand()   {}
func (Quantity) isOperand() {}

// Coerce converts v into an Operand. It accepts Quantity, *Quantity, Scalar,
// every Go integer and float kind, json.Number, *big.Int, *big.Float and
// *big.Rat. Anything else fails with ErrTypeMismatch.
func Coerce(v any) (Operand, error) {
	switch n := v.(type) {
	case Quantity:
		return n, nil
	case *Quantity:
		if n == nil {
			return nil, opErr("coerce", v, ErrTypeMismatch)
		}
		return *n, nil
	case Scalar:
		return n, nil
	case float64:
		return Scalar(n), nil
	case float32:
		return Scalar(n), nil
	case int:
		return Scalar(n), nil
	case int8:
		return Scalar(n), nil
	case int16:
		return Scalar(n), nil
	case int32:
		return Scalar(n), nil
	case int64:
		return Scalar(n), nil
	case uint:
		return Scalar(n), nil
	case uint8:
		return Scalar(n), nil
	case uint16:
		return Scalar(n), nil
	case uint32:
		return Scalar(n), nil
	case uint64:
		return Scalar(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return nil, opErr("coerce", v, ErrTypeMismatch)
		}
		return Scalar(f), nil
	case *big.Float:
		if n == nil {
			return nil, opErr("coerce", v, ErrTypeMismatch)
		}
		f, _ := n.Float64()
		return Scalar(f), nil
	case *big.Int:
		if n == nil {
			return nil, opErr("coerce", v, ErrTypeMismatch)
		}
		f, _ := new(big.Float).SetInt(n).Float64()
		return Scalar(f), nil
	case *big.Rat:
		if n == nil {
			return nil, opErr("coerce", v, ErrTypeMismatch)
		}
		f, _ := n.Float64()
		return Scalar(f), nil
	default:
		return nil, opErr("coerce", v, ErrTypeMismatch)
	}
}

// IsNumeric reports whether v coerces to a Scalar.
func IsNumeric(v any) bool {
	op, err := Coerce(v)
	if err != nil {
		return false
	}
	_, ok := op.(Scalar)
	return ok
}
