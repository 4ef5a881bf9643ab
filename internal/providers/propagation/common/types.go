package common

import (
	"fmt"

	"github.com/GriffinCanCode/uncertain/internal/shared/types"
	"github.com/GriffinCanCode/uncertain/uncertainty"
)

// PropagationOps provides common helpers for provider modules
type PropagationOps struct{}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// QuantityResult wraps a quantity as a successful result. Overflowed or
// undefined quantities cannot be encoded as JSON and become failures.
func QuantityResult(q uncertainty.Quantity) (*types.Result, error) {
	if err := uncertainty.CheckFinite("result", q); err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{
		"value":       q.Value(),
		"uncertainty": q.Uncertainty(),
		"text":        q.String(),
	})
}

// GetNumber extracts a plain number from params
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}
	op, err := uncertainty.Coerce(val)
	if err != nil {
		return 0, false
	}
	n, ok := op.(uncertainty.Scalar)
	return float64(n), ok
}

// GetNumbers extracts an array of plain numbers
func GetNumbers(params map[string]interface{}, key string) ([]float64, bool) {
	arr, ok := params[key].([]interface{})
	if !ok {
		return nil, false
	}

	numbers := make([]float64, 0, len(arr))
	for _, v := range arr {
		op, err := uncertainty.Coerce(v)
		if err != nil {
			return nil, false
		}
		n, ok := op.(uncertainty.Scalar)
		if !ok {
			return nil, false
		}
		numbers = append(numbers, float64(n))
	}
	return numbers, true
}

// GetString extracts string from params
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	return val, ok
}

// GetOperand extracts one side of a binary operation. Numbers stay plain;
// objects and strings become quantities.
func GetOperand(params map[string]interface{}, key string) (any, error) {
	val, ok := params[key]
	if !ok {
		return nil, fmt.Errorf("%s parameter required", key)
	}
	if uncertainty.IsNumeric(val) {
		return val, nil
	}
	return ToQuantity(val, key)
}

// GetQuantity extracts a quantity; a bare number becomes an exact quantity.
func GetQuantity(params map[string]interface{}, key string) (uncertainty.Quantity, error) {
	val, ok := params[key]
	if !ok {
		return uncertainty.Quantity{}, fmt.Errorf("%s parameter required", key)
	}
	if n, ok := GetNumber(params, key); ok {
		return uncertainty.Exact(n), nil
	}
	return ToQuantity(val, key)
}

// ToQuantity converts an object or text value into a quantity
func ToQuantity(val interface{}, name string) (uncertainty.Quantity, error) {
	switch v := val.(type) {
	case uncertainty.Quantity:
		return v, nil
	case string:
		q, err := uncertainty.Parse(v)
		if err != nil {
			return uncertainty.Quantity{}, fmt.Errorf("%s: %w", name, err)
		}
		return q, nil
	case map[string]interface{}:
		value, ok := GetNumber(v, "value")
		if !ok {
			return uncertainty.Quantity{}, fmt.Errorf("%s.value must be a number", name)
		}
		unc := 0.0
		if _, present := v["uncertainty"]; present {
			unc, ok = GetNumber(v, "uncertainty")
			if !ok {
				return uncertainty.Quantity{}, fmt.Errorf("%s.uncertainty must be a number", name)
			}
		}
		return uncertainty.New(value, unc), nil
	default:
		return uncertainty.Quantity{}, fmt.Errorf("%s: %w", name, &uncertainty.OpError{
			Op:      "operand",
			Operand: val,
			Kind:    uncertainty.ErrTypeMismatch,
		})
	}
}

// ValidateNumber checks if a number is valid (not NaN or Inf)
func ValidateNumber(x float64, name string) error {
	if x != x {
		return fmt.Errorf("%s is NaN", name)
	}
	if x > 1e308 || x < -1e308 {
		return fmt.Errorf("%s is infinite", name)
	}
	return nil
}

// ValidateNumbers validates an array of numbers
func ValidateNumbers(nums []float64, name string) error {
	for i, x := range nums {
		if err := ValidateNumber(x, fmt.Sprintf("%s[%d]", name, i)); err != nil {
			return err
		}
	}
	return nil
}
