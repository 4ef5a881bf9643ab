package operations

import (
	"context"

	"github.com/GriffinCanCode/uncertain/internal/providers/propagation/common"
	"github.com/GriffinCanCode/uncertain/internal/shared/types"
	"github.com/GriffinCanCode/uncertain/uncertainty"
)

// ArithmeticOps handles uncertainty propagation through + - * /
type ArithmeticOps struct {
	*common.PropagationOps
}

func binaryParams(left, right string) []types.Parameter {
	return []types.Parameter{
		{Name: "a", Type: "quantity", Description: left, Required: true},
		{Name: "b", Type: "quantity", Description: right, Required: true},
	}
}

// GetTools returns arithmetic tool definitions
func (a *ArithmeticOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "uncertainty.add",
			Name:        "Add",
			Description: "Add two values; absolute uncertainties combine in quadrature",
			Parameters:  binaryParams("First addend", "Second addend"),
			Returns:     "quantity",
		},
		{
			ID:          "uncertainty.subtract",
			Name:        "Subtract",
			Description: "Subtract b from a; absolute uncertainties combine in quadrature",
			Parameters:  binaryParams("Minuend", "Subtrahend"),
			Returns:     "quantity",
		},
		{
			ID:          "uncertainty.multiply",
			Name:        "Multiply",
			Description: "Multiply two values; relative uncertainties combine in quadrature",
			Parameters:  binaryParams("First factor", "Second factor"),
			Returns:     "quantity",
		},
		{
			ID:          "uncertainty.divide",
			Name:        "Divide",
			Description: "Divide a by b; relative uncertainties combine in quadrature",
			Parameters:  binaryParams("Dividend", "Divisor"),
			Returns:     "quantity",
		},
	}
}

// Add adds a and b
func (a *ArithmeticOps) Add(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return apply(uncertainty.OpAdd, params)
}

// Subtract subtracts b from a
func (a *ArithmeticOps) Subtract(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return apply(uncertainty.OpSub, params)
}

// Multiply multiplies a by b
func (a *ArithmeticOps) Multiply(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return apply(uncertainty.OpMul, params)
}

// Divide divides a by b
func (a *ArithmeticOps) Divide(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return apply(uncertainty.OpDiv, params)
}

func apply(op uncertainty.Op, params map[string]interface{}) (*types.Result, error) {
	left, err := common.GetOperand(params, "a")
	if err != nil {
		return common.Failure(err.Error())
	}
	right, err := common.GetOperand(params, "b")
	if err != nil {
		return common.Failure(err.Error())
	}

	q, err := uncertainty.Apply(op, left, right)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.QuantityResult(q)
}
