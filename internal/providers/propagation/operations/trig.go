package operations

import (
	"context"

	"github.com/GriffinCanCode/uncertain/internal/providers/propagation/common"
	"github.com/GriffinCanCode/uncertain/internal/shared/types"
	"github.com/GriffinCanCode/uncertain/uncertainty"
)

// TrigOps handles trigonometric propagation
type TrigOps struct {
	*common.PropagationOps
}

var angleParam = []types.Parameter{
	{Name: "x", Type: "quantity", Description: "Angle in radians", Required: true},
}

// GetTools returns trig tool definitions
func (t *TrigOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "uncertainty.sin",
			Name:        "Sine",
			Description: "Sine of an uncertain angle; uncertainty scales by |cos x|",
			Parameters:  angleParam,
			Returns:     "quantity",
		},
		{
			ID:          "uncertainty.cos",
			Name:        "Cosine",
			Description: "Cosine of an uncertain angle; uncertainty scales by |sin x|",
			Parameters:  angleParam,
			Returns:     "quantity",
		},
		{
			ID:          "uncertainty.tan",
			Name:        "Tangent",
			Description: "Tangent of an uncertain angle; uncertainty scales by sec² x",
			Parameters:  angleParam,
			Returns:     "quantity",
		},
	}
}

// Sin calculates sine
func (t *TrigOps) Sin(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return trig("sin", params)
}

// Cos calculates cosine
func (t *TrigOps) Cos(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return trig("cos", params)
}

// Tan calculates tangent
func (t *TrigOps) Tan(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return trig("tan", params)
}

func trig(name string, params map[string]interface{}) (*types.Result, error) {
	x, err := common.GetQuantity(params, "x")
	if err != nil {
		return common.Failure(err.Error())
	}
	q, err := uncertainty.Trig(name, x)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.QuantityResult(q)
}
