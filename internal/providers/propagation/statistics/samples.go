package statistics

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/uncertain/internal/providers/propagation/common"
	"github.com/GriffinCanCode/uncertain/internal/shared/types"
	"github.com/GriffinCanCode/uncertain/uncertainty"
)

// SamplesOps builds quantities from measurements
type SamplesOps struct {
	*common.PropagationOps
}

// GetTools returns sample-estimation tool definitions
func (s *SamplesOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "uncertainty.fromSamples",
			Name:        "From Samples",
			Description: "Mean of repeated measurements with the sample standard deviation as uncertainty",
			Parameters: []types.Parameter{
				{Name: "samples", Type: "array", Description: "At least two measurements", Required: true},
			},
			Returns: "quantity",
		},
		{
			ID:          "uncertainty.mean",
			Name:        "Mean",
			Description: "Mean of repeated measurements with the standard error as uncertainty",
			Parameters: []types.Parameter{
				{Name: "samples", Type: "array", Description: "At least two measurements", Required: true},
			},
			Returns: "quantity",
		},
		{
			ID:          "uncertainty.weightedMean",
			Name:        "Weighted Mean",
			Description: "Inverse-variance weighted mean of independent measurements",
			Parameters: []types.Parameter{
				{Name: "measurements", Type: "array", Description: "Quantities with non-zero uncertainty", Required: true},
			},
			Returns: "quantity",
		},
		{
			ID:          "uncertainty.parse",
			Name:        "Parse",
			Description: "Parse text such as 2.5±0.1",
			Parameters: []types.Parameter{
				{Name: "text", Type: "string", Description: "Quantity text", Required: true},
			},
			Returns: "quantity",
		},
	}
}

// FromSamples estimates value and standard deviation
func (s *SamplesOps) FromSamples(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return fromSamples(params, uncertainty.FromSamples)
}

// Mean estimates value and standard error
func (s *SamplesOps) Mean(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return fromSamples(params, uncertainty.MeanOf)
}

func fromSamples(params map[string]interface{}, estimate func([]float64) (uncertainty.Quantity, error)) (*types.Result, error) {
	samples, ok := common.GetNumbers(params, "samples")
	if !ok {
		return common.Failure("samples array of numbers required")
	}
	if err := common.ValidateNumbers(samples, "samples"); err != nil {
		return common.Failure(err.Error())
	}

	q, err := estimate(samples)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.QuantityResult(q)
}

// WeightedMean combines independent measurements
func (s *SamplesOps) WeightedMean(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	raw, ok := params["measurements"].([]interface{})
	if !ok {
		return common.Failure("measurements array required")
	}

	measurements := make([]uncertainty.Quantity, 0, len(raw))
	for i, item := range raw {
		q, err := common.ToQuantity(item, fmt.Sprintf("measurements[%d]", i))
		if err != nil {
			return common.Failure(err.Error())
		}
		measurements = append(measurements, q)
	}

	q, err := uncertainty.WeightedMean(measurements...)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.QuantityResult(q)
}

// Parse reads quantity text
func (s *SamplesOps) Parse(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	text, ok := common.GetString(params, "text")
	if !ok {
		return common.Failure("text parameter required")
	}
	q, err := uncertainty.Parse(text)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.QuantityResult(q)
}
