package http

import (
	"fmt"
	"regexp"

	"github.com/GriffinCanCode/uncertain/internal/shared/types"
	"github.com/GriffinCanCode/uncertain/internal/worksheet"
)

var toolIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+\.[A-Za-z0-9_.-]+$`)

// validateToolID checks the "<service>.<tool>" shape before dispatch
func validateToolID(id string) error {
	if len(id) > 128 {
		return fmt.Errorf("tool_id too long")
	}
	if !toolIDPattern.MatchString(id) {
		return fmt.Errorf("invalid tool_id: %q", id)
	}
	return nil
}

// quantityData converts evaluation results to their wire form
func quantityData(results []worksheet.Result) []types.QuantityData {
	out := make([]types.QuantityData, len(results))
	for i, r := range results {
		out[i] = types.QuantityData{
			Name:        r.Name,
			Value:       r.Quantity.Value(),
			Uncertainty: r.Quantity.Uncertainty(),
			Text:        r.Quantity.String(),
		}
	}
	return out
}
