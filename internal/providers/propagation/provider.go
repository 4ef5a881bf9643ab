package propagation

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/uncertain/internal/providers/propagation/common"
	"github.com/GriffinCanCode/uncertain/internal/providers/propagation/operations"
	"github.com/GriffinCanCode/uncertain/internal/providers/propagation/statistics"
	"github.com/GriffinCanCode/uncertain/internal/shared/types"
)

// UnknownTool is the observer label for tool IDs this provider does not define.
const UnknownTool = "unknown"

// Observer is notified after every tool execution
type Observer interface {
	ObserveOperation(tool, status string)
}

// Provider implements uncertainty propagation tools
type Provider struct {
	arithmetic *operations.ArithmeticOps
	trig       *operations.TrigOps
	samples    *statistics.SamplesOps
	observer   Observer
	known      map[string]struct{}
}

// NewProvider creates a modular propagation provider. observer may be nil.
func NewProvider(observer Observer) *Provider {
	ops := &common.PropagationOps{}

	p := &Provider{
		arithmetic: &operations.ArithmeticOps{PropagationOps: ops},
		trig:       &operations.TrigOps{PropagationOps: ops},
		samples:    &statistics.SamplesOps{PropagationOps: ops},
		observer:   observer,
		known:      make(map[string]struct{}),
	}
	for _, tool := range p.Definition().Tools {
		p.known[tool.ID] = struct{}{}
	}
	return p
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.arithmetic.GetTools()...)
	tools = append(tools, p.trig.GetTools()...)
	tools = append(tools, p.samples.GetTools()...)

	return types.Service{
		ID:          "uncertainty",
		Name:        "Uncertainty Propagation Service",
		Description: "First-order propagation of measurement uncertainty through arithmetic and trigonometry",
		Category:    types.CategoryUncertainty,
		Capabilities: []string{
			"arithmetic",
			"trigonometry",
			"statistics",
		},
		Tools: tools,
	}
}

// Execute routes to the appropriate module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	result, err := p.route(ctx, toolID, params, appCtx)
	if p.observer != nil {
		status := "ok"
		if err != nil || result == nil || !result.Success {
			status = "error"
		}
		// Client-supplied IDs must not become label values
		label := toolID
		if _, ok := p.known[toolID]; !ok {
			label = UnknownTool
		}
		p.observer.ObserveOperation(label, status)
	}
	return result, err
}

func (p *Provider) route(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Arithmetic
	case "uncertainty.add":
		return p.arithmetic.Add(ctx, params, appCtx)
	case "uncertainty.subtract":
		return p.arithmetic.Subtract(ctx, params, appCtx)
	case "uncertainty.multiply":
		return p.arithmetic.Multiply(ctx, params, appCtx)
	case "uncertainty.divide":
		return p.arithmetic.Divide(ctx, params, appCtx)

	// Trig
	case "uncertainty.sin":
		return p.trig.Sin(ctx, params, appCtx)
	case "uncertainty.cos":
		return p.trig.Cos(ctx, params, appCtx)
	case "uncertainty.tan":
		return p.trig.Tan(ctx, params, appCtx)

	// Samples
	case "uncertainty.fromSamples":
		return p.samples.FromSamples(ctx, params, appCtx)
	case "uncertainty.mean":
		return p.samples.Mean(ctx, params, appCtx)
	case "uncertainty.weightedMean":
		return p.samples.WeightedMean(ctx, params, appCtx)
	case "uncertainty.parse":
		return p.samples.Parse(ctx, params, appCtx)

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
