package worksheet

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/GriffinCanCode/uncertain/uncertainty"
)

var (
	ErrInvalidSheet = errors.New("invalid worksheet")
	ErrTooManySteps = errors.New("too many steps")
)

// StepError reports which step (or input) failed.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Limits bounds evaluation. Zero means unlimited.
type Limits struct {
	MaxSteps int
}

// Result is one named quantity produced by a worksheet.
type Result struct {
	Name     string
	Quantity uncertainty.Quantity
	Input    bool
}

// Evaluate resolves inputs, sorted by name, then runs steps in order.
func Evaluate(ctx context.Context, sheet *Sheet, limits Limits) ([]Result, error) {
	if sheet == nil {
		return nil, fmt.Errorf("%w: empty worksheet", ErrInvalidSheet)
	}
	if limits.MaxSteps > 0 && len(sheet.Steps) > limits.MaxSteps {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManySteps, len(sheet.Steps), limits.MaxSteps)
	}

	names := make([]string, 0, len(sheet.Quantities))
	for name := range sheet.Quantities {
		names = append(names, name)
	}
	sort.Strings(names)

	env := make(map[string]uncertainty.Quantity, len(names)+len(sheet.Steps))
	results := make([]Result, 0, len(names)+len(sheet.Steps))

	for _, name := range names {
		q, err := resolveInput(sheet.Quantities[name])
		if err == nil {
			err = uncertainty.CheckFinite("input", q)
		}
		if err != nil {
			return nil, &StepError{Step: name, Err: err}
		}
		env[name] = q
		results = append(results, Result{Name: name, Quantity: q, Input: true})
	}

	for i, step := range sheet.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		label := step.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}
		q, err := runStep(step, env)
		if err == nil {
			err = uncertainty.CheckFinite(step.Op, q)
		}
		if err != nil {
			return nil, &StepError{Step: label, Err: err}
		}
		env[step.Name] = q
		results = append(results, Result{Name: step.Name, Quantity: q})
	}

	return results, nil
}

func runStep(step Step, env map[string]uncertainty.Quantity) (uncertainty.Quantity, error) {
	if step.Name == "" {
		return uncertainty.Quantity{}, fmt.Errorf("%w: step name required", ErrInvalidSheet)
	}
	if _, exists := env[step.Name]; exists {
		return uncertainty.Quantity{}, fmt.Errorf("%w: name %q already defined", ErrInvalidSheet, step.Name)
	}
	if step.A == nil {
		return uncertainty.Quantity{}, fmt.Errorf("%w: operand a required", ErrInvalidSheet)
	}

	a, err := resolveOperand(step.A, env)
	if err != nil {
		return uncertainty.Quantity{}, err
	}

	switch fn := strings.ToLower(step.Op); fn {
	case "sin", "cos", "tan":
		x, ok := a.(uncertainty.Quantity)
		if !ok {
			x = exact(a)
		}
		return uncertainty.Trig(fn, x)
	}

	op, err := uncertainty.ParseOp(step.Op)
	if err != nil {
		return uncertainty.Quantity{}, fmt.Errorf("%w: %v", ErrInvalidSheet, err)
	}
	if step.B == nil {
		return uncertainty.Quantity{}, fmt.Errorf("%w: operand b required for %s", ErrInvalidSheet, op)
	}
	b, err := resolveOperand(step.B, env)
	if err != nil {
		return uncertainty.Quantity{}, err
	}
	return uncertainty.Apply(op, a, b)
}

// resolveOperand returns a Quantity for names, text and objects, and leaves
// plain numbers untouched so Apply can pick the reflected form.
func resolveOperand(v any, env map[string]uncertainty.Quantity) (any, error) {
	if s, ok := v.(string); ok {
		if q, found := env[s]; found {
			return q, nil
		}
		q, err := uncertainty.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("unknown name or quantity %q", s)
		}
		return q, nil
	}
	if uncertainty.IsNumeric(v) {
		return v, nil
	}
	return resolveInput(v)
}

func resolveInput(v any) (uncertainty.Quantity, error) {
	switch in := v.(type) {
	case string:
		return uncertainty.Parse(in)
	case map[string]any:
		return resolveObject(in)
	default:
		op, err := uncertainty.Coerce(v)
		if err != nil {
			return uncertainty.Quantity{}, err
		}
		if q, ok := op.(uncertainty.Quantity); ok {
			return q, nil
		}
		return exact(v), nil
	}
}

func resolveObject(obj map[string]any) (uncertainty.Quantity, error) {
	if raw, ok := obj["samples"]; ok {
		samples, err := numbers(raw)
		if err != nil {
			return uncertainty.Quantity{}, err
		}
		switch estimate, _ := obj["estimate"].(string); strings.ToLower(estimate) {
		case "", "stddev":
			return uncertainty.FromSamples(samples)
		case "stderr":
			return uncertainty.MeanOf(samples)
		default:
			return uncertainty.Quantity{}, fmt.Errorf("%w: unknown estimate %q", ErrInvalidSheet, estimate)
		}
	}

	value, err := number(obj["value"], "value")
	if err != nil {
		return uncertainty.Quantity{}, err
	}
	unc := 0.0
	if raw, ok := obj["uncertainty"]; ok {
		if unc, err = number(raw, "uncertainty"); err != nil {
			return uncertainty.Quantity{}, err
		}
	}
	return uncertainty.New(value, unc), nil
}

func number(v any, field string) (float64, error) {
	op, err := uncertainty.Coerce(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", ErrInvalidSheet, field)
	}
	n, ok := op.(uncertainty.Scalar)
	if !ok {
		return 0, fmt.Errorf("%w: %s must be a number", ErrInvalidSheet, field)
	}
	return float64(n), nil
}

func numbers(v any) ([]float64, error) {
	var items []any
	switch list := v.(type) {
	case []any:
		items = list
	case []float64:
		return list, nil
	default:
		return nil, fmt.Errorf("%w: samples must be a list", ErrInvalidSheet)
	}

	out := make([]float64, len(items))
	for i, item := range items {
		n, err := number(item, fmt.Sprintf("samples[%d]", i))
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func exact(v any) uncertainty.Quantity {
	op, _ := uncertainty.Coerce(v)
	if n, ok := op.(uncertainty.Scalar); ok {
		return uncertainty.Exact(float64(n))
	}
	return uncertainty.Quantity{}
}
