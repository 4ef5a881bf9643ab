// Package propagation exposes uncertainty propagation as service tools.
//
// This package is organized into specialized modules:
//   - operations: arithmetic (add, subtract, multiply, divide) and trig (sin, cos, tan)
//   - statistics: quantities estimated from samples, weighted means, parsing
//   - common: parameter extraction and result helpers
//
// Every tool returns {"value", "uncertainty", "text"} on success. Domain
// failures (type mismatch, division by zero) are reported as failed results,
// not Go errors.
//
// Example Usage:
//
//	provider := propagation.NewProvider(nil)
//	result, err := provider.Execute(ctx, "uncertainty.multiply", map[string]interface{}{
//	    "a": map[string]interface{}{"value": 3.5, "uncertainty": 3.5},
//	    "b": "2±2",
//	}, nil)
package propagation
