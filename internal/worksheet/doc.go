// Package worksheet evaluates a declared chain of uncertainty calculations.
//
// A worksheet names its input quantities and lists steps in order. Each step
// applies an operation to earlier names or literals:
//
//	quantities:
//	  length: 2.0±0.1
//	  width: {value: 3.0, uncertainty: 0.2}
//	  period: {samples: [1.98, 2.02, 2.01, 1.99]}
//	steps:
//	  - {name: area, op: mul, a: length, b: width}
//	  - {name: half, op: div, a: area, b: 2}
//	  - {name: rise, op: sin, a: "0.3±0.01"}
//
// Inputs may be a number (exact), "v±u" text, or an object with value and
// uncertainty, or samples (estimate: stddev or stderr). Worksheets decode
// from YAML, TOML or JSON.
package worksheet
