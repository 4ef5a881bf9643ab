// Package common holds the parameter and result helpers shared by the
// propagation provider's modules.
//
// Operands arrive as loosely typed JSON values. A quantity may be given as:
//   - an object: {"value": 2.0, "uncertainty": 0.1}
//   - a string: "2.0±0.1" or "2.0+/-0.1"
//
// A bare number is a plain constant with zero uncertainty. Keeping numbers
// apart from quantities lets "2 - x" select the reflected form.
//
// Example Usage:
//
//	a, err := common.GetOperand(params, "a")
//	if err != nil {
//	    return common.Failure(err.Error())
//	}
package common
