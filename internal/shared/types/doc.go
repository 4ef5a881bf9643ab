// Package types provides shared data structures for the uncertainty service.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool specification
//   - Context: Execution context for operations
//   - Result: Standard operation result
//
// Request Types:
//   - ExecuteRequest: Service tool execution
//   - QuantityData: JSON form of a value with its uncertainty
package types
