// Package service provides the registry that routes tool calls to providers.
//
// Tool IDs are namespaced by service: "uncertainty.add" is routed to the
// provider whose definition ID is "uncertainty".
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(propagation.NewProvider(metrics))
//	result, err := registry.Execute(ctx, "uncertainty.add", params, appCtx)
package service
