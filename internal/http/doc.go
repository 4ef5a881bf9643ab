// Package http provides HTTP handlers for the uncertainty REST API.
//
// Endpoints:
//   - Health: / and /health
//   - Services: /services, /services/execute
//   - Worksheets: /worksheets/evaluate
//
// Example Usage:
//
//	handlers := http.NewHandlers(registry, http.Options{Limits: worksheet.Limits{MaxSteps: 1000}})
//	router.GET("/health", handlers.Health)
//	router.POST("/services/execute", handlers.ExecuteService)
package http
