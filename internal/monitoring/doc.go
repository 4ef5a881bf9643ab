// Package monitoring provides Prometheus metrics for the uncertainty service.
//
// Metrics:
//   - uncertain_http_requests_total{method,path,status}
//   - uncertain_http_request_duration_seconds{method,path}
//   - uncertain_operations_total{tool,status}
//   - uncertain_worksheet_steps
//
// Example Usage:
//
//	metrics := monitoring.NewMetrics()
//	router.Use(monitoring.Middleware(metrics))
//	router.GET("/metrics", gin.WrapH(metrics.Handler()))
package monitoring
