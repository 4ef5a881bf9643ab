package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Propagation metrics
	Operations *prometheus.CounterVec

	// Worksheet metrics
	WorksheetSteps prometheus.Histogram
}

// NewMetrics creates a collector backed by its own registry, so several
// instances can coexist in one process.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uncertain_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "uncertain_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "path"},
		),
		Operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uncertain_operations_total",
				Help: "Total number of propagation tool calls",
			},
			[]string{"tool", "status"},
		),
		WorksheetSteps: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "uncertain_worksheet_steps",
				Help:    "Number of steps per evaluated worksheet",
				Buckets: prometheus.ExponentialBuckets(1, 4, 6),
			},
		),
	}
}

// Registry exposes the underlying registry for tests and custom exporters
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveOperation records a propagation tool call
func (m *Metrics) ObserveOperation(tool, status string) {
	m.Operations.WithLabelValues(tool, status).Inc()
}

// ObserveWorksheet records the size of an evaluated worksheet
func (m *Metrics) ObserveWorksheet(steps int) {
	m.WorksheetSteps.Observe(float64(steps))
}
