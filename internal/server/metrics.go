package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instrumentation for the HTTP API. Each
// Metrics value carries its own registry so that servers created in tests
// do not collide on metric registration.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	requestsTotal   *prometheus.CounterVec
	activeRequests  prometheus.Gauge
	requestDuration *prometheus.HistogramVec
	divideByZero    prometheus.Counter
}

// NewMetrics creates and registers all API metrics, including the standard
// Go runtime collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ui512_requests_total",
			Help: "Total number of HTTP requests by path and status code.",
		}, []string{"path", "status"}),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ui512_active_requests",
			Help: "Number of HTTP requests currently being served.",
		}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ui512_request_duration_seconds",
			Help:    "HTTP request latency by path.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),
		divideByZero: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ui512_divide_by_zero_total",
			Help: "Total number of division requests rejected for a zero divisor.",
		}),
	}

	reg.MustRegister(
		m.requestsTotal,
		m.activeRequests,
		m.requestDuration,
		m.divideByZero,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return m
}

// IncrementActiveRequests increments the in-flight request gauge.
func (m *Metrics) IncrementActiveRequests() { m.activeRequests.Inc() }

// DecrementActiveRequests decrements the in-flight request gauge.
func (m *Metrics) DecrementActiveRequests() { m.activeRequests.Dec() }

// ObserveRequest records one completed request.
func (m *Metrics) ObserveRequest(path, status string, d time.Duration) {
	m.requestsTotal.WithLabelValues(path, status).Inc()
	m.requestDuration.WithLabelValues(path).Observe(d.Seconds())
}

// IncrementDivideByZero counts a rejected zero-divisor request.
func (m *Metrics) IncrementDivideByZero() { m.divideByZero.Inc() }

// WritePrometheus serves the metrics in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
