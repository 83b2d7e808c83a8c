package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus registry and instruments bigcalc exposes at
// /metrics: request concurrency, request totals, operation counts by kind,
// and multiplication duration bucketed by algorithm (schoolbook vs FFT).
type Metrics struct {
	handler http.Handler

	registry *prometheus.Registry

	activeRequests   prometheus.Gauge
	requestsTotal    *prometheus.CounterVec
	operationsTotal  *prometheus.CounterVec
	multiplyDuration *prometheus.HistogramVec
}

// NewMetrics builds a fresh registry and instruments, wired to their own
// promhttp handler.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bignum_active_requests",
			Help: "Number of HTTP requests currently being served.",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bignum_requests_total",
			Help: "Total HTTP requests served, by path and method.",
		}, []string{"path", "method"}),
		operationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bignum_operations_total",
			Help: "Total BigInt operations served, by kind.",
		}, []string{"op"}),
		multiplyDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bignum_multiply_duration_seconds",
			Help:    "Multiply duration in seconds, by algorithm.",
			Buckets: prometheus.DefBuckets,
		}, []string{"algorithm"}),
	}

	reg.MustRegister(
		m.activeRequests,
		m.requestsTotal,
		m.operationsTotal,
		m.multiplyDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return m
}

// IncrementActiveRequests marks the start of an in-flight request.
func (m *Metrics) IncrementActiveRequests() { m.activeRequests.Inc() }

// DecrementActiveRequests marks the end of an in-flight request.
func (m *Metrics) DecrementActiveRequests() { m.activeRequests.Dec() }

// ObserveOperation records one completed BigInt operation of the given kind.
func (m *Metrics) ObserveOperation(op string) { m.operationsTotal.WithLabelValues(op).Inc() }

// ObserveMultiplyDuration records a multiply's wall-clock time under the
// algorithm that produced it.
func (m *Metrics) ObserveMultiplyDuration(algorithm string, seconds float64) {
	m.multiplyDuration.WithLabelValues(algorithm).Observe(seconds)
}

// WritePrometheus serves the text-exposition-format metrics page.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.requestsTotal.WithLabelValues(r.URL.Path, r.Method).Inc()
	m.handler.ServeHTTP(w, r)
}
