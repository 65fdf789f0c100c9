package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/mathsvc/internal/logging"
	"github.com/agbru/mathsvc/internal/metrics"
)

// Metrics holds the Prometheus instruments of one server. Each Metrics has
// its own registry so servers built in tests do not collide.
type Metrics struct {
	registry       *prometheus.Registry
	activeRequests prometheus.Gauge
	requestsTotal  prometheus.Counter
	responsesTotal *prometheus.CounterVec
	handler        http.Handler
}

// NewMetrics creates the HTTP instruments and the Go and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mathsvc_active_requests",
			Help: "Number of HTTP requests currently being served.",
		}),
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mathsvc_requests_total",
			Help: "Total number of HTTP requests received.",
		}),
		responsesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mathsvc_responses_total",
			Help: "HTTP responses by route pattern and status code.",
		}, []string{"path", "code"}),
	}
	reg.MustRegister(
		m.activeRequests,
		m.requestsTotal,
		m.responsesTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return m
}

// RegisterEngine exports the engine's aggregator through the registry.
func (m *Metrics) RegisterEngine(src reportSource) error {
	return m.registry.Register(newEngineCollector(src))
}

// IncrementActiveRequests marks a request as started.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
	m.requestsTotal.Inc()
}

// DecrementActiveRequests marks a request as finished.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// ObserveResponse counts one response.
func (m *Metrics) ObserveResponse(path string, code int) {
	m.responsesTotal.WithLabelValues(path, statusLabel(code)).Inc()
}

// WritePrometheus writes the registry in the Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// handleMetrics serves /metrics.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		if s.logger != nil {
			s.logger.Debug("metrics method rejected", logging.String("method", r.Method))
		}
		w.Header().Set("Allow", http.MethodGet)
		writeText(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// reportSource is satisfied by the engine.
type reportSource interface {
	MetricsSnapshot() metrics.Report
}

// engineCollector turns the aggregator snapshot into const metrics at
// scrape time.
type engineCollector struct {
	src         reportSource
	invocations *prometheus.Desc
	latency     *prometheus.Desc
}

func newEngineCollector(src reportSource) *engineCollector {
	return &engineCollector{
		src: src,
		invocations: prometheus.NewDesc(
			"mathsvc_invocations_total",
			"Engine invocations by operation and outcome.",
			[]string{"operation", "outcome"}, nil,
		),
		latency: prometheus.NewDesc(
			"mathsvc_average_latency_seconds",
			"Running average latency of an engine operation.",
			[]string{"operation"}, nil,
		),
	}
}

func (c *engineCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.invocations
	ch <- c.latency
}

func (c *engineCollector) Collect(ch chan<- prometheus.Metric) {
	for op, rep := range c.src.MetricsSnapshot() {
		ch <- prometheus.MustNewConstMetric(c.invocations, prometheus.CounterValue, float64(rep.InvocationsSuccess), op, "success")
		ch <- prometheus.MustNewConstMetric(c.invocations, prometheus.CounterValue, float64(rep.InvocationsError), op, "error")
		// No latency series until the operation has been called.
		if rep.InvocationsTotal > 0 {
			ch <- prometheus.MustNewConstMetric(c.latency, prometheus.GaugeValue, rep.Averages.Latency, op)
		}
	}
}
