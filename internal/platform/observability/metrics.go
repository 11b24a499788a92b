package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the application collectors on a private registry.
type Metrics struct {
	registry       *prometheus.Registry
	exports        *prometheus.CounterVec
	exportBytes    prometheus.Histogram
	projectWrites  *prometheus.CounterVec
	editorSessions prometheus.Gauge
}

// NewMetrics registers the application collectors plus the Go and process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "criadorlp_exports_total",
			Help: "Packaged landing page archives by result.",
		}, []string{"result"}),
		exportBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "criadorlp_export_bytes",
			Help:    "Size of packaged archives in bytes.",
			Buckets: prometheus.ExponentialBuckets(1024, 2, 12),
		}),
		projectWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "criadorlp_project_writes_total",
			Help: "Writes to the project store by operation.",
		}, []string{"op"}),
		editorSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "criadorlp_editor_sessions",
			Help: "Live editor sessions.",
		}),
	}
	m.registry.MustRegister(
		m.exports,
		m.exportBytes,
		m.projectWrites,
		m.editorSessions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveExport(result string, size int) {
	m.exports.WithLabelValues(result).Inc()
	if result == "ok" {
		m.exportBytes.Observe(float64(size))
	}
}

func (m *Metrics) ObserveProjectWrite(op string) {
	m.projectWrites.WithLabelValues(op).Inc()
}

func (m *Metrics) SetEditorSessions(n int) {
	m.editorSessions.Set(float64(n))
}
