package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for temp resource handling
type Metrics struct {
	registry *prometheus.Registry

	// Creation metrics
	CreatedTotal      *prometheus.CounterVec
	CreateErrorsTotal *prometheus.CounterVec

	// Cleanup metrics
	RemovedPathsTotal   prometheus.Counter
	RemoveFailuresTotal prometheus.Counter
	CleanupDuration     prometheus.Histogram

	// Session metrics
	TrackedSessions prometheus.Gauge
}

// NewMetrics creates and registers all metrics
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		CreatedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "temptmp_created_total",
				Help: "Total number of temp files and directories created",
			},
			[]string{"kind"},
		),
		CreateErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "temptmp_create_errors_total",
				Help: "Total number of failed temp file and directory creations",
			},
			[]string{"kind"},
		),

		RemovedPathsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "temptmp_removed_paths_total",
				Help: "Total number of paths removed by session cleanup",
			},
		),
		RemoveFailuresTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "temptmp_remove_failures_total",
				Help: "Total number of paths session cleanup could not remove",
			},
		),
		CleanupDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "temptmp_cleanup_duration_seconds",
				Help:    "Duration of session cleanups in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),

		TrackedSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "temptmp_tracked_sessions",
				Help: "Number of sessions with tracked temp resources",
			},
		),
	}

	m.registerMetrics()

	return m
}

// registerMetrics registers all metrics with the registry
func (m *Metrics) registerMetrics() {
	m.registry.MustRegister(m.CreatedTotal)
	m.registry.MustRegister(m.CreateErrorsTotal)

	m.registry.MustRegister(m.RemovedPathsTotal)
	m.registry.MustRegister(m.RemoveFailuresTotal)
	m.registry.MustRegister(m.CleanupDuration)

	m.registry.MustRegister(m.TrackedSessions)
}

// RecordCreate records the outcome of a file or directory creation.
// Safe to call on a nil receiver.
func (m *Metrics) RecordCreate(kind string, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.CreateErrorsTotal.WithLabelValues(kind).Inc()
		return
	}
	m.CreatedTotal.WithLabelValues(kind).Inc()
}

// RecordCleanup records a finished session cleanup
func (m *Metrics) RecordCleanup(removed, failed int, started time.Time) {
	if m == nil {
		return
	}
	m.RemovedPathsTotal.Add(float64(removed))
	m.RemoveFailuresTotal.Add(float64(failed))
	m.CleanupDuration.Observe(time.Since(started).Seconds())
}

// SetTrackedSessions updates the tracked session gauge
func (m *Metrics) SetTrackedSessions(n int) {
	if m == nil {
		return
	}
	m.TrackedSessions.Set(float64(n))
}

// Handler returns an HTTP handler for the metrics endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Registry returns the Prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
