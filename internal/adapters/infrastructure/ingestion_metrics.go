package infrastructure

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "floodwatch"

// IngestionMetrics implements the IngestionMetrics port with Prometheus collectors
type IngestionMetrics struct {
	Runs             *prometheus.CounterVec
	RunDuration      prometheus.Histogram
	LocationResults  *prometheus.CounterVec
	AlertsCreated    *prometheus.CounterVec
	ProviderRequests *prometheus.HistogramVec
	LastRunTimestamp prometheus.Gauge
}

// NewIngestionMetrics creates ingestion collectors registered with reg.
// A nil registerer leaves them unregistered.
func NewIngestionMetrics(reg prometheus.Registerer) *IngestionMetrics {
	factory := promauto.With(reg)

	return &IngestionMetrics{
		Runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "ingestion_runs_total",
			Help:      "Ingestion runs by outcome.",
		}, []string{"outcome"}),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "ingestion_run_duration_seconds",
			Help:      "Wall time of a complete ingestion run.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
		LocationResults: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "ingestion_location_results_total",
			Help:      "Per-location ingestion results by status.",
		}, []string{"status"}),
		AlertsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "alerts_created_total",
			Help:      "Flood alerts created by level.",
		}, []string{"level"}),
		ProviderRequests: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "provider_request_duration_seconds",
			Help:      "Weather provider request duration by outcome.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 12},
		}, []string{"provider", "outcome"}),
		LastRunTimestamp: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "ingestion_last_run_timestamp_seconds",
			Help:      "Unix time of the last completed ingestion run.",
		}),
	}
}

// NewIngestionMetricsForTesting creates collectors on a fresh registry
func NewIngestionMetricsForTesting() *IngestionMetrics {
	return NewIngestionMetrics(prometheus.NewRegistry())
}

// ObserveRun records a finished or aborted run
func (m *IngestionMetrics) ObserveRun(outcome string, duration time.Duration) {
	m.Runs.WithLabelValues(outcome).Inc()
	if duration > 0 {
		m.RunDuration.Observe(duration.Seconds())
	}
	if outcome == "completed" {
		m.LastRunTimestamp.SetToCurrentTime()
	}
}

// RecordLocationResult counts one location outcome
func (m *IngestionMetrics) RecordLocationResult(status string) {
	m.LocationResults.WithLabelValues(status).Inc()
}

// RecordAlertCreated counts one created alert
func (m *IngestionMetrics) RecordAlertCreated(level string) {
	m.AlertsCreated.WithLabelValues(level).Inc()
}

// ObserveProviderRequest records the duration of one provider call
func (m *IngestionMetrics) ObserveProviderRequest(provider, outcome string, duration time.Duration) {
	m.ProviderRequests.WithLabelValues(provider, outcome).Observe(duration.Seconds())
}
