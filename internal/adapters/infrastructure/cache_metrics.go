package infrastructure

import (
	"sync"
	"time"

	"floodwatch.app/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type cacheCollectors struct {
	Hits     *prometheus.CounterVec
	Misses   *prometheus.CounterVec
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
	HitRatio *prometheus.GaugeVec
}

func newCacheCollectors(reg prometheus.Registerer) *cacheCollectors {
	factory := promauto.With(reg)

	return &cacheCollectors{
		Hits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "forecast_cache_hits_total",
				Help:      "The total number of forecast cache hits",
			},
			[]string{"cache_type"},
		),
		Misses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "forecast_cache_misses_total",
				Help:      "The total number of forecast cache misses",
			},
			[]string{"cache_type"},
		),
		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "forecast_cache_requests_total",
				Help:      "The total number of forecast cache requests",
			},
			[]string{"cache_type"},
		),
		Latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "forecast_cache_duration_seconds",
				Help:      "Cache operation duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"cache_type", "operation"},
		),
		HitRatio: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "forecast_cache_hit_ratio",
				Help:      "Cache hit ratio (hits/total requests)",
			},
			[]string{"cache_type"},
		),
	}
}

// CacheMetrics implements the CacheMetrics port and mirrors counts into Prometheus
type CacheMetrics struct {
	cacheType   string
	hits        int64
	misses      int64
	total       int64
	lastUpdated time.Time
	collectors  *cacheCollectors
	mu          sync.RWMutex
}

// NewCacheMetrics creates cache metrics for cacheType registered with reg
func NewCacheMetrics(cacheType string, reg prometheus.Registerer) *CacheMetrics {
	return &CacheMetrics{
		cacheType:  cacheType,
		collectors: newCacheCollectors(reg),
	}
}

func (m *CacheMetrics) RecordHit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hits++
	m.total++
	m.lastUpdated = time.Now()
	m.collectors.Hits.WithLabelValues(m.cacheType).Inc()
	m.collectors.Requests.WithLabelValues(m.cacheType).Inc()
	m.updateHitRatio()
}

func (m *CacheMetrics) RecordMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.misses++
	m.total++
	m.lastUpdated = time.Now()
	m.collectors.Misses.WithLabelValues(m.cacheType).Inc()
	m.collectors.Requests.WithLabelValues(m.cacheType).Inc()
	m.updateHitRatio()
}

func (m *CacheMetrics) RecordOperation(operation string, duration time.Duration) {
	m.collectors.Latency.WithLabelValues(m.cacheType, operation).Observe(duration.Seconds())
}

// updateHitRatio must be called while holding the mutex
func (m *CacheMetrics) updateHitRatio() {
	if m.total > 0 {
		ratio := float64(m.hits) / float64(m.total)
		m.collectors.HitRatio.WithLabelValues(m.cacheType).Set(ratio)
	}
}

func (m *CacheMetrics) GetStats() ports.CacheStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var hitRatio float64
	if m.total > 0 {
		hitRatio = float64(m.hits) / float64(m.total)
	}

	return ports.CacheStats{
		Hits:        m.hits,
		Misses:      m.misses,
		TotalOps:    m.total,
		HitRatio:    hitRatio,
		LastUpdated: m.lastUpdated,
	}
}
