package infrastructure

import (
	"context"

	"floodwatch.app/internal/ports"
)

// MetricsCollectorAdapter aggregates runtime statistics for the JSON metrics endpoint
type MetricsCollectorAdapter struct {
	cacheMetrics ports.CacheMetrics
	provider     ports.WeatherProvider
	config       ports.ConfigProvider
}

// MetricsCollectorConfig holds configuration for creating the metrics collector
type MetricsCollectorConfig struct {
	CacheMetrics ports.CacheMetrics
	Provider     ports.WeatherProvider
	Config       ports.ConfigProvider
}

// NewMetricsCollectorAdapter creates a new metrics collector adapter
func NewMetricsCollectorAdapter(config MetricsCollectorConfig) *MetricsCollectorAdapter {
	return &MetricsCollectorAdapter{
		cacheMetrics: config.CacheMetrics,
		provider:     config.Provider,
		config:       config.Config,
	}
}

// GetMetrics returns aggregated metrics from the monitored components
func (m *MetricsCollectorAdapter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	metrics := make(map[string]interface{})

	if m.provider != nil {
		metrics["provider"] = map[string]interface{}{
			"name": m.provider.GetProviderName(),
		}
	}

	if m.cacheMetrics != nil {
		cacheStats := m.cacheMetrics.GetStats()
		cache := map[string]interface{}{
			"hits":      cacheStats.Hits,
			"misses":    cacheStats.Misses,
			"total_ops": cacheStats.TotalOps,
			"hit_ratio": cacheStats.HitRatio,
			"updated":   cacheStats.LastUpdated,
		}
		if m.config != nil {
			cache["type"] = m.config.GetCacheConfig().Type
			cache["ttl"] = m.config.GetForecastConfig().CacheTTL.String()
		}
		metrics["cache"] = cache
	}

	if m.config != nil {
		ingest := m.config.GetIngestionConfig()
		scheduler := m.config.GetSchedulerConfig()
		metrics["ingestion"] = map[string]interface{}{
			"concurrency":      ingest.Concurrency,
			"schedule_enabled": scheduler.Enabled,
			"interval":         scheduler.Interval.String(),
		}
	}

	return metrics, nil
}
