package infrastructure

import (
	"context"

	"floodwatch.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers map[string]ports.HealthChecker
	config   ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	DatabaseChecker ports.HealthChecker
	ProviderChecker ports.HealthChecker
	CacheChecker    ports.HealthChecker
	ConfigProvider  ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker)
	if config.DatabaseChecker != nil {
		checkers["database"] = config.DatabaseChecker
	}
	if config.ProviderChecker != nil {
		checkers["weatherProvider"] = config.ProviderChecker
	}
	if config.CacheChecker != nil {
		checkers["cache"] = config.CacheChecker
	}

	return &SystemHealthChecker{
		checkers: checkers,
		config:   config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)

	for name, checker := range s.checkers {
		results[name] = checker.Check(ctx)
	}

	if s.config != nil {
		scheduler := s.config.GetSchedulerConfig()
		alerts := s.config.GetAlertsConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    "healthy",
			Details: map[string]interface{}{
				"schedule_enabled":       scheduler.Enabled,
				"ingest_interval":        scheduler.Interval.String(),
				"alert_events_enabled":   len(alerts.KafkaBrokers) > 0,
				"forecast_cache_enabled": s.config.GetForecastConfig().EnableCache,
			},
		}
	}

	return results
}
