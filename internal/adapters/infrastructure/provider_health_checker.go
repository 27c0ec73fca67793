package infrastructure

import (
	"context"

	"floodwatch.app/internal/ports"
)

// ProviderHealthChecker reports whether the weather provider can be called
type ProviderHealthChecker struct {
	provider ports.WeatherProvider
	config   ports.ConfigProvider
}

// NewProviderHealthChecker creates a new provider health checker
func NewProviderHealthChecker(provider ports.WeatherProvider, config ports.ConfigProvider) *ProviderHealthChecker {
	return &ProviderHealthChecker{provider: provider, config: config}
}

// Check does not call upstream; a missing key makes every ingestion run fail
// so it is reported as degraded.
func (p *ProviderHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherProvider",
		Status:    "healthy",
		Details:   make(map[string]interface{}),
	}

	if p.provider == nil {
		status.Status = "unhealthy"
		status.Error = "weather provider is not available"
		return status
	}
	status.Details["provider"] = p.provider.GetProviderName()

	if p.config != nil {
		cfg := p.config.GetProviderConfig()
		status.Details["api_key_configured"] = cfg.APIKey != ""
		status.Details["timeout_seconds"] = cfg.Timeout.Seconds()
		if cfg.APIKey == "" {
			status.Status = "degraded"
			status.Error = "OpenWeather API key missing."
		}
	}

	return status
}

// CacheHealthChecker checks the cache backend with an existence lookup
type CacheHealthChecker struct {
	cache     ports.CacheProvider
	cacheType string
}

// NewCacheHealthChecker creates a new cache health checker
func NewCacheHealthChecker(cache ports.CacheProvider, cacheType string) *CacheHealthChecker {
	return &CacheHealthChecker{cache: cache, cacheType: cacheType}
}

func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Details:   map[string]interface{}{"type": c.cacheType},
	}

	if c.cache == nil {
		status.Status = "unhealthy"
		status.Error = "cache provider is not available"
		return status
	}

	if _, err := c.cache.Exists(ctx, "health:check"); err != nil {
		status.Status = "unhealthy"
		status.Error = err.Error()
		return status
	}

	status.Status = "healthy"
	return status
}
