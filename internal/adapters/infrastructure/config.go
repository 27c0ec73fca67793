package infrastructure

import (
	"time"

	"floodwatch.app/internal/config"
	"floodwatch.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port:         c.config.Server.Port,
		IngestSecret: c.config.Ingest.Secret,
	}
}

// GetDatabaseConfig returns database configuration
func (c *ConfigProviderAdapter) GetDatabaseConfig() ports.DatabaseConfig {
	return ports.DatabaseConfig{
		Driver:     string(c.config.Database.Driver),
		DSN:        c.config.Database.GetDSN(),
		SQLitePath: c.config.Database.SQLitePath,
	}
}

// GetProviderConfig returns OpenWeather client configuration
func (c *ConfigProviderAdapter) GetProviderConfig() ports.ProviderConfig {
	ow := c.config.OpenWeather
	threshold := ow.BreakerThreshold
	if threshold < 0 {
		threshold = 0
	}
	return ports.ProviderConfig{
		BaseURL:          ow.BaseURL,
		APIKey:           ow.APIKey,
		Timeout:          time.Duration(ow.TimeoutSeconds) * time.Second,
		BreakerThreshold: uint32(threshold),
		BreakerCooldown:  time.Duration(ow.BreakerCooldown) * time.Second,
		EnableLogging:    ow.EnableLogging,
		LogFilePath:      ow.LogFilePath,
	}
}

// GetIngestionConfig returns the settings read at the start of every run
func (c *ConfigProviderAdapter) GetIngestionConfig() ports.IngestionConfig {
	return ports.IngestionConfig{
		APIKey:      c.config.OpenWeather.APIKey,
		Concurrency: c.config.Ingest.Concurrency,
	}
}

// GetForecastConfig returns latest-forecast read path configuration
func (c *ConfigProviderAdapter) GetForecastConfig() ports.ForecastConfig {
	return ports.ForecastConfig{
		EnableCache: c.config.Cache.ForecastCacheEnabled,
		CacheTTL:    time.Duration(c.config.Cache.ForecastCacheTTLMinutes) * time.Minute,
	}
}

// GetCacheConfig returns cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type: c.config.Cache.Type.String(),
		Redis: ports.RedisConfig{
			Addr:         c.config.Cache.Redis.Addr,
			Password:     c.config.Cache.Redis.Password,
			DB:           c.config.Cache.Redis.DB,
			DialTimeout:  c.config.Cache.Redis.DialTimeout,
			ReadTimeout:  c.config.Cache.Redis.ReadTimeout,
			WriteTimeout: c.config.Cache.Redis.WriteTimeout,
		},
	}
}

// GetSchedulerConfig returns scheduled ingestion configuration
func (c *ConfigProviderAdapter) GetSchedulerConfig() ports.SchedulerConfig {
	return ports.SchedulerConfig{
		Enabled:  c.config.Ingest.ScheduleEnabled,
		Interval: time.Duration(c.config.Ingest.IntervalMinutes) * time.Minute,
	}
}

// GetAlertsConfig returns alert event publishing configuration
func (c *ConfigProviderAdapter) GetAlertsConfig() ports.AlertsConfig {
	brokers := make([]string, 0, len(c.config.Alerts.KafkaBrokers))
	for _, b := range c.config.Alerts.KafkaBrokers {
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return ports.AlertsConfig{
		KafkaBrokers: brokers,
		KafkaTopic:   c.config.Alerts.KafkaTopic,
	}
}
