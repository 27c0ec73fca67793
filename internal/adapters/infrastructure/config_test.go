package infrastructure

import (
	"testing"
	"time"

	"floodwatch.app/internal/config"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 9000},
		Database: config.DatabaseConfig{
			Driver:     config.DriverSQLite,
			SQLitePath: "test.db",
		},
		OpenWeather: config.OpenWeatherConfig{
			APIKey:           "secret",
			BaseURL:          "https://api.openweathermap.org/data/2.5/weather",
			TimeoutSeconds:   12,
			BreakerThreshold: 5,
			BreakerCooldown:  120,
			EnableLogging:    true,
			LogFilePath:      "logs/openweather.log",
		},
		Ingest: config.IngestConfig{
			Secret:          "ingest-secret",
			ScheduleEnabled: true,
			IntervalMinutes: 30,
			Concurrency:     4,
		},
		Cache: config.CacheConfig{
			Type:                    config.CacheTypeRedis,
			ForecastCacheEnabled:    true,
			ForecastCacheTTLMinutes: 10,
			Redis:                   config.RedisConfig{Addr: "redis:6379", DB: 2, DialTimeout: 5, ReadTimeout: 3, WriteTimeout: 3},
		},
		Alerts: config.AlertsConfig{KafkaBrokers: []string{"kafka:9092", ""}, KafkaTopic: "flood-alerts"},
	}
}

func TestConfigProviderAdapter(t *testing.T) {
	adapter := NewConfigProviderAdapter(testConfig())

	server := adapter.GetServerConfig()
	assert.Equal(t, 9000, server.Port)
	assert.Equal(t, "ingest-secret", server.IngestSecret)

	db := adapter.GetDatabaseConfig()
	assert.Equal(t, "sqlite", db.Driver)
	assert.Equal(t, "test.db", db.SQLitePath)
	assert.Contains(t, db.DSN, "sslmode=")

	provider := adapter.GetProviderConfig()
	assert.Equal(t, 12*time.Second, provider.Timeout)
	assert.Equal(t, uint32(5), provider.BreakerThreshold)
	assert.Equal(t, 2*time.Minute, provider.BreakerCooldown)
	assert.Equal(t, "secret", provider.APIKey)

	ingest := adapter.GetIngestionConfig()
	assert.Equal(t, "secret", ingest.APIKey)
	assert.Equal(t, 4, ingest.Concurrency)

	forecast := adapter.GetForecastConfig()
	assert.True(t, forecast.EnableCache)
	assert.Equal(t, 10*time.Minute, forecast.CacheTTL)

	cache := adapter.GetCacheConfig()
	assert.Equal(t, "redis", cache.Type)
	assert.Equal(t, 2, cache.Redis.DB)

	scheduler := adapter.GetSchedulerConfig()
	assert.True(t, scheduler.Enabled)
	assert.Equal(t, 30*time.Minute, scheduler.Interval)

	alerts := adapter.GetAlertsConfig()
	assert.Equal(t, []string{"kafka:9092"}, alerts.KafkaBrokers)
	assert.Equal(t, "flood-alerts", alerts.KafkaTopic)
}

func TestConfigProviderAdapter_ReadsKeyLive(t *testing.T) {
	cfg := testConfig()
	adapter := NewConfigProviderAdapter(cfg)

	cfg.OpenWeather.APIKey = ""
	assert.Empty(t, adapter.GetIngestionConfig().APIKey)
}
