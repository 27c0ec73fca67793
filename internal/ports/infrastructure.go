package ports

import (
	"time"
)

// ServerConfig represents server configuration
type ServerConfig struct {
	Port         int
	IngestSecret string
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Driver     string
	DSN        string
	SQLitePath string
}

// ProviderConfig represents OpenWeather client configuration
type ProviderConfig struct {
	BaseURL          string
	APIKey           string
	Timeout          time.Duration
	BreakerThreshold uint32
	BreakerCooldown  time.Duration
	EnableLogging    bool
	LogFilePath      string
}

// IngestionConfig is read by the orchestrator at the start of every run
type IngestionConfig struct {
	APIKey      string
	Concurrency int
}

// ForecastConfig represents latest-forecast read path configuration
type ForecastConfig struct {
	EnableCache bool
	CacheTTL    time.Duration
}

// CacheConfig represents cache configuration
type CacheConfig struct {
	Type  string
	Redis RedisConfig
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  int
	ReadTimeout  int
	WriteTimeout int
}

// SchedulerConfig represents scheduled ingestion configuration
type SchedulerConfig struct {
	Enabled  bool
	Interval time.Duration
}

// AlertsConfig represents alert event publishing configuration
type AlertsConfig struct {
	KafkaBrokers []string
	KafkaTopic   string
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetServerConfig() ServerConfig
	GetDatabaseConfig() DatabaseConfig
	GetProviderConfig() ProviderConfig
	GetIngestionConfig() IngestionConfig
	GetForecastConfig() ForecastConfig
	GetCacheConfig() CacheConfig
	GetSchedulerConfig() SchedulerConfig
	GetAlertsConfig() AlertsConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
