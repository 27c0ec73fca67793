package config

import (
	"fmt"
	"strings"

	"floodwatch.app/pkg/errors"
	"github.com/kelseyhightower/envconfig"
)

const (
	maxRedisDB             = 15
	maxCacheTTLMinutes     = 1440
	maxIngestInterval      = 1440
	maxIngestConcurrency   = 32
	maxPortNumber          = 65535
	maxProviderTimeoutSecs = 120
)

// Config represents the application configuration structure
type Config struct {
	Server      ServerConfig      `split_words:"true"`
	Database    DatabaseConfig    `split_words:"true"`
	OpenWeather OpenWeatherConfig `split_words:"true"`
	Ingest      IngestConfig      `split_words:"true"`
	Cache       CacheConfig       `split_words:"true"`
	Alerts      AlertsConfig      `split_words:"true"`
	Log         LogConfig         `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// DatabaseDriver selects the GORM dialector
type DatabaseDriver string

const (
	DriverPostgres DatabaseDriver = "postgres"
	DriverSQLite   DatabaseDriver = "sqlite"
)

type DatabaseConfig struct {
	Driver     DatabaseDriver `envconfig:"DB_DRIVER" default:"postgres"`
	Host       string         `envconfig:"DB_HOST" default:"localhost"`
	Port       int            `envconfig:"DB_PORT" default:"5432"`
	User       string         `envconfig:"DB_USER" default:"postgres"`
	Password   string         `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string         `envconfig:"DB_NAME" default:"floodwatch"`
	SSLMode    string         `envconfig:"DB_SSL_MODE" default:"disable"`
	SQLitePath string         `envconfig:"DB_SQLITE_PATH" default:"floodwatch.db"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type OpenWeatherConfig struct {
	APIKey           string `envconfig:"OPENWEATHER_API_KEY"`
	BaseURL          string `envconfig:"OPENWEATHER_BASE_URL" default:"https://api.openweathermap.org/data/2.5/weather"`
	TimeoutSeconds   int    `envconfig:"OPENWEATHER_TIMEOUT" default:"12"`
	BreakerThreshold int    `envconfig:"OPENWEATHER_BREAKER_THRESHOLD" default:"5"`
	BreakerCooldown  int    `envconfig:"OPENWEATHER_BREAKER_COOLDOWN" default:"120"`
	EnableLogging    bool   `envconfig:"PROVIDER_ENABLE_LOGGING" default:"true"`
	LogFilePath      string `envconfig:"PROVIDER_LOG_FILE_PATH" default:"logs/openweather.log"`
}

type IngestConfig struct {
	Secret          string `envconfig:"INGEST_SECRET"`
	ScheduleEnabled bool   `envconfig:"INGEST_SCHEDULE_ENABLED" default:"true"`
	IntervalMinutes int    `envconfig:"INGEST_INTERVAL_MINUTES" default:"60"`
	Concurrency     int    `envconfig:"INGEST_CONCURRENCY" default:"1"`
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type                    CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	ForecastCacheEnabled    bool        `envconfig:"FORECAST_CACHE_ENABLED" default:"true"`
	ForecastCacheTTLMinutes int         `envconfig:"FORECAST_CACHE_TTL_MINUTES" default:"10"`
	Redis                   RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type AlertsConfig struct {
	KafkaBrokers []string `envconfig:"ALERTS_KAFKA_BROKERS"`
	KafkaTopic   string   `envconfig:"ALERTS_KAFKA_TOPIC" default:"flood-alerts"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.OpenWeather.Validate(); err != nil {
		return err
	}
	if err := c.Ingest.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Alerts.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case DriverSQLite:
		if d.SQLitePath == "" {
			return errors.NewConfigurationError("DB_SQLITE_PATH cannot be empty when DB_DRIVER is sqlite", nil)
		}
		return nil
	case DriverPostgres:
	default:
		return errors.NewConfigurationError("DB_DRIVER must be one of: postgres, sqlite", nil)
	}

	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

// Validate checks provider settings. The API key is optional here; ingestion
// reports its absence when a run starts.
func (o *OpenWeatherConfig) Validate() error {
	if o.BaseURL == "" {
		return errors.NewConfigurationError("OPENWEATHER_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(o.BaseURL, "http://") && !strings.HasPrefix(o.BaseURL, "https://") {
		return errors.NewConfigurationError("OPENWEATHER_BASE_URL must start with http:// or https://", nil)
	}
	if o.TimeoutSeconds < 1 || o.TimeoutSeconds > maxProviderTimeoutSecs {
		return errors.NewConfigurationError("OPENWEATHER_TIMEOUT must be between 1 and 120 seconds", nil)
	}
	if o.BreakerThreshold < 0 {
		return errors.NewConfigurationError("OPENWEATHER_BREAKER_THRESHOLD cannot be negative", nil)
	}
	if o.BreakerThreshold > 0 && o.BreakerCooldown < 1 {
		return errors.NewConfigurationError("OPENWEATHER_BREAKER_COOLDOWN must be at least 1 second", nil)
	}
	return nil
}

func (i *IngestConfig) Validate() error {
	if i.IntervalMinutes < 1 || i.IntervalMinutes > maxIngestInterval {
		return errors.NewConfigurationError("INGEST_INTERVAL_MINUTES must be between 1 and 1440 minutes", nil)
	}
	if i.Concurrency < 1 || i.Concurrency > maxIngestConcurrency {
		return errors.NewConfigurationError("INGEST_CONCURRENCY must be between 1 and 32", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}
	if c.ForecastCacheTTLMinutes < 1 || c.ForecastCacheTTLMinutes > maxCacheTTLMinutes {
		return errors.NewConfigurationError("FORECAST_CACHE_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (a *AlertsConfig) Validate() error {
	if len(a.KafkaBrokers) > 0 && strings.TrimSpace(a.KafkaTopic) == "" {
		return errors.NewConfigurationError("ALERTS_KAFKA_TOPIC cannot be empty when ALERTS_KAFKA_BROKERS is set", nil)
	}
	return nil
}
