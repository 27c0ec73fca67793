package app

import (
	"fmt"
	"log/slog"

	"floodwatch.app/internal/adapters/database"
	"floodwatch.app/internal/adapters/external"
	"floodwatch.app/internal/adapters/infrastructure"
	"floodwatch.app/internal/config"
	"floodwatch.app/internal/ports"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type DependencyContainer struct {
	config        *config.Config
	db            *gorm.DB
	ports         *ports.ApplicationPorts
	cacheProvider ports.CacheProvider
	cacheMetrics  *infrastructure.CacheMetrics
	fileLogger    *infrastructure.FileLoggerAdapter
	clock         clockwork.Clock
}

// DependencyOptions tunes container construction. Zero values select the
// production defaults.
type DependencyOptions struct {
	// DB is used instead of opening a connection from config
	DB *gorm.DB
	// HTTPClient overrides the provider's HTTP client
	HTTPClient external.HTTPClient
	// Registerer receives the Prometheus collectors; nil uses the default registry
	Registerer prometheus.Registerer
	Clock      clockwork.Clock
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}

	container := &DependencyContainer{
		config: cfg,
		db:     opts.DB,
		clock:  opts.Clock,
	}

	if err := container.initializeDatabase(); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if err := container.initializePorts(opts); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeDatabase() error {
	if c.db == nil {
		slog.Info("Initializing database connection...", "driver", c.config.Database.Driver)

		configProvider := infrastructure.NewConfigProviderAdapter(c.config)
		db, err := database.Open(configProvider.GetDatabaseConfig())
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		c.db = db
	}

	slog.Info("Running database migrations...")
	if err := database.RunMigrations(c.db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	slog.Info("Database connection established successfully")
	return nil
}

func (c *DependencyContainer) initializePorts(opts DependencyOptions) error {
	slog.Info("Initializing ports...")

	configProvider := infrastructure.NewConfigProviderAdapter(c.config)
	var logger ports.Logger = infrastructure.NewSlogLoggerAdapter(nil)

	ingestionMetrics := infrastructure.NewIngestionMetrics(opts.Registerer)

	providerConfig := configProvider.GetProviderConfig()
	var provider ports.WeatherProvider = external.NewOpenWeatherProviderAdapter(external.OpenWeatherProviderParams{
		Config: providerConfig,
		Client: opts.HTTPClient,
		Logger: logger,
	})

	if providerConfig.EnableLogging {
		providerLogger := logger
		if providerConfig.LogFilePath != "" {
			fileLogger, err := infrastructure.NewFileLoggerAdapter(providerConfig.LogFilePath)
			if err != nil {
				slog.Warn("Failed to create file logger, falling back to slog", "error", err)
			} else {
				c.fileLogger = fileLogger
				providerLogger = fileLogger
				slog.Info("Provider file logging enabled", "path", fileLogger.Path())
			}
		}
		provider = external.NewWeatherProviderLoggingDecorator(provider, providerLogger, ingestionMetrics)
		slog.Info("Weather provider logging enabled")
	}

	cacheConfig := configProvider.GetCacheConfig()
	cacheProvider, err := external.NewCacheProviderFactory(c.clock).CreateCacheProvider(cacheConfig)
	if err != nil {
		slog.Error("Failed to create cache provider", "error", err)
		return fmt.Errorf("create cache provider: %w", err)
	}
	c.cacheProvider = cacheProvider
	c.cacheMetrics = infrastructure.NewCacheMetrics(cacheConfig.Type, opts.Registerer)

	slog.Info("Cache provider initialized",
		"type", cacheConfig.Type,
		"redis_addr", cacheConfig.Redis.Addr)

	publisher := external.NewAlertPublisher(configProvider.GetAlertsConfig())

	c.ports = &ports.ApplicationPorts{
		LocationRepository: database.NewLocationRepositoryAdapter(c.db),
		ForecastRepository: database.NewForecastRepositoryAdapter(c.db),
		ForecastCache:      external.NewForecastCacheAdapter(cacheProvider, c.cacheMetrics),

		WeatherProvider: provider,

		AlertRepository: database.NewAlertRepositoryAdapter(c.db),
		AlertPublisher:  publisher,

		ReportRepository:      database.NewReportRepositoryAdapter(c.db),
		DeviceTokenRepository: database.NewDeviceTokenRepositoryAdapter(c.db),

		IngestionMetrics: ingestionMetrics,
		CacheMetrics:     c.cacheMetrics,

		ConfigProvider: configProvider,
		Logger:         logger,
		Database:       c.db,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

func (c *DependencyContainer) CacheProvider() ports.CacheProvider {
	return c.cacheProvider
}

func (c *DependencyContainer) Clock() clockwork.Clock {
	return c.clock
}

// HealthChecker builds the aggregate checker for /health/details
func (c *DependencyContainer) HealthChecker() *infrastructure.SystemHealthChecker {
	return infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		DatabaseChecker: infrastructure.NewDatabaseHealthChecker(c.db),
		ProviderChecker: infrastructure.NewProviderHealthChecker(c.ports.WeatherProvider, c.ports.ConfigProvider),
		CacheChecker:    infrastructure.NewCacheHealthChecker(c.cacheProvider, c.ports.ConfigProvider.GetCacheConfig().Type),
		ConfigProvider:  c.ports.ConfigProvider,
	})
}

// MetricsCollector builds the JSON metrics view for /api/metrics
func (c *DependencyContainer) MetricsCollector() *infrastructure.MetricsCollectorAdapter {
	return infrastructure.NewMetricsCollectorAdapter(infrastructure.MetricsCollectorConfig{
		CacheMetrics: c.cacheMetrics,
		Provider:     c.ports.WeatherProvider,
		Config:       c.ports.ConfigProvider,
	})
}

// Cleanup releases every resource the container opened
func (c *DependencyContainer) Cleanup() error {
	if c.ports != nil && c.ports.AlertPublisher != nil {
		if err := c.ports.AlertPublisher.Close(); err != nil {
			slog.Warn("Error closing alert publisher", "error", err)
		}
	}
	if closer, ok := c.cacheProvider.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			slog.Warn("Error closing cache provider", "error", err)
		}
	}
	if c.fileLogger != nil {
		if err := c.fileLogger.Close(); err != nil {
			slog.Warn("Error closing provider log file", "error", err)
		}
	}
	if c.db != nil {
		return database.Close(c.db)
	}
	return nil
}
