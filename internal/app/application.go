package app

import (
	"context"
	"fmt"
	"log/slog"

	"floodwatch.app/internal/adapters/api"
	"floodwatch.app/internal/config"
	"github.com/gin-gonic/gin"
)

type Application struct {
	config    *config.Config
	container *DependencyContainer
	useCases  *UseCases

	// Adapters
	server    *api.HTTPServerAdapter
	scheduler *IngestionScheduler
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	container, err := NewDependencyContainer(cfg, DependencyOptions{})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, container)
	if err != nil {
		_ = container.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, container *DependencyContainer) (*Application, error) {
	app := &Application{
		config:    cfg,
		container: container,
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	useCases, err := NewUseCases(a.container.ApplicationPorts(), a.container.Clock())
	if err != nil {
		return err
	}
	a.useCases = useCases

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	server, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:         a.config.Server.Port,
			IngestSecret: a.config.Ingest.Secret,
		},
		LocationUseCase:  a.useCases.Locations,
		ForecastUseCase:  a.useCases.Forecasts,
		AlertUseCase:     a.useCases.Alerts,
		ReportUseCase:    a.useCases.Reports,
		DeviceUseCase:    a.useCases.Devices,
		IngestionUseCase: a.useCases.Ingestion,
		MetricsCollector: a.container.MetricsCollector(),
		HealthChecker:    a.container.HealthChecker(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}
	a.server = server

	schedule := a.container.ApplicationPorts().ConfigProvider.GetSchedulerConfig()
	if schedule.Enabled {
		a.scheduler = NewIngestionScheduler(a.useCases.Ingestion, schedule.Interval)
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start runs the scheduler in the background and blocks serving HTTP
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	if a.scheduler != nil {
		if err := a.scheduler.Start(ctx); err != nil {
			return fmt.Errorf("start ingestion scheduler: %w", err)
		}
	} else {
		slog.Info("Scheduled ingestion disabled")
	}

	if err := a.server.Start(ctx); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if a.scheduler != nil {
		a.scheduler.Stop()
	}

	if err := a.server.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.container.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.server.GetRouter()
}

// UseCases returns the wired use cases
func (a *Application) UseCases() *UseCases {
	return a.useCases
}
