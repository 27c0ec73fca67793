// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"floodwatch.app/internal/core/alert"
	"floodwatch.app/internal/core/device"
	"floodwatch.app/internal/core/forecast"
	"floodwatch.app/internal/core/ingestion"
	"floodwatch.app/internal/core/location"
	"floodwatch.app/internal/core/report"
	"floodwatch.app/internal/ports"
	"floodwatch.app/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port         int
	IngestSecret string
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	config           ServerConfig
	locationUseCase  LocationUseCase
	forecastUseCase  ForecastUseCase
	alertUseCase     AlertUseCase
	reportUseCase    ReportUseCase
	deviceUseCase    DeviceUseCase
	ingestionUseCase IngestionUseCase
	metricsCollector MetricsCollector
	healthChecker    ports.SystemHealthChecker
	httpServer       *http.Server
}

// Use case interfaces that the HTTP adapter depends on
type LocationUseCase interface {
	List(ctx context.Context) ([]*location.Location, error)
}

type ForecastUseCase interface {
	Latest(ctx context.Context, locationID uint) (*forecast.Snapshot, error)
}

type AlertUseCase interface {
	ListActive(ctx context.Context, locationID uint) ([]*alert.Alert, error)
}

type ReportUseCase interface {
	Create(ctx context.Context, params report.CreateParams) (*report.Report, error)
	List(ctx context.Context, params report.ListParams) ([]*report.Report, error)
	ListForLocation(ctx context.Context, locationID uint, limit *int) ([]*report.Report, error)
}

type DeviceUseCase interface {
	Register(ctx context.Context, params device.RegisterParams) (*device.Token, error)
}

type IngestionUseCase interface {
	Ingest(ctx context.Context) (*ingestion.Run, error)
}

type MetricsCollector interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config           ServerConfig
	LocationUseCase  LocationUseCase
	ForecastUseCase  ForecastUseCase
	AlertUseCase     AlertUseCase
	ReportUseCase    ReportUseCase
	DeviceUseCase    DeviceUseCase
	IngestionUseCase IngestionUseCase
	MetricsCollector MetricsCollector
	HealthChecker    ports.SystemHealthChecker
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	registerValidatorTagNames()

	router := gin.Default()

	server := &HTTPServerAdapter{
		router:           router,
		config:           opts.Config,
		locationUseCase:  opts.LocationUseCase,
		forecastUseCase:  opts.ForecastUseCase,
		alertUseCase:     opts.AlertUseCase,
		reportUseCase:    opts.ReportUseCase,
		deviceUseCase:    opts.DeviceUseCase,
		ingestionUseCase: opts.IngestionUseCase,
		metricsCollector: opts.MetricsCollector,
		healthChecker:    opts.HealthChecker,
	}

	server.setupRoutes()
	server.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Config.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.LocationUseCase == nil {
		return errors.NewValidationError("location use case is required")
	}
	if opts.ForecastUseCase == nil {
		return errors.NewValidationError("forecast use case is required")
	}
	if opts.AlertUseCase == nil {
		return errors.NewValidationError("alert use case is required")
	}
	if opts.ReportUseCase == nil {
		return errors.NewValidationError("report use case is required")
	}
	if opts.DeviceUseCase == nil {
		return errors.NewValidationError("device use case is required")
	}
	if opts.IngestionUseCase == nil {
		return errors.NewValidationError("ingestion use case is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes. Every route is served at the root
// and mirrored under /api.
func (s *HTTPServerAdapter) setupRoutes() {
	s.router.Use(requestID(), cors())
	s.router.NoRoute(s.notFound)

	s.registerRoutes(&s.router.RouterGroup)
	s.registerRoutes(s.router.Group("/api"))

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.router.GET("/api/metrics", s.getMetrics)
}

func (s *HTTPServerAdapter) registerRoutes(group *gin.RouterGroup) {
	group.GET("/health", s.health)
	group.GET("/health/details", s.healthDetails)

	group.GET("/locations", s.listLocations)
	group.GET("/locations/:id/forecast", s.latestForecast)
	group.GET("/locations/:id/alerts", s.activeAlerts)
	group.GET("/locations/:id/hazards", s.locationHazards)

	group.GET("/hazards", s.listHazards)
	group.POST("/hazards", s.createHazard)
	group.POST("/reports", s.createReport)

	group.POST("/device-tokens", s.registerDeviceToken)
	group.POST("/ingest", s.ingest)
}

// Start begins the HTTP server and blocks until it stops
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", s.config.Port)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *HTTPServerAdapter) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

func (s *HTTPServerAdapter) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Message: "Not found"})
}
