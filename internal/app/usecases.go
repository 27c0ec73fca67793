package app

import (
	"fmt"

	"floodwatch.app/internal/core/alert"
	"floodwatch.app/internal/core/device"
	"floodwatch.app/internal/core/forecast"
	"floodwatch.app/internal/core/ingestion"
	"floodwatch.app/internal/core/location"
	"floodwatch.app/internal/core/report"
	"floodwatch.app/internal/ports"
	"github.com/jonboulle/clockwork"
)

// UseCases holds every core use case wired to one set of ports. The HTTP
// server, the scheduler and the commands all share it.
type UseCases struct {
	Locations *location.UseCase
	Forecasts *forecast.UseCase
	Alerts    *alert.UseCase
	Reports   *report.UseCase
	Devices   *device.UseCase
	Ingestion *ingestion.UseCase
}

func NewUseCases(p *ports.ApplicationPorts, clock clockwork.Clock) (*UseCases, error) {
	if p == nil {
		return nil, fmt.Errorf("application ports are required")
	}

	locations, err := location.NewUseCase(location.UseCaseDependencies{
		LocationRepo: p.LocationRepository,
		Logger:       p.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create location use case: %w", err)
	}

	forecasts, err := forecast.NewUseCase(forecast.UseCaseDependencies{
		ForecastRepo: p.ForecastRepository,
		LocationRepo: p.LocationRepository,
		Cache:        p.ForecastCache,
		Config:       p.ConfigProvider,
		Logger:       p.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create forecast use case: %w", err)
	}

	alerts, err := alert.NewUseCase(alert.UseCaseDependencies{
		AlertRepo:    p.AlertRepository,
		LocationRepo: p.LocationRepository,
		Publisher:    p.AlertPublisher,
		Logger:       p.Logger,
		Clock:        clock,
	})
	if err != nil {
		return nil, fmt.Errorf("create alert use case: %w", err)
	}

	reports, err := report.NewUseCase(report.UseCaseDependencies{
		ReportRepo:   p.ReportRepository,
		LocationRepo: p.LocationRepository,
		Logger:       p.Logger,
		Clock:        clock,
	})
	if err != nil {
		return nil, fmt.Errorf("create report use case: %w", err)
	}

	devices, err := device.NewUseCase(device.UseCaseDependencies{
		TokenRepo:    p.DeviceTokenRepository,
		LocationRepo: p.LocationRepository,
		Logger:       p.Logger,
		Clock:        clock,
	})
	if err != nil {
		return nil, fmt.Errorf("create device use case: %w", err)
	}

	ingest, err := ingestion.NewUseCase(ingestion.UseCaseDependencies{
		LocationRepo: p.LocationRepository,
		Provider:     p.WeatherProvider,
		Forecasts:    forecasts,
		Alerts:       alerts,
		Config:       p.ConfigProvider,
		Metrics:      p.IngestionMetrics,
		Logger:       p.Logger,
		Clock:        clock,
	})
	if err != nil {
		return nil, fmt.Errorf("create ingestion use case: %w", err)
	}

	return &UseCases{
		Locations: locations,
		Forecasts: forecasts,
		Alerts:    alerts,
		Reports:   reports,
		Devices:   devices,
		Ingestion: ingest,
	}, nil
}
