package external

import (
	"context"
	"time"

	"floodwatch.app/internal/ports"
	"floodwatch.app/pkg/errors"
)

// Provider request outcomes recorded in metrics
const (
	ProviderOutcomeSuccess = "success"
	ProviderOutcomeError   = "error"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured logging and request metrics
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
	metrics  ports.IngestionMetrics
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers.
// metrics may be nil.
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger, metrics ports.IngestionMetrics) *WeatherProviderLoggingDecorator {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
		metrics:  metrics,
	}
}

// FetchCurrent wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) FetchCurrent(ctx context.Context, latitude, longitude float64) (*ports.ProviderPayload, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		ports.F("lat", latitude),
		ports.F("lon", longitude),
		ports.F("event", "request"))

	startTime := time.Now()
	payload, err := d.provider.FetchCurrent(ctx, latitude, longitude)
	duration := time.Since(startTime)

	if err != nil {
		d.observe(providerName, ProviderOutcomeError, duration)
		d.logger.Error("Weather API request failed",
			ports.F("provider", providerName),
			ports.F("lat", latitude),
			ports.F("lon", longitude),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", errors.Message(err)))
		return nil, err
	}

	d.observe(providerName, ProviderOutcomeSuccess, duration)
	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("lat", latitude),
		ports.F("lon", longitude),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("status", payload.StatusCode),
		ports.F("bytes", len(payload.Body)))

	return payload, nil
}

func (d *WeatherProviderLoggingDecorator) observe(provider, outcome string, duration time.Duration) {
	if d.metrics != nil {
		d.metrics.ObserveProviderRequest(provider, outcome, duration)
	}
}

// GetProviderName returns the wrapped provider's name
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}
