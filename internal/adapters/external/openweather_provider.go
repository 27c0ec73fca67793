// Package external provides adapters for external services: the weather
// provider, cache backends and the alert event publisher.
package external

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"floodwatch.app/internal/ports"
	"floodwatch.app/pkg/errors"
	"github.com/sony/gobreaker"
)

const (
	OpenWeatherProviderName   = "openweather"
	DefaultOpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5/weather"
	defaultProviderTimeout    = 12 * time.Second
	maxResponseBytes          = 1 << 20
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenWeatherProviderAdapter implements the WeatherProvider port for the
// OpenWeather current-conditions endpoint
type OpenWeatherProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	breaker *gobreaker.CircuitBreaker
	logger  ports.Logger
}

// OpenWeatherProviderParams holds parameters for creating the OpenWeather provider
type OpenWeatherProviderParams struct {
	Config ports.ProviderConfig
	Client HTTPClient
	Logger ports.Logger
}

// NewOpenWeatherProviderAdapter creates a new OpenWeather provider adapter.
// A zero breaker threshold disables the circuit breaker.
func NewOpenWeatherProviderAdapter(params OpenWeatherProviderParams) *OpenWeatherProviderAdapter {
	cfg := params.Config
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultOpenWeatherBaseURL
	}

	client := params.Client
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultProviderTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	p := &OpenWeatherProviderAdapter{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		client:  client,
		logger:  params.Logger,
	}

	if cfg.BreakerThreshold > 0 {
		threshold := cfg.BreakerThreshold
		p.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        OpenWeatherProviderName,
			MaxRequests: 1,
			Timeout:     cfg.BreakerCooldown,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= threshold
			},
			IsSuccessful: isBreakerSuccess,
			OnStateChange: func(name string, from, to gobreaker.State) {
				if p.logger != nil {
					p.logger.Warn("Provider circuit breaker state changed",
						ports.F("provider", name),
						ports.F("from", from.String()),
						ports.F("to", to.String()))
				}
			},
		})
	}

	return p
}

// FetchCurrent returns the raw current-conditions JSON object for a coordinate pair
func (p *OpenWeatherProviderAdapter) FetchCurrent(ctx context.Context, latitude, longitude float64) (*ports.ProviderPayload, error) {
	if p.apiKey == "" {
		return nil, errors.NewConfigurationError("OpenWeather API key missing.", nil)
	}

	if p.breaker == nil {
		return p.fetch(ctx, latitude, longitude)
	}

	result, err := p.breaker.Execute(func() (interface{}, error) {
		return p.fetch(ctx, latitude, longitude)
	})
	if err != nil {
		if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, errors.NewExternalAPIError("OpenWeather circuit breaker open", err)
		}
		return nil, err
	}

	payload, ok := result.(*ports.ProviderPayload)
	if !ok {
		return nil, errors.NewExternalAPIError("unexpected result type from circuit breaker", nil)
	}
	return payload, nil
}

func (p *OpenWeatherProviderAdapter) fetch(ctx context.Context, latitude, longitude float64) (*ports.ProviderPayload, error) {
	endpoint, err := url.Parse(p.baseURL)
	if err != nil {
		return nil, errors.NewConfigurationError("invalid OpenWeather base URL", err)
	}
	values := endpoint.Query()
	values.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	values.Set("appid", p.apiKey)
	values.Set("units", "metric")
	endpoint.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		cause := withoutRequestURL(err)
		return nil, errors.NewExternalAPIError("failed to build OpenWeather request", cause)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		cause := withoutRequestURL(err)
		return nil, errors.NewExternalAPIError(fmt.Sprintf("OpenWeather request failed: %v", cause), cause)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && p.logger != nil {
			p.logger.Warn("Failed to close OpenWeather response body", ports.F("error", closeErr))
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to read OpenWeather response", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		httpErr := &ports.ProviderHTTPError{StatusCode: resp.StatusCode, Body: string(body)}
		message := string(body)
		if message == "" {
			message = fmt.Sprintf("OpenWeather returned status %d", resp.StatusCode)
		}
		return nil, errors.NewExternalAPIError(message, httpErr)
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal(body, &object); err != nil || object == nil {
		return nil, errors.NewExternalAPIError("OpenWeather response is not a JSON object", err)
	}

	return &ports.ProviderPayload{
		StatusCode: resp.StatusCode,
		Body:       json.RawMessage(body),
	}, nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherProviderAdapter) GetProviderName() string {
	return OpenWeatherProviderName
}

// withoutRequestURL strips the request URL from transport errors. The URL
// carries the API key in its query string.
func withoutRequestURL(err error) error {
	var urlErr *url.Error
	if stderrors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

// isBreakerSuccess keeps client errors other than throttling from tripping the breaker
func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	var httpErr *ports.ProviderHTTPError
	if stderrors.As(err, &httpErr) {
		return httpErr.StatusCode < http.StatusInternalServerError && httpErr.StatusCode != http.StatusTooManyRequests
	}
	return false
}
