package ports

import (
	"context"
	"encoding/json"
	"fmt"
)

// ProviderPayload is the raw JSON object returned by the weather provider
type ProviderPayload struct {
	StatusCode int
	Body       json.RawMessage
}

// ProviderHTTPError describes a non-2xx provider response
type ProviderHTTPError struct {
	StatusCode int
	Body       string
}

func (e *ProviderHTTPError) Error() string {
	return fmt.Sprintf("provider responded with status %d: %s", e.StatusCode, e.Body)
}

// WeatherProvider defines the contract for current-conditions providers
type WeatherProvider interface {
	FetchCurrent(ctx context.Context, latitude, longitude float64) (*ProviderPayload, error)
	GetProviderName() string
}
