package ports

import (
	"context"
	"encoding/json"
	"time"
)

// ForecastData represents one stored observation snapshot
type ForecastData struct {
	ID         uint
	LocationID uint
	ObservedAt time.Time
	TempC      *float64
	FeelsLikeC *float64
	Humidity   *int
	WindMs     *float64
	RainMm     float64
	Summary    *string
	Raw        json.RawMessage
	CreatedAt  time.Time
}

// ForecastRepository defines the contract for forecast persistence
type ForecastRepository interface {
	Save(ctx context.Context, forecast *ForecastData) error
	FindLatestByLocation(ctx context.Context, locationID uint) (*ForecastData, error)
}

// ForecastCache caches the latest forecast per location
type ForecastCache interface {
	Get(ctx context.Context, locationID uint) (*ForecastData, error)
	Set(ctx context.Context, forecast *ForecastData, ttl time.Duration) error
	Invalidate(ctx context.Context, locationID uint) error
}
