package external

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"floodwatch.app/internal/ports"
	"floodwatch.app/pkg/errors"
)

// ForecastCacheAdapter stores the latest forecast per location in a generic CacheProvider
type ForecastCacheAdapter struct {
	cacheProvider ports.CacheProvider
	metrics       ports.CacheMetrics
}

// NewForecastCacheAdapter creates a forecast cache; metrics may be nil
func NewForecastCacheAdapter(cacheProvider ports.CacheProvider, metrics ports.CacheMetrics) *ForecastCacheAdapter {
	return &ForecastCacheAdapter{
		cacheProvider: cacheProvider,
		metrics:       metrics,
	}
}

// LatestForecastKey is the cache key of a location's latest forecast
func LatestForecastKey(locationID uint) string {
	return fmt.Sprintf("forecast:latest:%d", locationID)
}

// Get returns the cached forecast or a NotFound error on a miss
func (f *ForecastCacheAdapter) Get(ctx context.Context, locationID uint) (*ports.ForecastData, error) {
	start := time.Now()
	data, err := f.cacheProvider.Get(ctx, LatestForecastKey(locationID))
	f.recordOperation("get", start)
	if err != nil {
		if errors.IsNotFoundError(err) {
			f.recordMiss()
		}
		return nil, err
	}

	var forecast ports.ForecastData
	if err := json.Unmarshal(data, &forecast); err != nil {
		f.recordMiss()
		return nil, errors.NewExternalAPIError("failed to deserialize cached forecast", err)
	}

	f.recordHit()
	return &forecast, nil
}

// Set stores forecast as its location's latest
func (f *ForecastCacheAdapter) Set(ctx context.Context, forecast *ports.ForecastData, ttl time.Duration) error {
	if forecast == nil {
		return errors.NewValidationError("forecast cannot be nil")
	}

	data, err := json.Marshal(forecast)
	if err != nil {
		return errors.NewExternalAPIError("failed to serialize forecast", err)
	}

	start := time.Now()
	err = f.cacheProvider.Set(ctx, LatestForecastKey(forecast.LocationID), data, ttl)
	f.recordOperation("set", start)
	return err
}

// Invalidate drops the cached latest forecast of a location
func (f *ForecastCacheAdapter) Invalidate(ctx context.Context, locationID uint) error {
	start := time.Now()
	err := f.cacheProvider.Delete(ctx, LatestForecastKey(locationID))
	f.recordOperation("delete", start)
	return err
}

func (f *ForecastCacheAdapter) recordHit() {
	if f.metrics != nil {
		f.metrics.RecordHit()
	}
}

func (f *ForecastCacheAdapter) recordMiss() {
	if f.metrics != nil {
		f.metrics.RecordMiss()
	}
}

func (f *ForecastCacheAdapter) recordOperation(operation string, start time.Time) {
	if f.metrics != nil {
		f.metrics.RecordOperation(operation, time.Since(start))
	}
}
