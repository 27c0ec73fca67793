package external

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"floodwatch.app/internal/adapters/infrastructure"
	"floodwatch.app/internal/ports"
	"floodwatch.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleForecast() *ports.ForecastData {
	temp := 26.3
	humidity := 88
	summary := "light rain"
	return &ports.ForecastData{
		ID:         7,
		LocationID: 3,
		ObservedAt: time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC),
		TempC:      &temp,
		Humidity:   &humidity,
		RainMm:     4.2,
		Summary:    &summary,
		Raw:        json.RawMessage(`{"rain":{"1h":4.2}}`),
		CreatedAt:  time.Date(2025, 4, 2, 9, 0, 5, 0, time.UTC),
	}
}

func TestForecastCacheAdapter_RoundTrip(t *testing.T) {
	metrics := infrastructure.NewCacheMetrics("memory", nil)
	cache := NewForecastCacheAdapter(NewMemoryCacheProvider(nil), metrics)
	ctx := context.Background()

	_, err := cache.Get(ctx, 3)
	assert.True(t, errors.IsNotFoundError(err))

	require.NoError(t, cache.Set(ctx, sampleForecast(), time.Minute))

	got, err := cache.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, uint(7), got.ID)
	assert.True(t, sampleForecast().ObservedAt.Equal(got.ObservedAt))
	assert.Equal(t, 26.3, *got.TempC)
	assert.Equal(t, 88, *got.Humidity)
	assert.Nil(t, got.WindMs)
	assert.Equal(t, "light rain", *got.Summary)
	assert.JSONEq(t, `{"rain":{"1h":4.2}}`, string(got.Raw))

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
}

func TestForecastCacheAdapter_Invalidate(t *testing.T) {
	provider := NewMemoryCacheProvider(nil)
	cache := NewForecastCacheAdapter(provider, nil)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, sampleForecast(), time.Minute))
	exists, err := provider.Exists(ctx, LatestForecastKey(3))
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, cache.Invalidate(ctx, 3))
	_, err = cache.Get(ctx, 3)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestForecastCacheAdapter_CorruptEntry(t *testing.T) {
	provider := NewMemoryCacheProvider(nil)
	cache := NewForecastCacheAdapter(provider, nil)
	ctx := context.Background()

	require.NoError(t, provider.Set(ctx, LatestForecastKey(5), []byte("{broken"), time.Minute))

	_, err := cache.Get(ctx, 5)
	require.Error(t, err)
	assert.True(t, errors.IsExternalAPIError(err))
}

func TestForecastCacheAdapter_RedisBackend(t *testing.T) {
	_, cache := newTestRedisCache(t)
	adapter := NewForecastCacheAdapter(cache, nil)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, sampleForecast(), time.Minute))
	got, err := adapter.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 4.2, got.RainMm)
}

func TestForecastCacheAdapter_SetNil(t *testing.T) {
	cache := NewForecastCacheAdapter(NewMemoryCacheProvider(nil), nil)
	assert.True(t, errors.IsValidationError(cache.Set(context.Background(), nil, time.Minute)))
}

func TestLatestForecastKey(t *testing.T) {
	assert.Equal(t, "forecast:latest:42", LatestForecastKey(42))
}
