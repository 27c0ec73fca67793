package database

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"floodwatch.app/internal/ports"
	"floodwatch.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForecastRepository_SaveAndLatest(t *testing.T) {
	db := setupTestDB(t)
	repo := NewForecastRepositoryAdapter(db)
	ctx := context.Background()
	loc := seedLocation(t, db, "Dar es Salaam", -6.7924, 39.2083)

	temp := 28.4
	humidity := 80
	raw := json.RawMessage(`{"main":{"temp":28.4},"rain":{"1h":12.5}}`)
	observed := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)

	older := &ports.ForecastData{LocationID: loc.ID, ObservedAt: observed.Add(-time.Hour), RainMm: 1}
	require.NoError(t, repo.Save(ctx, older))

	latest := &ports.ForecastData{
		LocationID: loc.ID,
		ObservedAt: observed,
		TempC:      &temp,
		Humidity:   &humidity,
		RainMm:     12.5,
		Raw:        raw,
	}
	require.NoError(t, repo.Save(ctx, latest))
	assert.NotZero(t, latest.ID)
	assert.False(t, latest.CreatedAt.IsZero())

	found, err := repo.FindLatestByLocation(ctx, loc.ID)
	require.NoError(t, err)
	assert.Equal(t, latest.ID, found.ID)
	assert.True(t, observed.Equal(found.ObservedAt))
	assert.InDelta(t, 28.4, *found.TempC, 1e-9)
	assert.Equal(t, 80, *found.Humidity)
	assert.Nil(t, found.WindMs)
	assert.Equal(t, 12.5, found.RainMm)
	assert.JSONEq(t, string(raw), string(found.Raw))
}

func TestForecastRepository_LatestTieBrokenByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewForecastRepositoryAdapter(db)
	ctx := context.Background()
	loc := seedLocation(t, db, "Mwanza", -2.516, 32.9)
	observed := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)

	first := &ports.ForecastData{LocationID: loc.ID, ObservedAt: observed, RainMm: 3}
	second := &ports.ForecastData{LocationID: loc.ID, ObservedAt: observed, RainMm: 4}
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	found, err := repo.FindLatestByLocation(ctx, loc.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, found.ID)
}

func TestForecastRepository_LatestIsScopedToLocation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewForecastRepositoryAdapter(db)
	ctx := context.Background()
	a := seedLocation(t, db, "Arusha", -3.386, 36.683)
	b := seedLocation(t, db, "Dodoma", -6.163, 35.751)

	require.NoError(t, repo.Save(ctx, &ports.ForecastData{LocationID: a.ID, ObservedAt: time.Now(), RainMm: 7}))

	_, err := repo.FindLatestByLocation(ctx, b.ID)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestForecastRepository_SaveNil(t *testing.T) {
	err := NewForecastRepositoryAdapter(setupTestDB(t)).Save(context.Background(), nil)
	assert.True(t, errors.IsValidationError(err))
}
