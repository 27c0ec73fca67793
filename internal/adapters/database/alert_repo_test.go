package database

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"floodwatch.app/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAlertData(locationID uint, level string, startsAt time.Time, window time.Duration) *ports.AlertData {
	endsAt := startsAt.Add(window)
	return &ports.AlertData{
		LocationID: locationID,
		Level:      level,
		Type:       "flood",
		Title:      "Flood alert",
		StartsAt:   startsAt,
		EndsAt:     &endsAt,
		Source:     "openweather",
	}
}

func TestAlertRepository_CreateIfNoneActive_Dedup(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAlertRepositoryAdapter(db)
	ctx := context.Background()
	loc := seedLocation(t, db, "Mwanza", -2.516, 32.9)
	now := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)

	first := newAlertData(loc.ID, "warning", now, 6*time.Hour)
	created, err := repo.CreateIfNoneActive(ctx, first, now)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, first.ID)

	created, err = repo.CreateIfNoneActive(ctx, newAlertData(loc.ID, "warning", now.Add(time.Minute), 6*time.Hour), now.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, created)

	created, err = repo.CreateIfNoneActive(ctx, newAlertData(loc.ID, "emergency", now.Add(time.Minute), 6*time.Hour), now.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, created, "a different level is not a duplicate")

	var count int64
	require.NoError(t, db.Model(&AlertModel{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestAlertRepository_CreateIfNoneActive_Concurrent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAlertRepositoryAdapter(db)
	loc := seedLocation(t, db, "Kigoma", -4.876, 29.6266)
	now := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)

	const writers = 8
	var created atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			ok, err := repo.CreateIfNoneActive(context.Background(), newAlertData(loc.ID, "warning", now, 6*time.Hour), now)
			assert.NoError(t, err)
			if ok {
				created.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())

	var count int64
	require.NoError(t, db.Model(&AlertModel{}).Where("location_id = ?", loc.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAlertRepository_CreateIfNoneActive_AfterExpiry(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAlertRepositoryAdapter(db)
	ctx := context.Background()
	loc := seedLocation(t, db, "Tanga", -5.07, 39.1)
	now := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)

	_, err := repo.CreateIfNoneActive(ctx, newAlertData(loc.ID, "watch", now, 6*time.Hour), now)
	require.NoError(t, err)

	atEnd := now.Add(6 * time.Hour)
	created, err := repo.CreateIfNoneActive(ctx, newAlertData(loc.ID, "watch", atEnd, 6*time.Hour), atEnd)
	require.NoError(t, err)
	assert.False(t, created, "alert is still active at its end instant")

	later := atEnd.Add(time.Second)
	created, err = repo.CreateIfNoneActive(ctx, newAlertData(loc.ID, "watch", later, 6*time.Hour), later)
	require.NoError(t, err)
	assert.True(t, created)
}

func TestAlertRepository_OpenEndedAlertBlocksDuplicates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAlertRepositoryAdapter(db)
	ctx := context.Background()
	loc := seedLocation(t, db, "Kigoma", -4.877, 29.627)
	now := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)

	open := newAlertData(loc.ID, "emergency", now, 0)
	open.EndsAt = nil
	open.Source = "system"
	_, err := repo.CreateIfNoneActive(ctx, open, now)
	require.NoError(t, err)

	future := now.Add(30 * 24 * time.Hour)
	created, err := repo.CreateIfNoneActive(ctx, newAlertData(loc.ID, "emergency", future, 6*time.Hour), future)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestAlertRepository_FindActiveByLocation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAlertRepositoryAdapter(db)
	ctx := context.Background()
	loc := seedLocation(t, db, "Dodoma", -6.163, 35.751)
	other := seedLocation(t, db, "Mbeya", -8.9, 33.45)
	now := time.Date(2025, 4, 2, 12, 0, 0, 0, time.UTC)

	expired := newAlertData(loc.ID, "watch", now.Add(-8*time.Hour), 6*time.Hour)
	older := newAlertData(loc.ID, "warning", now.Add(-2*time.Hour), 6*time.Hour)
	newer := newAlertData(loc.ID, "emergency", now.Add(-time.Hour), 6*time.Hour)
	foreign := newAlertData(other.ID, "watch", now, 6*time.Hour)
	for _, a := range []*ports.AlertData{expired, older, newer, foreign} {
		_, err := repo.CreateIfNoneActive(ctx, a, a.StartsAt)
		require.NoError(t, err)
	}

	active, err := repo.FindActiveByLocation(ctx, loc.ID, now)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, newer.ID, active[0].ID)
	assert.Equal(t, older.ID, active[1].ID)
	assert.Equal(t, "emergency", active[0].Level)
}

func TestAlertRepository_SameStartOrderedByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAlertRepositoryAdapter(db)
	ctx := context.Background()
	loc := seedLocation(t, db, "Arusha", -3.386, 36.683)
	now := time.Date(2025, 4, 2, 12, 0, 0, 0, time.UTC)

	a := newAlertData(loc.ID, "watch", now, 6*time.Hour)
	b := newAlertData(loc.ID, "warning", now, 6*time.Hour)
	_, err := repo.CreateIfNoneActive(ctx, a, now)
	require.NoError(t, err)
	_, err = repo.CreateIfNoneActive(ctx, b, now)
	require.NoError(t, err)

	active, err := repo.FindActiveByLocation(ctx, loc.ID, now)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, b.ID, active[0].ID)
}
