package database

import (
	"context"
	"testing"

	"floodwatch.app/internal/ports"
	"floodwatch.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationRepository_UpsertByName_Create(t *testing.T) {
	db := setupTestDB(t)
	loc := seedLocation(t, db, "Mwanza", -2.516, 32.9)

	assert.NotZero(t, loc.ID)
	assert.False(t, loc.CreatedAt.IsZero())
}

func TestLocationRepository_UpsertByName_UpdatesExisting(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLocationRepositoryAdapter(db)
	ctx := context.Background()
	first := seedLocation(t, db, "Arusha", -3.386, 36.683)

	updated := &ports.LocationData{
		Name:      "Arusha",
		Region:    strPtr("Arusha"),
		Latitude:  -3.3869,
		Longitude: 36.6830,
		Timezone:  "Africa/Dar_es_Salaam",
	}
	require.NoError(t, repo.UpsertByName(ctx, updated))
	assert.Equal(t, first.ID, updated.ID)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Arusha", *all[0].Region)
	assert.InDelta(t, -3.3869, all[0].Latitude, 1e-6)
}

func TestLocationRepository_FindAll_OrderedByName(t *testing.T) {
	db := setupTestDB(t)
	seedLocation(t, db, "Zanzibar City", -6.165, 39.202)
	seedLocation(t, db, "Arusha", -3.386, 36.683)
	seedLocation(t, db, "Mbeya", -8.9, 33.45)

	all, err := NewLocationRepositoryAdapter(db).FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Arusha", "Mbeya", "Zanzibar City"}, []string{all[0].Name, all[1].Name, all[2].Name})
}

func TestLocationRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLocationRepositoryAdapter(db)
	loc := seedLocation(t, db, "Dodoma", -6.163, 35.751)

	found, err := repo.FindByID(context.Background(), loc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dodoma", found.Name)

	_, err = repo.FindByID(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestLocationRepository_Exists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLocationRepositoryAdapter(db)
	loc := seedLocation(t, db, "Tanga", -5.07, 39.1)

	exists, err := repo.Exists(context.Background(), loc.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(context.Background(), loc.ID+1)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.Exists(context.Background(), 0)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocationRepository_UniqueCoordinates(t *testing.T) {
	db := setupTestDB(t)
	seedLocation(t, db, "Kigoma", -4.877, 29.627)

	err := NewLocationRepositoryAdapter(db).UpsertByName(context.Background(), &ports.LocationData{
		Name:      "Kigoma Duplicate",
		Latitude:  -4.877,
		Longitude: 29.627,
		Timezone:  "Africa/Dar_es_Salaam",
	})
	require.Error(t, err)
	assert.True(t, errors.IsDatabaseError(err))
}
