package location

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"floodwatch.app/internal/adapters/infrastructure"
	"floodwatch.app/internal/mocks"
	"floodwatch.app/internal/ports"
	"floodwatch.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() ports.Logger {
	return infrastructure.NewSlogLoggerAdapter(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNewUseCase_RequiresDependencies(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{Logger: testLogger()})
	assert.True(t, errors.IsValidationError(err))

	_, err = NewUseCase(UseCaseDependencies{LocationRepo: mocks.NewLocationRepository(t)})
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_List(t *testing.T) {
	repo := mocks.NewLocationRepository(t)
	region := "Arusha"
	repo.EXPECT().FindAll(mock.Anything).Return([]*ports.LocationData{
		{ID: 3, Name: "Arusha", Region: &region, Latitude: -3.3869, Longitude: 36.68299, Timezone: DefaultTimezone},
		{ID: 1, Name: "Dar es Salaam", Latitude: -6.7924, Longitude: 39.2083, Timezone: DefaultTimezone},
	}, nil)

	uc, err := NewUseCase(UseCaseDependencies{LocationRepo: repo, Logger: testLogger()})
	require.NoError(t, err)

	locations, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "Arusha", locations[0].Name)
	assert.Equal(t, "Arusha", *locations[0].Region)
	assert.Nil(t, locations[1].Region)
}

func TestUseCase_Seed(t *testing.T) {
	repo := mocks.NewLocationRepository(t)
	repo.EXPECT().UpsertByName(mock.Anything, mock.MatchedBy(func(d *ports.LocationData) bool {
		return d.Timezone == DefaultTimezone
	})).Return(nil).Times(len(Catalog()))

	uc, err := NewUseCase(UseCaseDependencies{LocationRepo: repo, Logger: testLogger()})
	require.NoError(t, err)

	n, err := uc.Seed(context.Background(), Catalog())
	require.NoError(t, err)
	assert.Equal(t, 8, n)
}

func TestUseCase_Seed_RejectsInvalid(t *testing.T) {
	uc, err := NewUseCase(UseCaseDependencies{LocationRepo: mocks.NewLocationRepository(t), Logger: testLogger()})
	require.NoError(t, err)

	n, err := uc.Seed(context.Background(), []Location{{Name: "", Latitude: 1, Longitude: 1}})
	assert.Equal(t, 0, n)
	assert.True(t, errors.IsValidationError(err))
}
