package device

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"floodwatch.app/internal/adapters/infrastructure"
	"floodwatch.app/internal/mocks"
	"floodwatch.app/internal/ports"
	"floodwatch.app/pkg/errors"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 7, 20, 18, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T) (*UseCase, *mocks.DeviceTokenRepository, *mocks.LocationRepository) {
	tokenRepo := mocks.NewDeviceTokenRepository(t)
	locationRepo := mocks.NewLocationRepository(t)

	uc, err := NewUseCase(UseCaseDependencies{
		TokenRepo:    tokenRepo,
		LocationRepo: locationRepo,
		Logger:       infrastructure.NewSlogLoggerAdapter(slog.New(slog.NewTextHandler(io.Discard, nil))),
		Clock:        clockwork.NewFakeClockAt(fixedNow),
	})
	require.NoError(t, err)
	return uc, tokenRepo, locationRepo
}

func TestUseCase_Register(t *testing.T) {
	uc, tokenRepo, locationRepo := newTestUseCase(t)
	locationID := uint(3)
	platform := "android"

	locationRepo.EXPECT().Exists(mock.Anything, locationID).Return(true, nil)
	tokenRepo.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(d *ports.DeviceTokenData) bool {
		return d.ExpoToken == "ExponentPushToken[abc]" && *d.Platform == "android" &&
			*d.LocationID == 3 && d.LastSeenAt.Equal(fixedNow)
	})).RunAndReturn(func(_ context.Context, d *ports.DeviceTokenData) error {
		d.ID = 5
		d.CreatedAt = fixedNow.Add(-24 * time.Hour)
		d.UpdatedAt = fixedNow
		return nil
	})

	token, err := uc.Register(context.Background(), RegisterParams{
		ExpoToken:  "ExponentPushToken[abc]",
		Platform:   &platform,
		LocationID: &locationID,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(5), token.ID)
	assert.Equal(t, fixedNow, token.LastSeenAt)
	assert.Equal(t, fixedNow.Add(-24*time.Hour), token.CreatedAt)
}

func TestUseCase_Register_WithoutLocation(t *testing.T) {
	uc, tokenRepo, _ := newTestUseCase(t)

	tokenRepo.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(d *ports.DeviceTokenData) bool {
		return d.LocationID == nil && d.Platform == nil
	})).Return(nil)

	_, err := uc.Register(context.Background(), RegisterParams{ExpoToken: "ExponentPushToken[xyz]"})
	assert.NoError(t, err)
}

func TestUseCase_Register_Validation(t *testing.T) {
	long := strings.Repeat("p", 17)

	tests := []struct {
		name    string
		params  RegisterParams
		wantMsg string
	}{
		{name: "missing token", params: RegisterParams{ExpoToken: ""}, wantMsg: "The expo token field is required."},
		{name: "token too long", params: RegisterParams{ExpoToken: strings.Repeat("t", 256)}, wantMsg: "The expo token may not be greater than 255 characters."},
		{name: "platform too long", params: RegisterParams{ExpoToken: "tok", Platform: &long}, wantMsg: "The platform may not be greater than 16 characters."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _ := newTestUseCase(t)
			_, err := uc.Register(context.Background(), tt.params)
			assert.True(t, errors.IsValidationError(err))
			assert.Equal(t, tt.wantMsg, errors.Message(err))
		})
	}
}

func TestUseCase_Register_UnknownLocation(t *testing.T) {
	uc, _, locationRepo := newTestUseCase(t)
	locationID := uint(99)
	locationRepo.EXPECT().Exists(mock.Anything, locationID).Return(false, nil)

	_, err := uc.Register(context.Background(), RegisterParams{ExpoToken: "tok", LocationID: &locationID})
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, "The selected location id is invalid.", errors.Message(err))
}
