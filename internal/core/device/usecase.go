package device

import (
	"context"
	"fmt"

	"floodwatch.app/internal/ports"
	"floodwatch.app/pkg/errors"
	"floodwatch.app/pkg/validation"
	"github.com/jonboulle/clockwork"
)

type UseCase struct {
	tokenRepo    ports.DeviceTokenRepository
	locationRepo ports.LocationRepository
	logger       ports.Logger
	clock        clockwork.Clock
}

type UseCaseDependencies struct {
	TokenRepo    ports.DeviceTokenRepository
	LocationRepo ports.LocationRepository
	Logger       ports.Logger
	Clock        clockwork.Clock
}

// RegisterParams is an unvalidated token registration
type RegisterParams struct {
	ExpoToken  string
	Platform   *string
	LocationID *uint
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.TokenRepo == nil {
		return nil, errors.NewValidationError("device token repository is required")
	}
	if deps.LocationRepo == nil {
		return nil, errors.NewValidationError("location repository is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}

	return &UseCase{
		tokenRepo:    deps.TokenRepo,
		locationRepo: deps.LocationRepo,
		logger:       deps.Logger,
		clock:        deps.Clock,
	}, nil
}

func (uc *UseCase) validateRegisterParams(ctx context.Context, params RegisterParams) error {
	if !validation.IsNotEmpty(params.ExpoToken) {
		return errors.NewValidationError("The expo token field is required.")
	}
	if !validation.MaxLength(params.ExpoToken, MaxExpoTokenLength) {
		return errors.NewValidationError(fmt.Sprintf("The expo token may not be greater than %d characters.", MaxExpoTokenLength))
	}
	if params.Platform != nil && !validation.MaxLength(*params.Platform, MaxPlatformLength) {
		return errors.NewValidationError(fmt.Sprintf("The platform may not be greater than %d characters.", MaxPlatformLength))
	}

	if params.LocationID != nil {
		exists, err := uc.locationRepo.Exists(ctx, *params.LocationID)
		if err != nil {
			return fmt.Errorf("check location %d: %w", *params.LocationID, err)
		}
		if !exists {
			return errors.NewValidationError("The selected location id is invalid.")
		}
	}
	return nil
}

// Register creates or refreshes the token keyed by its Expo token string
func (uc *UseCase) Register(ctx context.Context, params RegisterParams) (*Token, error) {
	if err := uc.validateRegisterParams(ctx, params); err != nil {
		return nil, err
	}

	expoToken, _ := validation.TrimAndValidate(params.ExpoToken)
	data := &ports.DeviceTokenData{
		ExpoToken:  expoToken,
		Platform:   validation.OptionalString(params.Platform),
		LocationID: params.LocationID,
		LastSeenAt: uc.clock.Now(),
	}
	if err := uc.tokenRepo.Upsert(ctx, data); err != nil {
		return nil, fmt.Errorf("upsert device token: %w", err)
	}

	uc.logger.Debug("Device token registered",
		ports.F("device_token_id", data.ID),
		ports.F("location_id", data.LocationID))

	return FromData(data), nil
}

// FromData converts port data into a Token
func FromData(data *ports.DeviceTokenData) *Token {
	return &Token{
		ID:         data.ID,
		ExpoToken:  data.ExpoToken,
		Platform:   data.Platform,
		LocationID: data.LocationID,
		LastSeenAt: data.LastSeenAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
