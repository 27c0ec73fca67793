package location

import (
	"context"
	"fmt"

	"floodwatch.app/internal/ports"
	"floodwatch.app/pkg/errors"
)

type UseCase struct {
	locationRepo ports.LocationRepository
	logger       ports.Logger
}

type UseCaseDependencies struct {
	LocationRepo ports.LocationRepository
	Logger       ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.LocationRepo == nil {
		return nil, errors.NewValidationError("location repository is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		locationRepo: deps.LocationRepo,
		logger:       deps.Logger,
	}, nil
}

// List returns every location ordered by name
func (uc *UseCase) List(ctx context.Context) ([]*Location, error) {
	data, err := uc.locationRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}

	locations := make([]*Location, len(data))
	for i, d := range data {
		locations[i] = FromData(d)
	}
	return locations, nil
}

// Seed upserts the given locations by name and returns how many were written
func (uc *UseCase) Seed(ctx context.Context, locations []Location) (int, error) {
	for i := range locations {
		loc := locations[i]
		if loc.Timezone == "" {
			loc.Timezone = DefaultTimezone
		}
		if err := loc.IsValid(); err != nil {
			return i, errors.NewValidationError(fmt.Sprintf("invalid location %q: %s", loc.Name, err.Error()))
		}

		data := ToData(&loc)
		if err := uc.locationRepo.UpsertByName(ctx, data); err != nil {
			return i, fmt.Errorf("seed location %s: %w", loc.Name, err)
		}
		uc.logger.Debug("Seeded location", ports.F("name", loc.Name), ports.F("id", data.ID))
	}

	uc.logger.Info("Locations seeded", ports.F("count", len(locations)))
	return len(locations), nil
}

// FromData converts port data into a Location
func FromData(data *ports.LocationData) *Location {
	return &Location{
		ID:        data.ID,
		Name:      data.Name,
		Region:    data.Region,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Timezone:  data.Timezone,
	}
}

// ToData converts a Location into port data
func ToData(loc *Location) *ports.LocationData {
	return &ports.LocationData{
		ID:        loc.ID,
		Name:      loc.Name,
		Region:    loc.Region,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Timezone:  loc.Timezone,
	}
}
