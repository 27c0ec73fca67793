package forecast

import (
	"context"
	"fmt"

	"floodwatch.app/internal/core/location"
	"floodwatch.app/internal/ports"
	"floodwatch.app/pkg/errors"
)

type UseCase struct {
	forecastRepo ports.ForecastRepository
	locationRepo ports.LocationRepository
	cache        ports.ForecastCache
	config       ports.ConfigProvider
	logger       ports.Logger
}

type UseCaseDependencies struct {
	ForecastRepo ports.ForecastRepository
	LocationRepo ports.LocationRepository
	Cache        ports.ForecastCache
	Config       ports.ConfigProvider
	Logger       ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.ForecastRepo == nil {
		return nil, errors.NewValidationError("forecast repository is required")
	}
	if deps.LocationRepo == nil {
		return nil, errors.NewValidationError("location repository is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		forecastRepo: deps.ForecastRepo,
		locationRepo: deps.LocationRepo,
		cache:        deps.Cache,
		config:       deps.Config,
		logger:       deps.Logger,
	}, nil
}

// Record stores a normalized forecast and drops the cached latest entry
func (uc *UseCase) Record(ctx context.Context, f *Forecast) error {
	if err := f.IsValid(); err != nil {
		return errors.NewValidationError("invalid forecast: " + err.Error())
	}

	data := ToData(f)
	if err := uc.forecastRepo.Save(ctx, data); err != nil {
		return fmt.Errorf("save forecast: %w", err)
	}
	f.ID = data.ID
	f.CreatedAt = data.CreatedAt

	if uc.config.GetForecastConfig().EnableCache {
		if err := uc.cache.Invalidate(ctx, f.LocationID); err != nil {
			uc.logger.Warn("Failed to invalidate cached forecast",
				ports.F("location_id", f.LocationID),
				ports.F("error", err))
		}
	}

	uc.logger.Debug("Forecast stored",
		ports.F("location_id", f.LocationID),
		ports.F("forecast_id", f.ID),
		ports.F("rain_mm", f.RainMm))
	return nil
}

// Latest returns the most recent forecast for a location with derived metrics
func (uc *UseCase) Latest(ctx context.Context, locationID uint) (*Snapshot, error) {
	locData, err := uc.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("Location not found")
		}
		return nil, fmt.Errorf("get location %d: %w", locationID, err)
	}

	data, err := uc.latestWithCache(ctx, locationID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("No forecast available for this location")
		}
		return nil, fmt.Errorf("latest forecast for location %d: %w", locationID, err)
	}

	f := FromData(data)
	// stored in UTC; rendered in the location's own timezone
	f.ObservedAt = f.ObservedAt.In(location.FromData(locData).TimeLocation())
	return &Snapshot{Forecast: f, Conditions: Derive(f)}, nil
}

func (uc *UseCase) latestWithCache(ctx context.Context, locationID uint) (*ports.ForecastData, error) {
	cfg := uc.config.GetForecastConfig()
	if !cfg.EnableCache {
		return uc.forecastRepo.FindLatestByLocation(ctx, locationID)
	}

	cached, err := uc.cache.Get(ctx, locationID)
	if err == nil && cached != nil {
		uc.logger.Debug("Forecast found in cache", ports.F("location_id", locationID))
		return cached, nil
	}

	data, err := uc.forecastRepo.FindLatestByLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	if cacheErr := uc.cache.Set(ctx, data, cfg.CacheTTL); cacheErr != nil {
		uc.logger.Warn("Failed to cache forecast",
			ports.F("location_id", locationID),
			ports.F("error", cacheErr))
	}
	return data, nil
}

// ToData converts a Forecast into port data
func ToData(f *Forecast) *ports.ForecastData {
	return &ports.ForecastData{
		ID:         f.ID,
		LocationID: f.LocationID,
		ObservedAt: f.ObservedAt,
		TempC:      f.TempC,
		FeelsLikeC: f.FeelsLikeC,
		Humidity:   f.Humidity,
		WindMs:     f.WindMs,
		RainMm:     f.RainMm,
		Summary:    f.Summary,
		Raw:        f.Raw,
		CreatedAt:  f.CreatedAt,
	}
}

// FromData converts port data into a Forecast
func FromData(data *ports.ForecastData) *Forecast {
	return &Forecast{
		ID:         data.ID,
		LocationID: data.LocationID,
		ObservedAt: data.ObservedAt,
		TempC:      data.TempC,
		FeelsLikeC: data.FeelsLikeC,
		Humidity:   data.Humidity,
		WindMs:     data.WindMs,
		RainMm:     data.RainMm,
		Summary:    data.Summary,
		Raw:        data.Raw,
		CreatedAt:  data.CreatedAt,
	}
}
