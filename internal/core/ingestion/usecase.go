package ingestion

import (
	"context"
	"fmt"
	"strings"

	"floodwatch.app/internal/core/alert"
	"floodwatch.app/internal/core/forecast"
	"floodwatch.app/internal/core/location"
	"floodwatch.app/internal/ports"
	"floodwatch.app/pkg/errors"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

// MissingAPIKeyMessage is reported when a run starts without provider credentials
const MissingAPIKeyMessage = "OpenWeather API key missing."

// ForecastRecorder persists normalized forecasts
type ForecastRecorder interface {
	Record(ctx context.Context, f *forecast.Forecast) error
}

// AlertDeriver evaluates rainfall and creates deduplicated alerts
type AlertDeriver interface {
	DeriveFromRain(ctx context.Context, params alert.DeriveParams) (*alert.Alert, error)
}

type UseCase struct {
	locationRepo ports.LocationRepository
	provider     ports.WeatherProvider
	forecasts    ForecastRecorder
	alerts       AlertDeriver
	config       ports.ConfigProvider
	metrics      ports.IngestionMetrics
	logger       ports.Logger
	clock        clockwork.Clock
}

type UseCaseDependencies struct {
	LocationRepo ports.LocationRepository
	Provider     ports.WeatherProvider
	Forecasts    ForecastRecorder
	Alerts       AlertDeriver
	Config       ports.ConfigProvider
	Metrics      ports.IngestionMetrics
	Logger       ports.Logger
	Clock        clockwork.Clock
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.LocationRepo == nil {
		return nil, errors.NewValidationError("location repository is required")
	}
	if deps.Provider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Forecasts == nil {
		return nil, errors.NewValidationError("forecast recorder is required")
	}
	if deps.Alerts == nil {
		return nil, errors.NewValidationError("alert deriver is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}

	return &UseCase{
		locationRepo: deps.LocationRepo,
		provider:     deps.Provider,
		forecasts:    deps.Forecasts,
		alerts:       deps.Alerts,
		config:       deps.Config,
		metrics:      deps.Metrics,
		logger:       deps.Logger,
		clock:        deps.Clock,
	}, nil
}

// Ingest fetches, stores and evaluates current conditions for every location.
// Only a missing API key or an unreadable location list fail the run; every
// other problem is reported in that location's result.
func (uc *UseCase) Ingest(ctx context.Context) (*Run, error) {
	run := &Run{ID: uuid.NewString(), StartedAt: uc.clock.Now()}
	cfg := uc.config.GetIngestionConfig()

	if strings.TrimSpace(cfg.APIKey) == "" {
		uc.metrics.ObserveRun(OutcomeConfigError, 0)
		uc.logger.Error("Ingestion aborted", ports.F("run_id", run.ID), ports.F("error", MissingAPIKeyMessage))
		return nil, errors.NewConfigurationError(MissingAPIKeyMessage, nil)
	}

	locations, err := uc.locationRepo.FindAll(ctx)
	if err != nil {
		uc.metrics.ObserveRun(OutcomeFailed, uc.clock.Since(run.StartedAt))
		return nil, fmt.Errorf("load locations: %w", err)
	}

	uc.logger.Info("Ingestion started",
		ports.F("run_id", run.ID),
		ports.F("locations", len(locations)),
		ports.F("concurrency", cfg.Concurrency))

	run.Results = make([]LocationResult, len(locations))

	limit := cfg.Concurrency
	if limit < 1 {
		limit = 1
	}
	var g errgroup.Group
	g.SetLimit(limit)
	for i, data := range locations {
		i := i // per-iteration copy; module targets go 1.21 loop semantics
		loc := location.FromData(data)
		g.Go(func() error {
			run.Results[i] = uc.ingestLocation(ctx, run.ID, loc)
			return nil
		})
	}
	_ = g.Wait()

	run.FinishedAt = uc.clock.Now()
	uc.metrics.ObserveRun(OutcomeCompleted, run.FinishedAt.Sub(run.StartedAt))

	succeeded, failed, alerts := run.Summary()
	uc.logger.Info("Ingestion finished",
		ports.F("run_id", run.ID),
		ports.F("succeeded", succeeded),
		ports.F("failed", failed),
		ports.F("alerts_created", alerts))

	return run, nil
}

func (uc *UseCase) ingestLocation(ctx context.Context, runID string, loc *location.Location) LocationResult {
	result := uc.processLocation(ctx, runID, loc)
	uc.metrics.RecordLocationResult(string(result.Status))
	return result
}

func (uc *UseCase) processLocation(ctx context.Context, runID string, loc *location.Location) LocationResult {
	payload, err := uc.provider.FetchCurrent(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return uc.fail(runID, loc, "fetch", err)
	}

	parsed, err := forecast.ParsePayload(payload.Body)
	if err != nil {
		return uc.fail(runID, loc, "decode", err)
	}

	f := forecast.Normalize(forecast.Source{LocationID: loc.ID, Timezone: loc.Timezone}, parsed, payload.Body, uc.clock.Now())
	if err := uc.forecasts.Record(ctx, f); err != nil {
		return uc.fail(runID, loc, "store", err)
	}

	created, err := uc.alerts.DeriveFromRain(ctx, alert.DeriveParams{
		LocationID:   loc.ID,
		LocationName: loc.Name,
		RainMm:       f.RainMm,
	})
	if err != nil {
		uc.logger.Warn("Alert derivation failed",
			ports.F("run_id", runID),
			ports.F("location_id", loc.ID),
			ports.F("forecast_id", f.ID),
			ports.F("error", err))
		return okResult(loc.ID, f.ID, 0, "alert derivation failed: "+errors.Message(err))
	}

	alertsCreated := 0
	if created != nil {
		alertsCreated = 1
		uc.metrics.RecordAlertCreated(created.Level.String())
	}

	uc.logger.Debug("Location ingested",
		ports.F("run_id", runID),
		ports.F("location_id", loc.ID),
		ports.F("forecast_id", f.ID),
		ports.F("rain_mm", f.RainMm),
		ports.F("alerts_created", alertsCreated))

	return okResult(loc.ID, f.ID, alertsCreated, "")
}

func (uc *UseCase) fail(runID string, loc *location.Location, stage string, err error) LocationResult {
	uc.logger.Warn("Location ingestion failed",
		ports.F("run_id", runID),
		ports.F("location_id", loc.ID),
		ports.F("stage", stage),
		ports.F("error", err))
	return errorResult(loc.ID, errors.Message(err))
}
