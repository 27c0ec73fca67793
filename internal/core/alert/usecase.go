package alert

import (
	"context"
	"fmt"

	"floodwatch.app/internal/ports"
	"floodwatch.app/pkg/errors"
	"github.com/jonboulle/clockwork"
)

type UseCase struct {
	alertRepo    ports.AlertRepository
	locationRepo ports.LocationRepository
	publisher    ports.AlertPublisher
	logger       ports.Logger
	clock        clockwork.Clock
}

type UseCaseDependencies struct {
	AlertRepo    ports.AlertRepository
	LocationRepo ports.LocationRepository
	Publisher    ports.AlertPublisher
	Logger       ports.Logger
	Clock        clockwork.Clock
}

// DeriveParams carries the observation an alert may be derived from
type DeriveParams struct {
	LocationID   uint
	LocationName string
	RainMm       float64
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.AlertRepo == nil {
		return nil, errors.NewValidationError("alert repository is required")
	}
	if deps.LocationRepo == nil {
		return nil, errors.NewValidationError("location repository is required")
	}
	if deps.Publisher == nil {
		return nil, errors.NewValidationError("alert publisher is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}

	return &UseCase{
		alertRepo:    deps.AlertRepo,
		locationRepo: deps.LocationRepo,
		publisher:    deps.Publisher,
		logger:       deps.Logger,
		clock:        deps.Clock,
	}, nil
}

// DeriveFromRain creates at most one flood alert for the observed rainfall.
// It returns nil when no threshold is reached or an equivalent alert is
// already active.
func (uc *UseCase) DeriveFromRain(ctx context.Context, params DeriveParams) (*Alert, error) {
	rule, ok := EvaluateRain(params.RainMm)
	if !ok {
		return nil, nil
	}

	now := uc.clock.Now()
	candidate := NewRainAlert(params.LocationID, params.LocationName, rule, params.RainMm, now)
	if err := candidate.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid alert: " + err.Error())
	}

	data := ToData(candidate)
	created, err := uc.alertRepo.CreateIfNoneActive(ctx, data, now)
	if err != nil {
		return nil, fmt.Errorf("create %s alert for location %d: %w", rule.Level, params.LocationID, err)
	}
	if !created {
		uc.logger.Debug("Active alert already exists",
			ports.F("location_id", params.LocationID),
			ports.F("level", rule.Level.String()))
		return nil, nil
	}

	alert := FromData(data)
	uc.logger.Info("Flood alert created",
		ports.F("location_id", alert.LocationID),
		ports.F("alert_id", alert.ID),
		ports.F("level", alert.Level.String()),
		ports.F("rain_mm", params.RainMm))

	uc.publish(ctx, alert, params.RainMm)
	return alert, nil
}

// ListActive returns alerts active now for a location, newest first
func (uc *UseCase) ListActive(ctx context.Context, locationID uint) ([]*Alert, error) {
	exists, err := uc.locationRepo.Exists(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("check location %d: %w", locationID, err)
	}
	if !exists {
		return nil, errors.NewNotFoundError("Location not found")
	}

	data, err := uc.alertRepo.FindActiveByLocation(ctx, locationID, uc.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("list active alerts for location %d: %w", locationID, err)
	}

	alerts := make([]*Alert, len(data))
	for i, d := range data {
		alerts[i] = FromData(d)
	}
	return alerts, nil
}

func (uc *UseCase) publish(ctx context.Context, alert *Alert, rainMm float64) {
	event := ports.AlertEvent{
		AlertID:    alert.ID,
		LocationID: alert.LocationID,
		Level:      alert.Level.String(),
		Type:       alert.Type,
		Title:      alert.Title,
		RainMm:     rainMm,
		StartsAt:   alert.StartsAt,
	}
	if alert.Message != nil {
		event.Message = *alert.Message
	}
	if alert.EndsAt != nil {
		event.EndsAt = *alert.EndsAt
	}

	if err := uc.publisher.PublishAlertCreated(ctx, event); err != nil {
		uc.logger.Warn("Failed to publish alert event",
			ports.F("alert_id", alert.ID),
			ports.F("error", err))
	}
}

// ToData converts an Alert into port data
func ToData(a *Alert) *ports.AlertData {
	return &ports.AlertData{
		ID:         a.ID,
		LocationID: a.LocationID,
		Level:      a.Level.String(),
		Type:       a.Type,
		Title:      a.Title,
		Message:    a.Message,
		StartsAt:   a.StartsAt,
		EndsAt:     a.EndsAt,
		Source:     a.Source,
		RuleRef:    a.RuleRef,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// FromData converts port data into an Alert
func FromData(data *ports.AlertData) *Alert {
	return &Alert{
		ID:         data.ID,
		LocationID: data.LocationID,
		Level:      Level(data.Level),
		Type:       data.Type,
		Title:      data.Title,
		Message:    data.Message,
		StartsAt:   data.StartsAt,
		EndsAt:     data.EndsAt,
		Source:     data.Source,
		RuleRef:    data.RuleRef,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
