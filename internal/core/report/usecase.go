package report

import (
	"context"
	"fmt"
	"time"

	"floodwatch.app/internal/core/location"
	"floodwatch.app/internal/ports"
	"floodwatch.app/pkg/errors"
	"floodwatch.app/pkg/validation"
	"github.com/jonboulle/clockwork"
)

type UseCase struct {
	reportRepo   ports.ReportRepository
	locationRepo ports.LocationRepository
	logger       ports.Logger
	clock        clockwork.Clock
}

type UseCaseDependencies struct {
	ReportRepo   ports.ReportRepository
	LocationRepo ports.LocationRepository
	Logger       ports.Logger
	Clock        clockwork.Clock
}

// CreateParams is an unvalidated report submission
type CreateParams struct {
	LocationID *uint
	Type       string
	Severity   *string
	Note       *string
	PhotoURL   *string
	ReportedAt *time.Time
}

// ListParams filters a report listing; nil Limit means the default
type ListParams struct {
	LocationID *uint
	Limit      *int
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.ReportRepo == nil {
		return nil, errors.NewValidationError("report repository is required")
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
		reportRepo:   deps.ReportRepo,
		locationRepo: deps.LocationRepo,
		logger:       deps.Logger,
		clock:        deps.Clock,
	}, nil
}

func (uc *UseCase) validateCreateParams(params CreateParams) error {
	if params.LocationID == nil || *params.LocationID == 0 {
		return errors.NewValidationError("The location id field is required.")
	}
	if !validation.IsNotEmpty(params.Type) {
		return errors.NewValidationError("The type field is required.")
	}
	if !validation.MaxLength(params.Type, MaxTypeLength) {
		return errors.NewValidationError(fmt.Sprintf("The type may not be greater than %d characters.", MaxTypeLength))
	}
	if params.Severity != nil && !validation.MaxLength(*params.Severity, MaxSeverityLength) {
		return errors.NewValidationError(fmt.Sprintf("The severity may not be greater than %d characters.", MaxSeverityLength))
	}
	if params.PhotoURL != nil && !validation.MaxLength(*params.PhotoURL, MaxPhotoURLLength) {
		return errors.NewValidationError(fmt.Sprintf("The photo url may not be greater than %d characters.", MaxPhotoURLLength))
	}
	return nil
}

// Create validates and stores a report. The returned report carries its
// location summary.
func (uc *UseCase) Create(ctx context.Context, params CreateParams) (*Report, error) {
	if err := uc.validateCreateParams(params); err != nil {
		return nil, err
	}

	loc, err := uc.findLocation(ctx, *params.LocationID)
	if err != nil {
		return nil, err
	}

	reportedAt := uc.clock.Now()
	if params.ReportedAt != nil {
		reportedAt = *params.ReportedAt
	}

	reportType, _ := validation.TrimAndValidate(params.Type)
	data := &ports.ReportData{
		LocationID: loc.ID,
		Type:       reportType,
		Severity:   validation.OptionalString(params.Severity),
		Note:       validation.OptionalString(params.Note),
		PhotoURL:   validation.OptionalString(params.PhotoURL),
		ReportedAt: reportedAt,
	}
	if err := uc.reportRepo.Save(ctx, data); err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}

	uc.logger.Info("Hazard report created",
		ports.F("report_id", data.ID),
		ports.F("location_id", data.LocationID),
		ports.F("type", data.Type))

	r := FromData(data)
	r.Location = summaryOf(loc)
	return r, nil
}

// List returns reports newest first across all locations or one location
func (uc *UseCase) List(ctx context.Context, params ListParams) ([]*Report, error) {
	limit, err := resolveLimit(params.Limit)
	if err != nil {
		return nil, err
	}

	if params.LocationID != nil {
		exists, err := uc.locationRepo.Exists(ctx, *params.LocationID)
		if err != nil {
			return nil, fmt.Errorf("check location %d: %w", *params.LocationID, err)
		}
		if !exists {
			return nil, errors.NewValidationError("The selected location id is invalid.")
		}
	}

	return uc.list(ctx, ports.ReportQuery{LocationID: params.LocationID, Limit: limit})
}

// ListForLocation lists reports of one location; an unknown location is not found
func (uc *UseCase) ListForLocation(ctx context.Context, locationID uint, limit *int) ([]*Report, error) {
	resolved, err := resolveLimit(limit)
	if err != nil {
		return nil, err
	}

	exists, err := uc.locationRepo.Exists(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("check location %d: %w", locationID, err)
	}
	if !exists {
		return nil, errors.NewNotFoundError("Location not found")
	}

	return uc.list(ctx, ports.ReportQuery{LocationID: &locationID, Limit: resolved})
}

func (uc *UseCase) list(ctx context.Context, query ports.ReportQuery) ([]*Report, error) {
	data, err := uc.reportRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	reports := make([]*Report, len(data))
	for i, d := range data {
		reports[i] = FromData(d)
	}
	return reports, nil
}

func (uc *UseCase) findLocation(ctx context.Context, id uint) (*location.Location, error) {
	data, err := uc.locationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewValidationError("The selected location id is invalid.")
		}
		return nil, fmt.Errorf("find location %d: %w", id, err)
	}
	return location.FromData(data), nil
}

func resolveLimit(limit *int) (int, error) {
	if limit == nil {
		return DefaultListLimit, nil
	}
	if *limit < 1 || *limit > MaxListLimit {
		return 0, errors.NewValidationError(fmt.Sprintf("The limit must be between 1 and %d.", MaxListLimit))
	}
	return *limit, nil
}

// FromData converts port data into a Report
func FromData(data *ports.ReportData) *Report {
	r := &Report{
		ID:         data.ID,
		LocationID: data.LocationID,
		Type:       data.Type,
		Severity:   data.Severity,
		Note:       data.Note,
		PhotoURL:   data.PhotoURL,
		ReportedAt: data.ReportedAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
	if data.Location != nil {
		r.Location = &LocationSummary{
			ID:     data.Location.ID,
			Name:   data.Location.Name,
			Region: data.Location.Region,
		}
	}
	return r
}
