package database

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"floodwatch.app/internal/ports"
	"floodwatch.app/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ForecastModel represents the database model for forecasts
type ForecastModel struct {
	ID         uint           `gorm:"primaryKey"`
	LocationID uint           `gorm:"not null;index:idx_forecasts_location_observed,priority:1"`
	Location   *LocationModel `gorm:"constraint:OnDelete:CASCADE"`
	ObservedAt time.Time      `gorm:"not null;index:idx_forecasts_location_observed,priority:2"`
	TempC      *float64       `gorm:"type:numeric(5,2)"`
	FeelsLikeC *float64       `gorm:"type:numeric(5,2)"`
	Humidity   *int
	WindMs     *float64 `gorm:"type:numeric(5,2)"`
	RainMm     float64  `gorm:"type:numeric(6,2);not null;default:0"`
	Summary    *string  `gorm:"size:255"`
	Raw        datatypes.JSON
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (ForecastModel) TableName() string {
	return "forecasts"
}

// ForecastRepositoryAdapter implements the ForecastRepository port using GORM
type ForecastRepositoryAdapter struct {
	db *gorm.DB
}

// NewForecastRepositoryAdapter creates a new forecast repository adapter
func NewForecastRepositoryAdapter(db *gorm.DB) ports.ForecastRepository {
	return &ForecastRepositoryAdapter{db: db}
}

// Save appends a forecast and fills in its ID and CreatedAt
func (r *ForecastRepositoryAdapter) Save(ctx context.Context, forecast *ports.ForecastData) error {
	if forecast == nil {
		return errors.NewValidationError("forecast cannot be nil")
	}

	model := forecastDataToModel(forecast)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		return errors.NewDatabaseError("failed to save forecast", err)
	}

	forecast.ID = model.ID
	forecast.CreatedAt = model.CreatedAt
	return nil
}

// FindLatestByLocation returns the forecast with the greatest observed_at, ties broken by id
func (r *ForecastRepositoryAdapter) FindLatestByLocation(ctx context.Context, locationID uint) (*ports.ForecastData, error) {
	var model ForecastModel
	err := r.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("observed_at DESC").
		Order("id DESC").
		First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("forecast not found")
		}
		return nil, errors.NewDatabaseError("failed to find latest forecast", err)
	}

	return forecastModelToData(&model), nil
}

func forecastDataToModel(data *ports.ForecastData) *ForecastModel {
	model := &ForecastModel{
		ID:         data.ID,
		LocationID: data.LocationID,
		ObservedAt: data.ObservedAt.UTC(),
		TempC:      data.TempC,
		FeelsLikeC: data.FeelsLikeC,
		Humidity:   data.Humidity,
		WindMs:     data.WindMs,
		RainMm:     data.RainMm,
		Summary:    data.Summary,
	}
	if len(data.Raw) > 0 {
		model.Raw = datatypes.JSON(data.Raw)
	}
	return model
}

func forecastModelToData(model *ForecastModel) *ports.ForecastData {
	data := &ports.ForecastData{
		ID:         model.ID,
		LocationID: model.LocationID,
		ObservedAt: model.ObservedAt,
		TempC:      model.TempC,
		FeelsLikeC: model.FeelsLikeC,
		Humidity:   model.Humidity,
		WindMs:     model.WindMs,
		RainMm:     model.RainMm,
		Summary:    model.Summary,
		CreatedAt:  model.CreatedAt,
	}
	if len(model.Raw) > 0 {
		data.Raw = json.RawMessage(model.Raw)
	}
	return data
}
