package database

import (
	"context"
	stderrors "errors"
	"time"

	"floodwatch.app/internal/ports"
	"floodwatch.app/pkg/errors"
	"gorm.io/gorm"
)

// LocationModel represents the database model for locations
type LocationModel struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"size:255;not null;index"`
	Region    *string `gorm:"size:255"`
	Latitude  float64 `gorm:"type:numeric(9,6);not null;uniqueIndex:idx_locations_coordinates"`
	Longitude float64 `gorm:"type:numeric(9,6);not null;uniqueIndex:idx_locations_coordinates"`
	Timezone  string  `gorm:"size:64;not null;default:Africa/Dar_es_Salaam"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LocationModel) TableName() string {
	return "locations"
}

// LocationRepositoryAdapter implements the LocationRepository port using GORM
type LocationRepositoryAdapter struct {
	db *gorm.DB
}

// NewLocationRepositoryAdapter creates a new location repository adapter
func NewLocationRepositoryAdapter(db *gorm.DB) ports.LocationRepository {
	return &LocationRepositoryAdapter{db: db}
}

// FindAll returns every location ordered by name
func (r *LocationRepositoryAdapter) FindAll(ctx context.Context) ([]*ports.LocationData, error) {
	var models []LocationModel
	if err := r.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&models).Error; err != nil {
		return nil, errors.NewDatabaseError("failed to list locations", err)
	}

	locations := make([]*ports.LocationData, len(models))
	for i := range models {
		locations[i] = locationModelToData(&models[i])
	}
	return locations, nil
}

// FindByID retrieves a location by its ID
func (r *LocationRepositoryAdapter) FindByID(ctx context.Context, id uint) (*ports.LocationData, error) {
	if id == 0 {
		return nil, errors.NewNotFoundError("Location not found")
	}

	var model LocationModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("Location not found")
		}
		return nil, errors.NewDatabaseError("failed to find location by ID", err)
	}
	return locationModelToData(&model), nil
}

// Exists reports whether a location with id is stored
func (r *LocationRepositoryAdapter) Exists(ctx context.Context, id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&LocationModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, errors.NewDatabaseError("failed to check location", err)
	}
	return count > 0, nil
}

// UpsertByName updates the location with the same name or inserts a new one
func (r *LocationRepositoryAdapter) UpsertByName(ctx context.Context, location *ports.LocationData) error {
	if location == nil {
		return errors.NewValidationError("location cannot be nil")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing LocationModel
		err := tx.Where("name = ?", location.Name).First(&existing).Error
		switch {
		case stderrors.Is(err, gorm.ErrRecordNotFound):
			model := locationDataToModel(location)
			if err := tx.Create(model).Error; err != nil {
				return errors.NewDatabaseError("failed to create location", err)
			}
			*location = *locationModelToData(model)
			return nil
		case err != nil:
			return errors.NewDatabaseError("failed to find location by name", err)
		}

		existing.Region = location.Region
		existing.Latitude = location.Latitude
		existing.Longitude = location.Longitude
		existing.Timezone = location.Timezone
		if err := tx.Save(&existing).Error; err != nil {
			return errors.NewDatabaseError("failed to update location", err)
		}
		*location = *locationModelToData(&existing)
		return nil
	})
}

func locationDataToModel(data *ports.LocationData) *LocationModel {
	return &LocationModel{
		ID:        data.ID,
		Name:      data.Name,
		Region:    data.Region,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Timezone:  data.Timezone,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func locationModelToData(model *LocationModel) *ports.LocationData {
	return &ports.LocationData{
		ID:        model.ID,
		Name:      model.Name,
		Region:    model.Region,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		Timezone:  model.Timezone,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
