package database

import (
	"context"
	"time"

	"floodwatch.app/internal/ports"
	"floodwatch.app/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DeviceTokenModel represents the database model for push tokens
type DeviceTokenModel struct {
	ID         uint           `gorm:"primaryKey"`
	ExpoToken  string         `gorm:"size:255;not null;uniqueIndex"`
	Platform   *string        `gorm:"size:16"`
	LocationID *uint          `gorm:"index"`
	Location   *LocationModel `gorm:"constraint:OnDelete:SET NULL"`
	LastSeenAt time.Time      `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (DeviceTokenModel) TableName() string {
	return "device_tokens"
}

// DeviceTokenRepositoryAdapter implements the DeviceTokenRepository port using GORM
type DeviceTokenRepositoryAdapter struct {
	db *gorm.DB
}

// NewDeviceTokenRepositoryAdapter creates a new device token repository adapter
func NewDeviceTokenRepositoryAdapter(db *gorm.DB) ports.DeviceTokenRepository {
	return &DeviceTokenRepositoryAdapter{db: db}
}

// Upsert inserts the token or overwrites platform, location and last_seen_at
// of the existing row with the same expo token.
func (r *DeviceTokenRepositoryAdapter) Upsert(ctx context.Context, token *ports.DeviceTokenData) error {
	if token == nil {
		return errors.NewValidationError("device token cannot be nil")
	}

	model := &DeviceTokenModel{
		ExpoToken:  token.ExpoToken,
		Platform:   token.Platform,
		LocationID: token.LocationID,
		LastSeenAt: token.LastSeenAt.UTC(),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "expo_token"}},
			DoUpdates: clause.AssignmentColumns([]string{"platform", "location_id", "last_seen_at", "updated_at"}),
		}).Create(model).Error
		if err != nil {
			return errors.NewDatabaseError("failed to upsert device token", err)
		}

		var stored DeviceTokenModel
		if err := tx.Where("expo_token = ?", token.ExpoToken).First(&stored).Error; err != nil {
			return errors.NewDatabaseError("failed to reload device token", err)
		}
		*token = *deviceTokenModelToData(&stored)
		return nil
	})
	return err
}

func deviceTokenModelToData(model *DeviceTokenModel) *ports.DeviceTokenData {
	return &ports.DeviceTokenData{
		ID:         model.ID,
		ExpoToken:  model.ExpoToken,
		Platform:   model.Platform,
		LocationID: model.LocationID,
		LastSeenAt: model.LastSeenAt,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}
