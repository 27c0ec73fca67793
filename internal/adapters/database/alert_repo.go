package database

import (
	"context"
	"fmt"
	"time"

	"floodwatch.app/internal/ports"
	"floodwatch.app/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AlertModel represents the database model for alerts
type AlertModel struct {
	ID         uint           `gorm:"primaryKey"`
	LocationID uint           `gorm:"not null;index:idx_alerts_dedup,priority:1"`
	Location   *LocationModel `gorm:"constraint:OnDelete:CASCADE"`
	Level      string         `gorm:"size:16;not null;index:idx_alerts_dedup,priority:3"`
	Type       string         `gorm:"size:32;not null;default:flood;index:idx_alerts_dedup,priority:2"`
	Title      string         `gorm:"size:255;not null"`
	Message    *string        `gorm:"type:text"`
	StartsAt   time.Time      `gorm:"not null"`
	EndsAt     *time.Time     `gorm:"index"`
	Source     string         `gorm:"size:32;not null;default:system"`
	RuleRef    *string        `gorm:"size:64"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (AlertModel) TableName() string {
	return "alerts"
}

// AlertRepositoryAdapter implements the AlertRepository port using GORM
type AlertRepositoryAdapter struct {
	db *gorm.DB
}

// NewAlertRepositoryAdapter creates a new alert repository adapter
func NewAlertRepositoryAdapter(db *gorm.DB) ports.AlertRepository {
	return &AlertRepositoryAdapter{db: db}
}

func activeAt(db *gorm.DB, now time.Time) *gorm.DB {
	return db.Where("ends_at IS NULL OR ends_at >= ?", now.UTC())
}

// CreateIfNoneActive checks for a matching active alert and inserts inside one
// transaction. On postgres a transaction-scoped advisory lock on the dedup key
// serializes concurrent runs; sqlite already serializes writers.
func (r *AlertRepositoryAdapter) CreateIfNoneActive(ctx context.Context, alert *ports.AlertData, now time.Time) (bool, error) {
	if alert == nil {
		return false, errors.NewValidationError("alert cannot be nil")
	}

	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == DriverPostgres {
			key := fmt.Sprintf("alerts:%d:%s:%s", alert.LocationID, alert.Type, alert.Level)
			if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error; err != nil {
				return errors.NewDatabaseError("failed to acquire alert lock", err)
			}
		}

		var count int64
		err := activeAt(tx.Model(&AlertModel{}), now).
			Where("location_id = ? AND type = ? AND level = ?", alert.LocationID, alert.Type, alert.Level).
			Count(&count).Error
		if err != nil {
			return errors.NewDatabaseError("failed to check active alerts", err)
		}
		if count > 0 {
			return nil
		}

		model := alertDataToModel(alert)
		if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
			return errors.NewDatabaseError("failed to create alert", err)
		}
		alert.ID = model.ID
		alert.CreatedAt = model.CreatedAt
		alert.UpdatedAt = model.UpdatedAt
		created = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

// FindActiveByLocation returns alerts active at now, newest starts_at first
func (r *AlertRepositoryAdapter) FindActiveByLocation(ctx context.Context, locationID uint, now time.Time) ([]*ports.AlertData, error) {
	var models []AlertModel
	err := activeAt(r.db.WithContext(ctx).Where("location_id = ?", locationID), now).
		Order("starts_at DESC").
		Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list active alerts", err)
	}

	alerts := make([]*ports.AlertData, len(models))
	for i := range models {
		alerts[i] = alertModelToData(&models[i])
	}
	return alerts, nil
}

func alertDataToModel(data *ports.AlertData) *AlertModel {
	model := &AlertModel{
		ID:         data.ID,
		LocationID: data.LocationID,
		Level:      data.Level,
		Type:       data.Type,
		Title:      data.Title,
		Message:    data.Message,
		StartsAt:   data.StartsAt.UTC(),
		Source:     data.Source,
		RuleRef:    data.RuleRef,
	}
	if data.EndsAt != nil {
		endsAt := data.EndsAt.UTC()
		model.EndsAt = &endsAt
	}
	return model
}

func alertModelToData(model *AlertModel) *ports.AlertData {
	return &ports.AlertData{
		ID:         model.ID,
		LocationID: model.LocationID,
		Level:      model.Level,
		Type:       model.Type,
		Title:      model.Title,
		Message:    model.Message,
		StartsAt:   model.StartsAt,
		EndsAt:     model.EndsAt,
		Source:     model.Source,
		RuleRef:    model.RuleRef,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}
