package database

import (
	"context"
	stderrors "errors"
	"time"

	"floodwatch.app/internal/ports"
	"floodwatch.app/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReportModel represents the database model for citizen hazard reports
type ReportModel struct {
	ID         uint           `gorm:"primaryKey"`
	LocationID uint           `gorm:"not null;index:idx_reports_location_reported,priority:1"`
	Location   *LocationModel `gorm:"constraint:OnDelete:CASCADE"`
	Type       string         `gorm:"size:32;not null"`
	Severity   *string        `gorm:"size:16"`
	Note       *string        `gorm:"type:text"`
	PhotoURL   *string        `gorm:"column:photo_url;size:255"`
	ReportedAt time.Time      `gorm:"not null;index:idx_reports_location_reported,priority:2"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (ReportModel) TableName() string {
	return "reports"
}

// ReportRepositoryAdapter implements the ReportRepository port using GORM
type ReportRepositoryAdapter struct {
	db *gorm.DB
}

// NewReportRepositoryAdapter creates a new report repository adapter
func NewReportRepositoryAdapter(db *gorm.DB) ports.ReportRepository {
	return &ReportRepositoryAdapter{db: db}
}

func withLocationSummary(db *gorm.DB) *gorm.DB {
	return db.Preload("Location", func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "name", "region")
	})
}

// Save inserts a report and fills in its ID and timestamps
func (r *ReportRepositoryAdapter) Save(ctx context.Context, report *ports.ReportData) error {
	if report == nil {
		return errors.NewValidationError("report cannot be nil")
	}

	model := reportDataToModel(report)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		return errors.NewDatabaseError("failed to save report", err)
	}

	report.ID = model.ID
	report.CreatedAt = model.CreatedAt
	report.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID retrieves a report with its location summary
func (r *ReportRepositoryAdapter) FindByID(ctx context.Context, id uint) (*ports.ReportData, error) {
	var model ReportModel
	if err := withLocationSummary(r.db.WithContext(ctx)).First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("report not found")
		}
		return nil, errors.NewDatabaseError("failed to find report by ID", err)
	}
	return reportModelToData(&model), nil
}

// List returns reports newest first, ties broken by id
func (r *ReportRepositoryAdapter) List(ctx context.Context, query ports.ReportQuery) ([]*ports.ReportData, error) {
	db := withLocationSummary(r.db.WithContext(ctx))
	if query.LocationID != nil {
		db = db.Where("location_id = ?", *query.LocationID)
	}
	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}

	var models []ReportModel
	if err := db.Order("reported_at DESC").Order("id DESC").Find(&models).Error; err != nil {
		return nil, errors.NewDatabaseError("failed to list reports", err)
	}

	reports := make([]*ports.ReportData, len(models))
	for i := range models {
		reports[i] = reportModelToData(&models[i])
	}
	return reports, nil
}

func reportDataToModel(data *ports.ReportData) *ReportModel {
	return &ReportModel{
		ID:         data.ID,
		LocationID: data.LocationID,
		Type:       data.Type,
		Severity:   data.Severity,
		Note:       data.Note,
		PhotoURL:   data.PhotoURL,
		ReportedAt: data.ReportedAt.UTC(),
	}
}

func reportModelToData(model *ReportModel) *ports.ReportData {
	data := &ports.ReportData{
		ID:         model.ID,
		LocationID: model.LocationID,
		Type:       model.Type,
		Severity:   model.Severity,
		Note:       model.Note,
		PhotoURL:   model.PhotoURL,
		ReportedAt: model.ReportedAt,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
	if model.Location != nil {
		data.Location = &ports.LocationSummary{
			ID:     model.Location.ID,
			Name:   model.Location.Name,
			Region: model.Location.Region,
		}
	}
	return data
}
