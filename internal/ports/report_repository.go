package ports

import (
	"context"
	"time"
)

// ReportData represents a citizen hazard report
type ReportData struct {
	ID         uint
	LocationID uint
	Type       string
	Severity   *string
	Note       *string
	PhotoURL   *string
	ReportedAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Location   *LocationSummary
}

// ReportQuery filters report listings
type ReportQuery struct {
	LocationID *uint
	Limit      int
}

// ReportRepository defines the contract for report persistence
type ReportRepository interface {
	Save(ctx context.Context, report *ReportData) error
	FindByID(ctx context.Context, id uint) (*ReportData, error)
	List(ctx context.Context, query ReportQuery) ([]*ReportData, error)
}
