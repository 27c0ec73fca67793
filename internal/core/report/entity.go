package report

import (
	"time"

	"floodwatch.app/internal/core/location"
)

const (
	MaxTypeLength     = 32
	MaxSeverityLength = 16
	MaxPhotoURLLength = 255

	DefaultListLimit = 100
	MaxListLimit     = 200
)

// Report is a hazard observation submitted by a person on the ground
type Report struct {
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

// LocationSummary is the owning location embedded in listings
type LocationSummary struct {
	ID     uint
	Name   string
	Region *string
}

func summaryOf(loc *location.Location) *LocationSummary {
	return &LocationSummary{ID: loc.ID, Name: loc.Name, Region: loc.Region}
}
