package ports

import (
	"context"
	"time"
)

// LocationData represents a monitored place
type LocationData struct {
	ID        uint
	Name      string
	Region    *string
	Latitude  float64
	Longitude float64
	Timezone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LocationSummary is the compact location embedded in report listings
type LocationSummary struct {
	ID     uint
	Name   string
	Region *string
}

// LocationRepository defines the contract for location persistence
type LocationRepository interface {
	FindAll(ctx context.Context) ([]*LocationData, error)
	FindByID(ctx context.Context, id uint) (*LocationData, error)
	Exists(ctx context.Context, id uint) (bool, error)
	UpsertByName(ctx context.Context, location *LocationData) error
}
