package ports

import (
	"context"
	"time"
)

// AlertData represents a time-bounded warning for a location
type AlertData struct {
	ID         uint
	LocationID uint
	Level      string
	Type       string
	Title      string
	Message    *string
	StartsAt   time.Time
	EndsAt     *time.Time
	Source     string
	RuleRef    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AlertRepository defines the contract for alert persistence
type AlertRepository interface {
	// CreateIfNoneActive inserts alert unless an alert with the same location,
	// type and level is active at now. It reports whether a row was inserted.
	CreateIfNoneActive(ctx context.Context, alert *AlertData, now time.Time) (bool, error)
	FindActiveByLocation(ctx context.Context, locationID uint, now time.Time) ([]*AlertData, error)
}

// AlertEvent is emitted after a new alert has been stored
type AlertEvent struct {
	AlertID    uint      `json:"alert_id"`
	LocationID uint      `json:"location_id"`
	Level      string    `json:"level"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	RainMm     float64   `json:"rain_mm"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
}

// AlertPublisher defines the contract for broadcasting created alerts
type AlertPublisher interface {
	PublishAlertCreated(ctx context.Context, event AlertEvent) error
	Close() error
}
