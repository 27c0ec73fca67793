package ports

import (
	"context"
	"time"
)

// DeviceTokenData represents a registered push token
type DeviceTokenData struct {
	ID         uint
	ExpoToken  string
	Platform   *string
	LocationID *uint
	LastSeenAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DeviceTokenRepository defines the contract for device token persistence
type DeviceTokenRepository interface {
	// Upsert inserts or updates the row keyed by ExpoToken and refreshes
	// token with the stored state.
	Upsert(ctx context.Context, token *DeviceTokenData) error
}
