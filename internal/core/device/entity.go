package device

import "time"

const (
	MaxExpoTokenLength = 255
	MaxPlatformLength  = 16
)

// Token is a push-notification token registered by a mobile client
type Token struct {
	ID         uint
	ExpoToken  string
	Platform   *string
	LocationID *uint
	LastSeenAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
