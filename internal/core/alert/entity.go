package alert

import (
	"fmt"
	"strings"
	"time"
)

// Level is the severity of an alert
type Level string

const (
	LevelWatch     Level = "watch"
	LevelWarning   Level = "warning"
	LevelEmergency Level = "emergency"
)

// Alert types and sources
const (
	TypeFlood         = "flood"
	SourceSystem      = "system"
	SourceOpenWeather = "openweather"
)

// ActiveWindow is how long a derived alert stays active
const ActiveWindow = 6 * time.Hour

// IsValid checks if the level is known
func (l Level) IsValid() bool {
	return l == LevelWatch || l == LevelWarning || l == LevelEmergency
}

// Title returns the level name with its first letter upper-cased
func (l Level) Title() string {
	s := string(l)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (l Level) String() string {
	return string(l)
}

// Alert is a time-bounded warning attached to a location
type Alert struct {
	ID         uint
	LocationID uint
	Level      Level
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

// IsActiveAt reports whether the alert covers t. Open-ended alerts are always active.
func (a *Alert) IsActiveAt(t time.Time) bool {
	return a.EndsAt == nil || !a.EndsAt.Before(t)
}

// IsValid validates an alert before persistence
func (a *Alert) IsValid() error {
	if a.LocationID == 0 {
		return fmt.Errorf("location id is required")
	}
	if !a.Level.IsValid() {
		return fmt.Errorf("invalid level %q", a.Level)
	}
	if strings.TrimSpace(a.Type) == "" {
		return fmt.Errorf("type is required")
	}
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if a.EndsAt != nil && a.EndsAt.Before(a.StartsAt) {
		return fmt.Errorf("ends_at cannot be before starts_at")
	}
	return nil
}
