package location

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

// DefaultTimezone is used when a location has no timezone of its own
const DefaultTimezone = "Africa/Dar_es_Salaam"

// Location is a named place that weather is monitored for
type Location struct {
	ID        uint
	Name      string
	Region    *string
	Latitude  float64
	Longitude float64
	Timezone  string
}

// IsValid validates location data
func (l *Location) IsValid() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}

// TimeLocation resolves the IANA timezone, falling back to UTC for unknown ids
func (l *Location) TimeLocation() *time.Location {
	return LoadTimezone(l.Timezone)
}

// LoadTimezone resolves name to a time.Location; unknown or empty names yield UTC
func LoadTimezone(name string) *time.Location {
	if strings.TrimSpace(name) == "" {
		return time.UTC
	}
	tz, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return tz
}
