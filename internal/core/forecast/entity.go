package forecast

import (
	"encoding/json"
	"fmt"
	"time"
)

// Forecast is a point-in-time observation snapshot for one location
type Forecast struct {
	ID         uint
	LocationID uint
	ObservedAt time.Time
	TempC      *float64
	FeelsLikeC *float64
	Humidity   *int
	WindMs     *float64
	RainMm     float64
	Summary    *string
	Raw        json.RawMessage
	CreatedAt  time.Time
}

// IsValid checks the fields a stored forecast cannot do without. Provider
// values are kept as reported.
func (f *Forecast) IsValid() error {
	if f.LocationID == 0 {
		return fmt.Errorf("location id is required")
	}
	if f.ObservedAt.IsZero() {
		return fmt.Errorf("observed_at is required")
	}
	return nil
}

// Snapshot is the latest forecast together with its derived metrics
type Snapshot struct {
	Forecast   *Forecast
	Conditions Conditions
}
