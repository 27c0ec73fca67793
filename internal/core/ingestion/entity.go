package ingestion

import "time"

// Status is the outcome of ingesting one location
type Status string

const (
	StatusOK    Status = "ok"
	StatusError Status = "error"
)

// Run outcomes recorded in metrics
const (
	OutcomeCompleted   = "completed"
	OutcomeConfigError = "config_error"
	OutcomeFailed      = "failed"
)

// LocationResult describes what happened to one location during a run
type LocationResult struct {
	LocationID    uint
	Status        Status
	ForecastID    *uint
	AlertsCreated *int
	Message       string
}

// Run is the ordered outcome of one ingestion pass
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Results    []LocationResult
}

// Summary counts results by outcome
func (r *Run) Summary() (succeeded, failed, alerts int) {
	for _, result := range r.Results {
		if result.Status == StatusOK {
			succeeded++
		} else {
			failed++
		}
		if result.AlertsCreated != nil {
			alerts += *result.AlertsCreated
		}
	}
	return succeeded, failed, alerts
}

func okResult(locationID, forecastID uint, alertsCreated int, message string) LocationResult {
	return LocationResult{
		LocationID:    locationID,
		Status:        StatusOK,
		ForecastID:    &forecastID,
		AlertsCreated: &alertsCreated,
		Message:       message,
	}
}

func errorResult(locationID uint, message string) LocationResult {
	return LocationResult{
		LocationID: locationID,
		Status:     StatusError,
		Message:    message,
	}
}
