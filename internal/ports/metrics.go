package ports

import "time"

// IngestionMetrics records pipeline outcomes
type IngestionMetrics interface {
	ObserveRun(outcome string, duration time.Duration)
	RecordLocationResult(status string)
	RecordAlertCreated(level string)
	ObserveProviderRequest(provider, outcome string, duration time.Duration)
}
