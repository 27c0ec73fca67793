package infrastructure

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestionMetrics_Records(t *testing.T) {
	m := NewIngestionMetricsForTesting()

	m.ObserveRun("completed", 3*time.Second)
	m.ObserveRun("config_error", 0)
	m.RecordLocationResult("ok")
	m.RecordLocationResult("ok")
	m.RecordLocationResult("error")
	m.RecordAlertCreated("warning")
	m.ObserveProviderRequest("openweather", "success", 150*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("config_error")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.LocationResults.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LocationResults.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AlertsCreated.WithLabelValues("warning")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ProviderRequests))
	assert.Greater(t, testutil.ToFloat64(m.LastRunTimestamp), 0.0)
}

func TestNewIngestionMetrics_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewIngestionMetrics(reg)
	m.ObserveRun("completed", time.Second)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["floodwatch_ingestion_runs_total"])
	assert.True(t, names["floodwatch_ingestion_run_duration_seconds"])
}

func TestCacheMetrics_Stats(t *testing.T) {
	m := NewCacheMetrics("memory", prometheus.NewRegistry())

	m.RecordHit()
	m.RecordHit()
	m.RecordMiss()
	m.RecordOperation("get", 2*time.Millisecond)

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(3), stats.TotalOps)
	assert.InDelta(t, 0.6667, stats.HitRatio, 0.001)
	assert.False(t, stats.LastUpdated.IsZero())
	assert.InDelta(t, 0.6667, testutil.ToFloat64(m.collectors.HitRatio.WithLabelValues("memory")), 0.001)
}

func TestCacheMetrics_ConcurrentAccess(t *testing.T) {
	m := NewCacheMetrics("redis", nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				m.RecordHit()
			} else {
				m.RecordMiss()
			}
		}(i)
	}
	wg.Wait()

	stats := m.GetStats()
	assert.Equal(t, int64(50), stats.TotalOps)
	assert.Equal(t, 0.5, stats.HitRatio)
}
