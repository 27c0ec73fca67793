package app

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"floodwatch.app/internal/core/ingestion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRunner struct {
	calls   atomic.Int32
	running atomic.Int32
	overlap atomic.Bool
	delay   time.Duration
	once    sync.Once
	started chan struct{}
}

func (r *countingRunner) Ingest(ctx context.Context) (*ingestion.Run, error) {
	if r.running.Add(1) > 1 {
		r.overlap.Store(true)
	}
	defer r.running.Add(-1)

	r.calls.Add(1)
	r.once.Do(func() { close(r.started) })

	select {
	case <-time.After(r.delay):
	case <-ctx.Done():
	}
	return &ingestion.Run{ID: "run"}, nil
}

func TestIngestionScheduler_RunsPeriodically(t *testing.T) {
	runner := &countingRunner{started: make(chan struct{})}
	scheduler := NewIngestionScheduler(runner, 20*time.Millisecond)

	require.NoError(t, scheduler.Start(context.Background()))
	t.Cleanup(scheduler.Stop)

	assert.Eventually(t, func() bool {
		return runner.calls.Load() >= 3
	}, 2*time.Second, 5*time.Millisecond)
}

func TestIngestionScheduler_RunsDoNotOverlap(t *testing.T) {
	runner := &countingRunner{started: make(chan struct{}), delay: 80 * time.Millisecond}
	scheduler := NewIngestionScheduler(runner, 10*time.Millisecond)

	require.NoError(t, scheduler.Start(context.Background()))
	t.Cleanup(scheduler.Stop)

	assert.Eventually(t, func() bool {
		return runner.calls.Load() >= 2
	}, 2*time.Second, 5*time.Millisecond)
	assert.False(t, runner.overlap.Load())
}

func TestIngestionScheduler_StopCancelsRun(t *testing.T) {
	runner := &countingRunner{started: make(chan struct{}), delay: time.Hour}
	scheduler := NewIngestionScheduler(runner, 10*time.Millisecond)

	require.NoError(t, scheduler.Start(context.Background()))

	select {
	case <-runner.started:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled run never started")
	}

	scheduler.Stop()
	assert.Eventually(t, func() bool {
		return runner.running.Load() == 0
	}, time.Second, 5*time.Millisecond)
}
