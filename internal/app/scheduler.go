package app

import (
	"context"
	"log/slog"
	"time"

	"floodwatch.app/internal/core/ingestion"
	"github.com/go-co-op/gocron"
)

// IngestionRunner is the pipeline the scheduler triggers
type IngestionRunner interface {
	Ingest(ctx context.Context) (*ingestion.Run, error)
}

// IngestionScheduler runs ingestion periodically in singleton mode, so a
// scheduled run never starts while the previous one is still going.
type IngestionScheduler struct {
	scheduler *gocron.Scheduler
	runner    IngestionRunner
	interval  time.Duration
	cancel    context.CancelFunc
}

func NewIngestionScheduler(runner IngestionRunner, interval time.Duration) *IngestionScheduler {
	return &IngestionScheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		runner:    runner,
		interval:  interval,
	}
}

// Start schedules the job and starts the underlying scheduler. The first run
// happens one interval after start.
func (s *IngestionScheduler) Start(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)

	_, err := s.scheduler.Every(s.interval).SingletonMode().WaitForSchedule().Do(func() {
		s.runOnce(ctx)
	})
	if err != nil {
		s.cancel()
		return err
	}

	s.scheduler.StartAsync()
	slog.Info("Ingestion scheduler started", "interval", s.interval.String())
	return nil
}

func (s *IngestionScheduler) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	slog.Info("Scheduled ingestion starting")
	run, err := s.runner.Ingest(ctx)
	if err != nil {
		slog.Error("Scheduled ingestion failed", "error", err)
		return
	}

	succeeded, failed, alerts := run.Summary()
	slog.Info("Scheduled ingestion completed",
		"run_id", run.ID,
		"succeeded", succeeded,
		"failed", failed,
		"alerts_created", alerts)
}

// Stop cancels an in-flight run and stops future ones
func (s *IngestionScheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.scheduler.Stop()
	slog.Info("Ingestion scheduler stopped")
}
