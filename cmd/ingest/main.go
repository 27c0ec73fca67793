package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"floodwatch.app/internal/app"
	"floodwatch.app/internal/config"
	"floodwatch.app/internal/core/ingestion"
	"floodwatch.app/pkg/logger"
	"github.com/joho/godotenv"
)

// Runs a single ingestion pass over every location and prints one line per
// location.
func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	slog.SetDefault(logger.NewFromOptions(os.Stderr, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT")).Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	container, err := app.NewDependencyContainer(cfg, app.DependencyOptions{})
	if err != nil {
		return fmt.Errorf("create dependency container: %w", err)
	}
	defer func() {
		if err := container.Cleanup(); err != nil {
			slog.Warn("Error releasing resources", "error", err)
		}
	}()

	useCases, err := app.NewUseCases(container.ApplicationPorts(), container.Clock())
	if err != nil {
		return err
	}

	result, err := useCases.Ingestion.Ingest(ctx)
	if err != nil {
		return err
	}

	for _, r := range result.Results {
		fmt.Println(formatResult(r))
	}
	return nil
}

func formatResult(r ingestion.LocationResult) string {
	if r.Status != ingestion.StatusOK {
		return fmt.Sprintf("Location %d: %s", r.LocationID, r.Message)
	}

	var forecastID uint
	if r.ForecastID != nil {
		forecastID = *r.ForecastID
	}
	var alerts int
	if r.AlertsCreated != nil {
		alerts = *r.AlertsCreated
	}
	return fmt.Sprintf("Location %d: stored forecast %d; alerts created %d", r.LocationID, forecastID, alerts)
}
