package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"floodwatch.app/internal/app"
	"floodwatch.app/internal/config"
	"floodwatch.app/internal/core/location"
	"floodwatch.app/pkg/logger"
	"github.com/joho/godotenv"
)

// Seeds the built-in location catalog. Safe to run repeatedly.
func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	slog.SetDefault(logger.NewFromOptions(os.Stderr, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT")).Logger)

	if err := run(context.Background()); err != nil {
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

	count, err := useCases.Locations.Seed(ctx, location.Catalog())
	if err != nil {
		return err
	}

	fmt.Printf("Seeded %d locations\n", count)
	return nil
}
