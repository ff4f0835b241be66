package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/survey-service/internal/cache"
	"github.com/SAP-F-2025/survey-service/internal/config"
	"github.com/SAP-F-2025/survey-service/internal/events"
	"github.com/SAP-F-2025/survey-service/internal/repositories"
	"github.com/SAP-F-2025/survey-service/internal/repositories/postgres"
	"github.com/SAP-F-2025/survey-service/internal/services"
	"github.com/SAP-F-2025/survey-service/internal/validator"
	"github.com/SAP-F-2025/survey-service/pkg"
	"github.com/redis/go-redis/v9"
)

// App holds the infrastructure shared by the server and the export job
type App struct {
	Config    *config.Config
	Logger    *slog.Logger
	Repo      repositories.Repository
	Publisher events.EventPublisher
	Services  services.ServiceManager

	redis *redis.Client
}

// New connects to the database, migrates it and wires the services. Redis is
// optional: without it "remind me later" is unavailable.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config: cfg,
		Logger: logger,
		Repo:   postgres.NewRepository(db),
	}

	if err := a.Repo.AutoMigrate(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	var reminders cache.ReminderStore
	if client, err := pkg.NewRedisClient(ctx, cfg); err != nil {
		logger.Warn("Redis unavailable, survey reminders disabled", "error", err)
	} else {
		a.redis = client
		reminders = cache.NewReminderStore(cache.NewRedisCache(client, logger))
	}

	a.Publisher, err = cfg.Events.CreateEventPublisher(logger)
	if err != nil {
		logger.Error("Failed to create event publisher, using mock", "error", err)
		a.Publisher = events.NewMockEventPublisher(logger)
	}

	a.Services = services.NewServiceManager(a.Repo, reminders, a.Publisher, validator.New(), services.ManagerConfig{
		ReminderTTL: cfg.ReminderTTL,
		Export: services.ExportConfig{
			Dir:        cfg.ExportDir,
			FilePrefix: cfg.ExportFilePrefix,
		},
	}, logger)

	return a, nil
}

// Close releases every connection, returning the joined errors
func (a *App) Close() error {
	var errs []error
	if a.Publisher != nil {
		errs = append(errs, a.Publisher.Close())
	}
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	errs = append(errs, a.Repo.Close())
	return errors.Join(errs...)
}
