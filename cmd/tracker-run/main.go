package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"

	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/config"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/dates"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/logger"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/notifications"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/repositories"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/runlock"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/services"
)

func main() {

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	if err := run(cfg); err != nil {
		log.Fatalf("run failed: %v", err)
	}
}

func run(cfg *config.Config) error {

	lock := runlock.New(filepath.Join(cfg.Pipeline.DataDir, "run.lock"))
	pid := os.Getpid()

	acquired, err := lock.Acquire(pid)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeLock).
			Errorf("failed to claim run lock: %v", err)
		return err
	}
	if !acquired {
		log.Info("another run is active, nothing to do")
		return nil
	}
	defer lock.Release(pid)

	bus := EventBus.New()
	_, err = notifications.NewFanout(bus,
		notifications.NewPush(cfg.Notifications.Push),
		notifications.NewEmail(cfg.Notifications.SMTP),
		notifications.NewTelegram(cfg.Notifications.Telegram),
	)
	if err != nil {
		return err
	}

	normalizer := services.NewNormalizer(dates.NewResolver(), cfg.Pipeline.Source)
	runService, err := services.NewRunService(bus,
		repositories.NewPostingsRepository(cfg.Pipeline.DataDir),
		repositories.NewStateRepository(cfg.Pipeline.DataDir),
		repositories.NewSummaryRepository(cfg.Pipeline.DataDir),
		normalizer,
	)
	if err != nil {
		return err
	}

	return runService.Run(context.Background())
}
