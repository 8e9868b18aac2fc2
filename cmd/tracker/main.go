package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/config"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/logger"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/metrics"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/runlock"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/server"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/services"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Server.MetricsAddress)

	for _, dir := range []string{cfg.Pipeline.DataDir, cfg.Server.WebDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("can't create directory %s: %v", dir, err)
		}
	}

	lock := runlock.New(filepath.Join(cfg.Pipeline.DataDir, "run.lock"))
	launcher := server.NewExecLauncher(cfg.Server.Launcher)
	coordinator := server.NewCoordinator(lock, launcher, cfg.Server.TriggersPerMinute)

	if cfg.Scheduler.Enabled() {
		scheduler, err := services.NewRunScheduler(cfg.Scheduler.CronSpec, func() {
			res := coordinator.TriggerRun(context.Background())
			if res.Status == server.StatusError {
				log.Errorf("scheduled run failed to start: %v", res.Err)
			} else {
				log.Infof("scheduled run trigger: %s", res.Status)
			}
		})
		if err != nil {
			log.Fatalf("can't create run scheduler: %v", err)
		}
		defer scheduler.Stop()
	}

	srv := server.New(cfg.Server, cfg.Pipeline.DataDir, coordinator)
	go func() {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server shutdown: %v", err)
	}
	log.Info("Services stopped.")
}
