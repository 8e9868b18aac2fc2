package server

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/logger"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/metrics"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/runlock"
)

const (
	StatusStarted = "started"
	StatusBusy    = "busy"
	StatusError   = "error"
)

// TriggerResult is the outcome of one trigger request. Busy is a normal
// outcome, not an error.
type TriggerResult struct {
	Status string
	PID    int
	Err    error
}

// Coordinator arbitrates run triggers. The lock check, the launch and the
// marker write happen under one in-process critical section, so two
// simultaneous triggers can never both observe a free lock. The launched
// execution runs detached and releases the marker itself when it exits.
type Coordinator struct {
	mu       sync.Mutex
	lock     *runlock.Lock
	launcher Launcher
	limiter  *rate.Limiter
}

func NewCoordinator(lock *runlock.Lock, launcher Launcher, triggersPerMinute float64) *Coordinator {
	c := &Coordinator{lock: lock, launcher: launcher}
	if triggersPerMinute > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(triggersPerMinute/60), 1)
	}
	return c
}

// TriggerRun reports started (with the launched PID), busy, or error.
// It never waits for the lock to free.
func (c *Coordinator) TriggerRun(ctx context.Context) TriggerResult {
	if c.limiter != nil && !c.limiter.Allow() {
		metrics.TriggerOutcomesCounter.WithLabelValues(StatusBusy).Inc()
		return TriggerResult{Status: StatusBusy}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.lock.Check() == runlock.Held {
		metrics.TriggerOutcomesCounter.WithLabelValues(StatusBusy).Inc()
		return TriggerResult{Status: StatusBusy}
	}

	pid, err := c.launcher.Start(ctx)
	if err != nil {
		metrics.TriggerOutcomesCounter.WithLabelValues(StatusError).Inc()
		log.Errorf("failed to launch run: %v", err)
		return TriggerResult{Status: StatusError, Err: err}
	}

	// Claiming on the child's behalf closes the window between launch and
	// the child's own claim. The child releases the marker when it exits.
	if err := c.lock.Claim(pid); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeLock).
			Errorf("failed to write lock marker for pid %d: %v", pid, err)
	}

	metrics.TriggerOutcomesCounter.WithLabelValues(StatusStarted).Inc()
	log.Infof("run started with pid %d", pid)
	return TriggerResult{Status: StatusStarted, PID: pid}
}
