// Package notifications delivers the run summary over the configured
// channels. Delivery is strictly best-effort: a channel that is not
// configured is skipped, and a channel that fails is logged and counted
// but never blocks the others or the run.
package notifications

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/events"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/logger"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/metrics"
)

// Notifier is a single delivery channel.
type Notifier interface {
	Name() string
	ErrorType() string
	Send(ctx context.Context, report events.RunCompleted) error
}

// Fanout subscribes the channels to the run-completed event.
type Fanout struct {
	notifiers []Notifier
}

func NewFanout(bus EventBus.Bus, notifiers ...Notifier) (*Fanout, error) {

	if bus == nil {
		return nil, errors.New("bus is nil")
	}

	f := &Fanout{notifiers: notifiers}
	if err := bus.Subscribe(events.RunCompletedTopic, f.onRunCompleted); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Fanout) onRunCompleted(event events.RunCompleted) {
	for _, n := range f.notifiers {
		if err := n.Send(context.Background(), event); err != nil {
			metrics.NotificationErrorsCounter.WithLabelValues(n.Name()).Inc()
			log.WithField(logger.ErrorTypeField, n.ErrorType()).
				Errorf("failed to deliver %s notification: %v", n.Name(), err)
		}
	}
}
