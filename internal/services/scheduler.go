package services

import (
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// RunScheduler fires the run trigger on a cron schedule. The trigger owns
// its own busy/free arbitration, so an overlapping schedule tick simply
// comes back busy.
type RunScheduler struct {
	cron *cron.Cron
}

func NewRunScheduler(spec string, trigger func()) (*RunScheduler, error) {
	if spec == "" {
		return nil, errors.New("cron spec is empty")
	}
	if trigger == nil {
		return nil, errors.New("trigger is nil")
	}

	s := &RunScheduler{cron: cron.New()}
	if _, err := s.cron.AddFunc(spec, trigger); err != nil {
		return nil, errors.Wrap(err, "invalid cron spec")
	}

	s.cron.Start()
	log.Infof("run scheduler started with spec %q", spec)
	return s, nil
}

func (s *RunScheduler) Stop() {
	s.cron.Stop()
}
