package notifications

import (
	"context"
	"os/exec"

	log "github.com/sirupsen/logrus"

	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/config"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/events"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/logger"
)

// Push delivers the one-line digest through a local notification command
// (termux-notification on Android). A missing command means the channel is
// simply unavailable on this host.
type Push struct {
	cfg config.PushConfig
}

func NewPush(cfg config.PushConfig) *Push {
	return &Push{cfg: cfg}
}

func (p *Push) Name() string { return "push" }

func (p *Push) ErrorType() string { return logger.ErrorTypePush }

func (p *Push) Send(ctx context.Context, report events.RunCompleted) error {
	if !p.cfg.Complete() {
		return nil
	}

	bin, err := exec.LookPath(p.cfg.Command)
	if err != nil {
		log.Debugf("push command %q not found, skipping push notification", p.cfg.Command)
		return nil
	}

	cmd := exec.CommandContext(ctx, bin,
		"--title", "Jobs Tracker",
		"--content", report.Digest,
		"--priority", "high",
	)
	return cmd.Run()
}
