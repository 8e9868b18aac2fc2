package notifications

import (
	"context"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/config"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/events"
)

type stubNotifier struct {
	name string
	err  error
	sent int
	last events.RunCompleted
}

func (s *stubNotifier) Name() string      { return s.name }
func (s *stubNotifier) ErrorType() string { return s.name }

func (s *stubNotifier) Send(ctx context.Context, report events.RunCompleted) error {
	s.sent++
	s.last = report
	return s.err
}

func Test_Fanout_DeliversToAllChannels(t *testing.T) {
	bus := EventBus.New()
	first := &stubNotifier{name: "first"}
	second := &stubNotifier{name: "second"}

	_, err := NewFanout(bus, first, second)
	require.NoError(t, err)

	event := events.RunCompleted{Digest: "New: 1 | Expiring today: 0 | Expiring soon: 0"}
	bus.Publish(events.RunCompletedTopic, event)

	assert.Equal(t, 1, first.sent)
	assert.Equal(t, 1, second.sent)
	assert.Equal(t, event.Digest, second.last.Digest)
}

func Test_Fanout_FailingChannelDoesNotBlockOthers(t *testing.T) {
	bus := EventBus.New()
	failing := &stubNotifier{name: "failing", err: errors.New("transport down")}
	healthy := &stubNotifier{name: "healthy"}

	_, err := NewFanout(bus, failing, healthy)
	require.NoError(t, err)

	bus.Publish(events.RunCompletedTopic, events.RunCompleted{})

	assert.Equal(t, 1, failing.sent)
	assert.Equal(t, 1, healthy.sent)
}

func Test_Email_SkipsWhenNotConfigured(t *testing.T) {
	e := NewEmail(config.SMTPConfig{Host: "smtp.example.com"})
	assert.NoError(t, e.Send(context.Background(), events.RunCompleted{Summary: "s"}))
}

func Test_Telegram_SkipsWhenNotConfigured(t *testing.T) {
	tg := NewTelegram(config.TelegramConfig{})
	assert.NoError(t, tg.Send(context.Background(), events.RunCompleted{Digest: "d"}))
}

func Test_Push_SkipsWhenCommandMissing(t *testing.T) {
	p := NewPush(config.PushConfig{Command: "definitely-not-a-real-binary-name"})
	assert.NoError(t, p.Send(context.Background(), events.RunCompleted{Digest: "d"}))
}
