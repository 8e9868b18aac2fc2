package notifications

import (
	"context"

	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/config"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/events"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/logger"
)

// Telegram delivers the one-line digest to a configured chat. The bot API
// client is created lazily on first delivery so that an unreachable API
// degrades to a failed send rather than a startup error.
type Telegram struct {
	cfg config.TelegramConfig
	api *botApi.BotAPI
}

func NewTelegram(cfg config.TelegramConfig) *Telegram {
	return &Telegram{cfg: cfg}
}

func (t *Telegram) Name() string { return "telegram" }

func (t *Telegram) ErrorType() string { return logger.ErrorTypeTgApi }

func (t *Telegram) Send(ctx context.Context, report events.RunCompleted) error {
	if !t.cfg.Complete() {
		log.Debug("telegram channel not fully configured, skipping telegram notification")
		return nil
	}

	if t.api == nil {
		api, err := botApi.NewBotAPI(t.cfg.Token)
		if err != nil {
			return err
		}
		t.api = api
	}

	msg := botApi.NewMessage(t.cfg.ChatID, report.Digest)
	_, err := t.api.Send(msg)
	return err
}
