package notifications

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/config"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/events"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/logger"
)

const emailSubject = "Jobs Tracker summary"

// Email delivers the full summary over SMTP. The channel is skipped unless
// host, user, password and recipient are all configured.
type Email struct {
	cfg config.SMTPConfig
}

func NewEmail(cfg config.SMTPConfig) *Email {
	return &Email{cfg: cfg}
}

func (e *Email) Name() string { return "email" }

func (e *Email) ErrorType() string { return logger.ErrorTypeSmtp }

func (e *Email) Send(ctx context.Context, report events.RunCompleted) error {
	if !e.cfg.Complete() {
		log.Debug("smtp channel not fully configured, skipping email notification")
		return nil
	}

	addr := fmt.Sprintf("%s:%d", e.cfg.Host, e.cfg.Port)
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if e.cfg.TLS {
		if err = client.StartTLS(&tls.Config{ServerName: e.cfg.Host}); err != nil {
			return err
		}
	}

	auth := smtp.PlainAuth("", e.cfg.User, e.cfg.Password, e.cfg.Host)
	if err = client.Auth(auth); err != nil {
		return err
	}

	if err = client.Mail(e.cfg.Sender()); err != nil {
		return err
	}
	if err = client.Rcpt(e.cfg.To); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write([]byte(e.message(report))); err != nil {
		w.Close()
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func (e *Email) message(report events.RunCompleted) string {
	headers := []string{
		"From: " + e.cfg.Sender(),
		"To: " + e.cfg.To,
		"Subject: " + emailSubject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="utf-8"`,
	}
	return strings.Join(headers, "\r\n") + "\r\n\r\n" + report.Summary
}
