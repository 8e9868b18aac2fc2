package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var validate = validator.New()

type NotificationsConfig struct {
	Push     PushConfig     `mapstructure:"push"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	Telegram TelegramConfig `mapstructure:"telegram"`
}

type PushConfig struct {
	Command string `mapstructure:"command" validate:"required"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	From     string `mapstructure:"from"`
	To       string `mapstructure:"to" validate:"required,email"`
	TLS      bool   `mapstructure:"tls"`
}

type TelegramConfig struct {
	Token  string `mapstructure:"token" validate:"required"`
	ChatID int64  `mapstructure:"chat_id" validate:"required"`
}

// Complete reports whether the channel is fully configured. A partially
// configured channel is skipped, never an error.
func (config PushConfig) Complete() bool {
	return validate.Struct(config) == nil
}

func (config SMTPConfig) Complete() bool {
	return validate.Struct(config) == nil
}

// Sender is the From address, defaulting to the authenticated user.
func (config SMTPConfig) Sender() string {
	if config.From != "" {
		return config.From
	}
	return config.User
}

func (config TelegramConfig) Complete() bool {
	return validate.Struct(config) == nil
}

func (config NotificationsConfig) bindEnvironmentVariables() error {
	var errs []error

	bindings := map[string]string{
		"notifications.push.command":     "PUSH_COMMAND",
		"notifications.smtp.host":        "SMTP_HOST",
		"notifications.smtp.port":        "SMTP_PORT",
		"notifications.smtp.user":        "SMTP_USER",
		"notifications.smtp.password":    "SMTP_PASS",
		"notifications.smtp.from":        "SMTP_FROM",
		"notifications.smtp.to":          "SMTP_TO",
		"notifications.smtp.tls":         "SMTP_TLS",
		"notifications.telegram.token":   "TG_TOKEN",
		"notifications.telegram.chat_id": "TG_CHAT_ID",
	}

	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}
