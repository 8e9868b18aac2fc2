package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Config_EnvironmentOverrideWorksCorrect(t *testing.T) {
	override := Config{
		Server: ServerConfig{
			Address:  "0.0.0.0:9999",
			Launcher: "/opt/tracker/run_now.sh",
		},
		Pipeline: PipelineConfig{
			DataDir: "/tmp/tracker-data",
			Source:  "jobs.test",
		},
		Logger: LoggerConfig{
			LogLevel: LevelDebug,
		},
	}
	t.Setenv("CONFIG_PATH", "../../configs/config.yaml")

	t.Setenv("SERVER_ADDRESS", override.Server.Address)
	t.Setenv("LAUNCHER", override.Server.Launcher)
	t.Setenv("DATA_DIR", override.Pipeline.DataDir)
	t.Setenv("SOURCE_TAG", override.Pipeline.Source)
	t.Setenv("LOG_LEVEL", string(override.Logger.LogLevel))

	cfg := Get()

	assert.Equal(t, override.Server.Address, cfg.Server.Address)
	assert.Equal(t, override.Server.Launcher, cfg.Server.Launcher)
	assert.Equal(t, override.Pipeline.DataDir, cfg.Pipeline.DataDir)
	assert.Equal(t, override.Pipeline.Source, cfg.Pipeline.Source)
	assert.Equal(t, override.Logger.LogLevel, cfg.Logger.LogLevel)
}

func Test_SMTPConfig_Complete(t *testing.T) {
	full := SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		User:     "tracker@example.com",
		Password: "secret",
		To:       "me@example.com",
	}
	assert.True(t, full.Complete())

	partial := full
	partial.Password = ""
	assert.False(t, partial.Complete())

	badAddress := full
	badAddress.To = "not-an-address"
	assert.False(t, badAddress.Complete())
}

func Test_SMTPConfig_SenderFallsBackToUser(t *testing.T) {
	cfg := SMTPConfig{User: "tracker@example.com"}
	assert.Equal(t, "tracker@example.com", cfg.Sender())

	cfg.From = "noreply@example.com"
	assert.Equal(t, "noreply@example.com", cfg.Sender())
}

func Test_TelegramConfig_Complete(t *testing.T) {
	assert.False(t, TelegramConfig{}.Complete())
	assert.False(t, TelegramConfig{Token: "t"}.Complete())
	assert.True(t, TelegramConfig{Token: "t", ChatID: 42}.Complete())
}

func Test_SchedulerConfig_Enabled(t *testing.T) {
	assert.False(t, SchedulerConfig{}.Enabled())
	assert.True(t, SchedulerConfig{CronSpec: "0 * * * *"}.Enabled())
}

func Test_SMTPConfig_PortBounds(t *testing.T) {
	cfg := SMTPConfig{
		Host:     "smtp.example.com",
		Port:     0,
		User:     "u",
		Password: "p",
		To:       "me@example.com",
	}
	assert.False(t, cfg.Complete())

	cfg.Port = 465
	assert.True(t, cfg.Complete())
}
