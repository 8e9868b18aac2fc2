package config

import (
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	CronSpec string `mapstructure:"cron_spec"`
}

// Enabled reports whether scheduled runs are configured at all.
func (config SchedulerConfig) Enabled() bool {
	return config.CronSpec != ""
}

func (config SchedulerConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("scheduler.cron_spec", "CRON_SPEC")
}
