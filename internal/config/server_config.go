package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address           string  `mapstructure:"address"`
	MetricsAddress    string  `mapstructure:"metrics_address"`
	WebDir            string  `mapstructure:"web_dir"`
	Launcher          string  `mapstructure:"launcher"`
	TriggersPerMinute float64 `mapstructure:"triggers_per_minute"`
}

func (config ServerConfig) validate() error {
	var errs []error

	if config.Address == "" {
		errs = append(errs, fmt.Errorf("missing variable: address"))
	}
	if config.WebDir == "" {
		errs = append(errs, fmt.Errorf("missing variable: web_dir"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config ServerConfig) bindEnvironmentVariables() error {

	err := viper.BindEnv("server.address", "SERVER_ADDRESS")
	if err != nil {
		return err
	}

	err = viper.BindEnv("server.metrics_address", "METRICS_ADDRESS")
	if err != nil {
		return err
	}

	err = viper.BindEnv("server.web_dir", "WEB_DIR")
	if err != nil {
		return err
	}

	return viper.BindEnv("server.launcher", "LAUNCHER")
}
