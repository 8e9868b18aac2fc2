package config

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Pipeline      PipelineConfig      `mapstructure:"pipeline"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	Scheduler     SchedulerConfig     `mapstructure:"scheduler"`
	Logger        LoggerConfig        `mapstructure:"logger"`
}

var configFile = "./configs/config.yaml"

func Get() *Config {

	if value, _ := os.LookupEnv("CONFIG_PATH"); value != "" {
		configFile = value
	}

	config, err := loadConfig(configFile)
	if err != nil {
		log.Fatal(err)
	}

	return config
}

func loadConfig(file string) (*Config, error) {

	viper.SetConfigFile(file)
	viper.AutomaticEnv()

	setDefaults()

	err := bindEnvironmentVariables()
	if err != nil {
		return nil, err
	}

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	config := Config{}
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.address", "127.0.0.1:8080")
	viper.SetDefault("server.metrics_address", "127.0.0.1:9091")
	viper.SetDefault("server.web_dir", "./web")
	viper.SetDefault("server.launcher", "./run_now.sh")
	viper.SetDefault("server.triggers_per_minute", 6)
	viper.SetDefault("pipeline.data_dir", "./data")
	viper.SetDefault("pipeline.source", "jobs.af")
	viper.SetDefault("notifications.push.command", "termux-notification")
	viper.SetDefault("notifications.smtp.port", 587)
	viper.SetDefault("notifications.smtp.tls", true)
	viper.SetDefault("logger.log_level", LevelInfo)
	viper.SetDefault("logger.output_dir", "./logs")
}

func bindEnvironmentVariables() error {
	var errs []error

	server, pipeline, notifications := ServerConfig{}, PipelineConfig{}, NotificationsConfig{}
	scheduler, logger := SchedulerConfig{}, LoggerConfig{}

	if err := server.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("ServerConfig: %w", err))
	}

	if err := pipeline.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("PipelineConfig: %w", err))
	}

	if err := notifications.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("NotificationsConfig: %w", err))
	}

	if err := scheduler.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("SchedulerConfig: %w", err))
	}

	if err := logger.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("LoggerConfig: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config Config) validate() error {
	var errs []error

	if err := config.Server.validate(); err != nil {
		errs = append(errs, fmt.Errorf("ServerConfig: %w", err))
	}

	if err := config.Pipeline.validate(); err != nil {
		errs = append(errs, fmt.Errorf("PipelineConfig: %w", err))
	}

	if err := config.Logger.validate(); err != nil {
		errs = append(errs, fmt.Errorf("LoggerConfig: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}
