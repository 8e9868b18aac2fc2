package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type PipelineConfig struct {
	DataDir string `mapstructure:"data_dir"`
	Source  string `mapstructure:"source"`
}

func (config PipelineConfig) validate() error {

	var missingFields []string

	if config.DataDir == "" {
		missingFields = append(missingFields, "data_dir")
	}

	if config.Source == "" {
		missingFields = append(missingFields, "source")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required variables: %s", strings.Join(missingFields, ", "))
	}

	return nil
}

func (config PipelineConfig) bindEnvironmentVariables() error {

	err := viper.BindEnv("pipeline.data_dir", "DATA_DIR")
	if err != nil {
		return err
	}

	return viper.BindEnv("pipeline.source", "SOURCE_TAG")
}
