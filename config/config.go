// Package config loads CLI configuration from file and environment.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the CLI settings.
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Pattern PatternConfig `mapstructure:"pattern"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// OutputConfig controls how commands render their results.
type OutputConfig struct {
	// JSON switches output from the colored summary to machine-readable JSON.
	JSON bool `mapstructure:"json"`
	// Color enables ANSI colors in summaries.
	Color bool `mapstructure:"color"`
	// Quiet suppresses informational output, leaving only errors.
	Quiet bool `mapstructure:"quiet"`
}

// PatternConfig tunes the pattern validator.
type PatternConfig struct {
	// CacheSize is the capacity of the validation result cache.
	CacheSize int `mapstructure:"cache_size"`
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	// Level is a zap level string: debug, info, warn, error.
	Level string `mapstructure:"level"`
}

func setDefaults() {
	viper.SetDefault("output.json", false)
	viper.SetDefault("output.color", true)
	viper.SetDefault("output.quiet", false)
	viper.SetDefault("pattern.cache_size", 1024)
	viper.SetDefault("logging.level", "warn")
}

func loadFromEnv() {
	viper.SetEnvPrefix("STIXKIT")
	viper.AutomaticEnv()

	_ = viper.BindEnv("output.json", "STIXKIT_OUTPUT_JSON")
	_ = viper.BindEnv("output.color", "STIXKIT_COLOR")
	_ = viper.BindEnv("logging.level", "STIXKIT_LOG_LEVEL")
}

// LoadConfig loads configuration from config.yaml (working directory or
// ./config) and environment variables. A missing config file is not an
// error; defaults apply.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()
	loadFromEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found, will use defaults and env vars
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &config, nil
}
