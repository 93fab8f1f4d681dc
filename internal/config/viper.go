// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/stmt-convert/internal/fileutils"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable override (STMT_LOG_LEVEL, ...).
const EnvPrefix = "STMT"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		RejectSingleQuotes bool `mapstructure:"reject_single_quotes" yaml:"reject_single_quotes"`
	} `mapstructure:"csv" yaml:"csv"`

	CAMT struct {
		ExtractEntries bool `mapstructure:"extract_entries" yaml:"extract_entries"`
	} `mapstructure:"camt" yaml:"camt"`

	Formats struct {
		Lenient bool `mapstructure:"lenient" yaml:"lenient"`
	} `mapstructure:"formats" yaml:"formats"`

	Input struct {
		MaxBytes int64 `mapstructure:"max_bytes" yaml:"max_bytes"`
	} `mapstructure:"input" yaml:"input"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-" yaml:"-"`
}

// InitializeConfig loads defaults, then the config file, then STMT_*
// environment variables. An empty configFile searches $HOME/.stmt-convert,
// .stmt-convert and the working directory for config.yaml; a missing file is
// not an error in that case.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.stmt-convert")
		v.AddConfigPath(".stmt-convert")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless named explicitly)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.File = v.ConfigFileUsed()

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when nothing overrides the defaults.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	// Defaults always decode
	_ = v.Unmarshal(&config)
	return &config
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Parser defaults
	v.SetDefault("csv.reject_single_quotes", false)
	v.SetDefault("camt.extract_entries", false)

	// Format tag handling
	v.SetDefault("formats.lenient", false)

	// Input acquisition
	v.SetDefault("input.max_bytes", fileutils.DefaultMaxInputBytes)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Input.MaxBytes <= 0 {
		return fmt.Errorf("input.max_bytes must be positive, got: %d", config.Input.MaxBytes)
	}

	return nil
}
