package config

import (
	"fmt"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Capture check modes
const (
	CheckNone     = ""
	CheckShared   = "shared"
	CheckSnapshot = "snapshot"
	CheckBoth     = "both"
)

// Config holds all configuration for the demo runner
type Config struct {
	// Environment (development, production, test)
	Environment string `mapstructure:"environment" validate:"oneof=development production test"`

	// Logging configuration
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogDir   string `mapstructure:"log_dir"`

	// Closure demo configuration
	ClosureCount    int     `mapstructure:"closure_count" validate:"min=0,max=64"`
	ClosureExponent float64 `mapstructure:"closure_exponent"`
	CaptureCheck    string  `mapstructure:"capture_check" validate:"omitempty,oneof=shared snapshot both"`

	// Mapping demo configuration
	MappingKeys   []string `mapstructure:"mapping_keys"`
	MappingValues []int    `mapstructure:"mapping_values"`
	LengthPolicy  string   `mapstructure:"length_policy" validate:"oneof=truncate strict"`

	// Metrics configuration
	MetricsEnabled bool   `mapstructure:"metrics_enabled"`
	MetricsFile    string `mapstructure:"metrics_file"`
}

// LoadConfig reads configuration from file or environment variables
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("environment", "production")
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_dir", "")

	// Closure defaults
	v.SetDefault("closure_count", 5)
	v.SetDefault("closure_exponent", 2)
	v.SetDefault("capture_check", CheckNone)

	// Mapping defaults
	v.SetDefault("mapping_keys", []string{"app", "script", "program"})
	v.SetDefault("mapping_values", []int{1, 3, 5})
	v.SetDefault("length_policy", "truncate")

	// Metrics defaults
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("metrics_file", "")

	if path != "" {
		v.AddConfigPath(path)
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
			// Config file not found, continue with defaults and environment
		}
	}

	// DEMO_CLOSURE_COUNT -> closure_count
	v.SetEnvPrefix("demo")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the config against its struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// RunsShared reports whether the shared capture check was requested
func (c *Config) RunsShared() bool {
	return c.CaptureCheck == CheckShared || c.CaptureCheck == CheckBoth
}

// RunsSnapshot reports whether the snapshot capture check was requested
func (c *Config) RunsSnapshot() bool {
	return c.CaptureCheck == CheckSnapshot || c.CaptureCheck == CheckBoth
}
