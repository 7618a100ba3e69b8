// Package config loads the settings of the treectl command line tool.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidDelta     = errors.New("remap delta must be positive")
	ErrInvalidBuildMode = errors.New("unknown tree build mode")
	ErrInvalidLogLevel  = errors.New("unknown log level")
	ErrInvalidLogFormat = errors.New("unknown log format")
	ErrInvalidStyle     = errors.New("unknown output style")
)

// Build modes turning a list of values into a tree.
const (
	BuildInsert   = "insert"
	BuildComplete = "complete"
)

// Default configuration values.
const (
	defaultRemapDelta = 5
	defaultBuildMode  = BuildInsert
	defaultLogLevel   = "info"
	defaultLogFormat  = "text"
	defaultStyle      = "light"
	envPrefix         = "TREECTL"
)

var (
	logLevels    = []string{"debug", "info", "warn", "error"}
	logFormats   = []string{"text", "json"}
	outputStyles = []string{"light", "rounded", "bold", "double"}
)

// Config holds all configuration for treectl.
type Config struct {
	Tree    TreeConfig    `mapstructure:"tree"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
}

// TreeConfig holds the parameters handed to the tree algorithms.
type TreeConfig struct {
	Build      string `mapstructure:"build"`
	RemapDelta int    `mapstructure:"remap_delta"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig holds result rendering configuration.
type OutputConfig struct {
	Style string `mapstructure:"style"`
	Color bool   `mapstructure:"color"`
}

// Load reads configuration from configPath, or from treectl.yaml in the
// working directory or $HOME/.config/treectl when configPath is empty, then
// applies TREECTL_* environment variables. A missing default file is not an
// error.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("treectl")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("$HOME/.config/treectl")
	}

	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("tree.build", defaultBuildMode)
	viperCfg.SetDefault("tree.remap_delta", defaultRemapDelta)

	viperCfg.SetDefault("logging.level", defaultLogLevel)
	viperCfg.SetDefault("logging.format", defaultLogFormat)

	viperCfg.SetDefault("output.style", defaultStyle)
	viperCfg.SetDefault("output.color", true)
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return true
		}
	}
	return false
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.Tree.RemapDelta <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDelta, config.Tree.RemapDelta)
	}

	if !oneOf(config.Tree.Build, []string{BuildInsert, BuildComplete}) {
		return fmt.Errorf("%w: %q", ErrInvalidBuildMode, config.Tree.Build)
	}

	if !oneOf(config.Logging.Level, logLevels) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, config.Logging.Level)
	}

	if !oneOf(config.Logging.Format, logFormats) {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, config.Logging.Format)
	}

	if !oneOf(config.Output.Style, outputStyles) {
		return fmt.Errorf("%w: %q", ErrInvalidStyle, config.Output.Style)
	}

	return nil
}
