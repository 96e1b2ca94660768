// Package config loads hopdist settings from an optional YAML file and
// HOPDIST_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ConfigFileName is looked up in the working directory when no explicit path is given.
	ConfigFileName = "hopdist"
	// EnvironmentPrefix namespaces environment overrides, e.g. HOPDIST_FORMAT.
	EnvironmentPrefix = "HOPDIST"

	keyInput       = "input"
	keyFormat      = "format"
	keyLogLevel    = "log_level"
	keyMaxDepth    = "max_depth"
	keyParallelism = "parallelism"

	// DefaultInput is the graph file read when none is named.
	DefaultInput    = "graph.txt"
	defaultFormat   = "text"
	defaultLogLevel = "info"
)

// ErrInvalidConfiguration is returned when a loaded value fails validation.
var ErrInvalidConfiguration = errors.New("config: invalid configuration")

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// Configuration holds command defaults. Command-line flags override it.
type Configuration struct {
	Input       string `mapstructure:"input"`
	Format      string `mapstructure:"format"`
	LogLevel    string `mapstructure:"log_level"`
	MaxDepth    int    `mapstructure:"max_depth"`
	Parallelism int    `mapstructure:"parallelism"`
}

// Default returns the configuration used when nothing is configured.
func Default() Configuration {
	return Configuration{
		Input:       DefaultInput,
		Format:      defaultFormat,
		LogLevel:    defaultLogLevel,
		MaxDepth:    0,
		Parallelism: 0,
	}
}

// Load resolves configuration from defaults, then the config file, then
// the environment. A missing implicit file is not an error; a missing
// explicit file is.
func Load(options LoadOptions) (Configuration, error) {
	defaults := Default()
	reader := viper.New()
	reader.SetDefault(keyInput, defaults.Input)
	reader.SetDefault(keyFormat, defaults.Format)
	reader.SetDefault(keyLogLevel, defaults.LogLevel)
	reader.SetDefault(keyMaxDepth, defaults.MaxDepth)
	reader.SetDefault(keyParallelism, defaults.Parallelism)
	reader.SetEnvPrefix(EnvironmentPrefix)
	reader.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	reader.AutomaticEnv()

	if options.ExplicitFilePath != "" {
		reader.SetConfigFile(options.ExplicitFilePath)
		if readErr := reader.ReadInConfig(); readErr != nil {
			return Configuration{}, fmt.Errorf("read configuration from %s: %w", options.ExplicitFilePath, readErr)
		}
	} else {
		workingDirectory := options.WorkingDirectory
		if workingDirectory == "" {
			currentDirectory, err := os.Getwd()
			if err != nil {
				return Configuration{}, fmt.Errorf("determine working directory: %w", err)
			}
			workingDirectory = currentDirectory
		}
		reader.SetConfigName(ConfigFileName)
		reader.SetConfigType("yaml")
		reader.AddConfigPath(workingDirectory)
		if readErr := reader.ReadInConfig(); readErr != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(readErr, &notFound) {
				return Configuration{}, fmt.Errorf("read configuration: %w", readErr)
			}
		}
	}

	var configuration Configuration
	if decodeErr := reader.Unmarshal(&configuration); decodeErr != nil {
		return Configuration{}, fmt.Errorf("decode configuration: %w", decodeErr)
	}
	if err := configuration.Validate(); err != nil {
		return Configuration{}, err
	}

	return configuration, nil
}

// Validate checks value ranges that viper cannot express.
func (configuration Configuration) Validate() error {
	if strings.TrimSpace(configuration.Input) == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfiguration, keyInput)
	}
	if configuration.MaxDepth < 0 {
		return fmt.Errorf("%w: %s must not be negative (%d)", ErrInvalidConfiguration, keyMaxDepth, configuration.MaxDepth)
	}
	if configuration.Parallelism < 0 {
		return fmt.Errorf("%w: %s must not be negative (%d)", ErrInvalidConfiguration, keyParallelism, configuration.Parallelism)
	}

	return nil
}
