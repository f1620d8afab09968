// Package config loads application configuration from an optional YAML
// file with environment-variable overrides (INDUSTASH_* prefix).
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/industash/industash/dataset"
)

// Config is the complete application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server" envconfig:"SERVER"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Dataset DatasetConfig `yaml:"dataset" envconfig:"DATASET"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"` // "json" or "text"
}

// DatasetConfig names the input file and reconciles its column naming.
// Columns left empty fall back to the UN export defaults; setting them
// supports the dataset variant that uses "Number of Employees" and
// "Industry_Category".
type DatasetConfig struct {
	Path    string          `yaml:"path" envconfig:"PATH"`
	Comma   string          `yaml:"comma" envconfig:"COMMA"`
	Columns dataset.Mapping `yaml:"columns"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Dataset: DatasetConfig{
			Comma: ",",
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// given), then environment overrides. Environment wins.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := envconfig.Process("INDUSTASH", cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid server port %d", c.Server.Port)
	}
	if c.Dataset.Path == "" {
		return fmt.Errorf("config: dataset path is required")
	}
	if len([]rune(c.Dataset.Comma)) > 1 {
		return fmt.Errorf("config: delimiter must be a single character, got %q", c.Dataset.Comma)
	}
	return nil
}

// Delimiter returns the configured field delimiter as a rune.
func (c *Config) Delimiter() rune {
	r := []rune(c.Dataset.Comma)
	if len(r) == 0 {
		return ','
	}
	return r[0]
}
