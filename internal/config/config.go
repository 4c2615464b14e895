// Package config provides configuration loading for the document
// processor. Supports YAML files, environment variables, and defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Engine names accepted by the reader configuration.
const (
	EngineFitz   = "fitz"
	EngineNative = "native"
)

// Config holds all configuration for the document processor.
type Config struct {
	Engine    string    `yaml:"engine"`     // fitz or native
	ImagesDir string    `yaml:"images_dir"` // where extracted images are written
	Log       LogConfig `yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or console
}

// Load reads configuration from a YAML file and applies environment
// overrides. An empty path skips the file and starts from defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Engine:    EngineFitz,
		ImagesDir: "./images",
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	if c.Engine != EngineFitz && c.Engine != EngineNative {
		return fmt.Errorf("unknown engine %q (want %q or %q)", c.Engine, EngineFitz, EngineNative)
	}
	if c.ImagesDir == "" {
		return fmt.Errorf("images_dir cannot be empty")
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("unknown log format %q (want json or console)", c.Log.Format)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DOCPROC_ENGINE"); v != "" {
		cfg.Engine = v
	}
	if v := os.Getenv("DOCPROC_IMAGES_DIR"); v != "" {
		cfg.ImagesDir = v
	}
	if v := os.Getenv("DOCPROC_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("DOCPROC_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}
