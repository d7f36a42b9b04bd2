// Package config provides configuration file support for svgmotion.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/svgmotion/svgmotion/pkg/errclass"
	"github.com/svgmotion/svgmotion/pkg/fsutil"
	"github.com/svgmotion/svgmotion/pkg/logging"
	"github.com/svgmotion/svgmotion/pkg/model"
)

// FileName is the config file looked up in the working directory.
const FileName = ".svgmotion.yaml"

// Config represents the svgmotion configuration.
type Config struct {
	Preview  PreviewConfig  `json:"preview" yaml:"preview"`
	Logging  LoggingConfig  `json:"logging" yaml:"logging"`
	Defaults model.Settings `json:"defaults" yaml:"defaults"`
}

// PreviewConfig configures the preview cache.
type PreviewConfig struct {
	Dir    string `json:"dir" yaml:"dir"`
	Minify bool   `json:"minify" yaml:"minify"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	Level string `json:"level" yaml:"level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Preview: PreviewConfig{
			Dir: filepath.Join(os.TempDir(), "svgmotion-previews"),
		},
		Logging: LoggingConfig{
			Level: string(logging.LevelWarn),
		},
		Defaults: model.DefaultSettings(),
	}
}

// Load reads the config at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errclass.ErrConfigInvalid.WithMessagef("parse %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	if c.Preview.Dir == "" {
		return errclass.ErrConfigInvalid.WithMessage("preview.dir must not be empty")
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return errclass.ErrConfigInvalid.WithMessagef("logging.level: %v", err)
	}
	if err := c.Defaults.Validate(); err != nil {
		return errclass.ErrConfigInvalid.WithMessagef("defaults: %v", err)
	}
	return nil
}

// Save writes configuration to path atomically.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := fsutil.AtomicWrite(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
