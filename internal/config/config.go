package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Workload WorkloadConfig `toml:"workload" yaml:"workload"`
	Logging  LoggingConfig  `toml:"logging" yaml:"logging"`
	Profile  ProfileConfig  `toml:"profile" yaml:"profile"`
}

type WorkloadConfig struct {
	Entities    int  `toml:"entities" yaml:"entities"`
	Iterations  int  `toml:"iterations" yaml:"iterations"`
	DeleteEvery int  `toml:"delete_every" yaml:"delete_every"` // despawn and respawn every n-th entity per round, 0 disables
	WithNames   bool `toml:"with_names" yaml:"with_names"`
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
}

type ProfileConfig struct {
	Mode string `toml:"mode" yaml:"mode"` // "cpu", "mem" or empty
	Path string `toml:"path" yaml:"path"`
}

// Load reads the config file at path. Files ending in .yaml or .yml are parsed
// as YAML, everything else as TOML. Values missing in the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = toml.Unmarshal(data, cfg)
	}

	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.Workload.Entities <= 0 {
		errs = append(errs, fmt.Errorf("workload.entities must be positive, got %d", c.Workload.Entities))
	}

	if c.Workload.Iterations < 0 {
		errs = append(errs, fmt.Errorf("workload.iterations must not be negative, got %d", c.Workload.Iterations))
	}

	if c.Workload.DeleteEvery < 0 {
		errs = append(errs, fmt.Errorf("workload.delete_every must not be negative, got %d", c.Workload.DeleteEvery))
	}

	switch c.Profile.Mode {
	case "", "cpu", "mem":
	default:
		errs = append(errs, fmt.Errorf("unknown profile.mode %q", c.Profile.Mode))
	}

	return errors.Join(errs...)
}

func Default() *Config {
	return &Config{
		Workload: WorkloadConfig{
			Entities:    10_000,
			Iterations:  100,
			DeleteEvery: 10,
			WithNames:   true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Profile: ProfileConfig{
			Path: ".",
		},
	}
}
