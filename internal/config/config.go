// Package config holds matcalc settings loaded from YAML and overridden by flags.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dimmat/matrixio"
)

const (
	DefaultElem     = ElemInt64
	DefaultFormat   = "yaml"
	DefaultLogLevel = "warn"
	DefaultMaxDim   = matrixio.DefaultMaxDim
)

// Element types the CLI can compute with.
const (
	ElemInt64   = "int64"
	ElemFloat64 = "float64"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Elem     string `yaml:"elem"`
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
	MaxDim   int    `yaml:"max_dim"`
}

func DefaultConfig() *Config {
	return &Config{
		Elem:     DefaultElem,
		Format:   DefaultFormat,
		LogLevel: DefaultLogLevel,
		MaxDim:   DefaultMaxDim,
	}
}

// Load reads path on top of the defaults; keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, replacing any existing file. It is what
// `matcalc config init` uses to write a starting config.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every field against the values the CLI understands.
func (c *Config) Validate() error {
	switch c.Elem {
	case ElemInt64, ElemFloat64:
	default:
		return fmt.Errorf("elem %q: %w", c.Elem, ErrInvalid)
	}
	if _, err := matrixio.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("format: %w: %w", ErrInvalid, err)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalid)
	}
	if c.MaxDim <= 0 {
		return fmt.Errorf("max_dim %d: %w", c.MaxDim, ErrInvalid)
	}
	return nil
}
