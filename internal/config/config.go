// Package config resolves the settings of the bandalign command: built-in
// defaults, then an optional YAML file, then BANDALIGN_* environment
// variables. Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/diagband/bandalign"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText  = "text"
	FormatCigar = "cigar"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

// Distance oracle names.
const (
	ModeMatrix = "matrix"
	ModeLinear = "linear"
)

// ErrInvalid indicates a setting outside its allowed range.
var ErrInvalid = errors.New("config: invalid setting")

var validate = validator.New()

// Config holds every tunable of the command.
type Config struct {
	// Margin widens the minimal band on both sides when no explicit band is given.
	Margin   int    `yaml:"margin" env:"BANDALIGN_MARGIN" validate:"gte=0"`
	Match    int    `yaml:"match" env:"BANDALIGN_MATCH" validate:"gte=0"`
	Mismatch int    `yaml:"mismatch" env:"BANDALIGN_MISMATCH" validate:"gte=0"`
	Gap      int    `yaml:"gap" env:"BANDALIGN_GAP" validate:"gte=0"`
	Format   string `yaml:"format" env:"BANDALIGN_FORMAT" validate:"oneof=text cigar yaml json"`
	Mode     string `yaml:"mode" env:"BANDALIGN_MODE" validate:"oneof=matrix linear"`
	Workers  int    `yaml:"workers" env:"BANDALIGN_WORKERS" validate:"gte=1,lte=1024"`
	LogLevel string `yaml:"log_level" env:"BANDALIGN_LOG_LEVEL"`
}

// Default returns the built-in settings: unit costs, a margin of 2, text
// output, the linear oracle and four workers.
func Default() Config {
	return Config{
		Margin:   2,
		Match:    0,
		Mismatch: 1,
		Gap:      1,
		Format:   FormatText,
		Mode:     ModeLinear,
		Workers:  4,
		LogLevel: "info",
	}
}

// Load builds the configuration from defaults, the YAML file at path (skipped
// when path is empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ParseEnv overlays BANDALIGN_* variables onto target. Unset variables leave
// their fields unchanged.
func ParseEnv(target *Config) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	return nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := c.Costs().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// Costs returns the cost model.
func (c Config) Costs() bandalign.Costs {
	return bandalign.Costs{
		Match:    bandalign.Cost(c.Match),
		Mismatch: bandalign.Cost(c.Mismatch),
		Gap:      bandalign.Cost(c.Gap),
	}
}

// MemoryMode maps Mode to the distance oracle.
func (c Config) MemoryMode() (bandalign.MemoryMode, error) {
	switch c.Mode {
	case ModeMatrix:
		return bandalign.FullMatrix, nil
	case ModeLinear:
		return bandalign.Linear, nil
	default:
		return 0, fmt.Errorf("%w: mode %q", ErrInvalid, c.Mode)
	}
}
