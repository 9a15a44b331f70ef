// Package config loads LouvainConfig from YAML files, the on-disk shape
// operators hand to the louvain-run binary.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dd0wney/louvain-engine/pkg/louvain"
	"github.com/dd0wney/louvain-engine/pkg/validation"
)

var validate = validator.New()

// LouvainConfig is the YAML-facing configuration for a driver run. Its
// fields mirror louvain.Options but use tags and types friendly to a
// config file rather than a Go call site.
type LouvainConfig struct {
	Repeat                 int     `yaml:"repeat" validate:"min=1"`
	Resolution             float64 `yaml:"resolution" validate:"gt=0,lte=1"`
	Tolerance              float64 `yaml:"tolerance" validate:"gte=0"`
	PassTolerance          float64 `yaml:"pass_tolerance" validate:"gte=0"`
	ToleranceDeclineFactor float64 `yaml:"tolerance_decline_factor" validate:"gt=0,lte=1"`
	MaxIterations          int     `yaml:"max_iterations" validate:"min=1"`
	MaxPasses              int     `yaml:"max_passes" validate:"min=1"`

	// GraphPath is the edge-list file the binary loads at startup.
	GraphPath string `yaml:"graph_path" validate:"required"`

	// MetricsAddr, if non-empty, is the address the Prometheus handler
	// is served from.
	MetricsAddr string `yaml:"metrics_addr"`

	// LogLevel selects the structured logger's minimum level.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultLouvainConfig mirrors louvain.DefaultOptions, adding the
// file-level fields a standalone binary needs.
func DefaultLouvainConfig() LouvainConfig {
	opts := louvain.DefaultOptions()
	return LouvainConfig{
		Repeat:                 opts.Repeat,
		Resolution:             opts.Resolution,
		Tolerance:              opts.Tolerance,
		PassTolerance:          opts.PassTolerance,
		ToleranceDeclineFactor: opts.ToleranceDeclineFactor,
		MaxIterations:          opts.MaxIterations,
		MaxPasses:              opts.MaxPasses,
		LogLevel:               "info",
	}
}

// Load reads and validates a LouvainConfig from a YAML file at path.
func Load(path string) (LouvainConfig, error) {
	cfg := DefaultLouvainConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return LouvainConfig{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LouvainConfig{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return LouvainConfig{}, err
	}
	return cfg, nil
}

// Validate runs struct-tag validation, then the cross-field checks the
// tags alone can't express (delegated to louvain.Options.Validate).
func (c LouvainConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("louvain config: %w", err)
	}
	return validation.NewConfigValidator("config.LouvainConfig").
		Custom("Options", func() error { return c.ToOptions().Validate() }).
		Validate()
}

// ToOptions converts the loaded config into louvain.Options for use
// with the driver.
func (c LouvainConfig) ToOptions() louvain.Options {
	return louvain.Options{
		Repeat:                 c.Repeat,
		Resolution:             c.Resolution,
		Tolerance:              c.Tolerance,
		PassTolerance:          c.PassTolerance,
		ToleranceDeclineFactor: c.ToleranceDeclineFactor,
		MaxIterations:          c.MaxIterations,
		MaxPasses:              c.MaxPasses,
	}
}
