// SPDX-License-Identifier: MIT

package solver

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables read by LoadConfig; each overrides the file value.
const (
	EnvMaxIterations     = "SKETCHSOLVE_MAX_ITERATIONS"
	EnvEpsilon           = "SKETCHSOLVE_EPSILON"
	EnvRigidityTolerance = "SKETCHSOLVE_RIGIDITY_TOLERANCE"
	EnvParallelism       = "SKETCHSOLVE_PARALLELISM"
	EnvLogLevel          = "SKETCHSOLVE_LOG_LEVEL"
)

var configValidate = validator.New()

// Config is the file and environment form of the solver options.
//
// Example file:
//
//	max_iterations: 500
//	epsilon: 1e-15
//	rigidity_tolerance: 1e-6
//	parallelism: 4
//	log_level: debug
type Config struct {
	// MaxIterations caps accepted minimizer steps per run.
	MaxIterations int `yaml:"max_iterations" validate:"gt=0"`

	// Epsilon is the minimizer's termination tolerance.
	Epsilon float64 `yaml:"epsilon" validate:"gt=0,lt=1"`

	// RigidityTolerance is the classifier's relative threshold.
	RigidityTolerance float64 `yaml:"rigidity_tolerance" validate:"gte=0,lt=1"`

	// Parallelism bounds concurrent exclusion retries; 0 means GOMAXPROCS.
	Parallelism int `yaml:"parallelism" validate:"gte=0"`

	// LogLevel, when set, gives the solver its own stderr text logger at
	// that level instead of slog.Default().
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig mirrors the defaults New applies.
func DefaultConfig() Config {
	return Config{
		MaxIterations:     DefaultMaxIterations,
		Epsilon:           DefaultEpsilon,
		RigidityTolerance: DefaultRigidityTolerance,
	}
}

// LoadConfig builds a Config from defaults, then the YAML file at path (if
// path is non-empty and the file exists), then SKETCHSOLVE_* environment
// variables, and validates the result. Every failure wraps ErrInvalidConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// no file: keep defaults
		case err != nil:
			return cfg, fmt.Errorf("%w: read %s: %v", ErrInvalidConfig, path, err)
		default:
			if err := decodeConfig(data, &cfg); err != nil {
				return cfg, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// decodeConfig rejects unknown keys so a misspelt option is not silently
// ignored. An empty document leaves cfg unchanged.
func decodeConfig(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvMaxIterations); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvMaxIterations, err)
		}
		cfg.MaxIterations = n
	}
	if v := os.Getenv(EnvEpsilon); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvEpsilon, err)
		}
		cfg.Epsilon = f
	}
	if v := os.Getenv(EnvRigidityTolerance); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvRigidityTolerance, err)
		}
		cfg.RigidityTolerance = f
	}
	if v := os.Getenv(EnvParallelism); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvParallelism, err)
		}
		cfg.Parallelism = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	return nil
}

// Validate checks the struct tags.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Options converts c into solver options. Call Validate first: Options
// panics on values the option constructors reject and on a LogLevel slog
// cannot parse.
func (c Config) Options() []Option {
	opts := []Option{
		WithMaxIterations(c.MaxIterations),
		WithEpsilon(c.Epsilon),
		WithRigidityTolerance(c.RigidityTolerance),
	}
	if c.Parallelism > 0 {
		opts = append(opts, WithParallelism(c.Parallelism))
	}
	if c.LogLevel != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
			panic(fmt.Sprintf("solver: Config.Options: %v", err))
		}
		opts = append(opts, WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))))
	}

	return opts
}
