// Package config loads settings of the square root demo.
package config

import (
	"math"
	"os"

	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"

	"github.com/avdva/qfrac/decfmt"
	"github.com/avdva/qfrac/sqrtcmp"
)

const (
	// MaxCapacity is the largest supported text buffer, the buffer size is stored in a byte on the device.
	MaxCapacity = math.MaxUint8
	// DefaultEOL is the line terminator of the device console.
	DefaultEOL = "\r\n"
)

// Error is the error class for configuration errors.
var Error = errs.Class("config")

// Config holds the demo settings.
type Config struct {
	Input    float64         `yaml:"input"`
	Capacity int             `yaml:"capacity"`
	Boundary decfmt.Boundary `yaml:"boundary"`
	EOL      string          `yaml:"eol"`
}

// Default returns the settings of the reference run.
func Default() Config {
	return Config{
		Input:    sqrtcmp.DefaultInput,
		Capacity: decfmt.DefaultCapacity,
		Boundary: decfmt.BoundaryCarry,
		EOL:      DefaultEOL,
	}
}

// Load reads a yaml file at 'path'. Missing keys keep their default values.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, Error.Wrap(err)
	}
	return Parse(data)
}

// Parse parses yaml settings.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, Error.New("parsing failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings.
// Inputs outside [0, 1) are valid, see InRange.
func (c Config) Validate() error {
	if math.IsNaN(c.Input) || math.IsInf(c.Input, 0) {
		return Error.New("input must be a finite number, got %v", c.Input)
	}
	if c.Capacity < 1 || c.Capacity > MaxCapacity {
		return Error.New("capacity must be in [1, %d], got %d", MaxCapacity, c.Capacity)
	}
	return nil
}

// InRange returns true, if the input can be represented as a Q31 fraction without wrapping.
func (c Config) InRange() bool {
	return c.Input >= 0 && c.Input < 1
}
