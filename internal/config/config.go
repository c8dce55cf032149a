// Package config loads rendering profiles of the quantityfmt command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/govalues/quantity"
	"github.com/govalues/quantity/internal/logging"
)

// Config is a rendering profile
type Config struct {
	// Format contains the rendering options
	Format FormatConfig `yaml:"format"`

	// Units maps unit identifiers to labels, an empty label hides the unit
	Units map[string]string `yaml:"units"`

	// Logging contains logging configuration
	Logging logging.Config `yaml:"logging"`
}

// FormatConfig contains the rendering options.
// Unset booleans keep their defaults.
type FormatConfig struct {
	// ShowMargin includes the uncertainty margin, true by default
	ShowMargin *bool `yaml:"show_margin"`

	// Rounding is true, false, "auto", "off" or an integer exponent
	Rounding any `yaml:"rounding"`

	// ApplyUnit includes the unit label, true by default
	ApplyUnit *bool `yaml:"apply_unit"`

	// ForceSign prints a sign in front of non-negative amounts
	ForceSign bool `yaml:"force_sign"`

	// Template composes the number ($1) and the unit label ($2)
	Template string `yaml:"template"`

	// DecimalSeparator is "." by default
	DecimalSeparator string `yaml:"decimal_separator"`
}

// Default returns the profile used when no file is given.
func Default() Config {
	return Config{Logging: logging.DefaultConfig()}
}

// Load reads a YAML profile from a file.
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML profile.
// Unknown keys are rejected. An empty document is the default profile.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the rendering options and the logging configuration.
// Errors in rendering options wrap [quantity.ErrInvalidOption].
func (c Config) Validate() error {
	if _, err := c.Options(); err != nil {
		return err
	}
	for unit := range c.Units {
		if unit == "" {
			return fmt.Errorf("%w: empty unit identifier", quantity.ErrInvalidOption)
		}
	}
	return c.Logging.Validate()
}

// Options converts the profile to rendering options.
func (c Config) Options() (quantity.Options, error) {
	opts := quantity.DefaultOptions()
	if c.Format.ShowMargin != nil {
		opts.ShowMargin = *c.Format.ShowMargin
	}
	if c.Format.ApplyUnit != nil {
		opts.ApplyUnit = *c.Format.ApplyUnit
	}
	if c.Format.Rounding != nil {
		r, err := quantity.ParseRounding(c.Format.Rounding)
		if err != nil {
			return quantity.Options{}, fmt.Errorf("format.rounding: %w", err)
		}
		opts.Rounding = r
	}
	opts.ForceSign = c.Format.ForceSign
	opts.Template = c.Format.Template
	return opts, nil
}

// NumberFormatter returns the number formatter of the profile.
func (c Config) NumberFormatter() quantity.NumberFormatter {
	return quantity.DecimalFormatter{Separator: c.Format.DecimalSeparator}
}

// UnitResolver returns the unit resolver of the profile: configured labels
// first, then the built-in vocabulary.
func (c Config) UnitResolver() quantity.UnitResolver {
	if len(c.Units) == 0 {
		return quantity.Vocabulary
	}
	return quantity.UnitLabels{Labels: c.Units, Fallback: quantity.Vocabulary}
}

// Formatter returns a formatter configured by the profile.
// Additional options are applied after the profile options.
func (c Config) Formatter(opts ...quantity.Option) (*quantity.Formatter, error) {
	base, err := c.Options()
	if err != nil {
		return nil, err
	}
	opts = append([]quantity.Option{quantity.WithOptions(base)}, opts...)
	return quantity.NewFormatter(c.NumberFormatter(), c.UnitResolver(), opts...), nil
}
