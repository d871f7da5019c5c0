// Package config loads the analyzer's runtime configuration: integer width,
// diagnostic severity policy, and color/error-budget knobs for the CLI,
// read from an optional `.semcrc.yaml` and overridable by command-line
// flags.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds the analyzer's tunables. The zero value is not Default: it
// has IntWidth 0 and Color off.
type Config struct {
	// IntWidth is the bit width assumed for pointer/array-index arithmetic
	// (e.g. when no explicit integer type is given). Default 64.
	IntWidth int `yaml:"int_width"`

	// WarningsAsErrors makes Warning diagnostics count toward the MaxErrors
	// budget checked by PassContext.HasCriticalErrors.
	WarningsAsErrors bool `yaml:"warnings_as_errors"`

	// Color enables ANSI caret-diagram coloring in diag.Sink.Format.
	Color bool `yaml:"color"`

	// MaxErrors aborts the pipeline once this many diagnostics have been
	// reported; 0 means unbounded.
	MaxErrors int `yaml:"max_errors"`
}

// Default returns the configuration used when no file and no flags are
// given.
func Default() *Config {
	return &Config{IntWidth: 64, Color: true}
}

// Load reads and parses a `.semcrc.yaml`-shaped file at path, starting from
// Default so omitted fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional behaves like Load, except a missing file yields Default
// rather than an error, since the config file is optional.
func LoadOptional(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// FlagOverrides carries the CLI flags that take precedence over the file
// (flags > file > default); a nil pointer means "flag not set".
type FlagOverrides struct {
	WarningsAsErrors *bool
	Color *bool
	MaxErrors *int
}

// Apply layers o onto cfg in place, overriding only the fields actually set.
func (o FlagOverrides) Apply(cfg *Config) {
	if o.WarningsAsErrors != nil {
		cfg.WarningsAsErrors = *o.WarningsAsErrors
	}
	if o.Color != nil {
		cfg.Color = *o.Color
	}
	if o.MaxErrors != nil {
		cfg.MaxErrors = *o.MaxErrors
	}
}
