// Package config loads tripods settings from a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/tripods/gridfile"
	"github.com/katalvlaran/tripods/report"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "tripods.toml"

// Environment variables overriding file values.
const (
	EnvFormat   = "TRIPODS_FORMAT"
	EnvLogLevel = "TRIPODS_LOG_LEVEL"
	EnvMaxRows  = "TRIPODS_MAX_PRINT_ROWS"
	EnvMaxCols  = "TRIPODS_MAX_PRINT_COLS"
)

// ErrInvalid indicates a config value that fails validation.
var ErrInvalid = errors.New("config: invalid value")

// Config represents the settings stored in tripods.toml
type Config struct {
	// Format is the report format: human or json
	Format string `toml:"format"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `toml:"log_level"`

	// MaxPrintRows and MaxPrintCols bound the grid echo before the report
	MaxPrintRows int `toml:"max_print_rows"`
	MaxPrintCols int `toml:"max_print_cols"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Format:       string(report.FormatHuman),
		LogLevel:     "warn",
		MaxPrintRows: gridfile.MaxRows,
		MaxPrintCols: gridfile.MaxCols,
	}
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error when path is DefaultFile.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultFile
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !(errors.Is(err, os.ErrNotExist) && path == DefaultFile) {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("format: %v: %w", err, ErrInvalid)
	}
	if c.MaxPrintRows < 0 || c.MaxPrintCols < 0 {
		return fmt.Errorf("print limits %dx%d: %w", c.MaxPrintRows, c.MaxPrintCols, ErrInvalid)
	}
	return nil
}

// Limits returns the grid echo limits.
func (c *Config) Limits() gridfile.Limits {
	return gridfile.Limits{MaxRows: c.MaxPrintRows, MaxCols: c.MaxPrintCols}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	for env, dst := range map[string]*int{EnvMaxRows: &c.MaxPrintRows, EnvMaxCols: &c.MaxPrintCols} {
		v := os.Getenv(env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", env, v, ErrInvalid)
		}
		*dst = n
	}
	return nil
}
