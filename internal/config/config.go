// =============================================================================
// Pohoda Analytics - Configuration Module
// =============================================================================
//
// This module loads and validates the application configuration. A single
// YAML file (config.yaml) controls where the Pohoda XML exports are read
// from, where the generated files go, and which export formats run.
//
// Missing input directories are NOT created here: an empty orders or
// invoices directory would silently produce an empty report, so the run
// phase checks for them explicitly and skips the phase with a warning
// instead. Only the output directory is created on load.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Exports toggles the individual output formats. All formats default to
// enabled; the YAML uses explicit booleans so a format can be switched off.
type Exports struct {
	// CSV controls all_orders.csv and the monthly summary CSVs.
	CSV *bool `yaml:"csv"`

	// JS controls the dashboard data files (data.js, items.js and the
	// invoice/sponsoring variants).
	JS *bool `yaml:"js"`

	// XLSX controls the monthly_summary.xlsx workbook.
	XLSX *bool `yaml:"xlsx"`

	// Console controls the summary tables printed after the run.
	Console *bool `yaml:"console"`
}

// Config holds the application configuration loaded from config.yaml.
type Config struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// OrdersDir is the directory holding the Pohoda order XML exports.
	// Default: "./data/orders"
	OrdersDir string `yaml:"orders_dir"`

	// InvoicesDir is the directory holding the Pohoda invoice XML exports.
	// Default: "./data/invoices"
	InvoicesDir string `yaml:"invoices_dir"`

	// OutputDir is the directory where all generated files are placed.
	// It is created on load if it does not exist.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// =========================================================================
	// EXPORT SETTINGS
	// =========================================================================

	// Exports selects which output formats to produce.
	Exports Exports `yaml:"exports"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration file, applies defaults and validates it.
// A missing file is not an error: the defaults describe a complete runnable
// configuration.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
		// Run on defaults.
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.OrdersDir == "" {
		cfg.OrdersDir = "./data/orders"
	}
	if cfg.InvoicesDir == "" {
		cfg.InvoicesDir = "./data/invoices"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	enabled := true
	if cfg.Exports.CSV == nil {
		cfg.Exports.CSV = &enabled
	}
	if cfg.Exports.JS == nil {
		cfg.Exports.JS = &enabled
	}
	if cfg.Exports.XLSX == nil {
		cfg.Exports.XLSX = &enabled
	}
	if cfg.Exports.Console == nil {
		cfg.Exports.Console = &enabled
	}
}

// validate checks the configuration and creates the output directory.
func validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	return nil
}

// =============================================================================
// ACCESSORS
// =============================================================================

// CSVEnabled reports whether the CSV exports run.
func (c *Config) CSVEnabled() bool { return *c.Exports.CSV }

// JSEnabled reports whether the JS data file exports run.
func (c *Config) JSEnabled() bool { return *c.Exports.JS }

// XLSXEnabled reports whether the XLSX workbook export runs.
func (c *Config) XLSXEnabled() bool { return *c.Exports.XLSX }

// ConsoleEnabled reports whether the console report prints.
func (c *Config) ConsoleEnabled() bool { return *c.Exports.Console }
