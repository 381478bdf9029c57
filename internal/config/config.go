// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for
// conv.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.conv/config.toml
//   - ~/.conv/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete conv configuration.
type Config struct {
	// DecimalPlaces is the minimum number of fractional digits in results.
	DecimalPlaces int `toml:"decimal_places" json:"decimal_places"`
	// DecimalSeparator is the decimal character in queries and results.
	DecimalSeparator string `toml:"decimal_separator" json:"decimal_separator"`
	// ThousandsSeparator is the grouping character; empty disables grouping.
	ThousandsSeparator string `toml:"thousands_separator" json:"thousands_separator"`
	// DynamicDecimals expands precision for very small results.
	DynamicDecimals bool `toml:"dynamic_decimals" json:"dynamic_decimals"`
	// SettingsPath is the SQLite settings database location.
	SettingsPath string `toml:"settings_path" json:"settings_path"`

	// Units configuration
	Units UnitsConfig `toml:"units" json:"units"`

	// Currency configuration
	Currency CurrencyConfig `toml:"currency" json:"currency"`
}

// UnitsConfig contains unit registry configuration.
type UnitsConfig struct {
	// CustomDefinitions is an optional definitions file loaded at startup.
	CustomDefinitions string `toml:"custom_definitions" json:"custom_definitions"`
}

// CurrencyConfig contains currency handling configuration.
type CurrencyConfig struct {
	// DecimalPlaces overrides the global floor for currency results.
	DecimalPlaces int `toml:"decimal_places" json:"decimal_places"`
	// CachePath is where fetched exchange rates are cached.
	CachePath string `toml:"cache_path" json:"cache_path"`
	// CacheMaxAgeHours is how long cached rates stay fresh.
	CacheMaxAgeHours int `toml:"cache_max_age_hours" json:"cache_max_age_hours"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	dir, err := Dir()
	if err != nil {
		dir = "."
	}
	return &Config{
		DecimalPlaces:      2,
		DecimalSeparator:   ".",
		ThousandsSeparator: "",
		DynamicDecimals:    true,
		SettingsPath:       filepath.Join(dir, "settings.db"),
		Units: UnitsConfig{
			CustomDefinitions: filepath.Join(dir, "units.txt"),
		},
		Currency: CurrencyConfig{
			DecimalPlaces:    2,
			CachePath:        filepath.Join(dir, "rates.json"),
			CacheMaxAgeHours: 12,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// Dir returns the conv configuration directory path.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".conv"), nil
}

// PathTOML returns the path to the TOML config file.
func PathTOML() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// PathJSON returns the path to the JSON config file.
func PathJSON() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()

	tomlPath, err := PathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			return loadPath(cfg, tomlPath)
		}
	}

	jsonPath, err := PathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			return loadPath(cfg, jsonPath)
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file path with full
// validation. Values absent from the file keep their defaults.
func LoadFromPath(path string) (*Config, error) {
	return loadPath(Default(), path)
}

func loadPath(cfg *Config, path string) (*Config, error) {
	if strings.HasSuffix(path, ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read JSON config: %w", err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode JSON config: %w", err)
		}
	} else {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode TOML config: %w", err)
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := PathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
func SaveTOML(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# conv configuration file")
	fmt.Fprintln(file, "")

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.DecimalPlaces < 0 {
		errs = append(errs, ValidationError{
			Field:   "decimal_places",
			Message: "must be non-negative",
		})
	}
	if c.Currency.DecimalPlaces < 0 {
		errs = append(errs, ValidationError{
			Field:   "currency.decimal_places",
			Message: "must be non-negative",
		})
	}
	if c.Currency.CacheMaxAgeHours <= 0 {
		errs = append(errs, ValidationError{
			Field:   "currency.cache_max_age_hours",
			Message: "must be positive",
		})
	}

	if utf8.RuneCountInString(c.DecimalSeparator) != 1 {
		errs = append(errs, ValidationError{
			Field:   "decimal_separator",
			Message: fmt.Sprintf("must be a single character, got %q", c.DecimalSeparator),
		})
	}
	if c.ThousandsSeparator != "" && utf8.RuneCountInString(c.ThousandsSeparator) != 1 {
		errs = append(errs, ValidationError{
			Field:   "thousands_separator",
			Message: fmt.Sprintf("must be empty or a single character, got %q", c.ThousandsSeparator),
		})
	}
	if c.ThousandsSeparator != "" && c.ThousandsSeparator == c.DecimalSeparator {
		errs = append(errs, ValidationError{
			Field:   "thousands_separator",
			Message: "must differ from decimal_separator",
		})
	}
	if strings.ContainsAny(c.DecimalSeparator, "0123456789+-") {
		errs = append(errs, ValidationError{
			Field:   "decimal_separator",
			Message: "must not be a digit or sign character",
		})
	}
	if strings.ContainsAny(c.ThousandsSeparator, "0123456789+-") {
		errs = append(errs, ValidationError{
			Field:   "thousands_separator",
			Message: "must not be a digit or sign character",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - CONV_DECIMAL_PLACES: overrides decimal_places
//   - CONV_DECIMAL_SEPARATOR: overrides decimal_separator
//   - CONV_THOUSANDS_SEPARATOR: overrides thousands_separator
//   - CONV_DYNAMIC_DECIMALS: "1"/"true" or "0"/"false"
//   - CONV_SETTINGS_PATH: overrides settings_path
//   - CONV_UNIT_DEFINITIONS: overrides units.custom_definitions
//   - CONV_CURRENCY_CACHE: overrides currency.cache_path
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("CONV_DECIMAL_PLACES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.DecimalPlaces = n
		}
	}
	if v := os.Getenv("CONV_DECIMAL_SEPARATOR"); v != "" {
		c.DecimalSeparator = v
	}
	if v, ok := os.LookupEnv("CONV_THOUSANDS_SEPARATOR"); ok {
		c.ThousandsSeparator = v
	}
	if v := os.Getenv("CONV_DYNAMIC_DECIMALS"); v != "" {
		c.DynamicDecimals = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("CONV_SETTINGS_PATH"); v != "" {
		c.SettingsPath = v
	}
	if v := os.Getenv("CONV_UNIT_DEFINITIONS"); v != "" {
		c.Units.CustomDefinitions = v
	}
	if v := os.Getenv("CONV_CURRENCY_CACHE"); v != "" {
		c.Currency.CachePath = v
	}
}
