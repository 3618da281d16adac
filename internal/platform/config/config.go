// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. The game and language
catalog lives next to it in catalog.go.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to asset sources and stores via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/mhinfo/internal/platform/constants"
	"github.com/taibuivan/mhinfo/internal/platform/validate"
)

// # Configuration Schema

// Config holds all runtime configuration for the mhinfo browser.
type Config struct {

	// Runtime settings
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"DEBUG"       envDefault:"false"`

	// Asset sources. AssetsURL wins over AssetsDir; with neither set the
	// bundled sample assets are used.
	AssetsDir    string        `env:"ASSETS_DIR"`
	AssetsURL    string        `env:"ASSETS_URL"`
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"10s"`

	// CatalogPath overrides the embedded game/language catalog (YAML).
	CatalogPath string `env:"CATALOG_PATH"`

	// SettingsPath overrides the location of the persisted settings blob.
	SettingsPath string `env:"SETTINGS_PATH"`

	// WideFolding switches name search from the fixed accent table to full
	// Unicode mark removal.
	WideFolding bool `env:"WIDE_FOLDING" envDefault:"false"`
}

// # Configuration Loading

// EnvPrefix is prepended to every variable name in [Config].
const EnvPrefix = "MHINFO_"

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	return LoadFrom(nil)
}

// LoadFrom parses the given environment map instead of the process
// environment. A nil map means the process environment.
func LoadFrom(environment map[string]string) (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	options := env.Options{Prefix: EnvPrefix}
	if environment != nil {
		options.Environment = environment
	}

	if err := env.ParseWithOptions(cfg, options); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = constants.DefaultFetchTimeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the parsed values that the environment parser cannot.
func (c *Config) Validate() error {
	return (&validate.Validator{}).
		OneOf(EnvPrefix+"ENVIRONMENT", c.Environment, "development", "test", "production").
		Err()
}

// IsDevelopment reports whether the browser is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the browser is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
