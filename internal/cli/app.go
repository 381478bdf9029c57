// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// app.go - Shared bootstrap for conv commands: configuration, settings
// store, unit registry, parser, engine and formatters.
package cli

import (
	"os"
	"time"

	"github.com/convtool/conv/internal/config"
	"github.com/convtool/conv/internal/convert"
	"github.com/convtool/conv/internal/currency"
	"github.com/convtool/conv/internal/defaults"
	"github.com/convtool/conv/internal/format"
	"github.com/convtool/conv/internal/settings"
	"github.com/convtool/conv/internal/units"
)

// app wires the full pipeline for one invocation. Everything is built once
// at startup and used sequentially; nothing here is safe for concurrent use
// and nothing needs to be.
type app struct {
	cfg      *config.Config
	db       *settings.DB
	store    *defaults.Store
	registry *units.Registry
	parser   *convert.Parser
	engine   *convert.Engine
}

// newApp builds the pipeline. Startup failures (bad config, malformed unit
// definitions, unreadable settings store) come back as *ConfigError; they
// are fatal, unlike per-query errors.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, &ConfigError{Stage: "config", Err: err}
	}

	registry := units.New()

	// User-supplied unit definitions are optional; a malformed file is a
	// startup failure, not something to limp past.
	if path := cfg.Units.CustomDefinitions; path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := registry.LoadDefinitionsFile(path); err != nil {
				return nil, &ConfigError{Stage: "units", Err: err}
			}
		}
	}

	// Currencies are only available when a rates cache exists; fetching is
	// the updater's job, not the query path's. Stale rates are still usable,
	// but the user gets told.
	cache := currency.NewCache(cfg.Currency.CachePath)
	cached, err := cache.Load()
	if err != nil {
		warnf("%v", err)
	} else if cached != nil {
		maxAge := time.Duration(cfg.Currency.CacheMaxAgeHours) * time.Hour
		if cached.Expired(time.Now(), maxAge) {
			warnf("exchange rates are over %dh old; refresh %s",
				cfg.Currency.CacheMaxAgeHours, cfg.Currency.CachePath)
		}
		if err := currency.RegisterRates(registry, cached.Rates); err != nil {
			return nil, &ConfigError{Stage: "currency", Err: err}
		}
	}

	db, err := settings.Open(cfg.SettingsPath)
	if err != nil {
		return nil, &ConfigError{Stage: "settings", Err: err}
	}

	store, err := defaults.Open(db)
	if err != nil {
		db.Close()
		return nil, &ConfigError{Stage: "settings", Err: err}
	}

	return &app{
		cfg:      cfg,
		db:       db,
		store:    store,
		registry: registry,
		parser:   convert.NewParser(registry, cfg.DecimalSeparator, cfg.ThousandsSeparator),
		engine:   convert.NewEngine(registry, store),
	}, nil
}

func (a *app) close() {
	a.db.Close()
}

// formatterFor picks result formatting per conversion: currency amounts get
// their own decimal-place floor.
func (a *app) formatterFor(c convert.Conversion) *format.Formatter {
	places := a.cfg.DecimalPlaces
	if c.IsCurrency() {
		places = a.cfg.Currency.DecimalPlaces
	}
	return format.New(places, a.cfg.DecimalSeparator, a.cfg.ThousandsSeparator, a.cfg.DynamicDecimals)
}
