// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package currency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// CachedRates is the on-disk shape of the rates cache.
type CachedRates struct {
	FetchedAt time.Time          `json:"fetched_at"`
	Rates     map[string]float64 `json:"rates"`
}

// Expired reports whether the cached rates are older than maxAge as of now.
func (c *CachedRates) Expired(now time.Time, maxAge time.Duration) bool {
	return now.Sub(c.FetchedAt) >= maxAge
}

// Cache persists exchange rates between runs so the external source is only
// consulted when the cached copy has aged out.
type Cache struct {
	path string
	now  func() time.Time
}

// NewCache returns a cache stored at path.
func NewCache(path string) *Cache {
	return &Cache{path: path, now: time.Now}
}

// Load reads the cached rates. A missing cache file returns (nil, nil).
func (c *Cache) Load() (*CachedRates, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read rates cache: %w", err)
	}

	var cached CachedRates
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("decode rates cache: %w", err)
	}
	return &cached, nil
}

// Store writes rates to the cache, stamped with the current time.
func (c *Cache) Store(rates map[string]float64) error {
	data, err := json.MarshalIndent(CachedRates{FetchedAt: c.now(), Rates: rates}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode rates cache: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("write rates cache: %w", err)
	}
	return nil
}

// Rates returns exchange rates, preferring a cache entry younger than
// maxAge. On a cache miss the source is consulted and the result cached; if
// the source fails but a stale cache exists, the stale rates are used with a
// note on stderr. Only when both are unavailable does Rates fail.
func (c *Cache) Rates(ctx context.Context, source Source, maxAge time.Duration) (map[string]float64, error) {
	cached, err := c.Load()
	if err != nil {
		// A corrupt cache is replaceable; fall through to the source.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		cached = nil
	}
	if cached != nil && !cached.Expired(c.now(), maxAge) {
		return cached.Rates, nil
	}

	rates, err := source.Rates(ctx)
	if err != nil {
		if cached != nil {
			fmt.Fprintf(os.Stderr, "warning: rates source failed (%v), using stale cache\n", err)
			return cached.Rates, nil
		}
		return nil, fmt.Errorf("fetch exchange rates: %w", err)
	}

	if err := c.Store(rates); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return rates, nil
}
