// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package defaults manages a user's preferred destination units per
// dimensionality, persisted through an injected settings store.
package defaults

import (
	"fmt"
	"sort"
)

// settingsKey is the single key under which the whole
// dimensionality -> units mapping lives in the settings store.
const settingsKey = "default_units"

// Settings is the narrow slice of a settings store this package needs.
// Values round-trip through the store as JSON.
type Settings interface {
	// Get unmarshals the value for key into out, reporting whether the key
	// existed.
	Get(key string, out any) (bool, error)
	// Set stores value under key.
	Set(key string, value any) error
}

// Store holds the default destination units for each dimensionality.
// The mapping is loaded once at construction; every mutation rewrites the
// full mapping back to the settings store. Mutations are rare and the data
// is tiny, so there is no batching.
type Store struct {
	settings Settings
	defs     map[string][]string
}

// Open loads the defaults mapping from the settings store. A missing key
// yields an empty store, not an error.
func Open(settings Settings) (*Store, error) {
	defs := make(map[string][]string)
	if _, err := settings.Get(settingsKey, &defs); err != nil {
		return nil, fmt.Errorf("load default units: %w", err)
	}
	return &Store{settings: settings, defs: defs}, nil
}

// Defaults returns the saved units for dimensionality, first-saved first.
// The returned slice is a copy; callers cannot mutate the store through it.
// An unknown dimensionality returns an empty slice.
func (s *Store) Defaults(dimensionality string) []string {
	saved := s.defs[dimensionality]
	out := make([]string, len(saved))
	copy(out, saved)
	return out
}

// Dimensionalities returns every dimensionality with at least one saved
// unit, sorted.
func (s *Store) Dimensionalities() []string {
	out := make([]string, 0, len(s.defs))
	for dim, saved := range s.defs {
		if len(saved) > 0 {
			out = append(out, dim)
		}
	}
	sort.Strings(out)
	return out
}

// IsDefault reports whether unit is saved for dimensionality.
func (s *Store) IsDefault(dimensionality, unit string) bool {
	for _, u := range s.defs[dimensionality] {
		if u == unit {
			return true
		}
	}
	return false
}

// Add appends unit to dimensionality's defaults and persists. Adding a unit
// that is already present is a no-op with no write.
func (s *Store) Add(dimensionality, unit string) error {
	if s.IsDefault(dimensionality, unit) {
		return nil
	}
	s.defs[dimensionality] = append(s.defs[dimensionality], unit)
	return s.persist()
}

// Remove deletes unit from dimensionality's defaults and persists. Removing
// an absent unit is a no-op with no write.
func (s *Store) Remove(dimensionality, unit string) error {
	saved := s.defs[dimensionality]
	for i, u := range saved {
		if u == unit {
			s.defs[dimensionality] = append(saved[:i:i], saved[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

func (s *Store) persist() error {
	if err := s.settings.Set(settingsKey, s.defs); err != nil {
		return fmt.Errorf("save default units: %w", err)
	}
	return nil
}
