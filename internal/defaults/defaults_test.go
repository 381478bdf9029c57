// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package defaults

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// memSettings is an in-memory Settings double that counts writes.
type memSettings struct {
	values map[string]json.RawMessage
	writes int
}

func newMemSettings() *memSettings {
	return &memSettings{values: make(map[string]json.RawMessage)}
}

func (m *memSettings) Get(key string, out any) (bool, error) {
	raw, ok := m.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (m *memSettings) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = raw
	m.writes++
	return nil
}

func TestStore_EmptySettings(t *testing.T) {
	store, err := Open(newMemSettings())
	require.NoError(t, err)

	require.Empty(t, store.Defaults("[length]"))
	require.False(t, store.IsDefault("[length]", "mile"))
}

func TestStore_AddPersistsInOrder(t *testing.T) {
	settings := newMemSettings()
	store, err := Open(settings)
	require.NoError(t, err)

	require.NoError(t, store.Add("[length]", "mile"))
	require.NoError(t, store.Add("[length]", "yard"))
	require.NoError(t, store.Add("[mass]", "kilogram"))

	require.Equal(t, []string{"mile", "yard"}, store.Defaults("[length]"))
	require.Equal(t, []string{"kilogram"}, store.Defaults("[mass]"))
	require.Equal(t, 3, settings.writes)

	// Each mutation writes the whole mapping; a reopened store sees it all.
	reopened, err := Open(settings)
	require.NoError(t, err)
	require.Equal(t, []string{"mile", "yard"}, reopened.Defaults("[length]"))
}

func TestStore_AddIsIdempotent(t *testing.T) {
	settings := newMemSettings()
	store, err := Open(settings)
	require.NoError(t, err)

	require.NoError(t, store.Add("[length]", "mile"))
	require.NoError(t, store.Add("[length]", "mile"))

	require.Equal(t, []string{"mile"}, store.Defaults("[length]"))
	require.Equal(t, 1, settings.writes)
}

func TestStore_Remove(t *testing.T) {
	settings := newMemSettings()
	store, err := Open(settings)
	require.NoError(t, err)

	require.NoError(t, store.Add("[length]", "mile"))
	require.NoError(t, store.Add("[length]", "yard"))
	require.NoError(t, store.Remove("[length]", "mile"))

	require.Equal(t, []string{"yard"}, store.Defaults("[length]"))
	require.False(t, store.IsDefault("[length]", "mile"))

	// Removing an absent unit writes nothing.
	writes := settings.writes
	require.NoError(t, store.Remove("[length]", "furlong"))
	require.Equal(t, writes, settings.writes)
}

func TestStore_DefaultsReturnsCopy(t *testing.T) {
	store, err := Open(newMemSettings())
	require.NoError(t, err)
	require.NoError(t, store.Add("[length]", "mile"))

	got := store.Defaults("[length]")
	got[0] = "clobbered"
	require.Equal(t, []string{"mile"}, store.Defaults("[length]"))
}
