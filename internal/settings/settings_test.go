// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package settings

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDB_MissingKey(t *testing.T) {
	db := openTestDB(t)

	var out map[string][]string
	found, err := db.Get("default_units", &out)
	require.NoError(t, err)
	require.False(t, found)
}

func TestDB_RoundTrip(t *testing.T) {
	db := openTestDB(t)

	in := map[string][]string{
		"[length]": {"mile", "yard"},
		"[mass]":   {"kilogram"},
	}
	require.NoError(t, db.Set("default_units", in))

	var out map[string][]string
	found, err := db.Get("default_units", &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, in, out)
}

func TestDB_SetReplaces(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Set("k", "first"))
	require.NoError(t, db.Set("k", "second"))

	var out string
	found, err := db.Get("k", &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "second", out)
}

func TestDB_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Set("k", 42))
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	var out int
	found, err := db.Get("k", &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 42, out)
}
