// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/convtool/conv/internal/currency"
	"github.com/stretchr/testify/require"
)

// tempHome points the config directory at a throwaway home so newApp never
// touches the real ~/.conv.
func tempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".conv")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	return dir
}

func writeRatesCache(t *testing.T, dir string, fetchedAt time.Time) {
	t.Helper()
	data, err := json.Marshal(currency.CachedRates{
		FetchedAt: fetchedAt,
		Rates:     map[string]float64{"EUR": 0.92},
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rates.json"), data, 0o600))
}

func TestNewApp_RegistersCachedRates(t *testing.T) {
	dir := tempHome(t)
	writeRatesCache(t, dir, time.Now())

	a, err := newApp()
	require.NoError(t, err)
	defer a.close()

	q, err := a.registry.Quantity(1, "EUR")
	require.NoError(t, err)
	require.Equal(t, "[currency]", q.Dimension)
}

func TestNewApp_StaleRatesStillUsable(t *testing.T) {
	dir := tempHome(t)
	// Far past the default 12h max age; registration must still happen, the
	// staleness is reported on stderr only.
	writeRatesCache(t, dir, time.Now().Add(-30*24*time.Hour))

	a, err := newApp()
	require.NoError(t, err)
	defer a.close()

	require.True(t, a.registry.Defined("eur"))
}

func TestNewApp_NoRatesCacheNoCurrencies(t *testing.T) {
	tempHome(t)

	a, err := newApp()
	require.NoError(t, err)
	defer a.close()

	require.False(t, a.registry.Defined("EUR"))
}
