package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NIRMALT04/bunker-locate/internal/config"
)

func TestInitRegistry_Defaults(t *testing.T) {
	reg, err := initRegistry(&config.Config{})
	require.NoError(t, err)

	stats := reg.Stats()
	assert.Greater(t, stats.Companies, 0)
	assert.Greater(t, stats.Places, 0)
}

func TestInitRegistry_MergesYAMLSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	snapshot := `
places:
  - name: Testville
    state: Test State
    latitude: 10.0
    longitude: 78.0
`
	require.NoError(t, os.WriteFile(path, []byte(snapshot), 0o644))

	base, err := initRegistry(&config.Config{})
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Registry.SnapshotPath = path
	reg, err := initRegistry(cfg)
	require.NoError(t, err)

	assert.Equal(t, base.Stats().Places+1, reg.Stats().Places)
	_, ok := lookupRegistry(reg, "Testville")
	assert.True(t, ok)
}

func TestInitRegistry_MissingSnapshot(t *testing.T) {
	cfg := &config.Config{}
	cfg.Registry.SnapshotPath = filepath.Join(t.TempDir(), "nope.yaml")

	_, err := initRegistry(cfg)
	require.Error(t, err)
}

func TestInitValidator_ConfiguredBox(t *testing.T) {
	cfg := &config.Config{}
	cfg.Region = config.RegionConfig{MinLat: 8, MinLng: 76, MaxLat: 14, MaxLng: 81}

	v, err := initValidator(cfg)
	require.NoError(t, err)
	require.NotNil(t, v)
}

func TestInitStore_Disabled(t *testing.T) {
	st, err := initStore(context.Background(), &config.Config{})
	require.NoError(t, err)
	assert.Nil(t, st)
}

func TestInitStore_SQLite(t *testing.T) {
	cfg := &config.Config{}
	cfg.Store.Driver = "sqlite"
	cfg.Store.DatabaseURL = filepath.Join(t.TempDir(), "audit.db")

	st, err := initStore(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, st)
	defer st.Close()

	recs, err := st.Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestInitStore_UnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Store.Driver = "oracle"

	_, err := initStore(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store driver")
}

func TestLookupRegistry_Precedence(t *testing.T) {
	reg, err := initRegistry(&config.Config{})
	require.NoError(t, err)

	// POI tables win over the gazetteer.
	hit, ok := lookupRegistry(reg, "Microsoft")
	require.True(t, ok)
	assert.Equal(t, "company", hit.Table)
	assert.InDelta(t, 12.9716, hit.Latitude, 1e-9)

	hit, ok = lookupRegistry(reg, "Tiruvallur")
	require.True(t, ok)
	assert.Equal(t, "gazetteer", hit.Table)

	_, ok = lookupRegistry(reg, "xyzNotAPlace12345")
	assert.False(t, ok)
}
