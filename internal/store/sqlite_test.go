package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "resolutions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestSQLiteStore_SaveAndRecent(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	saved, err := s.SaveResolution(ctx, Record{
		Query:        "Microsoft campus in Bangalore",
		Status:       StatusResolved,
		DisplayName:  "Microsoft",
		Latitude:     12.9716,
		Longitude:    77.5946,
		Confidence:   0.90,
		Tier:         "high",
		Source:       "poi_company",
		WithinRegion: true,
		Duration:     42 * time.Millisecond,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	recs, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	got := recs[0]
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "Microsoft campus in Bangalore", got.Query)
	assert.Equal(t, StatusResolved, got.Status)
	assert.Equal(t, "Microsoft", got.DisplayName)
	assert.InDelta(t, 12.9716, got.Latitude, 1e-9)
	assert.InDelta(t, 77.5946, got.Longitude, 1e-9)
	assert.InDelta(t, 0.90, got.Confidence, 1e-9)
	assert.Equal(t, "high", got.Tier)
	assert.Equal(t, "poi_company", got.Source)
	assert.True(t, got.WithinRegion)
	assert.Equal(t, 42*time.Millisecond, got.Duration)
}

func TestSQLiteStore_SaveFailureRecord(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	_, err := s.SaveResolution(ctx, Record{
		Query:    "xyzNotAPlace12345",
		Status:   StatusNotFound,
		Duration: 120 * time.Millisecond,
	})
	require.NoError(t, err)

	recs, err := s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, StatusNotFound, recs[0].Status)
	assert.Empty(t, recs[0].DisplayName)
	assert.Zero(t, recs[0].Latitude)
	assert.False(t, recs[0].WithinRegion)
}

func TestSQLiteStore_RecentOrderAndLimit(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	for _, q := range []string{"first", "second", "third"} {
		_, err := s.SaveResolution(ctx, Record{Query: q, Status: StatusResolved})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond) // distinct created_at values
	}

	recs, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "third", recs[0].Query)
	assert.Equal(t, "second", recs[1].Query)

	// Non-positive limit falls back to the default.
	recs, err = s.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, recs, 3)
}

func TestSQLiteStore_RecentEmpty(t *testing.T) {
	s := newTestSQLiteStore(t)

	recs, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestSQLiteStore_MigrateIdempotent(t *testing.T) {
	s := newTestSQLiteStore(t)
	require.NoError(t, s.Migrate(context.Background()))
}
