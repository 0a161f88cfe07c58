package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NIRMALT04/bunker-locate/internal/resolver"
)

func TestReadQueries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queries.txt")
	content := `Microsoft campus in Bangalore

# a comment
Tiruvallur
   Gateway of India
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	queries, err := readQueries(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Microsoft campus in Bangalore",
		"Tiruvallur",
		"Gateway of India",
	}, queries)
}

func TestReadQueries_MissingFile(t *testing.T) {
	_, err := readQueries(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestResolveOne_OfflineStages(t *testing.T) {
	// No providers wired: only the curated registries and gazetteer run.
	engine := resolver.New(nil)

	line := resolveOne(context.Background(), engine, nil, "Microsoft campus in Bangalore")
	require.NotNil(t, line.Result)
	assert.Empty(t, line.Error)
	assert.Equal(t, "Microsoft campus in Bangalore", line.Query)
	assert.InDelta(t, 12.9716, line.Result.Latitude, 1e-9)

	line = resolveOne(context.Background(), engine, nil, "xyzNotAPlace12345")
	require.Nil(t, line.Result)
	assert.NotEmpty(t, line.Error)
	assert.NotEmpty(t, line.Suggestions)
}
