package cypher_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flixgraph/flixgraph"
	"github.com/flixgraph/flixgraph/store/cypher"
)

// integrationStore connects to the Neo4j instance named by
// FLIXGRAPH_NEO4J_URI, or skips the test when unset.
func integrationStore(t *testing.T) *cypher.Store {
	t.Helper()

	uri := os.Getenv("FLIXGRAPH_NEO4J_URI")
	if uri == "" {
		t.Skip("FLIXGRAPH_NEO4J_URI not set, skipping integration test")
	}

	cfg := flixgraph.ConnectionConfig{
		URI:      uri,
		Username: os.Getenv("FLIXGRAPH_NEO4J_USERNAME"),
		Password: os.Getenv("FLIXGRAPH_NEO4J_PASSWORD"),
		Database: os.Getenv("FLIXGRAPH_NEO4J_DATABASE"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	store, err := cypher.New(ctx, cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = store.Close(context.Background())
	})

	return store
}

func TestIntegration_UnknownTitle(t *testing.T) {
	store := integrationStore(t)
	ctx := context.Background()

	const ghost = "flixgraph-integration-test-no-such-title-2a9f"

	exists, err := store.TitleExists(ctx, ghost)
	require.NoError(t, err)
	assert.False(t, exists)

	overlaps, err := store.GenreOverlaps(ctx, ghost)
	require.NoError(t, err)
	assert.Empty(t, overlaps, "unknown title yields empty candidates, not an error")

	neighbors, err := store.NeighborsByRelation(ctx, ghost, flixgraph.RelHasGenre)
	require.NoError(t, err)
	assert.Empty(t, neighbors)

	_, err = store.TitleDetails(ctx, ghost)
	assert.True(t, errors.Is(err, flixgraph.ErrNotFound), "got %v", err)
}

func TestIntegration_ExpiredDeadline(t *testing.T) {
	store := integrationStore(t)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := store.TitleExists(ctx, "anything")
	assert.Error(t, err)
}
