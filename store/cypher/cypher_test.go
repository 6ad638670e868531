package cypher //nolint:testpackage

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flixgraph/flixgraph"
)

func TestNeighborQueries_CoverAllRelations(t *testing.T) {
	t.Parallel()

	relations := []flixgraph.Relation{
		flixgraph.RelActedIn,
		flixgraph.RelDirectedBy,
		flixgraph.RelHasGenre,
		flixgraph.RelProducedIn,
	}

	for _, rel := range relations {
		query, ok := neighborQueries[rel]
		require.True(t, ok, "missing query for %s", rel)
		assert.Contains(t, query, "$title", "query for %s must be parameterized", rel)
	}
}

func TestNeighborsByRelation_UnknownRelation(t *testing.T) {
	t.Parallel()

	s := &Store{}

	_, err := s.NeighborsByRelation(context.Background(), "Anything", flixgraph.Relation("FRIENDS_WITH"))
	assert.True(t, errors.Is(err, flixgraph.ErrUnknownRelation), "got %v", err)
}

func TestMapError(t *testing.T) {
	t.Parallel()

	deadline := fmt.Errorf("run: %w", context.DeadlineExceeded)
	assert.True(t, errors.Is(mapError(deadline), flixgraph.ErrTimeout))

	plain := errors.New("syntax error")
	mapped := mapError(plain)
	assert.False(t, errors.Is(mapped, flixgraph.ErrTimeout))
	assert.False(t, errors.Is(mapped, flixgraph.ErrUnavailable))
	assert.True(t, errors.Is(mapped, plain), "original error must stay unwrappable")
}

func TestRecordHelpers(t *testing.T) {
	t.Parallel()

	record := &neo4j.Record{
		Keys: []string{"title", "year", "exists", "genres", "missingList"},
		Values: []any{
			"Dark Waters",
			int64(2019),
			true,
			[]any{"Thriller", "Drama"},
			nil,
		},
	}

	title, ok := recordString(record, "title")
	assert.True(t, ok)
	assert.Equal(t, "Dark Waters", title)

	_, ok = recordString(record, "absent")
	assert.False(t, ok)

	assert.Equal(t, 2019, recordInt(record, "year"))
	assert.Equal(t, 0, recordInt(record, "absent"))

	exists, ok := recordBool(record, "exists")
	assert.True(t, ok)
	assert.True(t, exists)

	assert.Equal(t, []string{"Drama", "Thriller"}, recordStrings(record, "genres"), "lists come back sorted")
	assert.Equal(t, []string{}, recordStrings(record, "missingList"))
}
