package memstore //nolint:testpackage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flixgraph/flixgraph"
)

func TestNodeCounts(t *testing.T) {
	t.Parallel()

	s := seed(t)

	counts, err := s.NodeCounts(context.Background())
	require.NoError(t, err)

	byLabel := make(map[string]int)
	for _, c := range counts {
		byLabel[c.Label] = c.Count
	}

	assert.Equal(t, 3, byLabel["Title"])
	assert.Equal(t, 2, byLabel["Actor"])
	assert.Equal(t, 1, byLabel["Director"])
	assert.Equal(t, 3, byLabel["Genre"])
	assert.Equal(t, 1, byLabel["Country"])
}

func TestRelationshipCounts(t *testing.T) {
	t.Parallel()

	s := seed(t)

	counts, err := s.RelationshipCounts(context.Background())
	require.NoError(t, err)

	byType := make(map[string]int)
	for _, c := range counts {
		byType[c.Type] = c.Count
	}

	assert.Equal(t, 4, byType["HAS_GENRE"])
	assert.Equal(t, 3, byType["ACTED_IN"])
	assert.Equal(t, 2, byType["DIRECTED_BY"])
	assert.Equal(t, 1, byType["PRODUCED_IN"])
}

func TestTopActors_OrderAndTruncation(t *testing.T) {
	t.Parallel()

	s := seed(t)

	top, err := s.TopActors(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, flixgraph.NameCount{Name: "Mae Ling", Titles: 2}, top[0])

	all, err := s.TopActors(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Ray Quinn", all[1].Name)
}

func TestGenreDistribution(t *testing.T) {
	t.Parallel()

	s := seed(t)

	dist, err := s.GenreDistribution(context.Background())
	require.NoError(t, err)

	require.Len(t, dist, 3)
	assert.Equal(t, flixgraph.NameCount{Name: "Drama", Titles: 2}, dist[0])
	// Equal counts fall back to name order.
	assert.Equal(t, "Crime", dist[1].Name)
	assert.Equal(t, "Documentary", dist[2].Name)
}

func TestYearDistribution(t *testing.T) {
	t.Parallel()

	s := seed(t)

	dist, err := s.YearDistribution(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []flixgraph.YearCount{
		{Year: 2019, Titles: 2},
		{Year: 2021, Titles: 1},
	}, dist)
}

func TestContentTypeSplit(t *testing.T) {
	t.Parallel()

	s := seed(t)

	split, err := s.ContentTypeSplit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []flixgraph.TypeCount{
		{ContentType: flixgraph.ContentTypeMovie, Titles: 2},
		{ContentType: flixgraph.ContentTypeTVShow, Titles: 1},
	}, split)
}

func TestSearchTitles(t *testing.T) {
	t.Parallel()

	s := seed(t)

	titles, err := s.SearchTitles(context.Background(), "IRISH")
	require.NoError(t, err)
	assert.Equal(t, []string{"The Irish Job"}, titles)

	titles, err = s.SearchTitles(context.Background(), "o")
	require.NoError(t, err)
	assert.Equal(t, []string{"Crown Affair", "Silent Forest", "The Irish Job"}, titles)

	titles, err = s.SearchTitles(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Empty(t, titles)
}
