package recommend //nolint:testpackage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flixgraph/flixgraph"
)

func filterFixture() []Recommendation {
	return []Recommendation{
		{Title: "First", GenreScore: 6.0, ActorScore: 3.0, DirectorScore: 1.5, TotalScore: 10.5},
		{Title: "Second", GenreScore: 4.0, ActorScore: 0, DirectorScore: 1.5, TotalScore: 5.5},
		{Title: "Third", GenreScore: 2.0, ActorScore: 0, DirectorScore: 0, TotalScore: 2.0},
	}
}

func TestFilter_EmptyExpressionKeepsAll(t *testing.T) {
	t.Parallel()

	recs := filterFixture()

	kept, err := Filter(recs, "  ")
	require.NoError(t, err)
	assert.Equal(t, recs, kept)
}

func TestFilter_KeepsMatchesInOrder(t *testing.T) {
	t.Parallel()

	kept, err := Filter(filterFixture(), "total_score >= 5 && genre_score > 0")
	require.NoError(t, err)
	require.Len(t, kept, 2)
	assert.Equal(t, "First", kept[0].Title)
	assert.Equal(t, "Second", kept[1].Title)
}

func TestFilter_TitleField(t *testing.T) {
	t.Parallel()

	kept, err := Filter(filterFixture(), `title startsWith "S"`)
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, "Second", kept[0].Title)
}

func TestFilter_BadExpression(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		expression string
	}{
		{"syntax error", "total_score >>> 1"},
		{"unknown field", "rating > 2"},
		{"not boolean", "total_score + 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Filter(filterFixture(), tt.expression)
			assert.True(t, errors.Is(err, flixgraph.ErrInvalidInput), "got %v", err)
		})
	}
}
