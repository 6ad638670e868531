package memstore //nolint:testpackage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flixgraph/flixgraph"
)

func seed(t *testing.T) *Store {
	t.Helper()

	s := New()

	require.NoError(t, s.AddTitle(flixgraph.Title{
		Name:        "The Irish Job",
		ReleaseYear: 2019,
		Rating:      "R",
		Duration:    "120 min",
		ContentType: flixgraph.ContentTypeMovie,
	}))
	require.NoError(t, s.AddTitle(flixgraph.Title{
		Name:        "Crown Affair",
		ReleaseYear: 2021,
		Rating:      "TV-MA",
		Duration:    "3 Seasons",
		ContentType: flixgraph.ContentTypeTVShow,
	}))
	require.NoError(t, s.AddTitle(flixgraph.Title{
		Name:        "Silent Forest",
		ReleaseYear: 2019,
		ContentType: flixgraph.ContentTypeMovie,
	}))

	require.NoError(t, s.Relate("The Irish Job", flixgraph.RelHasGenre, "Crime", "Drama"))
	require.NoError(t, s.Relate("The Irish Job", flixgraph.RelActedIn, "Ray Quinn", "Mae Ling"))
	require.NoError(t, s.Relate("The Irish Job", flixgraph.RelDirectedBy, "Iris Fontaine"))
	require.NoError(t, s.Relate("The Irish Job", flixgraph.RelProducedIn, "Ireland"))

	require.NoError(t, s.Relate("Crown Affair", flixgraph.RelHasGenre, "Drama"))
	require.NoError(t, s.Relate("Crown Affair", flixgraph.RelActedIn, "Mae Ling"))
	require.NoError(t, s.Relate("Crown Affair", flixgraph.RelDirectedBy, "Iris Fontaine"))

	require.NoError(t, s.Relate("Silent Forest", flixgraph.RelHasGenre, "Documentary"))

	return s
}

func TestAddTitle_Validation(t *testing.T) {
	t.Parallel()

	s := New()

	err := s.AddTitle(flixgraph.Title{Name: "  "})
	assert.True(t, errors.Is(err, flixgraph.ErrInvalidInput), "got %v", err)

	require.NoError(t, s.AddTitle(flixgraph.Title{Name: "Once"}))

	err = s.AddTitle(flixgraph.Title{Name: "Once"})
	assert.True(t, errors.Is(err, ErrDuplicateTitle), "got %v", err)
}

func TestRelate_RequiresExistingTitle(t *testing.T) {
	t.Parallel()

	s := New()

	err := s.Relate("Ghost", flixgraph.RelHasGenre, "Drama")
	assert.True(t, errors.Is(err, flixgraph.ErrNotFound), "got %v", err)
}

func TestRelate_RejectsUnknownRelation(t *testing.T) {
	t.Parallel()

	s := New()
	require.NoError(t, s.AddTitle(flixgraph.Title{Name: "Known"}))

	err := s.Relate("Known", flixgraph.Relation("FRIENDS_WITH"), "Other")
	assert.True(t, errors.Is(err, flixgraph.ErrUnknownRelation), "got %v", err)
}

func TestRelate_DuplicateEdgesAreIdempotent(t *testing.T) {
	t.Parallel()

	s := New()
	require.NoError(t, s.AddTitle(flixgraph.Title{Name: "A"}))
	require.NoError(t, s.AddTitle(flixgraph.Title{Name: "B"}))

	require.NoError(t, s.Relate("A", flixgraph.RelHasGenre, "Drama"))
	require.NoError(t, s.Relate("A", flixgraph.RelHasGenre, "Drama"))
	require.NoError(t, s.Relate("B", flixgraph.RelHasGenre, "Drama", "Drama"))

	overlaps, err := s.GenreOverlaps(context.Background(), "A")
	require.NoError(t, err)
	require.Len(t, overlaps, 1)
	assert.Equal(t, 1, overlaps[0].Genres, "duplicate edges must not inflate counts")
}

func TestTitleExists(t *testing.T) {
	t.Parallel()

	s := seed(t)

	exists, err := s.TitleExists(context.Background(), "The Irish Job")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.TitleExists(context.Background(), "Nope")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNeighborsByRelation(t *testing.T) {
	t.Parallel()

	s := seed(t)
	ctx := context.Background()

	actors, err := s.NeighborsByRelation(ctx, "The Irish Job", flixgraph.RelActedIn)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mae Ling", "Ray Quinn"}, actors, "sorted ascending")

	countries, err := s.NeighborsByRelation(ctx, "Crown Affair", flixgraph.RelProducedIn)
	require.NoError(t, err)
	assert.Empty(t, countries)

	unknown, err := s.NeighborsByRelation(ctx, "Nope", flixgraph.RelHasGenre)
	require.NoError(t, err)
	assert.Empty(t, unknown, "unknown title is empty, not an error")

	_, err = s.NeighborsByRelation(ctx, "The Irish Job", flixgraph.Relation("BAD"))
	assert.True(t, errors.Is(err, flixgraph.ErrUnknownRelation), "got %v", err)
}

func TestGenreOverlaps(t *testing.T) {
	t.Parallel()

	s := seed(t)

	overlaps, err := s.GenreOverlaps(context.Background(), "The Irish Job")
	require.NoError(t, err)
	require.Len(t, overlaps, 1, "only genre-sharing titles are candidates")

	assert.Equal(t, "Crown Affair", overlaps[0].Title)
	assert.Equal(t, 1, overlaps[0].Genres)
	assert.Equal(t, 1, overlaps[0].Actors)
	assert.Equal(t, 1, overlaps[0].Directors)
}

func TestGenreOverlaps_ExcludesSource(t *testing.T) {
	t.Parallel()

	s := seed(t)

	overlaps, err := s.GenreOverlaps(context.Background(), "Crown Affair")
	require.NoError(t, err)

	for _, overlap := range overlaps {
		assert.NotEqual(t, "Crown Affair", overlap.Title)
	}
}

func TestGenreOverlaps_UnknownTitle(t *testing.T) {
	t.Parallel()

	s := seed(t)

	overlaps, err := s.GenreOverlaps(context.Background(), "Nope")
	require.NoError(t, err)
	assert.Empty(t, overlaps)
}

func TestTitleDetails(t *testing.T) {
	t.Parallel()

	s := seed(t)

	details, err := s.TitleDetails(context.Background(), "The Irish Job")
	require.NoError(t, err)

	assert.Equal(t, "The Irish Job", details.Name)
	assert.Equal(t, 2019, details.ReleaseYear)
	assert.Equal(t, flixgraph.ContentTypeMovie, details.ContentType)
	assert.Equal(t, []string{"Crime", "Drama"}, details.Genres)
	assert.Equal(t, []string{"Mae Ling", "Ray Quinn"}, details.Actors)
	assert.Equal(t, []string{"Iris Fontaine"}, details.Directors)
	assert.Equal(t, []string{"Ireland"}, details.Countries)

	_, err = s.TitleDetails(context.Background(), "Nope")
	assert.True(t, errors.Is(err, flixgraph.ErrNotFound), "got %v", err)
}

func TestExpiredContextMapsToTimeout(t *testing.T) {
	t.Parallel()

	s := seed(t)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := s.TitleExists(ctx, "The Irish Job")
	assert.True(t, errors.Is(err, flixgraph.ErrTimeout), "got %v", err)

	_, err = s.GenreOverlaps(ctx, "The Irish Job")
	assert.True(t, errors.Is(err, flixgraph.ErrTimeout), "got %v", err)
}
