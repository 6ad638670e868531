// Package flixgraph defines the domain model and graph-store contract for a
// catalog of Netflix titles. The graph holds Title, Actor, Director, Genre,
// and Country nodes; the packages under store/ provide concrete Store
// implementations, and the recommend and analytics packages consume them.
package flixgraph

import (
	"context"
	"fmt"
)

// ContentType distinguishes movies from series.
type ContentType string

// Supported content types.
const (
	ContentTypeMovie  ContentType = "Movie"
	ContentTypeTVShow ContentType = "TV Show"
)

// Relation identifies an edge type in the catalog graph.
type Relation string

// Edge types. Directions follow the ingested schema:
// (Actor)-[:ACTED_IN]->(Title), (Title)-[:DIRECTED_BY]->(Director),
// (Title)-[:HAS_GENRE]->(Genre), (Title)-[:PRODUCED_IN]->(Country).
// All are traversable in both directions.
const (
	RelActedIn    Relation = "ACTED_IN"
	RelDirectedBy Relation = "DIRECTED_BY"
	RelHasGenre   Relation = "HAS_GENRE"
	RelProducedIn Relation = "PRODUCED_IN"
)

// Validate reports whether r is a known edge type.
func (r Relation) Validate() error {
	switch r {
	case RelActedIn, RelDirectedBy, RelHasGenre, RelProducedIn:
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownRelation, string(r))
}

// Title is a single catalog entry. The Name field is the unique identifier
// within the store.
type Title struct {
	Name        string      `yaml:"title"        json:"title"`
	ReleaseYear int         `yaml:"release_year" json:"release_year"`
	Rating      string      `yaml:"rating"       json:"rating"`
	Duration    string      `yaml:"duration"     json:"duration"`
	ContentType ContentType `yaml:"content_type" json:"content_type"`
	Description string      `yaml:"description"  json:"description"`
}

// TitleDetails is a Title together with its related node names, each list
// sorted ascending.
type TitleDetails struct {
	Title

	Genres    []string `json:"genres"`
	Actors    []string `json:"actors"`
	Directors []string `json:"directors"`
	Countries []string `json:"countries"`
}

// Overlap holds the distinct-node overlap counts between a source title and
// one candidate title. Candidates are produced by genre-gated traversal, so
// Genres is always at least 1.
type Overlap struct {
	Title     string
	Genres    int
	Actors    int
	Directors int
}

// Store is the read-only contract the recommendation engine consumes.
// Implementations must issue parameterized queries only (no interpolation of
// caller-supplied values into query text), honor context cancellation and
// deadlines, and never mutate the graph.
type Store interface {
	// TitleExists reports whether a title with the given name exists.
	TitleExists(ctx context.Context, title string) (bool, error)

	// NeighborsByRelation returns the sorted names of nodes connected to the
	// title through the given relation. An unknown title yields an empty
	// slice, not an error.
	NeighborsByRelation(ctx context.Context, title string, rel Relation) ([]string, error)

	// GenreOverlaps returns, for every other title sharing at least one genre
	// with the source, the distinct overlap counts across genres, actors, and
	// directors. The source itself is never included. An unknown title yields
	// an empty slice, not an error.
	GenreOverlaps(ctx context.Context, title string) ([]Overlap, error)

	// TitleDetails returns the title's attributes and related node names.
	// Returns ErrNotFound if the title does not exist.
	TitleDetails(ctx context.Context, title string) (*TitleDetails, error)

	// Close releases any resources held by the store.
	Close(ctx context.Context) error
}
