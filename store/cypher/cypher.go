// Package cypher provides the Neo4j-backed flixgraph.Store. Every call
// acquires its own read session and releases it before returning, including
// on error paths, so concurrent requests never share session state.
package cypher

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/flixgraph/flixgraph"
)

// Store implements flixgraph.Store against a Neo4j database.
type Store struct {
	driver neo4j.DriverWithContext
	db     string
	logger *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a Store and verifies connectivity. A failed verification
// closes the driver and returns flixgraph.ErrUnavailable.
func New(ctx context.Context, cfg flixgraph.ConnectionConfig, opts ...Option) (*Store, error) {
	auth := neo4j.NoAuth()
	if cfg.Username != "" {
		auth = neo4j.BasicAuth(cfg.Username, cfg.Password, "")
	}

	driver, err := neo4j.NewDriverWithContext(cfg.URI, auth)
	if err != nil {
		return nil, fmt.Errorf("cypher: create driver: %w", err)
	}

	s := &Store{
		driver: driver,
		db:     cfg.Database,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	err = driver.VerifyConnectivity(ctx)
	if err != nil {
		_ = driver.Close(ctx)

		return nil, fmt.Errorf("cypher: %w: %s", flixgraph.ErrUnavailable, err)
	}

	s.logger.Debug("connected to Neo4j", zap.String("uri", cfg.URI), zap.String("database", cfg.Database))

	return s, nil
}

// TitleExists reports whether a title with the given name exists.
func (s *Store) TitleExists(ctx context.Context, title string) (bool, error) {
	records, err := s.run(ctx, queryTitleExists, map[string]any{"title": title})
	if err != nil {
		return false, err
	}

	if len(records) == 0 {
		return false, nil
	}

	exists, _ := recordBool(records[0], "exists")

	return exists, nil
}

// NeighborsByRelation returns the sorted names of nodes connected to the
// title through the given relation.
func (s *Store) NeighborsByRelation(ctx context.Context, title string, rel flixgraph.Relation) ([]string, error) {
	query, ok := neighborQueries[rel]
	if !ok {
		return nil, fmt.Errorf("cypher: %w: %q", flixgraph.ErrUnknownRelation, string(rel))
	}

	records, err := s.run(ctx, query, map[string]any{"title": title})
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(records))

	for _, record := range records {
		name, ok := recordString(record, "name")
		if ok {
			names = append(names, name)
		}
	}

	return names, nil
}

// GenreOverlaps returns overlap counts for every title sharing at least one
// genre with the source, excluding the source itself.
func (s *Store) GenreOverlaps(ctx context.Context, title string) ([]flixgraph.Overlap, error) {
	records, err := s.run(ctx, queryGenreOverlaps, map[string]any{"title": title})
	if err != nil {
		return nil, err
	}

	overlaps := make([]flixgraph.Overlap, 0, len(records))

	for _, record := range records {
		name, ok := recordString(record, "title")
		if !ok {
			continue
		}

		overlaps = append(overlaps, flixgraph.Overlap{
			Title:     name,
			Genres:    recordInt(record, "genreMatches"),
			Actors:    recordInt(record, "actorMatches"),
			Directors: recordInt(record, "directorMatches"),
		})
	}

	s.logger.Debug("genre overlaps",
		zap.String("title", title),
		zap.Int("candidates", len(overlaps)))

	return overlaps, nil
}

// TitleDetails returns the title's attributes and sorted related node names.
func (s *Store) TitleDetails(ctx context.Context, title string) (*flixgraph.TitleDetails, error) {
	records, err := s.run(ctx, queryTitleDetails, map[string]any{"title": title})
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("cypher: %q: %w", title, flixgraph.ErrNotFound)
	}

	record := records[0]

	name, _ := recordString(record, "title")
	rating, _ := recordString(record, "rating")
	duration, _ := recordString(record, "duration")
	contentType, _ := recordString(record, "content_type")
	description, _ := recordString(record, "description")

	return &flixgraph.TitleDetails{
		Title: flixgraph.Title{
			Name:        name,
			ReleaseYear: recordInt(record, "release_year"),
			Rating:      rating,
			Duration:    duration,
			ContentType: flixgraph.ContentType(contentType),
			Description: description,
		},
		Genres:    recordStrings(record, "genres"),
		Actors:    recordStrings(record, "actors"),
		Directors: recordStrings(record, "directors"),
		Countries: recordStrings(record, "countries"),
	}, nil
}

// Close releases the driver and its connection pool.
func (s *Store) Close(ctx context.Context) error {
	err := s.driver.Close(ctx)
	if err != nil {
		return fmt.Errorf("cypher: close driver: %w", err)
	}

	return nil
}

// run executes one parameterized query in a fresh read session.
func (s *Store) run(ctx context.Context, query string, params map[string]any) ([]*neo4j.Record, error) {
	sessionCfg := neo4j.SessionConfig{
		AccessMode: neo4j.AccessModeRead,
	}
	if s.db != "" {
		sessionCfg.DatabaseName = s.db
	}

	session := s.driver.NewSession(ctx, sessionCfg)

	defer func() {
		_ = session.Close(ctx)
	}()

	result, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, mapError(err)
	}

	records, err := result.Collect(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	return records, nil
}

// mapError translates driver failures into the shared error taxonomy.
func mapError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("cypher: %w: %s", flixgraph.ErrTimeout, err)
	case neo4j.IsConnectivityError(err):
		return fmt.Errorf("cypher: %w: %s", flixgraph.ErrUnavailable, err)
	default:
		return fmt.Errorf("cypher: query failed: %w", err)
	}
}

// Ensure Store implements the contract.
var _ flixgraph.Store = (*Store)(nil)
