// Package analytics exposes catalog statistics for dashboard consumers:
// node and relationship totals, top actors and directors, genre, year, and
// content-type distributions, and title search.
package analytics

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/flixgraph/flixgraph"
)

// Source is what a store must provide to back the analytics service. Both
// store/cypher and store/memstore satisfy it.
type Source interface {
	NodeCounts(ctx context.Context) ([]flixgraph.LabelCount, error)
	RelationshipCounts(ctx context.Context) ([]flixgraph.RelationCount, error)
	TopActors(ctx context.Context, n int) ([]flixgraph.NameCount, error)
	TopDirectors(ctx context.Context, n int) ([]flixgraph.NameCount, error)
	GenreDistribution(ctx context.Context) ([]flixgraph.NameCount, error)
	YearDistribution(ctx context.Context) ([]flixgraph.YearCount, error)
	ContentTypeSplit(ctx context.Context) ([]flixgraph.TypeCount, error)
	SearchTitles(ctx context.Context, substring string) ([]string, error)
}

// Overview is the home-page summary: node totals by label and edge totals
// by relationship type.
type Overview struct {
	Nodes         []flixgraph.LabelCount    `json:"nodes"`
	Relationships []flixgraph.RelationCount `json:"relationships"`
}

// Service reads catalog statistics from a Source.
type Service struct {
	source Source
	logger *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New creates a Service over the given source.
func New(source Source, opts ...Option) *Service {
	s := &Service{
		source: source,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Overview returns node and relationship totals.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	nodes, err := s.source.NodeCounts(ctx)
	if err != nil {
		return nil, err
	}

	relationships, err := s.source.RelationshipCounts(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("catalog overview",
		zap.Int("labels", len(nodes)),
		zap.Int("relationshipTypes", len(relationships)))

	return &Overview{Nodes: nodes, Relationships: relationships}, nil
}

// TopActors returns the n actors appearing in the most distinct titles.
func (s *Service) TopActors(ctx context.Context, n int) ([]flixgraph.NameCount, error) {
	err := validateLimit(n)
	if err != nil {
		return nil, err
	}

	return s.source.TopActors(ctx, n)
}

// TopDirectors returns the n directors credited on the most distinct titles.
func (s *Service) TopDirectors(ctx context.Context, n int) ([]flixgraph.NameCount, error) {
	err := validateLimit(n)
	if err != nil {
		return nil, err
	}

	return s.source.TopDirectors(ctx, n)
}

// GenreDistribution returns title counts per genre, descending.
func (s *Service) GenreDistribution(ctx context.Context) ([]flixgraph.NameCount, error) {
	return s.source.GenreDistribution(ctx)
}

// YearDistribution returns title counts per release year, ascending year.
func (s *Service) YearDistribution(ctx context.Context) ([]flixgraph.YearCount, error) {
	return s.source.YearDistribution(ctx)
}

// ContentTypeSplit returns Movie vs TV Show title counts.
func (s *Service) ContentTypeSplit(ctx context.Context) ([]flixgraph.TypeCount, error) {
	return s.source.ContentTypeSplit(ctx)
}

// SearchTitles returns titles containing the substring, case-insensitive,
// sorted ascending. Blank input is rejected before any store call.
func (s *Service) SearchTitles(ctx context.Context, substring string) ([]string, error) {
	if strings.TrimSpace(substring) == "" {
		return nil, fmt.Errorf("analytics: %w: blank search", flixgraph.ErrInvalidInput)
	}

	return s.source.SearchTitles(ctx, substring)
}

func validateLimit(n int) error {
	if n <= 0 {
		return fmt.Errorf("analytics: %w: limit must be positive, got %d", flixgraph.ErrInvalidInput, n)
	}

	return nil
}
