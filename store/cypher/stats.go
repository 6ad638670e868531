package cypher

import (
	"context"

	"github.com/flixgraph/flixgraph"
)

// Catalog statistics backing the analytics service. These satisfy
// analytics.Source; ordering is fixed by the queries themselves.

// NodeCounts returns node counts by label, descending.
func (s *Store) NodeCounts(ctx context.Context) ([]flixgraph.LabelCount, error) {
	records, err := s.run(ctx, queryNodeCounts, nil)
	if err != nil {
		return nil, err
	}

	counts := make([]flixgraph.LabelCount, 0, len(records))

	for _, record := range records {
		label, ok := recordString(record, "label")
		if !ok {
			continue
		}

		counts = append(counts, flixgraph.LabelCount{Label: label, Count: recordInt(record, "count")})
	}

	return counts, nil
}

// RelationshipCounts returns edge counts by relationship type, descending.
func (s *Store) RelationshipCounts(ctx context.Context) ([]flixgraph.RelationCount, error) {
	records, err := s.run(ctx, queryRelationshipCounts, nil)
	if err != nil {
		return nil, err
	}

	counts := make([]flixgraph.RelationCount, 0, len(records))

	for _, record := range records {
		typ, ok := recordString(record, "type")
		if !ok {
			continue
		}

		counts = append(counts, flixgraph.RelationCount{Type: typ, Count: recordInt(record, "count")})
	}

	return counts, nil
}

// TopActors returns the n actors linked to the most distinct titles.
func (s *Store) TopActors(ctx context.Context, n int) ([]flixgraph.NameCount, error) {
	return s.nameCounts(ctx, queryTopActors, map[string]any{"limit": n})
}

// TopDirectors returns the n directors linked to the most distinct titles.
func (s *Store) TopDirectors(ctx context.Context, n int) ([]flixgraph.NameCount, error) {
	return s.nameCounts(ctx, queryTopDirectors, map[string]any{"limit": n})
}

// GenreDistribution returns title counts per genre, descending.
func (s *Store) GenreDistribution(ctx context.Context) ([]flixgraph.NameCount, error) {
	return s.nameCounts(ctx, queryGenreDistribution, nil)
}

// YearDistribution returns title counts per release year, ascending year.
func (s *Store) YearDistribution(ctx context.Context) ([]flixgraph.YearCount, error) {
	records, err := s.run(ctx, queryYearDistribution, nil)
	if err != nil {
		return nil, err
	}

	counts := make([]flixgraph.YearCount, 0, len(records))

	for _, record := range records {
		counts = append(counts, flixgraph.YearCount{
			Year:   recordInt(record, "year"),
			Titles: recordInt(record, "titles"),
		})
	}

	return counts, nil
}

// ContentTypeSplit returns title counts per content type, descending.
func (s *Store) ContentTypeSplit(ctx context.Context) ([]flixgraph.TypeCount, error) {
	records, err := s.run(ctx, queryContentTypeSplit, nil)
	if err != nil {
		return nil, err
	}

	counts := make([]flixgraph.TypeCount, 0, len(records))

	for _, record := range records {
		typ, ok := recordString(record, "type")
		if !ok {
			continue
		}

		counts = append(counts, flixgraph.TypeCount{
			ContentType: flixgraph.ContentType(typ),
			Titles:      recordInt(record, "titles"),
		})
	}

	return counts, nil
}

// SearchTitles returns title names containing the substring,
// case-insensitive, sorted ascending.
func (s *Store) SearchTitles(ctx context.Context, substring string) ([]string, error) {
	records, err := s.run(ctx, querySearchTitles, map[string]any{"q": substring})
	if err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(records))

	for _, record := range records {
		title, ok := recordString(record, "title")
		if ok {
			titles = append(titles, title)
		}
	}

	return titles, nil
}

func (s *Store) nameCounts(ctx context.Context, query string, params map[string]any) ([]flixgraph.NameCount, error) {
	records, err := s.run(ctx, query, params)
	if err != nil {
		return nil, err
	}

	counts := make([]flixgraph.NameCount, 0, len(records))

	for _, record := range records {
		name, ok := recordString(record, "name")
		if !ok {
			continue
		}

		counts = append(counts, flixgraph.NameCount{Name: name, Titles: recordInt(record, "titles")})
	}

	return counts, nil
}
