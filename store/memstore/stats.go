package memstore

import (
	"context"
	"sort"
	"strings"

	"github.com/flixgraph/flixgraph"
)

// Catalog statistics mirroring the Cypher store's queries. Only labels and
// relationship types that actually occur are reported, matching what the
// production queries return.

// NodeCounts returns node counts by label, descending.
func (s *Store) NodeCounts(ctx context.Context) ([]flixgraph.LabelCount, error) {
	err := ctxErr(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	labels := map[flixgraph.Relation]string{
		flixgraph.RelActedIn:    "Actor",
		flixgraph.RelDirectedBy: "Director",
		flixgraph.RelHasGenre:   "Genre",
		flixgraph.RelProducedIn: "Country",
	}

	distinct := make(map[string]map[string]struct{})

	for _, n := range s.titles {
		for rel, set := range n.links {
			label := labels[rel]

			names := distinct[label]
			if names == nil {
				names = make(map[string]struct{})
				distinct[label] = names
			}

			for name := range set {
				names[name] = struct{}{}
			}
		}
	}

	counts := make([]flixgraph.LabelCount, 0, len(distinct)+1)

	if len(s.titles) > 0 {
		counts = append(counts, flixgraph.LabelCount{Label: "Title", Count: len(s.titles)})
	}

	for label, names := range distinct {
		if len(names) > 0 {
			counts = append(counts, flixgraph.LabelCount{Label: label, Count: len(names)})
		}
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}

		return counts[i].Label < counts[j].Label
	})

	return counts, nil
}

// RelationshipCounts returns edge counts by relationship type, descending.
func (s *Store) RelationshipCounts(ctx context.Context) ([]flixgraph.RelationCount, error) {
	err := ctxErr(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[string]int)

	for _, n := range s.titles {
		for rel, set := range n.links {
			totals[string(rel)] += len(set)
		}
	}

	counts := make([]flixgraph.RelationCount, 0, len(totals))

	for typ, count := range totals {
		counts = append(counts, flixgraph.RelationCount{Type: typ, Count: count})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}

		return counts[i].Type < counts[j].Type
	})

	return counts, nil
}

// TopActors returns the n actors linked to the most distinct titles.
func (s *Store) TopActors(ctx context.Context, n int) ([]flixgraph.NameCount, error) {
	return s.topByRelation(ctx, flixgraph.RelActedIn, n)
}

// TopDirectors returns the n directors linked to the most distinct titles.
func (s *Store) TopDirectors(ctx context.Context, n int) ([]flixgraph.NameCount, error) {
	return s.topByRelation(ctx, flixgraph.RelDirectedBy, n)
}

// GenreDistribution returns title counts per genre, descending.
func (s *Store) GenreDistribution(ctx context.Context) ([]flixgraph.NameCount, error) {
	counts, err := s.topByRelation(ctx, flixgraph.RelHasGenre, 0)
	if err != nil {
		return nil, err
	}

	return counts, nil
}

// YearDistribution returns title counts per release year, ascending year.
func (s *Store) YearDistribution(ctx context.Context) ([]flixgraph.YearCount, error) {
	err := ctxErr(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[int]int)

	for _, n := range s.titles {
		totals[n.title.ReleaseYear]++
	}

	counts := make([]flixgraph.YearCount, 0, len(totals))

	for year, titles := range totals {
		counts = append(counts, flixgraph.YearCount{Year: year, Titles: titles})
	}

	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Year < counts[j].Year
	})

	return counts, nil
}

// ContentTypeSplit returns title counts per content type, descending.
func (s *Store) ContentTypeSplit(ctx context.Context) ([]flixgraph.TypeCount, error) {
	err := ctxErr(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[flixgraph.ContentType]int)

	for _, n := range s.titles {
		totals[n.title.ContentType]++
	}

	counts := make([]flixgraph.TypeCount, 0, len(totals))

	for contentType, titles := range totals {
		counts = append(counts, flixgraph.TypeCount{ContentType: contentType, Titles: titles})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Titles != counts[j].Titles {
			return counts[i].Titles > counts[j].Titles
		}

		return counts[i].ContentType < counts[j].ContentType
	})

	return counts, nil
}

// SearchTitles returns title names containing the substring,
// case-insensitive, sorted ascending.
func (s *Store) SearchTitles(ctx context.Context, substring string) ([]string, error) {
	err := ctxErr(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(substring)
	titles := make([]string, 0)

	for name := range s.titles {
		if strings.Contains(strings.ToLower(name), needle) {
			titles = append(titles, name)
		}
	}

	sort.Strings(titles)

	return titles, nil
}

// topByRelation counts distinct titles per related node name. n <= 0 means
// no truncation.
func (s *Store) topByRelation(ctx context.Context, rel flixgraph.Relation, n int) ([]flixgraph.NameCount, error) {
	err := ctxErr(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[string]int)

	for _, node := range s.titles {
		for name := range node.links[rel] {
			totals[name]++
		}
	}

	counts := make([]flixgraph.NameCount, 0, len(totals))

	for name, titles := range totals {
		counts = append(counts, flixgraph.NameCount{Name: name, Titles: titles})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Titles != counts[j].Titles {
			return counts[i].Titles > counts[j].Titles
		}

		return counts[i].Name < counts[j].Name
	})

	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}

	return counts, nil
}
