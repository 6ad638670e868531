// Package memstore provides an in-memory flixgraph.Store backed by plain
// maps. It exists so the engine, analytics, and CLI can be exercised without
// a live Neo4j instance: tests inject it as a drop-in double, and it doubles
// as an offline demo catalog.
//
// Writes happen through AddTitle and Relate before the store is handed to
// consumers; the read side then matches the production store's contract,
// including ordering and the error taxonomy.
package memstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/flixgraph/flixgraph"
)

// ErrDuplicateTitle is returned when AddTitle is called twice with the same
// title name.
var ErrDuplicateTitle = errors.New("title already exists")

// Store is an in-memory labeled graph of titles and their related nodes.
// It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	titles  map[string]*node
	byGenre map[string]map[string]struct{} // genre name -> title names
}

// node holds one title and its adjacency sets per relation.
type node struct {
	title flixgraph.Title
	links map[flixgraph.Relation]map[string]struct{}
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		titles:  make(map[string]*node),
		byGenre: make(map[string]map[string]struct{}),
	}
}

// AddTitle inserts a title. The name must be non-blank and unique; the
// uniqueness constraint is enforced here, at write time, the same way the
// production schema enforces it.
func (s *Store) AddTitle(t flixgraph.Title) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("memstore: %w: blank title name", flixgraph.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.titles[t.Name]; ok {
		return fmt.Errorf("memstore: %w: %q", ErrDuplicateTitle, t.Name)
	}

	s.titles[t.Name] = &node{
		title: t,
		links: make(map[flixgraph.Relation]map[string]struct{}),
	}

	return nil
}

// Relate links a title to one or more named nodes through a relation. The
// title must already exist (referential integrity is a write-time concern);
// repeating an edge is a no-op, so duplicate edges cannot exist.
func (s *Store) Relate(title string, rel flixgraph.Relation, names ...string) error {
	err := rel.Validate()
	if err != nil {
		return fmt.Errorf("memstore: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.titles[title]
	if !ok {
		return fmt.Errorf("memstore: relate %q: %w", title, flixgraph.ErrNotFound)
	}

	set := n.links[rel]
	if set == nil {
		set = make(map[string]struct{})
		n.links[rel] = set
	}

	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("memstore: %w: blank node name", flixgraph.ErrInvalidInput)
		}

		set[name] = struct{}{}

		if rel == flixgraph.RelHasGenre {
			titles := s.byGenre[name]
			if titles == nil {
				titles = make(map[string]struct{})
				s.byGenre[name] = titles
			}

			titles[title] = struct{}{}
		}
	}

	return nil
}

// TitleExists reports whether a title with the given name exists.
func (s *Store) TitleExists(ctx context.Context, title string) (bool, error) {
	err := ctxErr(ctx)
	if err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.titles[title]

	return ok, nil
}

// NeighborsByRelation returns the sorted names linked to the title through
// the given relation. Unknown titles yield an empty slice.
func (s *Store) NeighborsByRelation(ctx context.Context, title string, rel flixgraph.Relation) ([]string, error) {
	err := ctxErr(ctx)
	if err != nil {
		return nil, err
	}

	err = rel.Validate()
	if err != nil {
		return nil, fmt.Errorf("memstore: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.titles[title]
	if !ok {
		return []string{}, nil
	}

	return sortedKeys(n.links[rel]), nil
}

// GenreOverlaps returns overlap counts for every other title sharing at
// least one genre with the source, ordered by candidate title ascending.
func (s *Store) GenreOverlaps(ctx context.Context, title string) ([]flixgraph.Overlap, error) {
	err := ctxErr(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	source, ok := s.titles[title]
	if !ok {
		return []flixgraph.Overlap{}, nil
	}

	candidates := make(map[string]struct{})

	for genre := range source.links[flixgraph.RelHasGenre] {
		for name := range s.byGenre[genre] {
			if name != title {
				candidates[name] = struct{}{}
			}
		}
	}

	overlaps := make([]flixgraph.Overlap, 0, len(candidates))

	for _, name := range sortedKeys(candidates) {
		candidate := s.titles[name]

		overlaps = append(overlaps, flixgraph.Overlap{
			Title:     name,
			Genres:    intersectionSize(source.links[flixgraph.RelHasGenre], candidate.links[flixgraph.RelHasGenre]),
			Actors:    intersectionSize(source.links[flixgraph.RelActedIn], candidate.links[flixgraph.RelActedIn]),
			Directors: intersectionSize(source.links[flixgraph.RelDirectedBy], candidate.links[flixgraph.RelDirectedBy]),
		})
	}

	return overlaps, nil
}

// TitleDetails returns the title's attributes and sorted related node names.
func (s *Store) TitleDetails(ctx context.Context, title string) (*flixgraph.TitleDetails, error) {
	err := ctxErr(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.titles[title]
	if !ok {
		return nil, fmt.Errorf("memstore: %q: %w", title, flixgraph.ErrNotFound)
	}

	return &flixgraph.TitleDetails{
		Title:     n.title,
		Genres:    sortedKeys(n.links[flixgraph.RelHasGenre]),
		Actors:    sortedKeys(n.links[flixgraph.RelActedIn]),
		Directors: sortedKeys(n.links[flixgraph.RelDirectedBy]),
		Countries: sortedKeys(n.links[flixgraph.RelProducedIn]),
	}, nil
}

// Close is a no-op; the store holds no external resources.
func (s *Store) Close(context.Context) error {
	return nil
}

// ctxErr maps context expiry onto the shared taxonomy so the fake fails the
// same way the production store does.
func ctxErr(ctx context.Context) error {
	err := ctx.Err()
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("memstore: %w: %s", flixgraph.ErrTimeout, err)
	}

	return err
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))

	for key := range set {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func intersectionSize(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}

	count := 0

	for key := range a {
		if _, ok := b[key]; ok {
			count++
		}
	}

	return count
}

// Ensure Store implements the contract.
var _ flixgraph.Store = (*Store)(nil)
