// Package recommend implements content-based title recommendations over a
// flixgraph.Store. Similarity between two titles is a weighted sum of their
// shared genres, actors, and directors; candidates are gated on sharing at
// least one genre with the source.
package recommend

import (
	"context"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/flixgraph/flixgraph"
)

// DefaultLimit is the result count when no limit is configured.
const DefaultLimit = 10

// Engine produces ranked recommendations. It is stateless apart from the
// optional result cache and safe for concurrent use; it never writes to the
// underlying graph.
type Engine struct {
	store  flixgraph.Store
	limit  int
	logger *zap.Logger
	cache  *gocache.Cache
}

// Option configures an Engine.
type Option func(*Engine)

// WithLimit sets the default result limit. Non-positive values are ignored.
func WithLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.limit = n
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithCache enables TTL caching of final rankings, keyed by (title, limit).
// The graph is read-only per deployment, so expiry is the only invalidation.
func WithCache(ttl time.Duration) Option {
	return func(e *Engine) {
		if ttl > 0 {
			e.cache = gocache.New(ttl, 2*ttl)
		}
	}
}

// New creates an Engine reading from the given store.
func New(store flixgraph.Store, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		limit:  DefaultLimit,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Recommend returns up to the configured default limit of recommendations.
func (e *Engine) Recommend(ctx context.Context, title string) ([]Recommendation, error) {
	return e.RecommendN(ctx, title, e.limit)
}

// RecommendN returns up to k recommendations for the source title, ordered
// best to worst. Validation failures are rejected before any store call. An
// unknown source yields flixgraph.ErrNotFound; a source sharing no genres
// with any other title yields an empty slice and nil error.
func (e *Engine) RecommendN(ctx context.Context, title string, k int) ([]Recommendation, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("recommend: %w: blank title", flixgraph.ErrInvalidInput)
	}

	if k <= 0 {
		return nil, fmt.Errorf("recommend: %w: limit must be positive, got %d", flixgraph.ErrInvalidInput, k)
	}

	if e.cache != nil {
		if cached, ok := e.cache.Get(cacheKey(title, k)); ok {
			e.logger.Debug("cache hit", zap.String("title", title), zap.Int("limit", k))

			return cached.([]Recommendation), nil
		}
	}

	exists, err := e.store.TitleExists(ctx, title)
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, fmt.Errorf("recommend: %q: %w", title, flixgraph.ErrNotFound)
	}

	overlaps, err := e.store.GenreOverlaps(ctx, title)
	if err != nil {
		return nil, err
	}

	recs := make([]Recommendation, 0, len(overlaps))

	for _, overlap := range overlaps {
		// A source title never ranks against itself.
		if overlap.Title == title {
			continue
		}

		recs = append(recs, score(overlap))
	}

	rank(recs)

	if len(recs) > k {
		recs = recs[:k]
	}

	e.logger.Debug("ranked recommendations",
		zap.String("title", title),
		zap.Int("candidates", len(overlaps)),
		zap.Int("results", len(recs)))

	if e.cache != nil {
		e.cache.Set(cacheKey(title, k), recs, gocache.DefaultExpiration)
	}

	return recs, nil
}

// cacheKey builds a collision-free key; NUL cannot appear in a title.
func cacheKey(title string, k int) string {
	return fmt.Sprintf("%s\x00%d", title, k)
}
