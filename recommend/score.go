package recommend

import (
	"sort"

	"github.com/flixgraph/flixgraph"
)

// Scoring weights. These are the similarity contract, not tunables: a shared
// genre counts double a shared actor or director.
const (
	GenreWeight    = 2.0
	ActorWeight    = 1.5
	DirectorWeight = 1.5
)

// Recommendation is one ranked result with its score breakdown. TotalScore
// is always the sum of the three components; there is no second computation
// path that could drift from it.
type Recommendation struct {
	Title         string  `json:"title"`
	GenreScore    float64 `json:"genre_score"`
	ActorScore    float64 `json:"actor_score"`
	DirectorScore float64 `json:"director_score"`
	TotalScore    float64 `json:"total_score"`
}

// score turns raw overlap counts into a weighted breakdown.
func score(overlap flixgraph.Overlap) Recommendation {
	genre := float64(overlap.Genres) * GenreWeight
	actor := float64(overlap.Actors) * ActorWeight
	director := float64(overlap.Directors) * DirectorWeight

	return Recommendation{
		Title:         overlap.Title,
		GenreScore:    genre,
		ActorScore:    actor,
		DirectorScore: director,
		TotalScore:    genre + actor + director,
	}
}

// rank sorts in place: total score descending, ties by title ascending.
// The tie-break makes rankings deterministic across runs.
func rank(recs []Recommendation) {
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].TotalScore != recs[j].TotalScore {
			return recs[i].TotalScore > recs[j].TotalScore
		}

		return recs[i].Title < recs[j].Title
	})
}
