package recommend

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/flixgraph/flixgraph"
)

// Filter keeps the recommendations matching a boolean expression, preserving
// rank order. The expression sees each record through the same field names
// the output uses: title, genre_score, actor_score, director_score,
// total_score. An empty expression keeps everything. Compile and evaluation
// failures are reported as flixgraph.ErrInvalidInput.
func Filter(recs []Recommendation, expression string) ([]Recommendation, error) {
	if strings.TrimSpace(expression) == "" {
		return recs, nil
	}

	program, err := expr.Compile(expression, expr.Env(filterEnv(Recommendation{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("recommend: %w: compile filter %q: %s", flixgraph.ErrInvalidInput, expression, err)
	}

	kept := make([]Recommendation, 0, len(recs))

	for _, rec := range recs {
		output, err := expr.Run(program, filterEnv(rec))
		if err != nil {
			return nil, fmt.Errorf("recommend: %w: evaluate filter %q: %s", flixgraph.ErrInvalidInput, expression, err)
		}

		if passed, ok := output.(bool); ok && passed {
			kept = append(kept, rec)
		}
	}

	return kept, nil
}

func filterEnv(rec Recommendation) map[string]any {
	return map[string]any{
		"title":          rec.Title,
		"genre_score":    rec.GenreScore,
		"actor_score":    rec.ActorScore,
		"director_score": rec.DirectorScore,
		"total_score":    rec.TotalScore,
	}
}
