package flixgraph //nolint:testpackage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelation_Validate(t *testing.T) {
	t.Parallel()

	for _, rel := range []Relation{RelActedIn, RelDirectedBy, RelHasGenre, RelProducedIn} {
		assert.NoError(t, rel.Validate())
	}

	err := Relation("WATCHED_BY").Validate()
	assert.True(t, errors.Is(err, ErrUnknownRelation), "got %v", err)
}
