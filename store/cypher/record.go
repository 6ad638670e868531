package cypher

import (
	"sort"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Record extraction helpers. The driver returns Cypher integers as int64 and
// collect() lists as []any; these normalize both for the domain types.

func recordBool(record *neo4j.Record, key string) (bool, bool) {
	value, ok := record.Get(key)
	if !ok {
		return false, false
	}

	b, ok := value.(bool)

	return b, ok
}

func recordString(record *neo4j.Record, key string) (string, bool) {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return "", false
	}

	s, ok := value.(string)

	return s, ok
}

func recordInt(record *neo4j.Record, key string) int {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return 0
	}

	switch v := value.(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	}

	return 0
}

// recordStrings extracts a list column and returns it sorted ascending.
// collect() order is unspecified, so ordering is pinned here.
func recordStrings(record *neo4j.Record, key string) []string {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return []string{}
	}

	items, ok := value.([]any)
	if !ok {
		return []string{}
	}

	names := make([]string, 0, len(items))

	for _, item := range items {
		if s, ok := item.(string); ok {
			names = append(names, s)
		}
	}

	sort.Strings(names)

	return names
}
