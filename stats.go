package flixgraph

// Catalog statistic records returned by stores and consumed by the analytics
// service. Slices are returned in the documented order of each producing
// method and are safe for the caller to retain.

// LabelCount is the number of nodes carrying a label.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// RelationCount is the number of edges of a relationship type.
type RelationCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// NameCount pairs a node name (actor, director, genre) with the number of
// distinct titles it is linked to.
type NameCount struct {
	Name   string `json:"name"`
	Titles int    `json:"titles"`
}

// YearCount is the number of titles released in a year.
type YearCount struct {
	Year   int `json:"year"`
	Titles int `json:"titles"`
}

// TypeCount is the number of titles of a content type.
type TypeCount struct {
	ContentType ContentType `json:"content_type"`
	Titles      int         `json:"titles"`
}
