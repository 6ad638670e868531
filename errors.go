package flixgraph

import "errors"

// Error taxonomy shared by all store implementations and consumers. Callers
// discriminate with errors.Is; no component retries internally or falls back
// to partial results.
var (
	// ErrNotFound is returned when a requested title does not exist.
	ErrNotFound = errors.New("title not found")

	// ErrUnavailable is returned when the store is unreachable or a session
	// could not be established.
	ErrUnavailable = errors.New("graph store unavailable")

	// ErrTimeout is returned when a store call exceeded the caller's deadline.
	ErrTimeout = errors.New("graph store query timed out")

	// ErrInvalidInput is returned for malformed requests (blank title,
	// non-positive limit, bad filter expression) before any store I/O.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownRelation is returned when a relation type is not part of the
	// catalog schema.
	ErrUnknownRelation = errors.New("unknown relation")
)
