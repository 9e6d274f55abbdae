package representation

import "errors"

// Sentinel errors for the representation cache.
var (
	// ErrUnknownRepresentation is returned when no declaration exists for
	// the requested name.
	ErrUnknownRepresentation = errors.New("unknown representation")

	// ErrDeadOwner is returned when the cache's owner has been collected
	// or was never bound.
	ErrDeadOwner = errors.New("representation owner is no longer reachable")
)
