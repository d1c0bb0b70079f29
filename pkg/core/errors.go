package core

import "errors"

// Error kinds. Concrete errors wrap one of these with fmt.Errorf("%w: ...")
// so callers can branch with errors.Is.
var (
	// ErrInvalidRequest marks bad or missing input. No query has been executed.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDataUnavailable marks a dataset that cannot be read.
	ErrDataUnavailable = errors.New("data unavailable")

	// ErrNotFound marks a single-entity lookup that matched nothing.
	// List and lookup operations never return it; they return empty results.
	ErrNotFound = errors.New("not found")
)
