package question

import "errors"

// Sentinel errors surfaced by services and repositories. Handlers match them
// with errors.Is and translate to the HTTP error envelope; storage error
// detail never crosses the HTTP boundary.
var (
	// ErrNotFound covers an absent entity and an empty result page alike.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput marks requests with missing or malformed fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStore wraps repository failures after the request itself was valid.
	ErrStore = errors.New("storage operation failed")
)
