package domain

import "errors"

// Adapter error taxonomy. Every adapter failure maps onto one of these at
// the client boundary; callers treat any of them as "use fallback".
var (
	ErrUnauthorized = errors.New("adapter: unauthorized")
	ErrNotFound     = errors.New("adapter: not found")
	ErrRateLimited  = errors.New("adapter: rate limited")
	ErrMalformed    = errors.New("adapter: malformed response")
)

// RenderError marks a structural defect in a fixed template or missing
// static copy. It is fatal to the render pass: the assembler aborts
// rather than emit a partially broken document.
type RenderError struct {
	Section string
	Err     error
}

func (e *RenderError) Error() string {
	return "render " + e.Section + ": " + e.Err.Error()
}

func (e *RenderError) Unwrap() error { return e.Err }
