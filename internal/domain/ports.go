package domain

import "context"

// PostSource yields raw CMS entries for the configured space. The live
// client returns provider-shaped maps that the app layer normalizes; the
// fallback provider returns pre-normalized placeholders through the same
// port shape.
type PostSource interface {
	ListPosts(ctx context.Context, limit int) ([]map[string]any, error)
}

// ReviewSource yields the raw reviews payload for the configured place.
type ReviewSource interface {
	ListReviews(ctx context.Context) ([]map[string]any, error)
}

// Cache stores normalized feed snapshots between render passes.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// FetchLog records adapter outcomes for operators. Implementations must
// never block or fail page assembly.
type FetchLog interface {
	LogMiss(ctx context.Context, source string, status int, reason string) error
}
