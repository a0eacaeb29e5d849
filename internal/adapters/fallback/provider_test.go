package fallback_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/washyaderner/vibe-n-thrive/internal/adapters/fallback"
)

// Visual regression checks depend on the fallback never changing between
// invocations, so output must be byte-identical run to run.
func TestProvider_Deterministic(t *testing.T) {
	p := fallback.New()
	ctx := context.Background()

	marshal := func(v any) []byte {
		t.Helper()
		b, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return b
	}

	posts1, err := p.ListPosts(ctx, 0)
	if err != nil {
		t.Fatalf("ListPosts must never error: %v", err)
	}
	posts2, _ := p.ListPosts(ctx, 0)
	if !bytes.Equal(marshal(posts1), marshal(posts2)) {
		t.Fatalf("fallback posts differ between invocations")
	}

	revs1, err := p.ListReviews(ctx)
	if err != nil {
		t.Fatalf("ListReviews must never error: %v", err)
	}
	revs2, _ := p.ListReviews(ctx)
	if !bytes.Equal(marshal(revs1), marshal(revs2)) {
		t.Fatalf("fallback reviews differ between invocations")
	}
}

func TestProvider_PostLimit(t *testing.T) {
	p := fallback.New()
	ctx := context.Background()

	all, _ := p.ListPosts(ctx, 0)
	if len(all) < 2 {
		t.Fatalf("expected several fallback posts, got %d", len(all))
	}
	limited, _ := p.ListPosts(ctx, 1)
	if len(limited) != 1 {
		t.Fatalf("expected limit to apply, got %d", len(limited))
	}
}
