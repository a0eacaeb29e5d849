package places_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/washyaderner/vibe-n-thrive/internal/adapters/places"
	"github.com/washyaderner/vibe-n-thrive/internal/domain"
)

func serveJSON(t *testing.T, v any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("place_id") == "" {
			t.Errorf("place_id missing from query")
		}
		w.WriteHeader(200)
		_ = json.NewEncoder(w).Encode(v)
	}))
}

func TestClient_ListReviews_OK(t *testing.T) {
	ts := serveJSON(t, map[string]any{
		"status": "OK",
		"result": map[string]any{
			"reviews": []map[string]any{
				{"author_name": "Dana M.", "rating": 5, "text": "lovely", "time": 1750000000},
			},
		},
	})
	defer ts.Close()

	cl, err := places.New(ts.URL, "key", "place123", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	revs, err := cl.ListReviews(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(revs) != 1 {
		t.Fatalf("unexpected reviews: %+v", revs)
	}
}

func TestClient_ListReviews_BodyStatusErrors(t *testing.T) {
	cases := []struct {
		status string
		want   error
	}{
		{"REQUEST_DENIED", domain.ErrUnauthorized},
		{"NOT_FOUND", domain.ErrNotFound},
		{"OVER_QUERY_LIMIT", domain.ErrRateLimited},
		{"SOMETHING_ELSE", domain.ErrMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			ts := serveJSON(t, map[string]any{"status": tc.status})
			defer ts.Close()

			cl, _ := places.New(ts.URL, "key", "place123", 100)
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			_, err := cl.ListReviews(ctx)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestNew_RequiresCredentials(t *testing.T) {
	if _, err := places.New("http://x", "", "place", 5); err == nil {
		t.Fatalf("expected error for empty key")
	}
	if _, err := places.New("http://x", "key", "", 5); err == nil {
		t.Fatalf("expected error for empty place ID")
	}
}
