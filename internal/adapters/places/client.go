package places

import (
	"context"
	"fmt"
	"net/url"

	"github.com/washyaderner/vibe-n-thrive/internal/adapters/fetch"
	"github.com/washyaderner/vibe-n-thrive/internal/domain"
)

// Client reads reviews for one fixed place from the places provider. The
// place ID points at the reviews-source location, which is intentionally
// not the practice address.
type Client struct {
	base    string
	key     string
	placeID string
	fc      *fetch.Client
}

func New(base, key, placeID string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("places API key is required")
	}
	if placeID == "" {
		return nil, fmt.Errorf("place ID is required")
	}
	return &Client{
		base:    base,
		key:     key,
		placeID: placeID,
		fc:      fetch.New("places", rps),
	}, nil
}

// ListReviews returns the raw reviews array from the place-details
// response. The provider documents date-descending ordering but does not
// guarantee it; normalization re-sorts.
func (c *Client) ListReviews(ctx context.Context) ([]map[string]any, error) {
	u := fmt.Sprintf("%s/details/json?place_id=%s&fields=reviews&key=%s",
		c.base, url.QueryEscape(c.placeID), url.QueryEscape(c.key))

	var out struct {
		Result struct {
			Reviews []map[string]any `json:"reviews"`
		} `json:"result"`
		Status string `json:"status"`
	}
	if err := c.fc.GetJSON(ctx, u, nil, &out); err != nil {
		return nil, err
	}

	// The provider tunnels errors through a 200 body status field.
	switch out.Status {
	case "OK", "":
		return out.Result.Reviews, nil
	case "NOT_FOUND", "ZERO_RESULTS", "INVALID_REQUEST":
		return nil, domain.ErrNotFound
	case "REQUEST_DENIED":
		return nil, domain.ErrUnauthorized
	case "OVER_QUERY_LIMIT":
		return nil, domain.ErrRateLimited
	default:
		return nil, fmt.Errorf("%w: status %q", domain.ErrMalformed, out.Status)
	}
}
