package cms

import (
	"context"
	"fmt"

	"github.com/washyaderner/vibe-n-thrive/internal/adapters/fetch"
)

// Client reads blog entries from the headless CMS delivery API, scoped to
// one space. Read-only; the CMS owns the content lifecycle.
type Client struct {
	base  string
	space string
	key   string
	fc    *fetch.Client
}

func New(base, space, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("CMS API key is required")
	}
	if space == "" {
		return nil, fmt.Errorf("CMS space ID is required")
	}
	return &Client{
		base:  base,
		space: space,
		key:   key,
		fc:    fetch.New("cms", rps),
	}, nil
}

// ListPosts returns raw blogPost entries, newest first per the provider's
// ordering parameter. Entries come back as provider-shaped maps; the app
// layer normalizes them.
func (c *Client) ListPosts(ctx context.Context, limit int) ([]map[string]any, error) {
	if limit <= 0 {
		limit = 6
	}
	url := fmt.Sprintf("%s/spaces/%s/environments/master/entries?content_type=blogPost&order=-fields.publishDate&limit=%d",
		c.base, c.space, limit)

	var out struct {
		Items []map[string]any `json:"items"`
	}
	err := c.fc.GetJSON(ctx, url, map[string]string{
		"Authorization": "Bearer " + c.key,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.Items, nil
}
