package fallback

import "context"

// Provider is the deterministic stand-in for both live feeds, used when
// credentials are absent or a live fetch fails. It never errors and its
// output never varies, so visual regression checks stay stable.
//
// Records are emitted in the same raw map shape the live clients return
// and flow through the same normalization path.
type Provider struct{}

func New() *Provider { return &Provider{} }

func (p *Provider) ListPosts(ctx context.Context, limit int) ([]map[string]any, error) {
	posts := []map[string]any{
		post("What Vibroacoustic Therapy Actually Does", "what-vibroacoustic-therapy-does",
			"Low-frequency sound is not just something you hear. Delivered through a treatment table, it becomes something the whole body registers, and the nervous system responds by downshifting.",
			"2025-05-12", "Carson Goff", "/static/img/blog-table.jpg"),
		post("Why Your Nervous System Craves Low Frequencies", "nervous-system-low-frequencies",
			"Between 30 and 120 hertz sits a band of vibration the body reads as steady and safe. This post walks through what the research says about why that band is so calming.",
			"2025-04-02", "Carson Goff", "/static/img/blog-frequency.jpg"),
		post("A First-Timer's Guide to Your Session", "first-timers-guide",
			"What to wear, what to expect, and the one thing almost everyone is surprised by: how fast the body lets go once the table starts humming.",
			"2025-03-18", "Carson Goff", ""),
	}
	if limit > 0 && limit < len(posts) {
		posts = posts[:limit]
	}
	return posts, nil
}

func (p *Provider) ListReviews(ctx context.Context) ([]map[string]any, error) {
	return []map[string]any{
		review("Dana M.", 5, "I slept through the night for the first time in months after my second session. The space is calm and Carson explains everything.", "2025-06-20"),
		review("Luis R.", 5, "Came in skeptical, left floating. My shoulders dropped about two inches during the session.", "2025-05-30"),
		review("Priya K.", 4, "Really relaxing experience. Booking was easy and the intro session was a nice way to try it out.", "2025-05-11"),
		review("Tom W.", 5, "Chronic low-back tension that massage never fully reached. This actually helped.", "2025-04-07"),
	}, nil
}

func post(title, slug, body, date, author, image string) map[string]any {
	fields := map[string]any{
		"title":       title,
		"slug":        slug,
		"body":        body,
		"publishDate": date,
		"author":      author,
	}
	if image != "" {
		fields["featuredImage"] = image
	}
	return map[string]any{"fields": fields}
}

func review(author string, rating int, text, date string) map[string]any {
	return map[string]any{
		"author_name": author,
		"rating":      float64(rating),
		"text":        text,
		"date":        date,
	}
}
