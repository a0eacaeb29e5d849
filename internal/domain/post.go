package domain

import "time"

// BlogPost is one normalized CMS entry. Slug is the unique key within a
// fetch; FeaturedImage may be empty, in which case the renderer falls back
// to the configured default visual.
type BlogPost struct {
	Title         string
	Slug          string
	Body          string
	PublishDate   time.Time
	Author        string
	FeaturedImage string
}

// Valid reports whether the post carries every required field. Posts that
// fail this check are excluded from display, never rendered partially.
func (p BlogPost) Valid() bool {
	return p.Title != "" && p.Slug != "" && p.Body != "" &&
		p.Author != "" && !p.PublishDate.IsZero()
}
