package app

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/washyaderner/vibe-n-thrive/internal/domain"
)

/********** alias registries (single source of truth) **********/

// CMS entries nest content under "fields"; fallback records use the same
// shape. Bare keys cover providers that flatten.
var postAliases = map[string][]string{
	"title":  {"fields.title", "title", "fields.headline"},
	"slug":   {"fields.slug", "slug"},
	"body":   {"fields.body", "fields.content", "body", "content"},
	"date":   {"fields.publishDate", "fields.date", "publishDate", "date", "sys.createdAt"},
	"author": {"fields.author", "fields.authorName", "author"},
	"image":  {"fields.featuredImage.fields.file.url", "fields.featuredImage", "fields.image", "featuredImage", "image"},
}

var reviewAliases = map[string][]string{
	"author": {"author_name", "author", "name", "reviewer"},
	"text":   {"text", "review_text", "comment", "content"},
	"date":   {"date", "published_at", "time"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns string at path or "".
func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// firstAlias: first non-empty string for a named alias set.
func firstAlias(m map[string]any, aliases map[string][]string, key string) string {
	for _, p := range aliases[key] {
		if s := strings.TrimSpace(lookupStr(m, p)); s != "" {
			return s
		}
	}
	return ""
}

// parseWhen accepts RFC3339, bare dates, and unix-seconds numbers, which
// covers both providers and the fallback records.
func parseWhen(v any) time.Time {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"} {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts
			}
		}
	case float64:
		if t > 0 {
			return time.Unix(int64(t), 0).UTC()
		}
	case int64:
		if t > 0 {
			return time.Unix(t, 0).UTC()
		}
	}
	return time.Time{}
}

func whenAlias(m map[string]any, aliases map[string][]string, key string) time.Time {
	for _, p := range aliases[key] {
		if v := lookupAny(m, p); v != nil {
			if ts := parseWhen(v); !ts.IsZero() {
				return ts
			}
		}
	}
	return time.Time{}
}

// ratingFlexible: integer rating from float64/int/string payloads.
func ratingFlexible(m map[string]any, paths ...string) (int, bool) {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			return int(v), true
		case int:
			return v, true
		case string:
			s := strings.TrimSpace(v)
			if s == "" {
				continue
			}
			if n, err := strconv.Atoi(s); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

// slugify keeps slugs URL-safe regardless of what the CMS sends.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r == ' ' || r == '-' || r == '_':
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

/********** mappers **********/

// MapPosts normalizes raw CMS entries into BlogPosts. Entries missing any
// required field are excluded from the rendered sequence; a missing
// featured image degrades to the configured default at render time.
func MapPosts(items []map[string]any) []domain.BlogPost {
	out := make([]domain.BlogPost, 0, len(items))
	for _, it := range items {
		p := domain.BlogPost{
			Title:         firstAlias(it, postAliases, "title"),
			Slug:          slugify(firstAlias(it, postAliases, "slug")),
			Body:          firstAlias(it, postAliases, "body"),
			PublishDate:   whenAlias(it, postAliases, "date"),
			Author:        firstAlias(it, postAliases, "author"),
			FeaturedImage: firstAlias(it, postAliases, "image"),
		}
		if !p.Valid() {
			log.Debug().Str("title", p.Title).Str("slug", p.Slug).Msg("dropping incomplete blog post")
			continue
		}
		out = append(out, p)
	}
	return out
}

// MapReviews normalizes raw provider reviews. Reviews missing required
// fields or with a rating outside the declared bounds are excluded. The
// result is re-sorted date-descending: the provider's ordering is
// expected but not guaranteed.
func MapReviews(items []map[string]any) []domain.Review {
	out := make([]domain.Review, 0, len(items))
	for _, it := range items {
		r := domain.Review{
			Author: firstAlias(it, reviewAliases, "author"),
			Text:   firstAlias(it, reviewAliases, "text"),
			Date:   whenAlias(it, reviewAliases, "date"),
		}
		if n, ok := ratingFlexible(it, "rating", "score"); ok {
			r.Rating = n
		}
		if !r.Valid() {
			log.Debug().Str("author", r.Author).Int("rating", r.Rating).Msg("dropping invalid review")
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}
