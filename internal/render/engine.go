package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/washyaderner/vibe-n-thrive/internal/domain"
	"github.com/washyaderner/vibe-n-thrive/internal/shared"
)

//go:embed templates/*.html
var templateFS embed.FS

// Engine renders sections and assembles the page. Templates are parsed
// once at construction; a parse failure is a startup error, not a
// per-request one.
type Engine struct {
	tmpl *template.Template
}

func NewEngine() (*Engine, error) {
	t := template.New("site").Funcs(template.FuncMap{
		"fmtDate": func(ts time.Time) string { return ts.Format("January 2, 2006") },
		"stars": func(rating int) string {
			if rating < domain.RatingMin || rating > domain.RatingMax {
				return ""
			}
			return strings.Repeat("★", rating) + strings.Repeat("☆", domain.RatingMax-rating)
		},
		"excerpt": func(s string, n int) string {
			if len(s) <= n {
				return s
			}
			cut := s[:n]
			if i := strings.LastIndexByte(cut, ' '); i > 0 {
				cut = cut[:i]
			}
			return cut + "…"
		},
	})
	t, err := t.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Engine{tmpl: t}, nil
}

// NewPageData builds the render input from static configuration plus the
// feed snapshot. Embed references are computed here so templates stay
// plain.
func NewPageData(c *shared.SiteCopy, posts []domain.BlogPost, reviews []domain.Review) PageData {
	p := c.PracticeInfo()
	return PageData{
		Practice:   p,
		Copy:       c,
		Tiers:      c.PricingTiers(),
		Posts:      posts,
		Reviews:    reviews,
		MapSrc:     template.URL("https://www.google.com/maps?q=" + url.QueryEscape(p.MapQuery) + "&output=embed"),
		BookingSrc: template.URL(p.BookingURL),
	}
}

// RenderSection renders one section body. Each section is a pure function
// of the page data; no section sees another section's output. A template
// failure here is a structural defect and aborts the whole pass.
func (e *Engine) RenderSection(sec Section, data PageData) (template.HTML, error) {
	name := sec.ID + ".html"
	if e.tmpl.Lookup(name) == nil {
		return "", &domain.RenderError{Section: sec.ID, Err: fmt.Errorf("template %s missing", name)}
	}
	var buf bytes.Buffer
	if err := e.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", &domain.RenderError{Section: sec.ID, Err: err}
	}
	return template.HTML(buf.String()), nil
}
