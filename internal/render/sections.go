package render

import (
	"html/template"

	"github.com/washyaderner/vibe-n-thrive/internal/domain"
	"github.com/washyaderner/vibe-n-thrive/internal/shared"
)

// Section is one fixed block of the single output page. ID doubles as the
// anchor target: navigation links and the rendered section ids are both
// generated from Sections, so they cannot drift apart.
type Section struct {
	ID       string
	NavLabel string // empty = not linked from the navigation bar
}

// Sections is the fixed page order. It is configuration, not computed.
var Sections = []Section{
	{ID: "hero", NavLabel: "Home"},
	{ID: "visit", NavLabel: "Visit & Book"},
	{ID: "services", NavLabel: "Services"},
	{ID: "pricing", NavLabel: "Pricing"},
	{ID: "reviews", NavLabel: "Reviews"},
	{ID: "about", NavLabel: "About"},
	{ID: "blog", NavLabel: "Blog"},
	{ID: "education", NavLabel: "FAQ"},
	{ID: "footer"},
}

// PageData is the full input to one render pass: static copy and
// configuration plus the normalized feed snapshot. Sections read only
// their own slice of it.
type PageData struct {
	Practice domain.Practice
	Copy     *shared.SiteCopy
	Tiers    []domain.PricingTier
	Posts    []domain.BlogPost
	Reviews  []domain.Review

	// Precomputed embed references; emitted verbatim, no API calls.
	MapSrc     template.URL
	BookingSrc template.URL
}
