package shared

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/washyaderner/vibe-n-thrive/internal/domain"
)

//go:embed copy.yaml
var copyYAML []byte

// SiteCopy is every piece of static text and configuration the page
// renders from. It is loaded once at startup and immutable afterwards.
type SiteCopy struct {
	Practice struct {
		Name             string `yaml:"name"`
		Phone            string `yaml:"phone"`
		Email            string `yaml:"email"`
		PracticeAddress  string `yaml:"practice_address"`
		ReviewsAddress   string `yaml:"reviews_address"`
		BookingURL       string `yaml:"booking_url"`
		MapQuery         string `yaml:"map_query"`
		DefaultPostImage string `yaml:"default_post_image"`
	} `yaml:"practice"`

	Hero struct {
		Headline    string `yaml:"headline"`
		Subheadline string `yaml:"subheadline"`
		CTA         string `yaml:"cta"`
	} `yaml:"hero"`

	Services []struct {
		Name  string `yaml:"name"`
		Blurb string `yaml:"blurb"`
	} `yaml:"services"`

	Pricing []struct {
		Name     string `yaml:"name"`
		Sessions int    `yaml:"sessions"`
		Cents    int64  `yaml:"cents"`
	} `yaml:"pricing"`

	About struct {
		Heading string `yaml:"heading"`
		Body    string `yaml:"body"`
	} `yaml:"about"`

	Education []struct {
		Question string `yaml:"question"`
		Answer   string `yaml:"answer"`
	} `yaml:"education"`

	Footer struct {
		Tagline string `yaml:"tagline"`
	} `yaml:"footer"`
}

// LoadCopy parses the embedded copy file and rejects structurally broken
// copy up front, so render passes never hit a missing-copy defect late.
func LoadCopy() (*SiteCopy, error) {
	var c SiteCopy
	if err := yaml.Unmarshal(copyYAML, &c); err != nil {
		return nil, fmt.Errorf("parse copy.yaml: %w", err)
	}
	if c.Practice.Name == "" || c.Practice.Phone == "" || c.Practice.BookingURL == "" {
		return nil, fmt.Errorf("copy.yaml: practice block incomplete")
	}
	if c.Hero.Headline == "" {
		return nil, fmt.Errorf("copy.yaml: hero headline missing")
	}
	if len(c.Services) == 0 || len(c.Pricing) == 0 {
		return nil, fmt.Errorf("copy.yaml: services and pricing must be non-empty")
	}
	for _, t := range c.Pricing {
		if t.Sessions <= 0 || t.Cents <= 0 {
			return nil, fmt.Errorf("copy.yaml: pricing tier %q needs positive sessions and price", t.Name)
		}
	}
	return &c, nil
}

// PracticeInfo converts the copy block into the domain record the
// renderer and assembler consume.
func (c *SiteCopy) PracticeInfo() domain.Practice {
	return domain.Practice{
		Name:             c.Practice.Name,
		Phone:            c.Practice.Phone,
		Email:            c.Practice.Email,
		PracticeAddress:  c.Practice.PracticeAddress,
		ReviewsAddress:   c.Practice.ReviewsAddress,
		BookingURL:       c.Practice.BookingURL,
		MapQuery:         c.Practice.MapQuery,
		DefaultPostImage: c.Practice.DefaultPostImage,
	}
}

// PricingTiers converts the pricing block into domain tiers.
func (c *SiteCopy) PricingTiers() []domain.PricingTier {
	out := make([]domain.PricingTier, 0, len(c.Pricing))
	for _, t := range c.Pricing {
		out = append(out, domain.PricingTier{
			Name:     t.Name,
			Sessions: t.Sessions,
			Total:    domain.Cents(t.Cents),
		})
	}
	return out
}
