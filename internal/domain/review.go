package domain

import "time"

// Rating bounds declared by the reviews provider.
const (
	RatingMin = 1
	RatingMax = 5
)

// Review is one normalized entry from the places provider for the fixed
// review-source location.
type Review struct {
	Author string
	Rating int
	Text   string
	Date   time.Time
}

// Valid reports whether the review carries every required field and a
// rating within the provider's declared bounds.
func (r Review) Valid() bool {
	return r.Author != "" && r.Text != "" && !r.Date.IsZero() &&
		r.Rating >= RatingMin && r.Rating <= RatingMax
}
