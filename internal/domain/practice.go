package domain

// Practice holds the contact and embed configuration for the site.
// Immutable for the process lifetime. PracticeAddress and ReviewsAddress
// are intentionally distinct: reviews are sourced from a different
// physical location than the one clients visit.
type Practice struct {
	Name            string
	Phone           string
	Email           string
	PracticeAddress string
	ReviewsAddress  string

	// BookingURL is emitted verbatim into the scheduling embed; no API
	// interaction happens with the booking provider.
	BookingURL string

	// MapQuery is the address string rendered into the map-provider
	// embed reference. No API key involved.
	MapQuery string

	// DefaultPostImage backs blog cards whose entry has no featured image.
	DefaultPostImage string
}
