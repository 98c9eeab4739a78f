package domain

import "time"

// Source represents a configured scrape source.
type Source struct {
	// ID is the unique identifier for the source.
	ID string

	// Name is the human-readable source name.
	Name string

	// Type is the connector type ("github", "web", "filesystem").
	Type string

	// Config contains connector-specific settings.
	Config map[string]any

	// CreatedAt is when the source was added.
	CreatedAt time.Time

	// LastScrapedAt is when the source was last scraped, zero if never.
	LastScrapedAt time.Time
}
