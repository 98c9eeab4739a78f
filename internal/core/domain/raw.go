package domain

// RawScript represents script text fetched by a connector.
// It is the connector's output before naming and storage.
type RawScript struct {
	// SourceID links to the Source that produced this script.
	SourceID string

	// URI is the original location (file path, URL, gist URL, etc).
	URI string

	// OriginalName is the name the script was found under, if any.
	// Used only as a last-resort naming seed.
	OriginalName string

	// Text is the full script source content.
	Text string

	// Metadata contains connector-specific key-value pairs.
	Metadata map[string]any
}
