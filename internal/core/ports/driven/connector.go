package driven

import (
	"context"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
)

// Connector fetches candidate scripts from a data source.
// Each connector type (filesystem, github, web) implements this interface.
type Connector interface {
	// Type returns the connector type identifier.
	Type() string

	// SourceID returns the configured source ID.
	SourceID() string

	// Validate checks if the connector is properly configured and
	// authenticated. For API connectors this typically makes a test
	// call; for filesystem it checks the path exists and is readable.
	Validate(ctx context.Context) error

	// Fetch retrieves all candidate scripts from the source.
	// Returns channels for scripts and errors; both are closed when
	// the fetch completes or the context is cancelled.
	Fetch(ctx context.Context) (<-chan domain.RawScript, <-chan error)

	// Close releases resources.
	Close() error
}

// Watcher is implemented by connectors that can push scripts as they
// appear, without polling. Only the filesystem connector supports it.
type Watcher interface {
	// Watch listens for new scripts until the context is cancelled.
	Watch(ctx context.Context) (<-chan domain.RawScript, error)
}

// TokenProvider supplies an API token for authenticated connectors.
type TokenProvider interface {
	// GetToken returns the current access token.
	GetToken(ctx context.Context) (string, error)
}
