package driven

import (
	"context"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
)

// ScriptStore persists vault script metadata.
type ScriptStore interface {
	// SaveScript inserts or updates a script record.
	SaveScript(ctx context.Context, script *domain.Script) error

	// GetScript retrieves a script by ID.
	// Returns domain.ErrNotFound if it does not exist.
	GetScript(ctx context.Context, id string) (*domain.Script, error)

	// ListScripts returns all scripts, optionally filtered by category.
	// An empty category returns everything.
	ListScripts(ctx context.Context, category string) ([]domain.Script, error)

	// DeleteScript removes a script record.
	DeleteScript(ctx context.Context, id string) error

	// CountByCategory returns the number of scripts per category.
	// Scripts without a category are counted under the empty key.
	CountByCategory(ctx context.Context) (map[string]int, error)
}

// SourceStore persists configured scrape sources.
type SourceStore interface {
	// SaveSource inserts or updates a source.
	SaveSource(ctx context.Context, source *domain.Source) error

	// GetSource retrieves a source by ID.
	// Returns domain.ErrNotFound if it does not exist.
	GetSource(ctx context.Context, id string) (*domain.Source, error)

	// ListSources returns all configured sources.
	ListSources(ctx context.Context) ([]domain.Source, error)

	// DeleteSource removes a source.
	DeleteSource(ctx context.Context, id string) error
}

// VaultWriter stores script content in the vault filesystem.
type VaultWriter interface {
	// Write stores content under the given category and file name,
	// returning the path relative to the vault root.
	// Returns domain.ErrAlreadyExists if the name is taken.
	Write(category, fileName string, content []byte) (string, error)

	// Read returns the content at a vault-relative path.
	Read(path string) ([]byte, error)

	// Exists reports whether a vault-relative path is occupied.
	Exists(category, fileName string) bool

	// Root returns the vault root directory.
	Root() string
}
