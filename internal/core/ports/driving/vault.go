// Package driving defines the inbound ports: interfaces the driving
// adapters (CLI, web, TUI, MCP) call into the core through.
package driving

import (
	"context"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
)

// VaultService ingests, lists and retrieves vault scripts.
type VaultService interface {
	// Ingest names a raw script, writes it into the vault and records
	// its metadata. Returns the stored record.
	Ingest(ctx context.Context, raw domain.RawScript) (*domain.Script, error)

	// Drain consumes a connector's fetch channels, ingesting every
	// script. Returns the count of stored scripts and the first
	// ingest error encountered, if any (fetching continues past
	// individual failures).
	Drain(ctx context.Context, scripts <-chan domain.RawScript, errs <-chan error) (int, error)

	// List returns stored scripts, optionally filtered by category.
	List(ctx context.Context, category string) ([]domain.Script, error)

	// Get retrieves a script record by ID.
	Get(ctx context.Context, id string) (*domain.Script, error)

	// Content returns the stored content of a script.
	Content(ctx context.Context, id string) ([]byte, error)

	// Categories returns per-category script counts.
	Categories(ctx context.Context) (map[string]int, error)
}
