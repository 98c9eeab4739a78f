package mcp

import (
	"github.com/scriptvault-labs/scriptvault-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Vault provides script listing and content retrieval.
	Vault driving.VaultService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Vault == nil {
		return ErrMissingVaultService
	}
	return nil
}
