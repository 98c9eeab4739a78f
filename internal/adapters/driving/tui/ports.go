package tui

import (
	"errors"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/ports/driving"
)

// ErrMissingVaultService is returned when the vault service is not provided.
var ErrMissingVaultService = errors.New("tui: vault service is required")

// Ports aggregates the driving port interfaces required by the TUI.
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
