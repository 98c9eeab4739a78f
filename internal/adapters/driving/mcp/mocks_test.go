package mcp

import (
	"context"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
	"github.com/scriptvault-labs/scriptvault-cli/internal/core/ports/driving"
)

// mockVaultService implements driving.VaultService for tests.
type mockVaultService struct {
	scripts        []domain.Script
	content        map[string][]byte
	err            error
	listedCategory string
}

var _ driving.VaultService = (*mockVaultService)(nil)

func (m *mockVaultService) Ingest(_ context.Context, _ domain.RawScript) (*domain.Script, error) {
	return nil, m.err
}

func (m *mockVaultService) Drain(_ context.Context, _ <-chan domain.RawScript, _ <-chan error) (int, error) {
	return 0, m.err
}

func (m *mockVaultService) List(_ context.Context, category string) ([]domain.Script, error) {
	m.listedCategory = category
	if m.err != nil {
		return nil, m.err
	}
	if category == "" {
		return m.scripts, nil
	}
	var out []domain.Script
	for _, s := range m.scripts {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockVaultService) Get(_ context.Context, id string) (*domain.Script, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.scripts {
		if m.scripts[i].ID == id {
			return &m.scripts[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockVaultService) Content(_ context.Context, id string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	content, ok := m.content[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return content, nil
}

func (m *mockVaultService) Categories(_ context.Context) (map[string]int, error) {
	if m.err != nil {
		return nil, m.err
	}
	counts := make(map[string]int)
	for _, s := range m.scripts {
		counts[s.Category]++
	}
	return counts, nil
}
