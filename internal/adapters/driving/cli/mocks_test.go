package cli

import (
	"context"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
	"github.com/scriptvault-labs/scriptvault-cli/internal/core/ports/driven"
	"github.com/scriptvault-labs/scriptvault-cli/internal/core/ports/driving"
)

// mockVaultService implements driving.VaultService for command tests.
type mockVaultService struct {
	scripts []domain.Script
	err     error
}

var _ driving.VaultService = (*mockVaultService)(nil)

func (m *mockVaultService) Ingest(_ context.Context, _ domain.RawScript) (*domain.Script, error) {
	return nil, m.err
}

func (m *mockVaultService) Drain(_ context.Context, scripts <-chan domain.RawScript, errs <-chan error) (int, error) {
	count := 0
	for scripts != nil || errs != nil {
		select {
		case _, ok := <-scripts:
			if !ok {
				scripts = nil
				continue
			}
			count++
		case _, ok := <-errs:
			if !ok {
				errs = nil
			}
		}
	}
	return count, m.err
}

func (m *mockVaultService) List(_ context.Context, category string) ([]domain.Script, error) {
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
	for i := range m.scripts {
		if m.scripts[i].ID == id {
			return &m.scripts[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockVaultService) Content(_ context.Context, _ string) ([]byte, error) {
	return nil, domain.ErrNotFound
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

// mockConfigStore implements driven.ConfigStore in memory.
type mockConfigStore struct {
	values map[string]any
}

var _ driven.ConfigStore = (*mockConfigStore)(nil)

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{values: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if v, ok := m.values[key].(string); ok {
		return v
	}
	return ""
}

func (m *mockConfigStore) GetInt(key string) int {
	if v, ok := m.values[key].(int); ok {
		return v
	}
	return 0
}

func (m *mockConfigStore) GetBool(key string) bool {
	if v, ok := m.values[key].(bool); ok {
		return v
	}
	return false
}

func (m *mockConfigStore) GetStringSlice(key string) []string {
	if v, ok := m.values[key].([]string); ok {
		return v
	}
	return nil
}

func (m *mockConfigStore) Set(key string, value any) error {
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Path() string {
	return "/tmp/config.toml"
}
