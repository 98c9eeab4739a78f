// Package memory provides in-memory store implementations, used in
// tests and as a fallback when SQLite is unavailable.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
	"github.com/scriptvault-labs/scriptvault-cli/internal/core/ports/driven"
)

// Ensure ScriptStore implements the interface.
var _ driven.ScriptStore = (*ScriptStore)(nil)

// ScriptStore is an in-memory implementation of driven.ScriptStore.
type ScriptStore struct {
	mu      sync.RWMutex
	scripts map[string]domain.Script
}

// NewScriptStore creates a new in-memory script store.
func NewScriptStore() *ScriptStore {
	return &ScriptStore{
		scripts: make(map[string]domain.Script),
	}
}

// SaveScript stores or updates a script record.
func (s *ScriptStore) SaveScript(_ context.Context, script *domain.Script) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scripts[script.ID] = *script
	return nil
}

// GetScript retrieves a script by ID.
func (s *ScriptStore) GetScript(_ context.Context, id string) (*domain.Script, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	script, ok := s.scripts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &script, nil
}

// ListScripts returns all scripts, optionally filtered by category.
func (s *ScriptStore) ListScripts(_ context.Context, category string) ([]domain.Script, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Script, 0, len(s.scripts))
	for _, script := range s.scripts {
		if category != "" && script.Category != category {
			continue
		}
		out = append(out, script)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// DeleteScript removes a script record.
func (s *ScriptStore) DeleteScript(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.scripts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.scripts, id)
	return nil
}

// CountByCategory returns the number of scripts per category.
func (s *ScriptStore) CountByCategory(_ context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, script := range s.scripts {
		counts[script.Category]++
	}
	return counts, nil
}
