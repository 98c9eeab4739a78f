// Package services implements the core application services behind the
// driving ports.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/scriptvault-labs/scriptvault-cli/internal/classifier"
	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
	"github.com/scriptvault-labs/scriptvault-cli/internal/core/ports/driven"
	"github.com/scriptvault-labs/scriptvault-cli/internal/core/ports/driving"
	"github.com/scriptvault-labs/scriptvault-cli/internal/logger"
)

// Ensure VaultService implements the interface.
var _ driving.VaultService = (*VaultService)(nil)

// maxNameRetries bounds re-naming attempts on file name collisions.
// Retrying re-rolls the random category suffix; same-name seeds get a
// counter appended instead.
const maxNameRetries = 5

// VaultService stores named scripts in the vault.
type VaultService struct {
	namer  *classifier.Namer
	writer driven.VaultWriter
	store  driven.ScriptStore
}

// NewVaultService creates a vault service over the given namer,
// writer and metadata store.
func NewVaultService(namer *classifier.Namer, writer driven.VaultWriter, store driven.ScriptStore) *VaultService {
	return &VaultService{
		namer:  namer,
		writer: writer,
		store:  store,
	}
}

// Ingest names a raw script, writes it into the vault and records its
// metadata.
func (s *VaultService) Ingest(ctx context.Context, raw domain.RawScript) (*domain.Script, error) {
	if raw.Text == "" {
		return nil, fmt.Errorf("%w: empty script text", domain.ErrInvalidInput)
	}

	name, err := s.allocateName(raw)
	if err != nil {
		return nil, err
	}

	path, err := s.writer.Write(name.Category, name.FileName(), []byte(raw.Text))
	if err != nil {
		return nil, fmt.Errorf("writing %s: %w", name.FileName(), err)
	}

	script := &domain.Script{
		ID:        uuid.New().String(),
		SourceID:  raw.SourceID,
		Name:      name.FileName(),
		Category:  name.Category,
		Extension: name.Extension,
		URI:       raw.URI,
		Path:      path,
		Size:      int64(len(raw.Text)),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.store.SaveScript(ctx, script); err != nil {
		return nil, fmt.Errorf("recording %s: %w", script.Name, err)
	}

	logger.Debug("stored %s (category=%q, %d bytes)", script.Name, script.Category, script.Size)
	return script, nil
}

// allocateName resolves file name collisions. Category names carry a
// random suffix, so re-naming usually suffices; deterministic names
// get an ordinal appended.
func (s *VaultService) allocateName(raw domain.RawScript) (domain.ScriptName, error) {
	name := s.namer.Name(raw)
	if !s.writer.Exists(name.Category, name.FileName()) {
		return name, nil
	}

	for attempt := 1; attempt <= maxNameRetries; attempt++ {
		candidate := s.namer.Name(raw)
		if candidate.FileName() == name.FileName() {
			// Deterministic branch; disambiguate with an ordinal.
			candidate.Base = fmt.Sprintf("%s-%d", name.Base, attempt+1)
		}
		if !s.writer.Exists(candidate.Category, candidate.FileName()) {
			return candidate, nil
		}
	}
	return domain.ScriptName{}, fmt.Errorf("%w: %s", domain.ErrVaultFull, name.FileName())
}

// Drain consumes a connector's fetch channels, ingesting every script.
func (s *VaultService) Drain(ctx context.Context, scripts <-chan domain.RawScript, errs <-chan error) (int, error) {
	stored := 0
	var firstErr error

	for scripts != nil || errs != nil {
		select {
		case <-ctx.Done():
			return stored, ctx.Err()
		case raw, ok := <-scripts:
			if !ok {
				scripts = nil
				continue
			}
			if _, err := s.Ingest(ctx, raw); err != nil {
				logger.Warn("skipping %s: %v", raw.URI, err)
				if firstErr == nil {
					firstErr = err
				}
			} else {
				stored++
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			if err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}

	return stored, firstErr
}

// List returns stored scripts, optionally filtered by category.
func (s *VaultService) List(ctx context.Context, category string) ([]domain.Script, error) {
	return s.store.ListScripts(ctx, category)
}

// Get retrieves a script record by ID.
func (s *VaultService) Get(ctx context.Context, id string) (*domain.Script, error) {
	return s.store.GetScript(ctx, id)
}

// Content returns the stored content of a script.
func (s *VaultService) Content(ctx context.Context, id string) ([]byte, error) {
	script, err := s.store.GetScript(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := s.writer.Read(script.Path)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: vault file for %s", domain.ErrNotFound, script.Name)
		}
		return nil, err
	}
	return data, nil
}

// Categories returns per-category script counts.
func (s *VaultService) Categories(ctx context.Context) (map[string]int, error) {
	return s.store.CountByCategory(ctx)
}
