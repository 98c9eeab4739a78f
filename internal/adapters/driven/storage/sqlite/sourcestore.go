package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
	"github.com/scriptvault-labs/scriptvault-cli/internal/core/ports/driven"
)

// sourceStore implements driven.SourceStore.
type sourceStore struct {
	store *Store
}

var _ driven.SourceStore = (*sourceStore)(nil)

// SaveSource inserts or updates a source.
func (s *sourceStore) SaveSource(ctx context.Context, source *domain.Source) error {
	configJSON, err := json.Marshal(source.Config)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if source.CreatedAt.IsZero() {
		source.CreatedAt = time.Now().UTC()
	}

	var lastScraped any
	if !source.LastScrapedAt.IsZero() {
		lastScraped = source.LastScrapedAt
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO sources (id, name, type, config, created_at, last_scraped_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			type = excluded.type,
			config = excluded.config,
			last_scraped_at = excluded.last_scraped_at
	`, source.ID, source.Name, source.Type, string(configJSON), source.CreatedAt, lastScraped)
	if err != nil {
		return fmt.Errorf("saving source: %w", err)
	}
	return nil
}

// GetSource retrieves a source by ID.
func (s *sourceStore) GetSource(ctx context.Context, id string) (*domain.Source, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, type, config, created_at, last_scraped_at
		FROM sources WHERE id = ?
	`, id)

	source, err := scanSource(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("getting source: %w", err)
	}
	return source, nil
}

// ListSources returns all configured sources.
func (s *sourceStore) ListSources(ctx context.Context) ([]domain.Source, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, type, config, created_at, last_scraped_at
		FROM sources ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("listing sources: %w", err)
	}
	defer rows.Close()

	var sources []domain.Source
	for rows.Next() {
		source, err := scanSource(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning source: %w", err)
		}
		sources = append(sources, *source)
	}
	return sources, rows.Err()
}

// DeleteSource removes a source.
func (s *sourceStore) DeleteSource(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM sources WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting source: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanSource(row scanner) (*domain.Source, error) {
	var source domain.Source
	var configJSON string
	var lastScraped sql.NullTime

	err := row.Scan(&source.ID, &source.Name, &source.Type, &configJSON,
		&source.CreatedAt, &lastScraped)
	if err != nil {
		return nil, err
	}

	if configJSON != "" {
		if err := json.Unmarshal([]byte(configJSON), &source.Config); err != nil {
			return nil, fmt.Errorf("unmarshalling config: %w", err)
		}
	}
	if lastScraped.Valid {
		source.LastScrapedAt = lastScraped.Time
	}
	return &source, nil
}
