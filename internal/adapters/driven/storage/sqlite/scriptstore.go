package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
	"github.com/scriptvault-labs/scriptvault-cli/internal/core/ports/driven"
)

// scriptStore implements driven.ScriptStore.
type scriptStore struct {
	store *Store
}

var _ driven.ScriptStore = (*scriptStore)(nil)

// SaveScript inserts or updates a script record.
func (s *scriptStore) SaveScript(ctx context.Context, script *domain.Script) error {
	now := time.Now().UTC()
	if script.CreatedAt.IsZero() {
		script.CreatedAt = now
	}
	script.UpdatedAt = now

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO scripts (id, source_id, name, category, extension, uri, path, size, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			source_id = excluded.source_id,
			name = excluded.name,
			category = excluded.category,
			extension = excluded.extension,
			uri = excluded.uri,
			path = excluded.path,
			size = excluded.size,
			updated_at = excluded.updated_at
	`, script.ID, script.SourceID, script.Name, script.Category, script.Extension,
		script.URI, script.Path, script.Size, script.CreatedAt, script.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving script: %w", err)
	}
	return nil
}

// GetScript retrieves a script by ID.
func (s *scriptStore) GetScript(ctx context.Context, id string) (*domain.Script, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, source_id, name, category, extension, uri, path, size, created_at, updated_at
		FROM scripts WHERE id = ?
	`, id)

	script, err := scanScript(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("getting script: %w", err)
	}
	return script, nil
}

// ListScripts returns all scripts, optionally filtered by category.
func (s *scriptStore) ListScripts(ctx context.Context, category string) ([]domain.Script, error) {
	query := `
		SELECT id, source_id, name, category, extension, uri, path, size, created_at, updated_at
		FROM scripts
	`
	var args []any
	if category != "" {
		query += " WHERE category = ?"
		args = append(args, category)
	}
	query += " ORDER BY category, name"

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing scripts: %w", err)
	}
	defer rows.Close()

	var scripts []domain.Script
	for rows.Next() {
		script, err := scanScript(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning script: %w", err)
		}
		scripts = append(scripts, *script)
	}
	return scripts, rows.Err()
}

// DeleteScript removes a script record.
func (s *scriptStore) DeleteScript(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM scripts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting script: %w", err)
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

// CountByCategory returns the number of scripts per category.
func (s *scriptStore) CountByCategory(ctx context.Context) (map[string]int, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT category, COUNT(*) FROM scripts GROUP BY category
	`)
	if err != nil {
		return nil, fmt.Errorf("counting scripts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		counts[category] = count
	}
	return counts, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanScript(row scanner) (*domain.Script, error) {
	var script domain.Script
	err := row.Scan(
		&script.ID, &script.SourceID, &script.Name, &script.Category,
		&script.Extension, &script.URI, &script.Path, &script.Size,
		&script.CreatedAt, &script.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &script, nil
}
