package memory

import (
	"path"
	"sync"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
	"github.com/scriptvault-labs/scriptvault-cli/internal/core/ports/driven"
)

// Ensure VaultWriter implements the interface.
var _ driven.VaultWriter = (*VaultWriter)(nil)

// VaultWriter is an in-memory implementation of driven.VaultWriter.
type VaultWriter struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewVaultWriter creates a new in-memory vault writer.
func NewVaultWriter() *VaultWriter {
	return &VaultWriter{
		files: make(map[string][]byte),
	}
}

// Write stores content under the given category and file name.
func (w *VaultWriter) Write(category, fileName string, content []byte) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	p := relPath(category, fileName)
	if _, ok := w.files[p]; ok {
		return "", domain.ErrAlreadyExists
	}
	w.files[p] = append([]byte(nil), content...)
	return p, nil
}

// Read returns the content at a vault-relative path.
func (w *VaultWriter) Read(p string) ([]byte, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	content, ok := w.files[p]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), content...), nil
}

// Exists reports whether a vault-relative path is occupied.
func (w *VaultWriter) Exists(category, fileName string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	_, ok := w.files[relPath(category, fileName)]
	return ok
}

// Root returns the vault root directory.
func (w *VaultWriter) Root() string {
	return "memory://"
}

// relPath mirrors the filesystem writer's layout: one subdirectory per
// category, uncategorised scripts at the root.
func relPath(category, fileName string) string {
	if category == "" {
		return fileName
	}
	return path.Join(category, fileName)
}
