// Package vaultfs stores script content on disk, one subdirectory per
// category, uncategorised scripts at the vault root.
package vaultfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
	"github.com/scriptvault-labs/scriptvault-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.VaultWriter = (*Writer)(nil)

// Writer is a filesystem implementation of driven.VaultWriter.
type Writer struct {
	root string
}

// NewWriter creates a vault writer rooted at the given directory.
// If root is empty, defaults to ~/.scriptvault/vault.
func NewWriter(root string) (*Writer, error) {
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		root = filepath.Join(home, ".scriptvault", "vault")
	}

	if err := os.MkdirAll(root, 0700); err != nil {
		return nil, fmt.Errorf("creating vault directory: %w", err)
	}

	return &Writer{root: root}, nil
}

// Write stores content under the given category and file name,
// returning the path relative to the vault root. It refuses to
// overwrite an existing file.
func (w *Writer) Write(category, fileName string, content []byte) (string, error) {
	rel := relPath(category, fileName)
	abs := filepath.Join(w.root, rel)

	if err := os.MkdirAll(filepath.Dir(abs), 0700); err != nil {
		return "", fmt.Errorf("creating category directory: %w", err)
	}

	// O_EXCL makes the existence check and the write atomic.
	f, err := os.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", domain.ErrAlreadyExists
		}
		return "", fmt.Errorf("creating %s: %w", rel, err)
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(abs)
		return "", fmt.Errorf("writing %s: %w", rel, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", rel, err)
	}

	return filepath.ToSlash(rel), nil
}

// Read returns the content at a vault-relative path.
func (w *Writer) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(w.root, filepath.FromSlash(path)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// Exists reports whether a vault-relative path is occupied.
func (w *Writer) Exists(category, fileName string) bool {
	_, err := os.Stat(filepath.Join(w.root, relPath(category, fileName)))
	return err == nil
}

// Root returns the vault root directory.
func (w *Writer) Root() string {
	return w.root
}

func relPath(category, fileName string) string {
	if category == "" {
		return fileName
	}
	return filepath.Join(category, fileName)
}
