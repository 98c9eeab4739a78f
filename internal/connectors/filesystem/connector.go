// Package filesystem implements the local directory connector.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
	"github.com/scriptvault-labs/scriptvault-cli/internal/core/ports/driven"
	"github.com/scriptvault-labs/scriptvault-cli/internal/logger"
)

// Ensure Connector implements the interfaces.
var (
	_ driven.Connector = (*Connector)(nil)
	_ driven.Watcher   = (*Connector)(nil)
)

// maxFileSize skips files larger than 1MB; scripts are small.
const maxFileSize = 1 << 20

// DefaultExtensions are the script file extensions collected when the
// source config does not override them.
var DefaultExtensions = []string{".ps1", ".py", ".sh", ".js", ".bat", ".psm1"}

// Connector fetches scripts from a local directory tree.
type Connector struct {
	sourceID   string
	root       string
	extensions []string
	mu         sync.Mutex
	closed     bool
}

// New creates a filesystem connector rooted at the given directory.
// Empty extensions fall back to DefaultExtensions.
func New(sourceID, root string, extensions []string) *Connector {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	return &Connector{
		sourceID:   sourceID,
		root:       root,
		extensions: extensions,
	}
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "filesystem"
}

// SourceID returns the source identifier.
func (c *Connector) SourceID() string {
	return c.sourceID
}

// Validate checks the root directory exists and is readable.
func (c *Connector) Validate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return domain.ErrConnectorClosed
	}

	info, err := os.Stat(c.root)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, c.root)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", domain.ErrInvalidInput, c.root)
	}
	return nil
}

// Fetch walks the directory tree and streams matching files.
func (c *Connector) Fetch(ctx context.Context) (<-chan domain.RawScript, <-chan error) {
	scripts := make(chan domain.RawScript)
	errs := make(chan error, 1)

	go func() {
		defer close(scripts)
		defer close(errs)

		err := filepath.WalkDir(c.root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if d.IsDir() || !c.wantFile(path) {
				return nil
			}

			raw, err := c.readScript(path)
			if err != nil {
				logger.Warn("skipping %s: %v", path, err)
				return nil
			}

			select {
			case scripts <- raw:
			case <-ctx.Done():
				return ctx.Err()
			}
			return nil
		})
		if err != nil && ctx.Err() == nil {
			errs <- fmt.Errorf("walking %s: %w", c.root, err)
		}
	}()

	return scripts, errs
}

// Close releases resources.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// wantFile reports whether a path matches the configured extensions.
func (c *Connector) wantFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range c.extensions {
		if ext == want {
			return true
		}
	}
	return false
}

// readScript loads a file into a RawScript, rejecting oversized files.
func (c *Connector) readScript(path string) (domain.RawScript, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.RawScript{}, err
	}
	if info.Size() > maxFileSize {
		return domain.RawScript{}, fmt.Errorf("%w: file too large (%d bytes)", domain.ErrInvalidInput, info.Size())
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return domain.RawScript{}, err
	}

	return domain.RawScript{
		SourceID:     c.sourceID,
		URI:          "file://" + path,
		OriginalName: filepath.Base(path),
		Text:         string(content),
	}, nil
}
