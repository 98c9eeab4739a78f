package github

import (
	"context"
	"fmt"
	"sync"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
	"github.com/scriptvault-labs/scriptvault-cli/internal/core/ports/driven"
	"github.com/scriptvault-labs/scriptvault-cli/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// maxBlobSize skips files larger than 1MB; scripts are small.
const maxBlobSize = 1 << 20

// Connector fetches scripts from GitHub repositories and gists.
type Connector struct {
	sourceID string
	config   *Config
	client   *Client
	mu       sync.Mutex
	closed   bool
}

// New creates a new GitHub connector.
func New(sourceID string, cfg *Config, tokenProvider driven.TokenProvider) *Connector {
	return &Connector{
		sourceID: sourceID,
		config:   cfg,
		client:   NewClient(tokenProvider),
	}
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "github"
}

// SourceID returns the source identifier.
func (c *Connector) SourceID() string {
	return c.sourceID
}

// Validate checks the connector is configured and authenticated.
func (c *Connector) Validate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return domain.ErrConnectorClosed
	}
	return c.client.ValidateCredentials(ctx)
}

// Fetch streams matching files from the configured repositories and,
// when enabled, the user's gists.
func (c *Connector) Fetch(ctx context.Context) (<-chan domain.RawScript, <-chan error) {
	scripts := make(chan domain.RawScript)
	errs := make(chan error, 1)

	go func() {
		defer close(scripts)
		defer close(errs)

		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			errs <- domain.ErrConnectorClosed
			return
		}
		c.mu.Unlock()

		for _, repo := range c.config.Repos {
			if ctx.Err() != nil {
				return
			}
			if err := c.fetchRepo(ctx, repo, scripts); err != nil {
				errs <- fmt.Errorf("repo %s: %w", repo, err)
				return
			}
		}

		if c.config.IncludeGists {
			if err := c.fetchGists(ctx, scripts); err != nil {
				errs <- fmt.Errorf("gists: %w", err)
			}
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

// fetchRepo streams matching blobs from one repository's default branch.
func (c *Connector) fetchRepo(ctx context.Context, repo string, out chan<- domain.RawScript) error {
	owner, name := splitRepo(repo)

	repository, err := c.client.GetRepository(ctx, owner, name)
	if err != nil {
		return err
	}

	tree, err := c.client.GetTree(ctx, owner, name, repository.GetDefaultBranch())
	if err != nil {
		return err
	}

	logger.Debug("github: %s has %d tree entries", repo, len(tree.Entries))

	for _, entry := range tree.Entries {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if entry.GetType() != "blob" || entry.GetSize() > maxBlobSize {
			continue
		}
		path := entry.GetPath()
		if !matchesPatterns(path, c.config.FilePatterns) {
			continue
		}

		content, err := c.client.GetBlobContent(ctx, owner, name, entry.GetSHA())
		if err != nil {
			logger.Warn("github: skipping %s/%s: %v", repo, path, err)
			continue
		}

		raw := domain.RawScript{
			SourceID:     c.sourceID,
			URI:          fmt.Sprintf("github://%s/blob/%s/%s", repo, repository.GetDefaultBranch(), path),
			OriginalName: path,
			Text:         content,
			Metadata: map[string]any{
				"repo": repo,
				"sha":  entry.GetSHA(),
			},
		}

		select {
		case out <- raw:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// fetchGists streams matching files from the user's gists.
func (c *Connector) fetchGists(ctx context.Context, out chan<- domain.RawScript) error {
	gists, err := c.client.ListGists(ctx)
	if err != nil {
		return err
	}

	for _, stub := range gists {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		// The list endpoint omits content; fetch each gist in full.
		gist, err := c.client.GetGist(ctx, stub.GetID())
		if err != nil {
			logger.Warn("github: skipping gist %s: %v", stub.GetID(), err)
			continue
		}

		for name, f := range gist.Files {
			fileName := string(name)
			if !matchesPatterns(fileName, c.config.FilePatterns) {
				continue
			}

			raw := domain.RawScript{
				SourceID:     c.sourceID,
				URI:          gist.GetHTMLURL(),
				OriginalName: fileName,
				Text:         f.GetContent(),
				Metadata: map[string]any{
					"gist_id":     gist.GetID(),
					"description": gist.GetDescription(),
				},
			}

			select {
			case out <- raw:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return nil
}
