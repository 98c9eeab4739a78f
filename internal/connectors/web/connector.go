// Package web implements the generic HTTP page connector. It fetches
// configured URLs and treats each response as candidate script text;
// HTML responses are reduced to their code blocks first.
package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
	"github.com/scriptvault-labs/scriptvault-cli/internal/core/ports/driven"
	"github.com/scriptvault-labs/scriptvault-cli/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

const (
	// requestTimeout bounds each page fetch.
	requestTimeout = 30 * time.Second

	// fetchRate throttles page fetches to one per second.
	fetchRate = 1.0

	// maxBodySize caps response bodies at 5MB.
	maxBodySize = 5 << 20

	// userAgent identifies the scraper politely.
	userAgent = "scriptvault-cli (+https://github.com/scriptvault-labs/scriptvault-cli)"
)

// Connector fetches scripts from a configured list of URLs.
type Connector struct {
	sourceID string
	urls     []string
	client   *http.Client
	limiter  *rate.Limiter
	mu       sync.Mutex
	closed   bool
}

// New creates a web connector over the given URLs.
func New(sourceID string, urls []string) *Connector {
	return &Connector{
		sourceID: sourceID,
		urls:     urls,
		client:   &http.Client{Timeout: requestTimeout},
		limiter:  rate.NewLimiter(rate.Limit(fetchRate), 1),
	}
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "web"
}

// SourceID returns the source identifier.
func (c *Connector) SourceID() string {
	return c.sourceID
}

// Validate checks the URL list parses.
func (c *Connector) Validate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return domain.ErrConnectorClosed
	}
	if len(c.urls) == 0 {
		return fmt.Errorf("%w: web source needs at least one URL", domain.ErrInvalidInput)
	}
	for _, u := range c.urls {
		parsed, err := url.Parse(u)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			return fmt.Errorf("%w: %q is not an http(s) URL", domain.ErrInvalidInput, u)
		}
	}
	return nil
}

// Fetch retrieves each URL in turn, streaming the candidate scripts.
// Individual page failures are logged and skipped.
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

		for _, pageURL := range c.urls {
			if err := c.limiter.Wait(ctx); err != nil {
				return
			}

			candidates, err := c.fetchPage(ctx, pageURL)
			if err != nil {
				logger.Warn("web: skipping %s: %v", pageURL, err)
				continue
			}

			for _, raw := range candidates {
				select {
				case scripts <- raw:
				case <-ctx.Done():
					return
				}
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
	c.client.CloseIdleConnections()
	return nil
}

// fetchPage retrieves one URL and converts it to candidate scripts.
// HTML pages may yield several (one per code block); anything else
// yields one.
func (c *Connector) fetchPage(ctx context.Context, pageURL string) ([]domain.RawScript, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, domain.ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, err
	}

	originalName := path.Base(req.URL.Path)
	if originalName == "/" || originalName == "." {
		originalName = ""
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "text/html") {
		return c.fromHTML(pageURL, originalName, string(body)), nil
	}

	return []domain.RawScript{{
		SourceID:     c.sourceID,
		URI:          pageURL,
		OriginalName: originalName,
		Text:         string(body),
	}}, nil
}

// fromHTML extracts code blocks as individual candidates. A page with
// no code blocks is not a script and yields nothing.
func (c *Connector) fromHTML(pageURL, originalName, body string) []domain.RawScript {
	blocks := ExtractCodeBlocks(body)
	logger.Debug("web: %s yielded %d code blocks", pageURL, len(blocks))

	out := make([]domain.RawScript, 0, len(blocks))
	for i, block := range blocks {
		out = append(out, domain.RawScript{
			SourceID:     c.sourceID,
			URI:          fmt.Sprintf("%s#code-%d", pageURL, i+1),
			OriginalName: originalName,
			Text:         block,
		})
	}
	return out
}
