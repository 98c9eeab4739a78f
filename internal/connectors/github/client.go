// Package github implements the GitHub repository and gist connector.
package github

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
	"github.com/scriptvault-labs/scriptvault-cli/internal/core/ports/driven"
)

// defaultTimeout is the HTTP request timeout.
const defaultTimeout = 30 * time.Second

// Client wraps the go-github client with rate limiting and content
// helpers.
type Client struct {
	gh            *gh.Client
	tokenProvider driven.TokenProvider
	limiter       *rateLimiter
}

// NewClient creates a GitHub API client with a token provider.
func NewClient(tokenProvider driven.TokenProvider) *Client {
	return &Client{
		tokenProvider: tokenProvider,
		limiter:       newRateLimiter(),
	}
}

// ensureClient initialises the go-github client lazily, so the token
// is only fetched when a request is actually made.
func (c *Client) ensureClient(ctx context.Context) error {
	if c.gh != nil {
		return nil
	}

	token, err := c.tokenProvider.GetToken(ctx)
	if err != nil {
		return fmt.Errorf("get token: %w", err)
	}
	if token == "" {
		return domain.ErrAuthRequired
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = defaultTimeout
	c.gh = gh.NewClient(tc)
	return nil
}

// ValidateCredentials makes a lightweight API call to verify the token.
func (c *Client) ValidateCredentials(ctx context.Context) error {
	if err := c.ensureClient(ctx); err != nil {
		return err
	}
	if err := c.limiter.wait(ctx); err != nil {
		return err
	}

	_, resp, err := c.gh.Users.Get(ctx, "")
	c.limiter.update(resp)
	if err != nil {
		if resp != nil && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
			return domain.ErrAuthInvalid
		}
		return fmt.Errorf("validating credentials: %w", err)
	}
	return nil
}

// GetTree fetches the full recursive tree for a repository branch.
func (c *Client) GetTree(ctx context.Context, owner, repo, branch string) (*gh.Tree, error) {
	if err := c.ensureClient(ctx); err != nil {
		return nil, err
	}
	if err := c.limiter.wait(ctx); err != nil {
		return nil, err
	}

	tree, resp, err := c.gh.Git.GetTree(ctx, owner, repo, branch, true)
	c.limiter.update(resp)
	if err != nil {
		return nil, fmt.Errorf("getting tree %s/%s@%s: %w", owner, repo, branch, err)
	}
	return tree, nil
}

// GetRepository fetches repository metadata, used for the default branch.
func (c *Client) GetRepository(ctx context.Context, owner, repo string) (*gh.Repository, error) {
	if err := c.ensureClient(ctx); err != nil {
		return nil, err
	}
	if err := c.limiter.wait(ctx); err != nil {
		return nil, err
	}

	repository, resp, err := c.gh.Repositories.Get(ctx, owner, repo)
	c.limiter.update(resp)
	if err != nil {
		return nil, fmt.Errorf("getting repository %s/%s: %w", owner, repo, err)
	}
	return repository, nil
}

// GetBlobContent fetches and decodes a blob's content.
func (c *Client) GetBlobContent(ctx context.Context, owner, repo, sha string) (string, error) {
	if err := c.ensureClient(ctx); err != nil {
		return "", err
	}
	if err := c.limiter.wait(ctx); err != nil {
		return "", err
	}

	blob, resp, err := c.gh.Git.GetBlob(ctx, owner, repo, sha)
	c.limiter.update(resp)
	if err != nil {
		return "", fmt.Errorf("getting blob %s: %w", sha, err)
	}

	if blob.GetEncoding() == "base64" {
		decoded, err := base64.StdEncoding.DecodeString(blob.GetContent())
		if err != nil {
			return "", fmt.Errorf("decoding blob %s: %w", sha, err)
		}
		return string(decoded), nil
	}
	return blob.GetContent(), nil
}

// ListGists returns the authenticated user's gists, paginated.
func (c *Client) ListGists(ctx context.Context) ([]*gh.Gist, error) {
	if err := c.ensureClient(ctx); err != nil {
		return nil, err
	}

	var all []*gh.Gist
	opts := &gh.GistListOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	}

	for {
		if err := c.limiter.wait(ctx); err != nil {
			return nil, err
		}

		gists, resp, err := c.gh.Gists.List(ctx, "", opts)
		c.limiter.update(resp)
		if err != nil {
			return nil, fmt.Errorf("listing gists: %w", err)
		}

		all = append(all, gists...)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return all, nil
}

// GetGist fetches a single gist with file contents populated.
func (c *Client) GetGist(ctx context.Context, id string) (*gh.Gist, error) {
	if err := c.ensureClient(ctx); err != nil {
		return nil, err
	}
	if err := c.limiter.wait(ctx); err != nil {
		return nil, err
	}

	gist, resp, err := c.gh.Gists.Get(ctx, id)
	c.limiter.update(resp)
	if err != nil {
		return nil, fmt.Errorf("getting gist %s: %w", id, err)
	}
	return gist, nil
}
