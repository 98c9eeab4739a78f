package github

import (
	"fmt"
	"path"
	"strings"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
)

// DefaultFilePatterns are the glob patterns collected when the source
// config does not override them.
var DefaultFilePatterns = []string{"*.ps1", "*.psm1", "*.py", "*.sh", "*.js", "*.bat"}

// Config holds the GitHub connector settings.
type Config struct {
	// Repos lists repositories to scrape as "owner/name".
	Repos []string

	// IncludeGists also fetches the authenticated user's gists.
	IncludeGists bool

	// FilePatterns are glob patterns matched against file base names.
	FilePatterns []string
}

// NewConfig builds a Config from a source's generic config map.
func NewConfig(raw map[string]any) (*Config, error) {
	cfg := &Config{
		FilePatterns: DefaultFilePatterns,
	}

	for _, r := range stringSlice(raw["repos"]) {
		if !strings.Contains(r, "/") {
			return nil, fmt.Errorf("%w: repo %q must be \"owner/name\"", domain.ErrInvalidInput, r)
		}
		cfg.Repos = append(cfg.Repos, r)
	}
	if gists, ok := raw["gists"].(bool); ok {
		cfg.IncludeGists = gists
	}
	if patterns := stringSlice(raw["patterns"]); len(patterns) > 0 {
		cfg.FilePatterns = patterns
	}

	if len(cfg.Repos) == 0 && !cfg.IncludeGists {
		return nil, fmt.Errorf("%w: github source needs repos or gists", domain.ErrInvalidInput)
	}
	return cfg, nil
}

// stringSlice coerces a config value that may arrive as []string
// (from flags) or []any (from decoded JSON).
func stringSlice(v any) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []any:
		var out []string
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// splitRepo splits "owner/name" into its parts.
func splitRepo(repo string) (owner, name string) {
	owner, name, _ = strings.Cut(repo, "/")
	return owner, name
}

// matchesPatterns reports whether a file path's base name matches any
// configured pattern.
func matchesPatterns(filePath string, patterns []string) bool {
	base := path.Base(filePath)
	for _, pattern := range patterns {
		if ok, err := path.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}
