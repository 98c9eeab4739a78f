package classifier

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
)

// MaxFileNameLength caps the combined base name plus extension.
const MaxFileNameLength = 104

// suffix range for category-based names, inclusive.
const (
	suffixMin = 1000
	suffixMax = 9999
)

// IntN is the random source used for category name suffixes. It must
// return a uniform integer in [0, n). The default is safe for
// concurrent callers.
type IntN func(n int) int

// Clock supplies the current time for timestamp fallback names.
type Clock func() time.Time

// Namer produces a ScriptName for a raw script by trying, in order:
// an extracted function name, a category match, and a fallback seed.
// No branch can fail.
type Namer struct {
	rules *RuleTable
	intn  IntN
	now   Clock
}

// Option configures a Namer.
type Option func(*Namer)

// WithIntN sets the random integer source. Tests use this to pin the
// category suffix.
func WithIntN(fn IntN) Option {
	return func(n *Namer) {
		if fn != nil {
			n.intn = fn
		}
	}
}

// WithClock sets the time source for timestamp fallback names.
func WithClock(c Clock) Option {
	return func(n *Namer) {
		if c != nil {
			n.now = c
		}
	}
}

// NewNamer creates a Namer over the given rule table. A nil table
// falls back to the built-in defaults.
func NewNamer(rules *RuleTable, opts ...Option) *Namer {
	if rules == nil {
		rules = DefaultRules()
	}
	n := &Namer{
		rules: rules,
		intn:  rand.IntN,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Name assigns a file name to the raw script. The returned name is
// non-empty, contains only filesystem-legal characters, and its total
// length never exceeds MaxFileNameLength. Two identical inputs may
// receive different names on the category path; the random suffix is
// deliberate, to avoid collisions when many scripts share a category.
func (n *Namer) Name(doc domain.RawScript) domain.ScriptName {
	ext := DetectExtension(doc.Text)

	if fn, ok := ExtractFunctionName(doc.Text); ok {
		if base := Sanitize(fn); base != "" {
			return n.finish(base, ext, "")
		}
	}

	if category, ok := n.rules.Classify(doc.Text); ok {
		suffix := suffixMin + n.intn(suffixMax-suffixMin+1)
		base := Sanitize(fmt.Sprintf("%s_script_%d", category, suffix))
		return n.finish(base, ext, category)
	}

	if base := Sanitize(doc.OriginalName); base != "" {
		return n.finish(base, ext, "")
	}

	// The timestamp seed is always non-empty and survives sanitisation,
	// so this final branch guarantees the non-empty post-condition.
	base := Sanitize("script_" + n.now().Format("20060102_150405"))
	return n.finish(base, ext, "")
}

// finish enforces the combined length cap before assembling the result.
func (n *Namer) finish(base, ext, category string) domain.ScriptName {
	if len(base)+len(ext) > MaxFileNameLength {
		base = strings.Trim(base[:MaxFileNameLength-len(ext)], "_ ")
	}
	return domain.ScriptName{
		Base:      base,
		Extension: ext,
		Category:  category,
	}
}
