package classifier

import "strings"

// MaxBaseLength is the maximum length of a sanitised base name.
const MaxBaseLength = 100

// Sanitize reduces an arbitrary string to a filesystem-safe base name.
// Runs of whitespace become a single underscore, characters outside
// [A-Za-z0-9_.-] are dropped, leading and trailing underscores and
// spaces are removed, and the result is capped at MaxBaseLength.
//
// Sanitize is idempotent: applying it to its own output is a no-op.
// An empty or all-illegal input yields an empty string; callers must
// fall back to a generated name in that case.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inSpace := false
	for _, r := range s {
		if isSpace(r) {
			inSpace = true
			continue
		}
		if inSpace {
			b.WriteByte('_')
			inSpace = false
		}
		if isLegal(r) {
			b.WriteRune(r)
		}
	}

	out := strings.Trim(b.String(), "_ ")
	if len(out) > MaxBaseLength {
		// Truncation can expose a trailing underscore; trim again so
		// the function stays idempotent.
		out = strings.Trim(out[:MaxBaseLength], "_ ")
	}
	return out
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isLegal(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_' || r == '-' || r == '.':
		return true
	}
	return false
}
