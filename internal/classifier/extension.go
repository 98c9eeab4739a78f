package classifier

import "strings"

// FallbackExtension is used when no language signature matches.
const FallbackExtension = ".txt"

// signature pairs a detection check with the extension it implies.
type signature struct {
	match func(string) bool
	ext   string
}

// signatures are checked in fixed priority order:
//
//	1. Python   - shebang, or "import sys" together with "def main"
//	2. Node     - a require( call
//	3. PowerShell - the "function " keyword
//	4. HTML     - an "<html" tag
//
// The first match wins, so text carrying both a Python shebang and an
// HTML tag resolves to ".py".
var signatures = []signature{
	{isPython, ".py"},
	{func(s string) bool { return strings.Contains(s, "require(") }, ".js"},
	{func(s string) bool { return strings.Contains(s, "function ") }, ".ps1"},
	{func(s string) bool { return strings.Contains(s, "<html") }, ".html"},
}

func isPython(s string) bool {
	if strings.Contains(s, "#!/usr/bin/env python") || strings.Contains(s, "#!/usr/bin/python") {
		return true
	}
	return strings.Contains(s, "import sys") && strings.Contains(s, "def main")
}

// DetectExtension inspects text for language signature substrings and
// returns the implied extension, or FallbackExtension when nothing
// matches. The result includes the leading dot.
func DetectExtension(text string) string {
	for _, sig := range signatures {
		if sig.match(text) {
			return sig.ext
		}
	}
	return FallbackExtension
}
