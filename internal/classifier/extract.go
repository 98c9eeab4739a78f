package classifier

import (
	"regexp"
	"strings"
)

// minFunctionNameLength is the minimum identifier length, after
// normalisation, for an extracted function name to be usable.
const minFunctionNameLength = 3

// functionDeclPattern matches a named callable declaration with a
// hyphenated verb-noun identifier, the convention in PowerShell
// scripting (e.g. "function Get-ADUserInventory").
var functionDeclPattern = regexp.MustCompile(`function\s+([A-Za-z]+-[A-Za-z][A-Za-z0-9]*)`)

// ExtractFunctionName scans text for the first verb-noun function
// declaration and proposes it as a name with hyphens replaced by
// underscores. The second return is false when no declaration is found
// or the identifier is too short; that is an absence signal, not an
// error. Only the earliest match is considered.
func ExtractFunctionName(text string) (string, bool) {
	m := functionDeclPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}

	name := strings.ReplaceAll(m[1], "-", "_")
	if len(name) <= minFunctionNameLength {
		return "", false
	}
	return name, true
}
