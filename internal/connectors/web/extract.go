package web

import (
	"html"
	"regexp"
	"strings"
)

// minBlockLength filters out inline snippets; anything shorter is
// unlikely to be a complete script.
const minBlockLength = 40

// Pre-compiled expressions for code block extraction.
var (
	preBlock  = regexp.MustCompile(`(?is)<pre[^>]*>(.*?)</pre>`)
	codeBlock = regexp.MustCompile(`(?is)<code[^>]*>(.*?)</code>`)
	anyTag    = regexp.MustCompile(`(?s)<[^>]+>`)
)

// ExtractCodeBlocks pulls candidate script text out of an HTML page.
// <pre> blocks are preferred; <code> blocks are only consulted when no
// <pre> blocks exist, since script-sharing pages typically nest code
// inside pre. Entities are decoded and residual tags stripped.
func ExtractCodeBlocks(page string) []string {
	matches := preBlock.FindAllStringSubmatch(page, -1)
	if len(matches) == 0 {
		matches = codeBlock.FindAllStringSubmatch(page, -1)
	}

	var blocks []string
	for _, m := range matches {
		text := html.UnescapeString(anyTag.ReplaceAllString(m[1], ""))
		text = strings.TrimSpace(text)
		if len(text) >= minBlockLength {
			blocks = append(blocks, text)
		}
	}
	return blocks
}
