package classifier

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
)

// fixedClock returns a deterministic time for fallback names.
func fixedClock() time.Time {
	return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
}

func TestNamer_FunctionNameWins(t *testing.T) {
	n := NewNamer(nil)

	doc := domain.RawScript{
		Text: "function Get-ADUserInventory {\n  Get-ADUser -Filter *\n  Get-ADGroup\n}",
	}
	got := n.Name(doc)

	assert.True(t, strings.HasPrefix(got.Base, "Get_ADUserInventory"), "got %q", got.Base)
	assert.Equal(t, ".ps1", got.Extension)
	assert.Empty(t, got.Category)
}

func TestNamer_CategoryPath(t *testing.T) {
	n := NewNamer(nil, WithIntN(func(int) int { return 234 }))

	doc := domain.RawScript{
		Text: "Get-ADUser -Filter *\nGet-ADGroup -Identity Admins",
	}
	got := n.Name(doc)

	assert.Equal(t, "ActiveDirectory_script_1234", got.Base)
	assert.Equal(t, "ActiveDirectory", got.Category)
}

func TestNamer_CategorySuffixRange(t *testing.T) {
	n := NewNamer(nil)
	pattern := regexp.MustCompile(`^ActiveDirectory_script_\d{4}$`)

	doc := domain.RawScript{
		Text: "Get-ADUser ; Get-ADGroup",
	}
	for range 50 {
		got := n.Name(doc)
		assert.Regexp(t, pattern, got.Base)
	}
}

func TestNamer_OriginalNameFallback(t *testing.T) {
	n := NewNamer(nil)

	doc := domain.RawScript{
		OriginalName: "my backup helper.old",
		Text:         "nothing recognisable here",
	}
	got := n.Name(doc)

	assert.Equal(t, "my_backup_helper.old", got.Base)
	assert.Equal(t, ".txt", got.Extension)
}

func TestNamer_TimestampFallback(t *testing.T) {
	n := NewNamer(nil, WithClock(fixedClock))

	got := n.Name(domain.RawScript{Text: "no patterns at all"})

	assert.Equal(t, "script_20250314_092653", got.Base)
	assert.Equal(t, "script_20250314_092653.txt", got.FileName())
}

func TestNamer_UnsanitisableOriginalNameFallsThrough(t *testing.T) {
	n := NewNamer(nil, WithClock(fixedClock))

	doc := domain.RawScript{
		OriginalName: `\/:*?`,
		Text:         "no patterns",
	}
	got := n.Name(doc)

	assert.Equal(t, "script_20250314_092653", got.Base)
}

func TestNamer_PostConditions(t *testing.T) {
	n := NewNamer(nil)

	inputs := []domain.RawScript{
		{},
		{Text: ""},
		{Text: strings.Repeat("x", 10000)},
		{Text: "function " + strings.Repeat("Get-", 1) + strings.Repeat("A", 200) + " {}"},
		{Text: "<html>" + strings.Repeat("junk ", 50)},
		{OriginalName: strings.Repeat("n", 300), Text: "plain"},
	}

	for i, doc := range inputs {
		got := n.Name(doc)
		require.NotEmpty(t, got.Base, "input %d", i)
		assert.LessOrEqual(t, len(got.FileName()), MaxFileNameLength, "input %d", i)
		for _, r := range got.Base {
			assert.True(t, isLegal(r), "input %d: illegal rune %q", i, r)
		}
	}
}

func TestNamer_ExtensionAppendedOnEveryBranch(t *testing.T) {
	n := NewNamer(nil, WithClock(fixedClock))

	tests := []struct {
		name string
		doc  domain.RawScript
		want string
	}{
		{"function branch", domain.RawScript{Text: "function Get-Data { }"}, ".ps1"},
		{"category branch", domain.RawScript{Text: "#!/usr/bin/env python\nGet-ADUser Get-ADGroup"}, ".py"},
		{"fallback branch", domain.RawScript{Text: "<html>"}, ".html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Name(tt.doc)
			assert.Equal(t, tt.want, got.Extension)
			assert.True(t, strings.HasSuffix(got.FileName(), tt.want))
		})
	}
}
