package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_ThresholdMet(t *testing.T) {
	table := DefaultRules()

	text := "Get-ADUser -Filter * ; Get-ADGroup -Identity Admins"
	category, ok := table.Classify(text)
	require.True(t, ok)
	assert.Equal(t, "ActiveDirectory", category)
}

func TestClassify_SingleKeywordBelowThreshold(t *testing.T) {
	table := DefaultRules()

	_, ok := table.Classify("Get-ADUser -Filter * alone is not enough")
	assert.False(t, ok)
}

func TestClassify_NoMatch(t *testing.T) {
	table := DefaultRules()

	_, ok := table.Classify("entirely unrelated prose")
	assert.False(t, ok)
}

func TestClassify_CaseSensitive(t *testing.T) {
	table := DefaultRules()

	// Lowercased cmdlet names must not count.
	_, ok := table.Classify("get-aduser and get-adgroup")
	assert.False(t, ok)
}

func TestClassify_FirstMatchWinsOverHigherScore(t *testing.T) {
	// The second rule scores higher, but the first rule also meets the
	// threshold and is declared earlier, so it wins.
	table := NewRuleTable([]CategoryRule{
		{Category: "First", Keywords: []string{"alpha", "beta", "gamma"}},
		{Category: "Second", Keywords: []string{"one", "two", "three"}},
	})

	text := "alpha beta one two three"
	category, ok := table.Classify(text)
	require.True(t, ok)
	assert.Equal(t, "First", category)
}

func TestNewRuleTable_CopiesInput(t *testing.T) {
	rules := []CategoryRule{
		{Category: "Stable", Keywords: []string{"foo", "bar"}},
	}
	table := NewRuleTable(rules)

	rules[0] = CategoryRule{Category: "Mutated"}

	got := table.Rules()
	require.Len(t, got, 1)
	assert.Equal(t, "Stable", got[0].Category)
}
