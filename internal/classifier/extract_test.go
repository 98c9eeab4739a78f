package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFunctionName_Found(t *testing.T) {
	text := `
# Inventory helper
function Get-ADUserInventory {
    param([string]$Domain)
}
`
	name, ok := ExtractFunctionName(text)
	require.True(t, ok)
	assert.Equal(t, "Get_ADUserInventory", name)
}

func TestExtractFunctionName_FirstMatchWins(t *testing.T) {
	text := `
function Get-First { }
function Get-Second { }
`
	name, ok := ExtractFunctionName(text)
	require.True(t, ok)
	assert.Equal(t, "Get_First", name)
}

func TestExtractFunctionName_NoMatch(t *testing.T) {
	_, ok := ExtractFunctionName("just some prose without declarations")
	assert.False(t, ok)
}

func TestExtractFunctionName_NotHyphenated(t *testing.T) {
	// Plain identifiers are not the verb-noun convention.
	_, ok := ExtractFunctionName("function doThing() { return 1; }")
	assert.False(t, ok)
}

func TestExtractFunctionName_TooShort(t *testing.T) {
	// "A_B" is three characters after normalisation, below the bar.
	_, ok := ExtractFunctionName("function A-B { }")
	assert.False(t, ok)
}
