package reports

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
)

func sampleScripts() []domain.Script {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []domain.Script{
		{
			ID:        "1",
			SourceID:  "src-1",
			Name:      "Get_ADUser_Report.ps1",
			Category:  "ActiveDirectory",
			Extension: ".ps1",
			URI:       "https://example.com/scripts#code-1",
			Size:      420,
			CreatedAt: base,
		},
		{
			ID:        "2",
			SourceID:  "src-1",
			Name:      "backup_rotate.py",
			Category:  "Backup",
			Extension: ".py",
			URI:       "https://example.com/scripts#code-2",
			Size:      130,
			CreatedAt: base.Add(time.Hour),
		},
		{
			ID:        "3",
			SourceID:  "src-2",
			Name:      "notes.txt",
			Category:  "",
			Extension: ".txt",
			URI:       "file:///tmp/notes.txt",
			Size:      12,
			CreatedAt: base.Add(2 * time.Hour),
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleScripts()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, []string{"Name", "Category", "Extension", "Source", "URI", "SizeBytes", "CreatedAt"}, records[0])
	assert.Equal(t, "Get_ADUser_Report.ps1", records[1][0])
	assert.Equal(t, "ActiveDirectory", records[1][1])
	assert.Equal(t, "420", records[1][5])
	assert.Equal(t, "2025-06-01T12:00:00Z", records[1][6])
	assert.Equal(t, "Uncategorised", records[3][1])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	generated := time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC)
	require.NoError(t, WriteMarkdown(&buf, sampleScripts(), generated))

	out := buf.String()
	assert.Contains(t, out, "# ScriptVault Inventory")
	assert.Contains(t, out, "Generated: 2025-06-02 08:30:00")
	assert.Contains(t, out, "- Scripts stored: 3")
	assert.Contains(t, out, "- Total size: 562 bytes")
	assert.Contains(t, out, "| ActiveDirectory | 1 |")
	assert.Contains(t, out, "| Uncategorised | 1 |")

	// Newest first in recent additions.
	notesIdx := strings.Index(out, "`notes.txt`")
	adIdx := strings.Index(out, "`Get_ADUser_Report.ps1`")
	require.NotEqual(t, -1, notesIdx)
	require.NotEqual(t, -1, adIdx)
	assert.Less(t, notesIdx, adIdx)
}

func TestConsoleSummary(t *testing.T) {
	out := ConsoleSummary(sampleScripts())
	assert.Contains(t, out, "3 scripts in 3 categories")
	assert.Contains(t, out, "Backup")
	assert.Contains(t, out, "Uncategorised")
}

func TestConsoleSummary_Empty(t *testing.T) {
	out := ConsoleSummary(nil)
	assert.Contains(t, out, "0 scripts in 0 categories")
}
