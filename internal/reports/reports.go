// Package reports renders vault inventory reports as CSV and Markdown.
package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
)

// uncategorisedLabel names the bucket for scripts without a category.
const uncategorisedLabel = "Uncategorised"

// WriteCSV writes the full script inventory as CSV.
func WriteCSV(w io.Writer, scripts []domain.Script) error {
	cw := csv.NewWriter(w)

	header := []string{"Name", "Category", "Extension", "Source", "URI", "SizeBytes", "CreatedAt"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, s := range scripts {
		record := []string{
			s.Name,
			displayCategory(s.Category),
			s.Extension,
			s.SourceID,
			s.URI,
			strconv.FormatInt(s.Size, 10),
			s.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing record for %s: %w", s.Name, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteMarkdown writes a human-readable inventory summary: totals,
// a per-category table and the most recent additions.
func WriteMarkdown(w io.Writer, scripts []domain.Script, generatedAt time.Time) error {
	var total int64
	counts := make(map[string]int)
	for _, s := range scripts {
		counts[displayCategory(s.Category)]++
		total += s.Size
	}

	categories := make([]string, 0, len(counts))
	for c := range counts {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	fmt.Fprintf(w, "# ScriptVault Inventory\n\n")
	fmt.Fprintf(w, "Generated: %s\n\n", generatedAt.UTC().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "## Summary\n\n")
	fmt.Fprintf(w, "- Scripts stored: %d\n", len(scripts))
	fmt.Fprintf(w, "- Categories: %d\n", len(counts))
	fmt.Fprintf(w, "- Total size: %d bytes\n\n", total)

	fmt.Fprintf(w, "## By Category\n\n")
	fmt.Fprintf(w, "| Category | Scripts |\n")
	fmt.Fprintf(w, "|----------|--------:|\n")
	for _, c := range categories {
		fmt.Fprintf(w, "| %s | %d |\n", c, counts[c])
	}

	fmt.Fprintf(w, "\n## Recent Additions\n\n")
	for _, s := range recent(scripts, 10) {
		fmt.Fprintf(w, "- `%s` (%s, %s)\n", s.Name, displayCategory(s.Category),
			s.CreatedAt.UTC().Format("2006-01-02"))
	}

	return nil
}

// ConsoleSummary returns the short per-category summary printed after
// a report or scrape run.
func ConsoleSummary(scripts []domain.Script) string {
	counts := make(map[string]int)
	for _, s := range scripts {
		counts[displayCategory(s.Category)]++
	}

	categories := make([]string, 0, len(counts))
	for c := range counts {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	out := fmt.Sprintf("%d scripts in %d categories\n", len(scripts), len(counts))
	for _, c := range categories {
		out += fmt.Sprintf("  %-20s %d\n", c, counts[c])
	}
	return out
}

// recent returns up to n scripts, newest first.
func recent(scripts []domain.Script, n int) []domain.Script {
	sorted := make([]domain.Script, len(scripts))
	copy(sorted, scripts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func displayCategory(category string) string {
	if category == "" {
		return uncategorisedLabel
	}
	return category
}
