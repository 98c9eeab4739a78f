package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/scriptvault-labs/scriptvault-cli/internal/reports"
)

var reportDir string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write CSV and Markdown inventory reports",
	Long: `Writes two inventory reports into the output directory:
inventory.csv with every stored script and inventory.md with a
per-category summary.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportDir, "dir", "d", ".", "output directory")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	if vaultService == nil {
		return errors.New("vault service not configured")
	}

	scripts, err := vaultService.List(cmd.Context(), "")
	if err != nil {
		return fmt.Errorf("listing scripts: %w", err)
	}

	if err := os.MkdirAll(reportDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	csvPath := filepath.Join(reportDir, "inventory.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", csvPath, err)
	}
	defer csvFile.Close()
	if err := reports.WriteCSV(csvFile, scripts); err != nil {
		return fmt.Errorf("writing CSV report: %w", err)
	}

	mdPath := filepath.Join(reportDir, "inventory.md")
	mdFile, err := os.Create(mdPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", mdPath, err)
	}
	defer mdFile.Close()
	if err := reports.WriteMarkdown(mdFile, scripts, time.Now()); err != nil {
		return fmt.Errorf("writing Markdown report: %w", err)
	}

	cmd.Print(reports.ConsoleSummary(scripts))
	cmd.Printf("\nReports written to %s and %s\n", csvPath, mdPath)
	return nil
}
