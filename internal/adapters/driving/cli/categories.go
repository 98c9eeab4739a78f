package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show per-category script counts",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	if vaultService == nil {
		return errors.New("vault service not configured")
	}

	counts, err := vaultService.Categories(cmd.Context())
	if err != nil {
		return fmt.Errorf("counting categories: %w", err)
	}

	if len(counts) == 0 {
		cmd.Println("No scripts stored.")
		return nil
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		label := name
		if label == "" {
			label = "(uncategorised)"
		}
		cmd.Printf("  %-20s %d\n", label, counts[name])
	}
	return nil
}
