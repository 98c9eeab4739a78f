package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listCategory string
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored scripts",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "filter by category")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if vaultService == nil {
		return errors.New("vault service not configured")
	}

	scripts, err := vaultService.List(cmd.Context(), listCategory)
	if err != nil {
		return fmt.Errorf("listing scripts: %w", err)
	}

	if listJSON {
		data, err := json.MarshalIndent(scripts, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal scripts: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(scripts) == 0 {
		cmd.Println("No scripts stored.")
		return nil
	}

	for i := range scripts {
		category := scripts[i].Category
		if category == "" {
			category = "-"
		}
		cmd.Printf("  %s  %-40s %-18s %s\n",
			scripts[i].ID, scripts[i].Name, category, scripts[i].URI)
	}
	cmd.Printf("\n%d scripts.\n", len(scripts))
	return nil
}
