// Package cli implements the scriptvault command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/ports/driven"
	"github.com/scriptvault-labs/scriptvault-cli/internal/core/ports/driving"
	"github.com/scriptvault-labs/scriptvault-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services wired in by main before Execute runs.
var (
	vaultService driving.VaultService
	sourceStore  driven.SourceStore
	configStore  driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "scriptvault",
	Short: "Scrape, classify and store scripts from the web and beyond",
	Long: `ScriptVault collects script files from websites, GitHub repositories
and local directories, names them by their content, and stores them in a
categorised vault.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Deps carries everything the commands need.
type Deps struct {
	Vault       driving.VaultService
	SourceStore driven.SourceStore
	ConfigStore driven.ConfigStore
	Version     string
}

// SetDeps wires the services into the command tree.
func SetDeps(deps Deps) {
	vaultService = deps.Vault
	sourceStore = deps.SourceStore
	configStore = deps.ConfigStore
	if deps.Version != "" {
		version = deps.Version
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
