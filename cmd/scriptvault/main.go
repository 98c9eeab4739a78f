// Command scriptvault is the ScriptVault CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/scriptvault-labs/scriptvault-cli/internal/adapters/driven/config/file"
	"github.com/scriptvault-labs/scriptvault-cli/internal/adapters/driven/storage/sqlite"
	"github.com/scriptvault-labs/scriptvault-cli/internal/adapters/driven/vaultfs"
	"github.com/scriptvault-labs/scriptvault-cli/internal/adapters/driving/cli"
	"github.com/scriptvault-labs/scriptvault-cli/internal/classifier"
	"github.com/scriptvault-labs/scriptvault-cli/internal/core/services"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	// An empty rules path loads the built-in rule table.
	rules, err := file.LoadRules(configStore.GetString("classifier.rules"))
	if err != nil {
		return fmt.Errorf("loading classification rules: %w", err)
	}

	store, err := sqlite.NewStore(configStore.GetString("storage.dir"))
	if err != nil {
		return fmt.Errorf("opening metadata store: %w", err)
	}
	defer store.Close()

	writer, err := vaultfs.NewWriter(configStore.GetString("vault.dir"))
	if err != nil {
		return fmt.Errorf("opening vault: %w", err)
	}

	namer := classifier.NewNamer(rules)
	vault := services.NewVaultService(namer, writer, store.ScriptStore())

	cli.SetDeps(cli.Deps{
		Vault:       vault,
		SourceStore: store.SourceStore(),
		ConfigStore: configStore,
		Version:     version,
	})

	return cli.Execute()
}
