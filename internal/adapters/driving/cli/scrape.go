package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/scriptvault-labs/scriptvault-cli/internal/connectors/filesystem"
	"github.com/scriptvault-labs/scriptvault-cli/internal/connectors/github"
	"github.com/scriptvault-labs/scriptvault-cli/internal/connectors/web"
	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
	"github.com/scriptvault-labs/scriptvault-cli/internal/core/ports/driven"
)

var (
	scrapePatterns   []string
	scrapeExtensions []string
	scrapeGists      bool
	scrapeWatch      bool
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <web|github|filesystem> [target...]",
	Short: "Scrape scripts from a source into the vault",
	Long: `Fetches candidate scripts from a source, names them by content
and stores them in the vault.

Targets depend on the source type:
  web         one or more page URLs to extract code blocks from
  github      one or more owner/repo specs
  filesystem  a local directory to walk

Examples:
  scriptvault scrape web https://example.com/powershell-snippets
  scriptvault scrape github microsoft/PowerShellForGitHub --gists
  scriptvault scrape filesystem ~/scripts --watch`,
	Args: cobra.MinimumNArgs(2),
	RunE: runScrape,
}

func init() {
	scrapeCmd.Flags().StringSliceVar(
		&scrapePatterns, "patterns", nil, "file patterns for github sources (e.g. *.ps1)")
	scrapeCmd.Flags().StringSliceVar(
		&scrapeExtensions, "extensions", nil, "file extensions for filesystem sources (e.g. .ps1,.py)")
	scrapeCmd.Flags().BoolVar(
		&scrapeGists, "gists", false, "include the authenticated user's gists (github only)")
	scrapeCmd.Flags().BoolVar(
		&scrapeWatch, "watch", false, "keep watching for new files (filesystem only)")
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	if vaultService == nil {
		return errors.New("vault service not configured")
	}

	sourceType := args[0]
	targets := args[1:]

	connector, err := buildConnector(sourceType, targets)
	if err != nil {
		return err
	}
	defer connector.Close()

	ctx := cmd.Context()

	if err := connector.Validate(ctx); err != nil {
		return fmt.Errorf("validating %s source: %w", sourceType, err)
	}

	if sourceStore != nil {
		recordSource(ctx, cmd, connector, targets)
	}

	if scrapeWatch {
		return runWatch(ctx, cmd, connector)
	}

	cmd.Printf("Scraping %s source...\n", sourceType)
	scripts, errs := connector.Fetch(ctx)
	stored, err := vaultService.Drain(ctx, scripts, errs)
	if err != nil {
		cmd.Printf("Stored %d scripts before failure.\n", stored)
		return fmt.Errorf("scrape failed: %w", err)
	}

	cmd.Printf("Stored %d scripts.\n", stored)
	return nil
}

func buildConnector(sourceType string, targets []string) (driven.Connector, error) {
	sourceID := uuid.New().String()

	switch sourceType {
	case "web":
		return web.New(sourceID, targets), nil

	case "github":
		cfg, err := github.NewConfig(map[string]any{
			"repos":    targets,
			"gists":    scrapeGists,
			"patterns": scrapePatterns,
		})
		if err != nil {
			return nil, fmt.Errorf("invalid github config: %w", err)
		}
		return github.New(sourceID, cfg, &configTokenProvider{}), nil

	case "filesystem":
		if len(targets) != 1 {
			return nil, fmt.Errorf("filesystem sources take exactly one directory, got %d", len(targets))
		}
		return filesystem.New(sourceID, targets[0], scrapeExtensions), nil

	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, sourceType)
	}
}

// runWatch streams new files into the vault until interrupted.
func runWatch(ctx context.Context, cmd *cobra.Command, connector driven.Connector) error {
	watcher, ok := connector.(driven.Watcher)
	if !ok {
		return fmt.Errorf("%s sources do not support --watch", connector.Type())
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scripts, err := watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("starting watch: %w", err)
	}

	cmd.Println("Watching for new scripts. Press Ctrl+C to stop.")
	stored, err := vaultService.Drain(ctx, scripts, nil)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch failed: %w", err)
	}

	cmd.Printf("\nStored %d scripts.\n", stored)
	return nil
}

func recordSource(ctx context.Context, cmd *cobra.Command, connector driven.Connector, targets []string) {
	source := domain.Source{
		ID:        connector.SourceID(),
		Name:      fmt.Sprintf("%s:%s", connector.Type(), targets[0]),
		Type:      connector.Type(),
		Config:    map[string]any{"targets": targets},
		CreatedAt: time.Now(),
	}
	// Source bookkeeping failures should not abort the scrape.
	if err := sourceStore.SaveSource(ctx, &source); err != nil {
		cmd.PrintErrf("warning: failed to record source: %v\n", err)
	}
}

// configTokenProvider reads the GitHub token saved by `scriptvault auth`.
type configTokenProvider struct{}

func (p *configTokenProvider) GetToken(_ context.Context) (string, error) {
	if configStore == nil {
		return "", domain.ErrAuthRequired
	}
	token := configStore.GetString("github.token")
	if token == "" {
		return "", fmt.Errorf("%w: run 'scriptvault auth login' first", domain.ErrAuthRequired)
	}
	return token, nil
}
