package cli

import (
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/scriptvault-labs/scriptvault-cli/internal/adapters/driving/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web navigator",
	Long: `Starts the vault navigator, a small web UI for browsing stored
scripts by category.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:5000", "listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if vaultService == nil {
		return errors.New("vault service not configured")
	}

	server, err := web.NewServer(vaultService)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Start(serveAddr); err != nil {
		return err
	}
	cmd.Printf("Navigator listening on http://%s\n", server.Addr())
	cmd.Println("Press Ctrl+C to stop.")

	<-ctx.Done()
	return server.Stop()
}
