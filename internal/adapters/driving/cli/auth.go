package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var authToken string

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage source credentials",
	Long: `Store and inspect the credentials used by authenticated sources.

Currently only GitHub personal access tokens are supported. The token is
stored in the configuration file with owner-only permissions.`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a GitHub personal access token",
	Long: `Stores a GitHub personal access token for the github source type.

The token is read from --token or prompted for without echo.

Examples:
  scriptvault auth login            # Prompted, input hidden
  scriptvault auth login --token ghp_xxx`,
	RunE: runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configured credentials",
	RunE:  runAuthStatus,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored GitHub token",
	RunE:  runAuthLogout,
}

func init() {
	authLoginCmd.Flags().StringVar(&authToken, "token", "", "personal access token (prompted if omitted)")
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authLogoutCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	token := strings.TrimSpace(authToken)
	if token == "" {
		var err error
		token, err = promptToken(cmd)
		if err != nil {
			return err
		}
	}
	if token == "" {
		return errors.New("token is required")
	}

	if err := configStore.Set("github.token", token); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}

	cmd.Println("Token saved.")
	return nil
}

func promptToken(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("no terminal available; use --token")
	}

	cmd.Print("GitHub token: ")
	raw, err := term.ReadPassword(fd)
	cmd.Println()
	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	token := configStore.GetString("github.token")
	if token == "" {
		cmd.Println("No GitHub token configured.")
		cmd.Println("Add one with: scriptvault auth login")
		return nil
	}

	cmd.Printf("GitHub token: %s... (stored in %s)\n", truncate(token, 8), configStore.Path())
	return nil
}

func runAuthLogout(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	if err := configStore.Set("github.token", ""); err != nil {
		return fmt.Errorf("removing token: %w", err)
	}
	cmd.Println("Token removed.")
	return nil
}

// truncate truncates a string to the specified length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
