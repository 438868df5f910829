package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/promptgen/internal/server/endpoints"
)

var serverURL string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Commands that call the running server",
	Long: `API commands call the running promptgen server via HTTP.

These commands require a running server (promptgen serve).
Use --server to specify a custom server URL.

Examples:
  promptgen api health                   # Check server health
  promptgen api themes list              # List all themes
  promptgen api session select <id>      # Select a theme
  promptgen api session generate         # Render the prompt`,
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Theme management commands",
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Session workflow commands",
}

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func init() {
	// Add --server flag to api command (persistent so all subcommands inherit it)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:8080", "Server URL",
	)

	// Health endpoints at top level of api
	apiCmd.AddCommand((&endpoints.HealthEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.ReadyEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.StatusEndpoint{}).Command(getServerURL))

	// Themes as subcommand group
	for _, ep := range endpoints.ThemeCommands() {
		themesCmd.AddCommand(ep.Command(getServerURL))
	}

	// Session as subcommand group
	for _, ep := range endpoints.SessionCommands() {
		sessionCmd.AddCommand(ep.Command(getServerURL))
	}

	// Rankings and usage reset at top level of api
	apiCmd.AddCommand((&endpoints.RankingsEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.UsageResetEndpoint{}).Command(getServerURL))

	// OpenAPI spec
	apiCmd.AddCommand((&endpoints.SwaggerEndpoint{}).Command(getServerURL))

	apiCmd.AddCommand(themesCmd)
	apiCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(apiCmd)
}
