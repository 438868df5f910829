package main

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	_ "github.com/jackzampolin/promptgen/docs/swagger" // registers the OpenAPI spec
	"github.com/jackzampolin/promptgen/internal/config"
	"github.com/jackzampolin/promptgen/internal/home"
	"github.com/jackzampolin/promptgen/internal/recordstore"
	"github.com/jackzampolin/promptgen/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the promptgen server",
	Long: `Start the promptgen HTTP server.

This starts both the HTTP API server and the record store container.
When the server shuts down (via Ctrl+C or SIGTERM), the store is also stopped.

The server provides:
  - /health  - Basic server health check
  - /ready   - Readiness check (includes record store status)
  - /api/... - Theme, session, and ranking operations
  - /        - The prompt generator frontend

Examples:
  promptgen serve                    # Start on default port 8080
  promptgen serve --port 3000        # Start on custom port
  promptgen serve --host 0.0.0.0     # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Set up logger
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		// Get home directory
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		// Load config with hot reload so a secret edit applies without restart
		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cm.WatchConfig()
		cfg := cm.Get()

		// Flags override config
		host := cfg.Server.Host
		if cmd.Flags().Changed("host") {
			host = serveHost
		}
		port := strconv.Itoa(cfg.Server.Port)
		if cmd.Flags().Changed("port") {
			port = servePort
		}

		srv, err := server.New(server.Config{
			Host:          host,
			Port:          port,
			StoreDataPath: h.DataPath(),
			StoreConfig: recordstore.DockerConfig{
				ContainerName: cfg.Store.ContainerName,
				Image:         cfg.Store.Image,
				HostPort:      cfg.Store.Port,
			},
			ConfigManager: cm,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on")

	rootCmd.AddCommand(serveCmd)
}
