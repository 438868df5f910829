package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/promptgen/internal/home"
	"github.com/jackzampolin/promptgen/internal/recordstore"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the record store container",
	Long: `Manage the record store container lifecycle.

The record store is the source of truth for themes and usage counts. It runs
in a Docker container with data persisted to ~/.promptgen/data/.

Examples:
  promptgen store start   # Start the record store container
  promptgen store stop    # Stop the container (data preserved)
  promptgen store status  # Check container status
  promptgen store logs    # View container logs`,
}

var storeStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the record store container",
	Long: `Start the record store container.

If the container doesn't exist, it will be created and started.
If it exists but is stopped, it will be started.
If it's already running, this is a no-op.

Data is persisted to ~/.promptgen/data/.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		mgr, err := getStoreManager()
		if err != nil {
			return err
		}
		defer mgr.Close()

		fmt.Println("Starting record store...")
		if err := mgr.Start(ctx); err != nil {
			return fmt.Errorf("failed to start record store: %w", err)
		}

		fmt.Printf("Record store is running at %s\n", mgr.URL())
		return nil
	},
}

var storeStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the record store container",
	Long: `Stop the record store container.

This stops the container but preserves data. Use 'promptgen store start'
to restart it later.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		mgr, err := getStoreManager()
		if err != nil {
			return err
		}
		defer mgr.Close()

		fmt.Println("Stopping record store...")
		if err := mgr.Stop(ctx); err != nil {
			return fmt.Errorf("failed to stop record store: %w", err)
		}

		fmt.Println("Record store stopped")
		return nil
	},
}

var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show record store container status",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		mgr, err := getStoreManager()
		if err != nil {
			return err
		}
		defer mgr.Close()

		status, err := mgr.Status(ctx)
		if err != nil {
			return fmt.Errorf("failed to get status: %w", err)
		}

		switch status {
		case recordstore.StatusRunning:
			fmt.Printf("Status: %s\n", status)
			fmt.Printf("URL: %s\n", mgr.URL())

			// Try health check
			client := recordstore.NewClient(mgr.URL())
			if err := client.HealthCheck(ctx); err != nil {
				fmt.Printf("Health: unhealthy (%v)\n", err)
			} else {
				fmt.Println("Health: healthy")
			}
		case recordstore.StatusStopped:
			fmt.Printf("Status: %s (use 'promptgen store start' to start)\n", status)
		case recordstore.StatusNotFound:
			fmt.Printf("Status: %s (use 'promptgen store start' to create)\n", status)
		default:
			fmt.Printf("Status: %s\n", status)
		}

		return nil
	},
}

var logsTail string

var storeLogsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show record store container logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		mgr, err := getStoreManager()
		if err != nil {
			return err
		}
		defer mgr.Close()

		logs, err := mgr.Logs(ctx, logsTail)
		if err != nil {
			return fmt.Errorf("failed to get logs: %w", err)
		}

		fmt.Print(logs)
		return nil
	},
}

var storeRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove the record store container",
	Long: `Remove the record store container.

This stops and removes the container. Data in ~/.promptgen/data/
is NOT deleted - only the container is removed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		mgr, err := getStoreManager()
		if err != nil {
			return err
		}
		defer mgr.Close()

		fmt.Println("Removing record store container...")
		if err := mgr.Remove(ctx); err != nil {
			return fmt.Errorf("failed to remove container: %w", err)
		}

		fmt.Println("Record store container removed (data preserved)")
		return nil
	},
}

var storeWaitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for the record store to be ready",
	Long: `Wait for the record store to be ready to accept connections.

This is useful in scripts to ensure the store is fully started
before running other commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		mgr, err := getStoreManager()
		if err != nil {
			return err
		}
		defer mgr.Close()

		timeout, _ := cmd.Flags().GetDuration("timeout")
		fmt.Printf("Waiting for record store (timeout: %s)...\n", timeout)

		if err := mgr.WaitReady(ctx, timeout); err != nil {
			return fmt.Errorf("record store not ready: %w", err)
		}

		fmt.Println("Record store is ready")
		return nil
	},
}

func init() {
	storeCmd.AddCommand(storeStartCmd)
	storeCmd.AddCommand(storeStopCmd)
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeLogsCmd)
	storeCmd.AddCommand(storeRemoveCmd)
	storeCmd.AddCommand(storeWaitCmd)

	storeLogsCmd.Flags().StringVar(&logsTail, "tail", "100", "Number of lines to show from the end")
	storeWaitCmd.Flags().Duration("timeout", 30*time.Second, "Timeout waiting for the record store")

	rootCmd.AddCommand(storeCmd)
}

// getHome returns the home directory manager.
func getHome() (*home.Dir, error) {
	h, err := home.New(homeDir)
	if err != nil {
		return nil, err
	}
	if err := h.EnsureExists(); err != nil {
		return nil, fmt.Errorf("failed to create home directory: %w", err)
	}
	return h, nil
}

// getStoreManager creates a container manager with the standard config.
func getStoreManager() (*recordstore.Manager, error) {
	h, err := getHome()
	if err != nil {
		return nil, err
	}

	return recordstore.NewManager(recordstore.DockerConfig{
		DataPath: h.DataPath(),
	})
}
