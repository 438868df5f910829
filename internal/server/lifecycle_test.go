package server

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/jackzampolin/promptgen/internal/recordstore"
	"github.com/jackzampolin/promptgen/internal/server/endpoints"
	"github.com/jackzampolin/promptgen/internal/testutil"
)

// TestServer_FullLifecycle exercises the whole stack against a real record
// store container: startup, seeding, the HTTP surface, and shutdown. Skipped
// automatically when Docker is not available.
func TestServer_FullLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container lifecycle test in short mode")
	}
	cfg := testutil.NewServerConfig(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	srv, err := New(Config{
		Host:          cfg.Host,
		Port:          cfg.Port,
		StoreDataPath: cfg.StoreDataPath,
		StoreConfig: recordstore.DockerConfig{
			ContainerName: cfg.StoreConfig.ContainerName,
			HostPort:      cfg.StoreConfig.HostPort,
			Labels:        cfg.StoreConfig.Labels,
		},
		Logger: cfg.Logger,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Start server in background
	serverErr := make(chan error, 1)
	serverCtx, serverCancel := context.WithCancel(ctx)

	go func() {
		serverErr <- srv.Start(serverCtx)
	}()

	// Wait for server to be ready
	if err := testutil.WaitForServer(cfg.URL(), 60*time.Second); err != nil {
		serverCancel()
		t.Fatalf("server did not start: %v", err)
	}

	t.Run("health_endpoint", func(t *testing.T) {
		resp, err := http.Get(cfg.URL() + "/health")
		if err != nil {
			t.Fatalf("health check failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("health status = %d, want %d", resp.StatusCode, http.StatusOK)
		}
	})

	t.Run("ready_endpoint", func(t *testing.T) {
		resp, err := http.Get(cfg.URL() + "/ready")
		if err != nil {
			t.Fatalf("ready check failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("ready status = %d, want %d", resp.StatusCode, http.StatusOK)
		}

		var health endpoints.HealthResponse
		if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if health.Status != "ok" {
			t.Errorf("health.Status = %q, want %q", health.Status, "ok")
		}
		if health.Store != "ok" {
			t.Errorf("health.Store = %q, want %q", health.Store, "ok")
		}
	})

	t.Run("status_endpoint", func(t *testing.T) {
		status, err := testutil.GetStatus(cfg.URL())
		if err != nil {
			t.Fatalf("status check failed: %v", err)
		}

		if status.Server != "running" {
			t.Errorf("status.Server = %q, want %q", status.Server, "running")
		}
		if status.Store.Health != "healthy" {
			t.Errorf("status.Store.Health = %q, want %q", status.Store.Health, "healthy")
		}
		if status.Store.Container != "running" {
			t.Errorf("status.Store.Container = %q, want %q", status.Store.Container, "running")
		}
	})

	t.Run("seeded_themes_listed", func(t *testing.T) {
		resp, err := http.Get(cfg.URL() + "/api/themes")
		if err != nil {
			t.Fatalf("list themes failed: %v", err)
		}
		defer resp.Body.Close()

		var list endpoints.ListThemesResponse
		if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(list.Themes) == 0 {
			t.Error("no themes after startup; expected seeded starter themes")
		}
	})

	t.Run("store_client_works", func(t *testing.T) {
		client := srv.StoreClient()
		if client == nil {
			t.Fatal("StoreClient() returned nil")
		}
		if err := client.HealthCheck(ctx); err != nil {
			t.Errorf("record store health check failed: %v", err)
		}
	})

	t.Run("is_running", func(t *testing.T) {
		if !srv.IsRunning() {
			t.Error("IsRunning() = false, want true")
		}
	})

	// Shutdown server
	serverCancel()

	select {
	case err := <-serverErr:
		if err != nil {
			t.Logf("server returned error (expected during shutdown): %v", err)
		}
	case <-time.After(30 * time.Second):
		t.Fatal("server did not shut down within timeout")
	}

	t.Run("not_running_after_shutdown", func(t *testing.T) {
		if srv.IsRunning() {
			t.Error("IsRunning() = true after shutdown, want false")
		}
	})

	t.Run("store_stopped_after_shutdown", func(t *testing.T) {
		mgr, err := recordstore.NewManager(recordstore.DockerConfig{
			ContainerName: cfg.StoreConfig.ContainerName,
		})
		if err != nil {
			t.Fatalf("failed to create manager: %v", err)
		}
		defer mgr.Close()

		status, err := mgr.Status(ctx)
		if err != nil {
			t.Fatalf("failed to get status: %v", err)
		}
		if status == recordstore.StatusRunning {
			t.Error("record store still running after server shutdown")
			_ = mgr.Stop(ctx)
		}
	})
}
