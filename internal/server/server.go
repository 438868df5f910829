package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/jackzampolin/promptgen/internal/api"
	"github.com/jackzampolin/promptgen/internal/config"
	"github.com/jackzampolin/promptgen/internal/recordstore"
	"github.com/jackzampolin/promptgen/internal/schema"
	"github.com/jackzampolin/promptgen/internal/server/endpoints"
	"github.com/jackzampolin/promptgen/internal/session"
	"github.com/jackzampolin/promptgen/internal/svcctx"
	"github.com/jackzampolin/promptgen/internal/themes"
)

// Server is the main promptgen HTTP server.
// It manages the record store container lifecycle - starting it on server
// start and stopping it on server shutdown.
type Server struct {
	httpServer   *http.Server
	storeManager *recordstore.Manager
	storeClient  *recordstore.Client
	themeStore   *themes.Store
	themeCache   *themes.Cache
	session      *session.Session
	configMgr    *config.Manager
	logger       *slog.Logger

	// services holds all core services for context enrichment
	services *svcctx.Services

	// endpoints registry for HTTP routes
	endpointRegistry *api.Registry

	mu      sync.RWMutex
	running bool
}

// Config holds server configuration.
type Config struct {
	// Host is the address to bind to (default: 127.0.0.1)
	Host string
	// Port is the port to listen on (default: 8080)
	Port string
	// StoreDataPath is the path to persist record store data
	StoreDataPath string
	// StoreConfig holds record store container settings
	StoreConfig recordstore.DockerConfig
	// ConfigManager provides configuration with hot-reload support
	ConfigManager *config.Manager
	// Logger is the structured logger to use
	Logger *slog.Logger
}

// New creates a new Server with the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.StoreDataPath != "" {
		cfg.StoreConfig.DataPath = cfg.StoreDataPath
	}

	storeManager, err := recordstore.NewManager(cfg.StoreConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create store manager: %w", err)
	}

	s := &Server{
		storeManager: storeManager,
		themeCache:   themes.NewCache(),
		configMgr:    cfg.ConfigManager,
		logger:       cfg.Logger,
	}

	// Hot-apply the management secret so a config edit takes effect on the
	// next attempt without a restart.
	if cfg.ConfigManager != nil {
		cfg.ConfigManager.OnChange(func(c *config.Config) {
			if sess := s.session; sess != nil {
				sess.SetSecret(c.ManageSecret())
				cfg.Logger.Info("management secret reloaded from config")
			}
		})
	}

	// Create endpoint registry and register all endpoints
	s.endpointRegistry = api.NewRegistry()
	for _, ep := range endpoints.All(endpoints.Config{
		StoreManager:    storeManager,
		SwaggerSpecPath: endpoints.GetSwaggerSpecPath(),
	}) {
		s.endpointRegistry.Register(ep)
	}

	// Set up HTTP server
	mux := http.NewServeMux()
	s.endpointRegistry.RegisterRoutes(mux, s.requireInit)

	s.httpServer = &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      s.withServices(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// Start starts the server and the record store.
// It blocks until the context is cancelled or an error occurs.
// If an existing store container exists, it validates the configuration matches.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("server already running")
	}
	s.running = true
	s.mu.Unlock()

	// Validate any existing container matches our config
	if err := s.storeManager.ValidateExisting(ctx); err != nil {
		s.setNotRunning()
		return fmt.Errorf("existing store container incompatible: %w", err)
	}

	// Start the record store
	s.logger.Info("starting record store")
	if err := s.storeManager.Start(ctx); err != nil {
		s.setNotRunning()
		return fmt.Errorf("failed to start record store: %w", err)
	}

	// Create client after the store is up
	s.storeClient = recordstore.NewClient(s.storeManager.URL())

	// Verify the store is healthy
	if err := s.storeClient.HealthCheck(ctx); err != nil {
		_ = s.shutdown() // Clean up the store container on failure
		return fmt.Errorf("record store health check failed: %w", err)
	}
	s.logger.Info("record store is ready", "url", s.storeManager.URL())

	// Initialize schemas
	s.logger.Info("initializing schemas")
	if err := schema.Initialize(ctx, s.storeClient, s.logger); err != nil {
		_ = s.shutdown()
		return fmt.Errorf("schema initialization failed: %w", err)
	}

	s.themeStore = themes.NewStore(s.storeClient, s.logger)

	// Seed starter themes on first run
	if s.configMgr == nil || s.configMgr.Get().Seed.Enabled {
		if err := themes.Seed(ctx, s.themeStore, s.logger); err != nil {
			s.logger.Warn("seeding starter themes failed", "error", err)
		}
	}

	// Load the theme list into the cache
	if err := s.themeCache.Refresh(ctx, s.themeStore); err != nil {
		_ = s.shutdown()
		return fmt.Errorf("initial theme load failed: %w", err)
	}
	s.logger.Info("themes loaded", "count", s.themeCache.Len())

	secret := ""
	if s.configMgr != nil {
		secret = s.configMgr.Get().ManageSecret()
	}
	s.session = session.New(s.themeCache, s.themeStore, secret, s.logger)

	// Create services struct for context enrichment
	s.services = &svcctx.Services{
		StoreClient: s.storeClient,
		ThemeStore:  s.themeStore,
		ThemeCache:  s.themeCache,
		Session:     s.session,
		Config:      s.configMgr,
		Logger:      s.logger,
	}

	// Start HTTP server in goroutine
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			_ = s.shutdown() // Clean up the store container on HTTP error
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	return s.shutdown()
}

// shutdown performs graceful shutdown of both HTTP server and the record store.
func (s *Server) shutdown() error {
	s.logger.Info("shutting down server")

	// Shutdown HTTP server with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
	}

	// Stop the record store
	s.logger.Info("stopping record store")
	if err := s.storeManager.Stop(shutdownCtx); err != nil {
		s.logger.Error("record store stop error", "error", err)
	}

	// Close Docker client
	if err := s.storeManager.Close(); err != nil {
		s.logger.Error("store manager close error", "error", err)
	}

	s.setNotRunning()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) setNotRunning() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// IsRunning returns whether the server is currently running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// StoreClient returns the record store client.
// Returns nil if the server hasn't started yet.
func (s *Server) StoreClient() *recordstore.Client {
	return s.storeClient
}

// Session returns the user session.
// Returns nil if the server hasn't started yet.
func (s *Server) Session() *session.Session {
	return s.session
}

// Addr returns the server's listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// withServices wraps a handler to enrich the request context with services.
func (s *Server) withServices(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if s.services != nil {
			ctx = svcctx.WithServices(ctx, s.services)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireInit is middleware that ensures the server is fully initialized.
// Returns 503 Service Unavailable if the store client or session aren't ready.
func (s *Server) requireInit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.storeClient == nil || s.session == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"server not fully initialized"}`))
			return
		}
		next(w, r)
	}
}
