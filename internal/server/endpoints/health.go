package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/promptgen/internal/api"
	"github.com/jackzampolin/promptgen/internal/prompt"
	"github.com/jackzampolin/promptgen/internal/recordstore"
	"github.com/jackzampolin/promptgen/internal/session"
	"github.com/jackzampolin/promptgen/internal/svcctx"
	"github.com/jackzampolin/promptgen/internal/themes"
)

// HealthResponse is the response for health check endpoints.
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store,omitempty"`
}

// HealthEndpoint handles GET /health.
type HealthEndpoint struct{}

func (e *HealthEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/health", e.handler
}

func (e *HealthEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary	Liveness check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Router		/health [get]
func (e *HealthEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (e *HealthEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp HealthResponse
			if err := client.Get(cmd.Context(), "/health", &resp); err != nil {
				return err
			}
			fmt.Printf("Status: %s\n", resp.Status)
			return nil
		},
	}
}

// ReadyEndpoint handles GET /ready.
type ReadyEndpoint struct{}

func (e *ReadyEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/ready", e.handler
}

func (e *ReadyEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary	Readiness check including the record store
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Failure	503	{object}	HealthResponse
//	@Router		/ready [get]
func (e *ReadyEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok", Store: "ok"}

	client := svcctx.StoreClientFrom(r.Context())
	if client == nil {
		resp.Status = "degraded"
		resp.Store = "not_initialized"
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	if err := client.HealthCheck(r.Context()); err != nil {
		resp.Status = "degraded"
		resp.Store = "unhealthy"
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (e *ReadyEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "ready",
		Short: "Check server readiness (includes the record store)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp HealthResponse
			if err := client.Get(cmd.Context(), "/ready", &resp); err != nil {
				return err
			}
			fmt.Printf("Status: %s\n", resp.Status)
			if resp.Store != "" {
				fmt.Printf("Store:  %s\n", resp.Store)
			}
			return nil
		},
	}
}

// StatusResponse is the detailed status response.
type StatusResponse struct {
	Server string      `json:"server"`
	Themes ThemesStats `json:"themes"`
	Store  StoreStatus `json:"store"`
}

// ThemesStats summarizes the cached theme list.
type ThemesStats struct {
	Cached bool `json:"cached"`
	Count  int  `json:"count"`
}

// StoreStatus shows record store container and health status.
type StoreStatus struct {
	Container string `json:"container"`
	Health    string `json:"health"`
	URL       string `json:"url"`
}

// StatusEndpoint handles GET /status.
type StatusEndpoint struct {
	// StoreManager is set by the server since it's not in Services
	StoreManager *recordstore.Manager
}

func (e *StatusEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/status", e.handler
}

func (e *StatusEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary	Detailed server status
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	StatusResponse
//	@Router		/status [get]
func (e *StatusEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{
		Server: "running",
	}

	if cache := svcctx.ThemeCacheFrom(r.Context()); cache != nil {
		resp.Themes.Cached = cache.Loaded()
		resp.Themes.Count = cache.Len()
	}

	if e.StoreManager != nil {
		status, err := e.StoreManager.Status(r.Context())
		if err != nil {
			resp.Store.Container = "error"
		} else {
			resp.Store.Container = string(status)
		}
		resp.Store.URL = e.StoreManager.URL()
	} else {
		resp.Store.Container = "not_initialized"
	}

	client := svcctx.StoreClientFrom(r.Context())
	if client != nil {
		if err := client.HealthCheck(r.Context()); err != nil {
			resp.Store.Health = "unhealthy"
		} else {
			resp.Store.Health = "healthy"
		}
	} else {
		resp.Store.Health = "not_initialized"
	}

	writeJSON(w, http.StatusOK, resp)
}

func (e *StatusEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get detailed server status",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp StatusResponse
			if err := client.Get(cmd.Context(), "/status", &resp); err != nil {
				return err
			}
			fmt.Printf("Server: %s\n", resp.Server)
			fmt.Printf("Store:\n")
			fmt.Printf("  Container: %s\n", resp.Store.Container)
			fmt.Printf("  Health:    %s\n", resp.Store.Health)
			fmt.Printf("  URL:       %s\n", resp.Store.URL)
			fmt.Printf("Themes: %d cached\n", resp.Themes.Count)
			return nil
		},
	}
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// ErrorResponse is a standard error response. Kind carries the error class
// so clients can branch without parsing messages.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeDomainError maps domain errors to status codes and error kinds:
// validation 400, auth 401, not-found 404, store unavailable 502.
func writeDomainError(w http.ResponseWriter, err error) {
	var missing *prompt.MissingFieldError

	switch {
	case errors.Is(err, themes.ErrValidation):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "ValidationFailed"})
	case errors.As(err, &missing):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "MissingFieldValue"})
	case errors.Is(err, session.ErrAuthentication):
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: err.Error(), Kind: "AuthenticationFailed"})
	case errors.Is(err, themes.ErrNotFound), errors.Is(err, session.ErrThemeNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error(), Kind: "ThemeNotFound"})
	case errors.Is(err, session.ErrTemplateMissing):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "TemplateMissing"})
	case errors.Is(err, session.ErrNotAwaitingInput):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "NoThemeSelected"})
	case errors.Is(err, themes.ErrPartialReset):
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: err.Error(), Kind: "PartialResetFailure"})
	case errors.Is(err, themes.ErrStoreUnavailable):
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: err.Error(), Kind: "StoreUnavailable"})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

// manageAllowed checks the management gate for a mutation request: either the
// session has already authenticated, or the request carries the exact secret
// (body field or X-Manage-Secret header).
func manageAllowed(r *http.Request, bodySecret string) bool {
	sess := svcctx.SessionFrom(r.Context())
	if sess == nil {
		return false
	}
	if sess.Authenticated() {
		return true
	}
	if bodySecret != "" && sess.CheckSecret(bodySecret) {
		return true
	}
	header := r.Header.Get("X-Manage-Secret")
	return header != "" && sess.CheckSecret(header)
}
