package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/promptgen/internal/api"
	"github.com/jackzampolin/promptgen/internal/session"
	"github.com/jackzampolin/promptgen/internal/svcctx"
)

// UsageResetRequest is the request body for zeroing all usage counts.
type UsageResetRequest struct {
	Secret string `json:"secret"`
}

// UsageResetResponse reports how many themes were reset.
type UsageResetResponse struct {
	Reset int `json:"reset"`
}

// UsageResetEndpoint handles POST /api/usage/reset.
type UsageResetEndpoint struct{}

func (e *UsageResetEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/usage/reset", e.handler
}

func (e *UsageResetEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Zero all usage counts
//	@Description	Resets every theme's usage count to zero, one document at a time. The reset is not atomic; a mid-run store failure leaves earlier themes reset and later ones untouched.
//	@Tags			rankings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UsageResetRequest	true	"Management secret"
//	@Success		200		{object}	UsageResetResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/api/usage/reset [post]
func (e *UsageResetEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req UsageResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !manageAllowed(r, req.Secret) {
		writeDomainError(w, session.ErrAuthentication)
		return
	}

	cache := svcctx.ThemeCacheFrom(r.Context())
	store := svcctx.ThemeStoreFrom(r.Context())

	all := cache.All()
	ids := make([]string, 0, len(all))
	for _, t := range all {
		ids = append(ids, t.ID)
	}

	if err := store.ResetAllUsage(r.Context(), ids); err != nil {
		// The cache may now disagree with the store for a prefix of the
		// themes. Reload from the store so reads reflect what actually
		// happened.
		if refreshErr := cache.Refresh(r.Context(), store); refreshErr != nil {
			svcctx.LoggerFrom(r.Context()).Warn("cache refresh after failed usage reset", "error", refreshErr)
		}
		writeDomainError(w, err)
		return
	}

	cache.ZeroUsage()
	writeJSON(w, http.StatusOK, UsageResetResponse{Reset: len(ids)})
}

func (e *UsageResetEndpoint) Command(getServerURL func() string) *cobra.Command {
	var secret string
	cmd := &cobra.Command{
		Use:   "usage-reset",
		Short: "Reset every theme's usage count to zero",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp UsageResetResponse
			if err := client.Post(cmd.Context(), "/api/usage/reset", UsageResetRequest{Secret: secret}, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&secret, "secret", "", "Management secret")
	return cmd
}
