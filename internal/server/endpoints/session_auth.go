package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/promptgen/internal/api"
	"github.com/jackzampolin/promptgen/internal/svcctx"
)

// AuthRequest is the request body for the management gate.
type AuthRequest struct {
	Secret string `json:"secret"`
}

// AuthResponse reports the gate state after an attempt.
type AuthResponse struct {
	Authenticated bool `json:"authenticated"`
}

// SessionAuthEndpoint handles POST /api/session/auth.
type SessionAuthEndpoint struct{}

func (e *SessionAuthEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/session/auth", e.handler
}

func (e *SessionAuthEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Pass the management gate
//	@Description	Exact secret match sets the sticky authenticated flag. This is a UI gate, not a security boundary.
//	@Tags			session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AuthRequest	true	"Gate secret"
//	@Success		200		{object}	AuthResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/api/session/auth [post]
func (e *SessionAuthEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess := svcctx.SessionFrom(r.Context())
	if err := sess.Authenticate(req.Secret); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{Authenticated: true})
}

func (e *SessionAuthEndpoint) Command(getServerURL func() string) *cobra.Command {
	var secret string
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Unlock the management surface for this session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp AuthResponse
			if err := client.Post(cmd.Context(), "/api/session/auth", AuthRequest{Secret: secret}, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&secret, "secret", "", "Management secret")
	return cmd
}
