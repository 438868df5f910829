package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/promptgen/internal/api"
	"github.com/jackzampolin/promptgen/internal/svcctx"
	"github.com/jackzampolin/promptgen/internal/themes"
)

// SelectThemeRequest is the request body for selecting a theme.
type SelectThemeRequest struct {
	ThemeID string `json:"theme_id"`
}

// SelectThemeResponse returns the selected theme so the client can render
// its input form.
type SelectThemeResponse struct {
	Theme themes.Theme `json:"theme"`
	State string       `json:"state"`
}

// SessionSelectEndpoint handles POST /api/session/select.
type SessionSelectEndpoint struct{}

func (e *SessionSelectEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/session/select", e.handler
}

func (e *SessionSelectEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Select a theme
//	@Description	Moves the session to awaiting_input and clears prior inputs and output.
//	@Tags			session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SelectThemeRequest	true	"Theme to select"
//	@Success		200		{object}	SelectThemeResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/api/session/select [post]
func (e *SessionSelectEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req SelectThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess := svcctx.SessionFrom(r.Context())
	theme, err := sess.Select(req.ThemeID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SelectThemeResponse{
		Theme: theme,
		State: string(sess.Snapshot().State),
	})
}

func (e *SessionSelectEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "select <theme-id>",
		Short: "Select a theme for generation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp SelectThemeResponse
			req := SelectThemeRequest{ThemeID: args[0]}
			if err := client.Post(cmd.Context(), "/api/session/select", req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
