package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/promptgen/internal/api"
	"github.com/jackzampolin/promptgen/internal/session"
	"github.com/jackzampolin/promptgen/internal/svcctx"
)

// SessionEndpoint handles GET /api/session.
type SessionEndpoint struct{}

func (e *SessionEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/session", e.handler
}

func (e *SessionEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary	Current session state
//	@Tags		session
//	@Produce	json
//	@Success	200	{object}	session.Snapshot
//	@Router		/api/session [get]
func (e *SessionEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	sess := svcctx.SessionFrom(r.Context())
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (e *SessionEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current session state",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp session.Snapshot
			if err := client.Get(cmd.Context(), "/api/session", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// SessionResetEndpoint handles POST /api/session/reset.
type SessionResetEndpoint struct{}

func (e *SessionResetEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/session/reset", e.handler
}

func (e *SessionResetEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Reset the session
//	@Description	Returns the session to idle and reissues the session ID. The authenticated flag is sticky and survives.
//	@Tags			session
//	@Produce		json
//	@Success		200	{object}	session.Snapshot
//	@Router			/api/session/reset [post]
func (e *SessionResetEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	sess := svcctx.SessionFrom(r.Context())
	sess.Reset()
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (e *SessionResetEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the session to idle",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp session.Snapshot
			if err := client.Post(cmd.Context(), "/api/session/reset", nil, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
