package endpoints

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/promptgen/internal/api"
	"github.com/jackzampolin/promptgen/internal/session"
	"github.com/jackzampolin/promptgen/internal/svcctx"
)

// SetInputsRequest is the request body for recording field values.
type SetInputsRequest struct {
	Values map[string]string `json:"values"`
}

// SessionInputsEndpoint handles POST /api/session/inputs.
type SessionInputsEndpoint struct{}

func (e *SessionInputsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/session/inputs", e.handler
}

func (e *SessionInputsEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Record field values
//	@Description	Merges the given field values into the session. Only valid while awaiting input.
//	@Tags			session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SetInputsRequest	true	"Field values"
//	@Success		200		{object}	session.Snapshot
//	@Failure		400		{object}	ErrorResponse
//	@Router			/api/session/inputs [post]
func (e *SessionInputsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req SetInputsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess := svcctx.SessionFrom(r.Context())
	for field, value := range req.Values {
		if err := sess.SetInput(field, value); err != nil {
			writeDomainError(w, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (e *SessionInputsEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "inputs <field=value>...",
		Short: "Record field values for the selected theme",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make(map[string]string, len(args))
			for _, arg := range args {
				field, value, ok := strings.Cut(arg, "=")
				if !ok {
					return cmd.Usage()
				}
				values[field] = value
			}

			client := api.NewClient(getServerURL())
			var resp session.Snapshot
			if err := client.Post(cmd.Context(), "/api/session/inputs", SetInputsRequest{Values: values}, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
