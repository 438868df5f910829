package endpoints

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/promptgen/internal/api"
	"github.com/jackzampolin/promptgen/internal/svcctx"
	"github.com/jackzampolin/promptgen/internal/themes"
)

// GenerateResponse is the outcome of a successful generation. Warning is set
// when the prompt was generated but the usage count could not be persisted.
type GenerateResponse struct {
	Output  string       `json:"output"`
	Theme   themes.Theme `json:"theme"`
	Warning string       `json:"warning,omitempty"`
}

// SessionGenerateEndpoint handles POST /api/session/generate.
type SessionGenerateEndpoint struct{}

func (e *SessionGenerateEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/session/generate", e.handler
}

func (e *SessionGenerateEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Generate the prompt
//	@Description	Renders the selected theme's template with the recorded inputs and persists the usage count. A persist failure is reported as a warning; the generated text is still returned.
//	@Tags			session
//	@Produce		json
//	@Success		200	{object}	GenerateResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/session/generate [post]
func (e *SessionGenerateEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	sess := svcctx.SessionFrom(r.Context())

	result, err := sess.Generate(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, GenerateResponse{
		Output:  result.Output,
		Theme:   result.Theme,
		Warning: result.UsageWarning,
	})
}

func (e *SessionGenerateEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate the prompt from the selected theme and inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp GenerateResponse
			if err := client.Post(cmd.Context(), "/api/session/generate", nil, &resp); err != nil {
				return err
			}
			fmt.Println(resp.Output)
			if resp.Warning != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", resp.Warning)
			}
			return nil
		},
	}
}
