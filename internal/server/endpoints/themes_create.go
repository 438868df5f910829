package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/promptgen/internal/api"
	"github.com/jackzampolin/promptgen/internal/session"
	"github.com/jackzampolin/promptgen/internal/svcctx"
	"github.com/jackzampolin/promptgen/internal/themes"
)

// CreateThemeRequest is the request body for creating a theme.
type CreateThemeRequest struct {
	Name     string   `json:"name"`
	Fields   []string `json:"fields"`
	Template string   `json:"template"`
	Secret   string   `json:"secret,omitempty"`
}

// CreateThemeEndpoint handles POST /api/themes.
type CreateThemeEndpoint struct{}

func (e *CreateThemeEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/themes", e.handler
}

func (e *CreateThemeEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Create a theme
//	@Description	Create a new theme; the store assigns the id and usage starts at 0. Requires the management secret.
//	@Tags			themes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateThemeRequest	true	"Theme to create"
//	@Success		201		{object}	themes.Theme
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/api/themes [post]
func (e *CreateThemeEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req CreateThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !manageAllowed(r, req.Secret) {
		writeDomainError(w, session.ErrAuthentication)
		return
	}

	store := svcctx.ThemeStoreFrom(r.Context())
	theme, err := store.Create(r.Context(), req.Name, req.Fields, req.Template)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	svcctx.ThemeCacheFrom(r.Context()).Put(theme)
	writeJSON(w, http.StatusCreated, theme)
}

func (e *CreateThemeEndpoint) Command(getServerURL func() string) *cobra.Command {
	var (
		fields   []string
		template string
		secret   string
	)
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if template == "" {
				return fmt.Errorf("--template is required")
			}
			client := api.NewClient(getServerURL())
			var resp themes.Theme
			req := CreateThemeRequest{
				Name:     args[0],
				Fields:   fields,
				Template: template,
				Secret:   secret,
			}
			if err := client.Post(cmd.Context(), "/api/themes", req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringSliceVar(&fields, "field", nil, "Placeholder field name (repeatable)")
	cmd.Flags().StringVar(&template, "template", "", "Prompt template with {field} placeholders (required)")
	cmd.Flags().StringVar(&secret, "secret", "", "Management secret")
	return cmd
}
