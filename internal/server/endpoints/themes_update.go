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

// UpdateThemeRequest is the request body for updating a theme.
type UpdateThemeRequest struct {
	Name     string   `json:"name"`
	Fields   []string `json:"fields"`
	Template string   `json:"template"`
	Secret   string   `json:"secret,omitempty"`
}

// UpdateThemeEndpoint handles PUT /api/themes/{id}.
type UpdateThemeEndpoint struct{}

func (e *UpdateThemeEndpoint) Route() (string, string, http.HandlerFunc) {
	return "PUT", "/api/themes/{id}", e.handler
}

func (e *UpdateThemeEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Update a theme
//	@Description	Full replace of name, fields, and template. Usage count is untouched. Requires the management secret.
//	@Tags			themes
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Theme id"
//	@Param			request	body		UpdateThemeRequest	true	"New attributes"
//	@Success		200		{object}	themes.Theme
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/api/themes/{id} [put]
func (e *UpdateThemeEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req UpdateThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !manageAllowed(r, req.Secret) {
		writeDomainError(w, session.ErrAuthentication)
		return
	}

	store := svcctx.ThemeStoreFrom(r.Context())
	theme, err := store.Update(r.Context(), id, req.Name, req.Fields, req.Template)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	svcctx.ThemeCacheFrom(r.Context()).Put(theme)
	writeJSON(w, http.StatusOK, theme)
}

func (e *UpdateThemeEndpoint) Command(getServerURL func() string) *cobra.Command {
	var (
		name     string
		fields   []string
		template string
		secret   string
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || template == "" {
				return fmt.Errorf("--name and --template are required")
			}
			client := api.NewClient(getServerURL())
			var resp themes.Theme
			req := UpdateThemeRequest{
				Name:     name,
				Fields:   fields,
				Template: template,
				Secret:   secret,
			}
			if err := client.Put(cmd.Context(), "/api/themes/"+args[0], req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Theme name (required)")
	cmd.Flags().StringSliceVar(&fields, "field", nil, "Placeholder field name (repeatable)")
	cmd.Flags().StringVar(&template, "template", "", "Prompt template with {field} placeholders (required)")
	cmd.Flags().StringVar(&secret, "secret", "", "Management secret")
	return cmd
}
