package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/promptgen/internal/api"
	"github.com/jackzampolin/promptgen/internal/session"
	"github.com/jackzampolin/promptgen/internal/svcctx"
)

// DeleteThemeEndpoint handles DELETE /api/themes/{id}.
type DeleteThemeEndpoint struct{}

func (e *DeleteThemeEndpoint) Route() (string, string, http.HandlerFunc) {
	return "DELETE", "/api/themes/{id}", e.handler
}

func (e *DeleteThemeEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Delete a theme
//	@Description	Deletes a theme from the store. If it was the session's active theme, the session returns to idle. Requires the management secret.
//	@Tags			themes
//	@Produce		json
//	@Param			id	path	string	true	"Theme id"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		502	{object}	ErrorResponse
//	@Router			/api/themes/{id} [delete]
func (e *DeleteThemeEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if !manageAllowed(r, "") {
		writeDomainError(w, session.ErrAuthentication)
		return
	}

	store := svcctx.ThemeStoreFrom(r.Context())
	if err := store.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}

	svcctx.ThemeCacheFrom(r.Context()).Remove(id)
	svcctx.SessionFrom(r.Context()).ThemeDeleted(id)

	w.WriteHeader(http.StatusNoContent)
}

func (e *DeleteThemeEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			if err := client.Delete(cmd.Context(), "/api/themes/"+args[0]); err != nil {
				return err
			}
			cmd.Println("deleted", args[0])
			return nil
		},
	}
}
