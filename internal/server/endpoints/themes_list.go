package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/promptgen/internal/api"
	"github.com/jackzampolin/promptgen/internal/svcctx"
	"github.com/jackzampolin/promptgen/internal/themes"
)

// ListThemesResponse is the response for listing themes.
type ListThemesResponse struct {
	Themes []themes.Theme `json:"themes"`
}

// ListThemesEndpoint handles GET /api/themes.
type ListThemesEndpoint struct{}

func (e *ListThemesEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/themes", e.handler
}

func (e *ListThemesEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		List themes
//	@Description	Refreshes the cache wholesale from the record store and returns all themes
//	@Tags			themes
//	@Produce		json
//	@Success		200	{object}	ListThemesResponse
//	@Failure		502	{object}	ErrorResponse
//	@Router			/api/themes [get]
func (e *ListThemesEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	cache := svcctx.ThemeCacheFrom(r.Context())
	store := svcctx.ThemeStoreFrom(r.Context())

	if err := cache.Refresh(r.Context(), store); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ListThemesResponse{Themes: cache.All()})
}

func (e *ListThemesEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp ListThemesResponse
			if err := client.Get(cmd.Context(), "/api/themes", &resp); err != nil {
				return err
			}
			return api.Output(resp.Themes)
		},
	}
}
