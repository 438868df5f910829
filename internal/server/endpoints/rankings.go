package endpoints

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/promptgen/internal/api"
	"github.com/jackzampolin/promptgen/internal/config"
	"github.com/jackzampolin/promptgen/internal/svcctx"
	"github.com/jackzampolin/promptgen/internal/themes"
)

// RankingsResponse lists the most-used themes in descending usage order.
type RankingsResponse struct {
	Rankings []themes.Theme `json:"rankings"`
}

// RankingsEndpoint handles GET /api/rankings.
type RankingsEndpoint struct{}

func (e *RankingsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/rankings", e.handler
}

func (e *RankingsEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Top themes by usage
//	@Description	Returns the most-used themes, highest first. Ties keep their listing order.
//	@Tags			rankings
//	@Produce		json
//	@Param			limit	query		int	false	"Number of themes to return"
//	@Success		200		{object}	RankingsResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/api/rankings [get]
func (e *RankingsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	// Servers built without a config manager still serve rankings.
	limit := config.DefaultRankingLimit
	if cm := svcctx.ConfigFrom(r.Context()); cm != nil {
		limit = cm.Get().RankingLimit()
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid limit %q", raw))
			return
		}
		limit = n
	}

	cache := svcctx.ThemeCacheFrom(r.Context())
	ranked := themes.TopByUsage(cache.All(), limit)
	if ranked == nil {
		ranked = []themes.Theme{}
	}

	writeJSON(w, http.StatusOK, RankingsResponse{Rankings: ranked})
}

func (e *RankingsEndpoint) Command(getServerURL func() string) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "rankings",
		Short: "Show the most-used themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/rankings"
			if limit > 0 {
				path = fmt.Sprintf("%s?limit=%d", path, limit)
			}

			client := api.NewClient(getServerURL())
			var resp RankingsResponse
			if err := client.Get(cmd.Context(), path, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Number of themes to return (default from server config)")
	return cmd
}
