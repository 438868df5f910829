package endpoints

import (
	"github.com/jackzampolin/promptgen/internal/api"
	"github.com/jackzampolin/promptgen/internal/recordstore"
)

// Config holds dependencies needed by some endpoints.
type Config struct {
	StoreManager    *recordstore.Manager
	SwaggerSpecPath string
}

// All returns all endpoint instances.
func All(cfg Config) []api.Endpoint {
	return []api.Endpoint{
		// Health endpoints
		&HealthEndpoint{},
		&ReadyEndpoint{},
		&StatusEndpoint{StoreManager: cfg.StoreManager},

		// Theme endpoints
		&ListThemesEndpoint{},
		&CreateThemeEndpoint{},
		&UpdateThemeEndpoint{},
		&DeleteThemeEndpoint{},

		// Session endpoints
		&SessionEndpoint{},
		&SessionSelectEndpoint{},
		&SessionInputsEndpoint{},
		&SessionGenerateEndpoint{},
		&SessionResetEndpoint{},
		&SessionAuthEndpoint{},

		// Rankings and usage endpoints
		&RankingsEndpoint{},
		&UsageResetEndpoint{},

		// Swagger/OpenAPI endpoints
		&SwaggerEndpoint{SpecPath: cfg.SwaggerSpecPath},
		&SwaggerUIEndpoint{},

		// Static files (catch-all, must be last)
		&StaticEndpoint{},
	}
}

// ThemeCommands returns endpoints for theme management operations.
// This groups theme-related commands under "themes" subcommand.
func ThemeCommands() []api.Endpoint {
	return []api.Endpoint{
		&ListThemesEndpoint{},
		&CreateThemeEndpoint{},
		&UpdateThemeEndpoint{},
		&DeleteThemeEndpoint{},
	}
}

// SessionCommands returns endpoints for session operations.
// This groups session-related commands under "session" subcommand.
func SessionCommands() []api.Endpoint {
	return []api.Endpoint{
		&SessionEndpoint{},
		&SessionSelectEndpoint{},
		&SessionInputsEndpoint{},
		&SessionGenerateEndpoint{},
		&SessionResetEndpoint{},
		&SessionAuthEndpoint{},
	}
}
