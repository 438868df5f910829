// Package svcctx provides service context for dependency injection via context.
// This package is separate from server to avoid import cycles with endpoints.
package svcctx

import (
	"context"
	"log/slog"

	"github.com/jackzampolin/promptgen/internal/config"
	"github.com/jackzampolin/promptgen/internal/home"
	"github.com/jackzampolin/promptgen/internal/recordstore"
	"github.com/jackzampolin/promptgen/internal/session"
	"github.com/jackzampolin/promptgen/internal/themes"
)

// Services holds all core services that flow through context.
// Components extract what they need via the individual extractors.
type Services struct {
	StoreClient *recordstore.Client
	ThemeStore  *themes.Store
	ThemeCache  *themes.Cache
	Session     *session.Session
	Config      *config.Manager
	Logger      *slog.Logger
	Home        *home.Dir
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// StoreClientFrom extracts the record store client from context.
func StoreClientFrom(ctx context.Context) *recordstore.Client {
	if s := ServicesFrom(ctx); s != nil {
		return s.StoreClient
	}
	return nil
}

// ThemeStoreFrom extracts the theme store from context.
func ThemeStoreFrom(ctx context.Context) *themes.Store {
	if s := ServicesFrom(ctx); s != nil {
		return s.ThemeStore
	}
	return nil
}

// ThemeCacheFrom extracts the theme cache from context.
func ThemeCacheFrom(ctx context.Context) *themes.Cache {
	if s := ServicesFrom(ctx); s != nil {
		return s.ThemeCache
	}
	return nil
}

// SessionFrom extracts the user session from context.
func SessionFrom(ctx context.Context) *session.Session {
	if s := ServicesFrom(ctx); s != nil {
		return s.Session
	}
	return nil
}

// ConfigFrom extracts the config manager from context.
func ConfigFrom(ctx context.Context) *config.Manager {
	if s := ServicesFrom(ctx); s != nil {
		return s.Config
	}
	return nil
}

// LoggerFrom extracts the logger from context.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil {
		return s.Logger
	}
	return nil
}

// HomeFrom extracts the home directory from context.
func HomeFrom(ctx context.Context) *home.Dir {
	if s := ServicesFrom(ctx); s != nil {
		return s.Home
	}
	return nil
}
