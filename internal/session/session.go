// Package session holds the single-user selection → fill-in → generate flow
// as an explicit state machine. Nothing here is persisted; the session starts
// idle on every process start.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/jackzampolin/promptgen/internal/prompt"
	"github.com/jackzampolin/promptgen/internal/themes"
)

// State names the position in the generation flow.
type State string

const (
	StateIdle          State = "idle"
	StateAwaitingInput State = "awaiting_input"
	StateGenerated     State = "generated"
)

var (
	// ErrThemeNotFound indicates selection of an id absent from the cache.
	ErrThemeNotFound = errors.New("theme not found")

	// ErrTemplateMissing indicates selection of a theme with an empty template.
	ErrTemplateMissing = errors.New("theme has no template")

	// ErrAuthentication indicates a secret mismatch on the management gate.
	ErrAuthentication = errors.New("authentication failed")

	// ErrNotAwaitingInput indicates a generate or input call outside the
	// awaiting_input state.
	ErrNotAwaitingInput = errors.New("no theme selected")
)

// Session is the in-memory state for one user's flow. Methods are safe for
// concurrent use; the state itself models a single active user.
type Session struct {
	mu sync.Mutex

	id            string
	state         State
	themeID       string
	inputs        map[string]string
	output        string
	authenticated bool

	cache  *themes.Cache
	store  *themes.Store
	secret string
	logger *slog.Logger
}

// Result is the outcome of a successful generation. UsageWarning is set when
// the generated prompt is good but persisting the usage count failed; the
// generated transition is never rolled back for that.
type Result struct {
	Output       string
	Theme        themes.Theme
	UsageWarning string
}

// Snapshot is a read-only view of the session for status output.
type Snapshot struct {
	ID            string            `json:"id"`
	State         State             `json:"state"`
	ThemeID       string            `json:"theme_id,omitempty"`
	Inputs        map[string]string `json:"inputs,omitempty"`
	Output        string            `json:"output,omitempty"`
	Authenticated bool              `json:"authenticated"`
}

// New creates an idle session.
func New(cache *themes.Cache, store *themes.Store, secret string, logger *slog.Logger) *Session {
	return &Session{
		id:     uuid.NewString(),
		state:  StateIdle,
		inputs: make(map[string]string),
		cache:  cache,
		store:  store,
		secret: secret,
		logger: logger.With("component", "session"),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// Select moves to awaiting_input for the given theme. Prior inputs and output
// are cleared even when re-selecting the same theme. Fails without changing
// state if the id is unknown or the theme's template is empty.
func (s *Session) Select(id string) (themes.Theme, error) {
	theme, ok := s.cache.Get(id)
	if !ok {
		return themes.Theme{}, fmt.Errorf("%w: %s", ErrThemeNotFound, id)
	}
	if theme.PromptTemplate == "" {
		return themes.Theme{}, fmt.Errorf("%w: %s", ErrTemplateMissing, theme.Name)
	}

	s.mu.Lock()
	s.state = StateAwaitingInput
	s.themeID = id
	s.inputs = make(map[string]string)
	s.output = ""
	s.mu.Unlock()

	s.logger.Debug("theme selected", "theme", theme.Name)
	return theme, nil
}

// SetInput records one field value. Only valid while awaiting input.
func (s *Session) SetInput(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAwaitingInput {
		return ErrNotAwaitingInput
	}
	s.inputs[field] = value
	return nil
}

// SetInputs replaces the whole field-value mapping. Only valid while awaiting
// input.
func (s *Session) SetInputs(values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAwaitingInput {
		return ErrNotAwaitingInput
	}
	s.inputs = make(map[string]string, len(values))
	for k, v := range values {
		s.inputs[k] = v
	}
	return nil
}

// Generate renders the selected theme's template with the recorded inputs.
// On success the session moves to generated and the theme's usage count is
// persisted; a persist failure surfaces as Result.UsageWarning, never as an
// error, and never rolls back the transition. On render failure the session
// stays in awaiting_input.
func (s *Session) Generate(ctx context.Context) (Result, error) {
	s.mu.Lock()
	if s.state != StateAwaitingInput {
		s.mu.Unlock()
		return Result{}, ErrNotAwaitingInput
	}
	themeID := s.themeID
	values := make(map[string]string, len(s.inputs))
	for k, v := range s.inputs {
		values[k] = v
	}
	s.mu.Unlock()

	theme, ok := s.cache.Get(themeID)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrThemeNotFound, themeID)
	}

	output, err := prompt.Render(theme.PromptTemplate, theme.Fields, values)
	if err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	s.state = StateGenerated
	s.output = output
	s.mu.Unlock()

	result := Result{Output: output, Theme: theme}

	updated, err := s.store.SetUsage(ctx, theme.ID, theme.UsageCount+1)
	if err != nil {
		s.logger.Error("failed to persist usage count", "theme", theme.Name, "error", err)
		result.UsageWarning = fmt.Sprintf("prompt generated but usage count not saved: %v", err)
		return result, nil
	}
	s.cache.Put(updated)
	result.Theme = updated

	s.logger.Info("prompt generated", "theme", updated.Name, "usage_count", updated.UsageCount)
	return result, nil
}

// Reset returns to idle, clearing the selection, inputs, and output, and
// reissues the session ID. The authenticated flag survives; it is sticky for
// the session's lifetime.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.id = uuid.NewString()
	s.state = StateIdle
	s.themeID = ""
	s.inputs = make(map[string]string)
	s.output = ""
}

// ThemeDeleted clears the session if the deleted theme is the active one.
func (s *Session) ThemeDeleted(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.themeID != id {
		return
	}
	s.state = StateIdle
	s.themeID = ""
	s.inputs = make(map[string]string)
	s.output = ""
}

// Authenticate compares the given secret against the configured one. An exact
// match sets the sticky authenticated flag; anything else fails and leaves the
// flag untouched. This is a UI gate, not a security boundary.
func (s *Session) Authenticate(secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if secret != s.secret {
		return ErrAuthentication
	}
	s.authenticated = true
	return nil
}

// SetSecret replaces the gate secret, for config hot reload. The sticky
// authenticated flag is untouched.
func (s *Session) SetSecret(secret string) {
	s.mu.Lock()
	s.secret = secret
	s.mu.Unlock()
}

// CheckSecret reports whether the given secret matches, without touching the
// session's authenticated flag. Used by stateless management requests.
func (s *Session) CheckSecret(secret string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return secret == s.secret
}

// Authenticated reports whether the management gate has been passed.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	inputs := make(map[string]string, len(s.inputs))
	for k, v := range s.inputs {
		inputs[k] = v
	}
	return Snapshot{
		ID:            s.id,
		State:         s.state,
		ThemeID:       s.themeID,
		Inputs:        inputs,
		Output:        s.output,
		Authenticated: s.authenticated,
	}
}
