package themes

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackzampolin/promptgen/internal/recordstore"
)

// Store performs theme round trips against the record store. The store is the
// single source of truth; every mutation returns the store's copy of the
// record so callers can patch their cache from confirmed state.
type Store struct {
	client *recordstore.Client
	logger *slog.Logger
}

// NewStore creates a theme store backed by the given record store client.
func NewStore(client *recordstore.Client, logger *slog.Logger) *Store {
	return &Store{
		client: client,
		logger: logger.With("component", "themes"),
	}
}

// List returns all themes from the store.
func (s *Store) List(ctx context.Context) ([]Theme, error) {
	query := fmt.Sprintf(`{ %s { _docID %s } }`, Collection, strings.Join(docFields, " "))

	resp, err := s.client.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if errMsg := resp.Error(); errMsg != "" {
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, errMsg)
	}

	docs, ok := resp.Data[Collection].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected response shape", ErrStoreUnavailable)
	}

	themes := make([]Theme, 0, len(docs))
	for _, raw := range docs {
		doc, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		t, err := themeFromDoc(doc)
		if err != nil {
			s.logger.Warn("skipping malformed theme document", "error", err)
			continue
		}
		themes = append(themes, t)
	}
	return themes, nil
}

// Create validates and inserts a new theme. The store assigns the id and the
// usage count starts at zero. Validation failures never reach the wire.
func (s *Store) Create(ctx context.Context, name string, fields []string, template string) (Theme, error) {
	if err := validate(name, fields, template); err != nil {
		return Theme{}, err
	}

	input := docInput(name, fields, template)
	input["usage_count"] = 0

	doc, err := s.client.Create(ctx, Collection, input, docFields...)
	if err != nil {
		return Theme{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	t, err := themeFromDoc(doc)
	if err != nil {
		return Theme{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("theme created", "id", t.ID, "name", t.Name)
	return t, nil
}

// Update validates and replaces a theme's name, fields, and template. The
// usage count is untouched.
func (s *Store) Update(ctx context.Context, id, name string, fields []string, template string) (Theme, error) {
	if err := validate(name, fields, template); err != nil {
		return Theme{}, err
	}

	doc, err := s.client.Update(ctx, Collection, id, docInput(name, fields, template), docFields...)
	if err != nil {
		if isNoMatchError(err) {
			return Theme{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return Theme{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	t, err := themeFromDoc(doc)
	if err != nil {
		return Theme{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("theme updated", "id", t.ID, "name", t.Name)
	return t, nil
}

// SetUsage sets a theme's usage count to the given value and returns the
// updated record. The caller computes old+1; the store's copy keeps cache and
// store consistent.
func (s *Store) SetUsage(ctx context.Context, id string, count int) (Theme, error) {
	doc, err := s.client.Update(ctx, Collection, id, map[string]any{"usage_count": count}, docFields...)
	if err != nil {
		if isNoMatchError(err) {
			return Theme{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return Theme{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return themeFromDoc(doc)
}

// ResetAllUsage sets every given theme's usage count to zero, one round trip
// at a time in the order given. There is no atomicity across records: on the
// first failure the operation stops and returns ErrPartialReset, and the
// caller cannot assume which records were reset.
func (s *Store) ResetAllUsage(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if _, err := s.client.Update(ctx, Collection, id, map[string]any{"usage_count": 0}); err != nil {
			s.logger.Error("usage reset failed partway", "id", id, "error", err)
			return fmt.Errorf("%w: update for %s: %v", ErrPartialReset, id, err)
		}
	}

	s.logger.Info("usage counts reset", "count", len(ids))
	return nil
}

// Delete removes a theme from the store.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, Collection, id); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("theme deleted", "id", id)
	return nil
}

// validate applies the local gates shared by create and edit: name, every
// field name, and the template must be non-empty. Only the empty string
// counts as empty, the same definition the renderer uses for field values.
func validate(name string, fields []string, template string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrValidation)
	}
	for i, f := range fields {
		if f == "" {
			return fmt.Errorf("%w: field %d is empty", ErrValidation, i)
		}
	}
	if template == "" {
		return fmt.Errorf("%w: template is empty", ErrValidation)
	}
	return nil
}

// isNoMatchError checks whether an update round trip failed because no
// document matched the docID. The store speaks HTTP, so this is string
// matching on the response body.
func isNoMatchError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "no document updated") ||
		strings.Contains(msg, "document not found")
}
