package themes

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jackzampolin/promptgen/internal/recordstore"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// gqlServer returns a test server that answers every GraphQL request with the
// given body.
func gqlServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v0/graphql" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestStore_List(t *testing.T) {
	server := gqlServer(t, `{"data": {"Theme": [
		{"_docID": "bae-1", "name": "Email", "fields": ["tone", "topic"], "prompt_template": "Write a {tone} email about {topic}.", "usage_count": 5},
		{"_docID": "bae-2", "name": "Outline", "fields": ["subject"], "prompt_template": "Outline {subject}.", "usage_count": 0}
	]}}`)
	defer server.Close()

	store := NewStore(recordstore.NewClient(server.URL), testLogger())
	themes, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(themes) != 2 {
		t.Fatalf("expected 2 themes, got %d", len(themes))
	}
	if themes[0].ID != "bae-1" || themes[0].Name != "Email" || themes[0].UsageCount != 5 {
		t.Errorf("unexpected first theme: %+v", themes[0])
	}
	if len(themes[0].Fields) != 2 || themes[0].Fields[0] != "tone" {
		t.Errorf("unexpected fields: %v", themes[0].Fields)
	}
}

func TestStore_List_StoreDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	server.Close() // Closed server refuses connections.

	store := NewStore(recordstore.NewClient(server.URL), testLogger())
	_, err := store.List(context.Background())
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestStore_Create(t *testing.T) {
	server := gqlServer(t, `{"data": {"create_Theme": [
		{"_docID": "bae-new", "name": "Email", "fields": ["tone"], "prompt_template": "A {tone} email.", "usage_count": 0}
	]}}`)
	defer server.Close()

	store := NewStore(recordstore.NewClient(server.URL), testLogger())
	theme, err := store.Create(context.Background(), "Email", []string{"tone"}, "A {tone} email.")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if theme.ID != "bae-new" {
		t.Errorf("expected store-assigned id, got %q", theme.ID)
	}
	if theme.UsageCount != 0 {
		t.Errorf("new theme usage count = %d, want 0", theme.UsageCount)
	}
}

func TestStore_Create_Validation(t *testing.T) {
	// Validation failures must never reach the wire.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("validation failure reached the store")
	}))
	defer server.Close()

	store := NewStore(recordstore.NewClient(server.URL), testLogger())

	tests := []struct {
		name     string
		theme    string
		fields   []string
		template string
	}{
		{"empty name", "", []string{"tone"}, "A {tone} email."},
		{"empty field", "Email", []string{"tone", ""}, "A {tone} email."},
		{"empty template", "Email", []string{"tone"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Create(context.Background(), tt.theme, tt.fields, tt.template)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestStore_Create_WhitespaceNameAccepted(t *testing.T) {
	// Only the empty string is rejected; a whitespace-only name goes to the
	// store unchanged.
	server := gqlServer(t, `{"data": {"create_Theme": [
		{"_docID": "bae-ws", "name": "   ", "fields": ["tone"], "prompt_template": "A {tone} email.", "usage_count": 0}
	]}}`)
	defer server.Close()

	store := NewStore(recordstore.NewClient(server.URL), testLogger())
	theme, err := store.Create(context.Background(), "   ", []string{"tone"}, "A {tone} email.")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if theme.Name != "   " {
		t.Errorf("name = %q, want it preserved verbatim", theme.Name)
	}
}

func TestStore_Update_NotFound(t *testing.T) {
	server := gqlServer(t, `{"data": {"update_Theme": []}}`)
	defer server.Close()

	store := NewStore(recordstore.NewClient(server.URL), testLogger())
	_, err := store.Update(context.Background(), "bae-missing", "Email", []string{"tone"}, "A {tone} email.")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_SetUsage(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotQuery = string(body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"update_Theme": [
			{"_docID": "bae-1", "name": "Email", "fields": ["tone"], "prompt_template": "A {tone} email.", "usage_count": 6}
		]}}`))
	}))
	defer server.Close()

	store := NewStore(recordstore.NewClient(server.URL), testLogger())
	theme, err := store.SetUsage(context.Background(), "bae-1", 6)
	if err != nil {
		t.Fatalf("SetUsage() error = %v", err)
	}

	if theme.UsageCount != 6 {
		t.Errorf("usage count = %d, want 6", theme.UsageCount)
	}
	if !strings.Contains(gotQuery, "usage_count: 6") {
		t.Errorf("mutation missing usage_count: %s", gotQuery)
	}
}

func TestStore_ResetAllUsage(t *testing.T) {
	t.Run("all succeed", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"data": {"update_Theme": [{"_docID": "x"}]}}`))
		}))
		defer server.Close()

		store := NewStore(recordstore.NewClient(server.URL), testLogger())
		err := store.ResetAllUsage(context.Background(), []string{"bae-1", "bae-2", "bae-3"})
		if err != nil {
			t.Fatalf("ResetAllUsage() error = %v", err)
		}
		if calls != 3 {
			t.Errorf("expected 3 round trips, got %d", calls)
		}
	})

	t.Run("second update fails", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Header().Set("Content-Type", "application/json")
			if calls == 2 {
				w.Write([]byte(`{"errors": [{"message": "write conflict"}]}`))
				return
			}
			w.Write([]byte(`{"data": {"update_Theme": [{"_docID": "x"}]}}`))
		}))
		defer server.Close()

		store := NewStore(recordstore.NewClient(server.URL), testLogger())
		err := store.ResetAllUsage(context.Background(), []string{"bae-1", "bae-2", "bae-3"})

		// The error kind is all the caller can rely on; partial state in the
		// store is unspecified.
		if !errors.Is(err, ErrPartialReset) {
			t.Errorf("expected ErrPartialReset, got %v", err)
		}
	})
}

func TestStore_Delete(t *testing.T) {
	server := gqlServer(t, `{"data": {"delete_Theme": [{"_docID": "bae-1"}]}}`)
	defer server.Close()

	store := NewStore(recordstore.NewClient(server.URL), testLogger())
	if err := store.Delete(context.Background(), "bae-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}

func TestThemeFromDoc(t *testing.T) {
	t.Run("complete document", func(t *testing.T) {
		theme, err := themeFromDoc(map[string]any{
			"_docID":          "bae-1",
			"name":            "Email",
			"fields":          []any{"tone", "topic"},
			"prompt_template": "Write a {tone} email about {topic}.",
			"usage_count":     float64(5),
		})
		if err != nil {
			t.Fatalf("themeFromDoc() error = %v", err)
		}
		if theme.ID != "bae-1" || theme.Name != "Email" || theme.UsageCount != 5 {
			t.Errorf("unexpected theme: %+v", theme)
		}
	})

	t.Run("missing docID", func(t *testing.T) {
		_, err := themeFromDoc(map[string]any{"name": "Email"})
		if err == nil {
			t.Error("expected error for missing _docID")
		}
	})
}
