package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_Defaults(t *testing.T) {
	s, err := New(Config{Logger: testLogger()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if s.Addr() != "127.0.0.1:8080" {
		t.Errorf("Addr() = %s, want 127.0.0.1:8080", s.Addr())
	}
	if s.IsRunning() {
		t.Error("new server reports running")
	}
	if s.StoreClient() != nil {
		t.Error("store client set before Start")
	}
}

func TestRequireInit_BeforeStart(t *testing.T) {
	s, err := New(Config{Logger: testLogger()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	called := false
	handler := s.requireInit(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("GET", "/api/themes", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
	if called {
		t.Error("handler ran before initialization")
	}
}

func TestUnprotectedRoutes_BeforeStart(t *testing.T) {
	s, err := New(Config{Logger: testLogger()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Liveness must answer even while the store is down.
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("/health status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/themes", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("/api/themes status = %d, want 503", rec.Code)
	}
}
