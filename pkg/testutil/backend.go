// Package testutil provides common test utilities: a fake storefront
// backend and a fully wired client stack.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Backend is a chi-routed fake storefront API. It counts every request so
// tests can assert that client-side validation short-circuits with zero
// network calls.
type Backend struct {
	Server *httptest.Server
	Router chi.Router
	calls  atomic.Int64
}

// NewBackend starts a fake backend; it is closed automatically when the
// test finishes. Register routes on Router before issuing calls.
func NewBackend(t *testing.T) *Backend {
	t.Helper()

	b := &Backend{}
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			b.calls.Add(1)
			next.ServeHTTP(w, req)
		})
	})
	b.Router = r
	b.Server = httptest.NewServer(r)
	t.Cleanup(b.Server.Close)
	return b
}

// URL returns the backend's base URL.
func (b *Backend) URL() string { return b.Server.URL }

// Calls returns how many requests reached the backend.
func (b *Backend) Calls() int { return int(b.calls.Load()) }

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the backend's error body shape.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"message": message})
}
