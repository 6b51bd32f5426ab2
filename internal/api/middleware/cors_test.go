package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/api/middleware"
)

func TestNewCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.NewCORS([]string{"http://localhost:5173"}).Handler(next)

	t.Run("allows a configured origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/aspirante", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
			t.Errorf("Expected origin to be allowed, got '%s'", got)
		}
	})

	t.Run("ignores an unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/aspirante", nil)
		req.Header.Set("Origin", "http://evil.example")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Expected no allow-origin header, got '%s'", got)
		}
	})
}
