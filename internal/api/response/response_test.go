package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRespondJSON(t *testing.T) {
	t.Run("sets content-type and status code correctly", func(t *testing.T) {
		w := httptest.NewRecorder()

		RespondJSON(w, http.StatusOK, map[string]string{"message": "success"})

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
		if w.Header().Get("Content-Type") != "application/json" {
			t.Errorf("Expected Content-Type 'application/json', got '%s'", w.Header().Get("Content-Type"))
		}
	})

	t.Run("handles nil data without error", func(t *testing.T) {
		w := httptest.NewRecorder()

		RespondJSON(w, http.StatusNoContent, nil)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected status 204, got %d", w.Code)
		}
		if w.Body.Len() != 0 {
			t.Errorf("Expected empty body, got '%s'", w.Body.String())
		}
	})

	t.Run("handles un-encodable data gracefully", func(t *testing.T) {
		w := httptest.NewRecorder()

		// Channels cannot be JSON encoded
		RespondJSON(w, http.StatusOK, map[string]interface{}{"channel": make(chan int)})

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
	})
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondError(w, http.StatusNotFound, "aspirante not found", "no row")

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}

	var body ErrorResponse
	//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
	json.NewDecoder(w.Body).Decode(&body)

	if body.Error != "aspirante not found" {
		t.Errorf("Expected error 'aspirante not found', got '%s'", body.Error)
	}
	if body.Details != "no row" {
		t.Errorf("Expected details 'no row', got '%v'", body.Details)
	}
}

func TestRespondFile(t *testing.T) {
	w := httptest.NewRecorder()

	RespondFile(w, "text/csv; charset=utf-8", "aspirantes.csv", []byte("Nombre\n"))

	if w.Header().Get("Content-Type") != "text/csv; charset=utf-8" {
		t.Errorf("Expected CSV content type, got '%s'", w.Header().Get("Content-Type"))
	}
	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="aspirantes.csv"` {
		t.Errorf("Expected attachment disposition, got '%s'", got)
	}
	if w.Body.String() != "Nombre\n" {
		t.Errorf("Expected body to be written, got '%s'", w.Body.String())
	}
}
