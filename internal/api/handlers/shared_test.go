package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/api/response"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/logger"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/period"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/testutil"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/validation"
)

// These are internal tests (package handlers, not handlers_test) because
// the helpers are unexported.

func TestServerError(t *testing.T) {
	buf := &bytes.Buffer{}
	reqLog := logger.NewWithWriter(buf, zerolog.InfoLevel).With().Str("request_id", "req-42").Logger()

	req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	req = req.WithContext(logger.WithContext(req.Context(), reqLog))
	w := httptest.NewRecorder()

	serverError(w, req, "failed to get summary", errors.New("disk I/O error"))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}

	var errResp response.ErrorResponse
	//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
	json.NewDecoder(w.Body).Decode(&errResp)
	if errResp.Error != "failed to get summary" || errResp.Details != "disk I/O error" {
		t.Errorf("Expected summary error with details, got %+v", errResp)
	}

	output := buf.String()
	for _, want := range []string{`"request_id":"req-42"`, `"error":"disk I/O error"`, `"path":"/api/summary"`, `"level":"error"`} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected log output to contain %s, got: %s", want, output)
		}
	}
}

func TestParseJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("decodes a valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ana","extra":1}`))

		got, err := parseJSON[payload](req)

		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if got.Name != "Ana" {
			t.Errorf("Expected name 'Ana', got '%s'", got.Name)
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))

		if _, err := parseJSON[payload](req); err == nil {
			t.Error("Expected error for malformed JSON")
		}
	})

	t.Run("rejects an object where an array is expected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ana"}`))

		if _, err := parseJSON[[]payload](req); err == nil {
			t.Error("Expected error decoding an object into a slice")
		}
	})
}

func TestParsePeriod(t *testing.T) {
	t.Run("defaults to all", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/aspirante", nil)

		sel, err := parsePeriod(req, time.UTC)

		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if sel.Kind != period.KindAll {
			t.Errorf("Expected kind 'all', got '%s'", sel.Kind)
		}
	})

	t.Run("wraps errors in a validation error", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/aspirante", map[string]string{"period": "year"})

		_, err := parsePeriod(req, time.UTC)

		var verr *validation.Error
		if !errors.As(err, &verr) {
			t.Fatalf("Expected validation error, got %v", err)
		}
		if _, ok := verr.Fields["period"]; !ok {
			t.Errorf("Expected a 'period' field error, got %v", verr.Fields)
		}
	})

	t.Run("fixed kind overrides the query", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/summary/month", map[string]string{
			"period": "recent",
			"year":   "2024",
			"month":  "0",
		})

		sel, err := parsePeriodAs(req, period.KindMonth, time.UTC)

		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if sel.Kind != period.KindMonth || sel.Month != time.January {
			t.Errorf("Expected January month selector, got %+v", sel)
		}
	})
}

func TestOptionalYear(t *testing.T) {
	tests := []struct {
		query   map[string]string
		want    int
		wantErr bool
	}{
		{nil, 0, false},
		{map[string]string{"year": "2024"}, 2024, false},
		{map[string]string{"year": "0"}, 0, true},
		{map[string]string{"year": "twenty"}, 0, true},
	}

	for _, tt := range tests {
		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/summary/snapshots", tt.query)

		got, err := optionalYear(req)

		if (err != nil) != tt.wantErr {
			t.Errorf("%v: expected error=%v, got %v", tt.query, tt.wantErr, err)
		}
		if got != tt.want {
			t.Errorf("%v: expected %d, got %d", tt.query, tt.want, got)
		}
	}
}
