package handlers

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/export"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/testutil"
)

func TestExportHandler_ExportCSV(t *testing.T) {
	t.Run("downloads the filtered records with the legacy header", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewExportHandler(testutil.NewTestExportService(t, db, testutil.FixedClock(handlerNow)), time.UTC)
		handler.now = testutil.FixedClock(handlerNow)

		a := testutil.NewAspirante().WithName("Ana").CreatedOn(handlerNow.AddDate(0, 0, -1)).Build(t, db)
		testutil.NewAspirante().WithName("Luis").CreatedOn(handlerNow.AddDate(0, -2, 0)).Build(t, db)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/aspirante/export", map[string]string{"period": "recent"})
		w := httptest.NewRecorder()

		handler.ExportCSV(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
			t.Errorf("Expected text/csv content type, got '%s'", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="aspirantes_2024-03-15.csv"` {
			t.Errorf("Expected dated attachment, got '%s'", cd)
		}

		rows, err := csv.NewReader(bytes.NewReader(w.Body.Bytes())).ReadAll()
		if err != nil {
			t.Fatalf("Failed to parse CSV: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("Expected header and 1 row, got %d rows", len(rows))
		}
		if strings.Join(rows[0], ",") != strings.Join(export.CSVHeader, ",") {
			t.Errorf("Expected header %v, got %v", export.CSVHeader, rows[0])
		}
		if rows[1][0] != a.Name {
			t.Errorf("Expected row for %s, got %v", a.Name, rows[1])
		}
	})

	t.Run("returns 400 on invalid period", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewExportHandler(testutil.NewTestExportService(t, db, testutil.FixedClock(handlerNow)), time.UTC)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/aspirante/export", map[string]string{"period": "date"})
		w := httptest.NewRecorder()

		handler.ExportCSV(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestExportHandler_Receipt(t *testing.T) {
	t.Run("renders a PDF receipt", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewExportHandler(testutil.NewTestExportService(t, db, testutil.FixedClock(handlerNow)), time.UTC)

		a := testutil.NewAspirante().Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/aspirante/"+a.ID+"/receipt", map[string]string{"uuid": a.ID})
		w := httptest.NewRecorder()

		handler.Receipt(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Errorf("Expected application/pdf, got '%s'", ct)
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
			t.Error("Expected body to start with a PDF header")
		}
	})

	t.Run("returns 404 when aspirante not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewExportHandler(testutil.NewTestExportService(t, db, testutil.FixedClock(handlerNow)), time.UTC)

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/aspirante/"+id+"/receipt", map[string]string{"uuid": id})
		w := httptest.NewRecorder()

		handler.Receipt(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}
