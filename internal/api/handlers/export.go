package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/api/response"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/apperrors"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/service"
)

// ExportHandler serves file downloads of the records table.
type ExportHandler struct {
	exportService *service.ExportService
	loc           *time.Location
	now           func() time.Time
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService *service.ExportService, loc *time.Location) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		loc:           loc,
		now:           time.Now,
	}
}

// ExportCSV handles GET requests to download the filtered records as CSV.
// It accepts the same query parameters as the list endpoint.
//
// Endpoint: GET /api/aspirante/export
// Query Parameters: search, period, days, months, year, month (0-11), week, date
// Response: 200 OK with text/csv attachment
// Error: 400 Bad Request if the period parameters are invalid
// Error: 500 Internal Server Error if the export fails
func (h *ExportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	sel, err := parsePeriod(r, h.loc)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidPeriod.Error(), err.Error())
		return
	}

	body, err := h.exportService.CSV(r.Context(), r.URL.Query().Get("search"), sel)
	if err != nil {
		serverError(w, r, apperrors.ErrFailedToExportCSV.Error(), err)
		return
	}

	filename := fmt.Sprintf("aspirantes_%s.csv", h.now().In(h.loc).Format("2006-01-02"))
	response.RespondFile(w, "text/csv; charset=utf-8", filename, body)
}

// Receipt handles GET requests for the PDF receipt of one aspirante.
//
// Endpoint: GET /api/aspirante/{uuid}/receipt
// Response: 200 OK with application/pdf attachment
// Error: 400 Bad Request if aspirante ID is invalid (validated by middleware)
// Error: 404 Not Found if aspirante not found
// Error: 500 Internal Server Error if rendering fails
func (h *ExportHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	aspiranteID := chi.URLParam(r, "uuid")

	body, err := h.exportService.Receipt(r.Context(), aspiranteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAspiranteNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAspiranteNotFound.Error(), err.Error())
			return
		}

		serverError(w, r, apperrors.ErrFailedToRenderPDF.Error(), err)
		return
	}

	response.RespondFile(w, "application/pdf", "recibo_"+aspiranteID+".pdf", body)
}
