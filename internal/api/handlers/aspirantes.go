package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/api/request"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/api/response"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/apperrors"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/service"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/validation"
)

// AspiranteHandler handles HTTP requests for aspirante endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the aspiranteService.
type AspiranteHandler struct {
	aspiranteService *service.AspiranteService
	loc              *time.Location
}

// NewAspiranteHandler creates a new AspiranteHandler with the provided service dependency.
// loc is the calendar used to resolve period query parameters.
func NewAspiranteHandler(aspiranteService *service.AspiranteService, loc *time.Location) *AspiranteHandler {
	return &AspiranteHandler{
		aspiranteService: aspiranteService,
		loc:              loc,
	}
}

// Aspirantes handles GET requests to list aspirantes, optionally narrowed by
// a free-text search and a period.
//
// Endpoint: GET /api/aspirante
// Query Parameters: search, period, days, months, year, month (0-11), week, date
// Response: 200 OK with array of Aspirante
// Error: 400 Bad Request if the period parameters are invalid
// Error: 500 Internal Server Error if retrieval fails
func (h *AspiranteHandler) Aspirantes(w http.ResponseWriter, r *http.Request) {
	sel, err := parsePeriod(r, h.loc)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidPeriod.Error(), err.Error())
		return
	}

	aspirantes, err := h.aspiranteService.ListAspirantes(r.Context(), r.URL.Query().Get("search"), sel)
	if err != nil {
		serverError(w, r, apperrors.ErrFailedToRetrieveAspirantes.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, aspirantes)
}

// GetAspirante handles GET requests to retrieve a single aspirante by ID.
//
// Endpoint: GET /api/aspirante/{uuid}
// Response: 200 OK with Aspirante
// Error: 400 Bad Request if aspirante ID is invalid (validated by middleware)
// Error: 404 Not Found if aspirante not found
// Error: 500 Internal Server Error if retrieval fails
func (h *AspiranteHandler) GetAspirante(w http.ResponseWriter, r *http.Request) {
	aspiranteID := chi.URLParam(r, "uuid")

	aspirante, err := h.aspiranteService.GetAspirante(r.Context(), aspiranteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAspiranteNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAspiranteNotFound.Error(), err.Error())
			return
		}

		serverError(w, r, apperrors.ErrFailedToRetrieveAspirante.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, aspirante)
}

// CreateAspirante handles POST requests to record a purchase or sale.
// The ID and date_create are assigned by the server.
//
// Endpoint: POST /api/aspirante
// Request Body: CreateAspiranteRequest (nombre, identificacion, telefono, tipo_cafe, peso, precio, precio_total, estado, estado_monetario)
// Response: 201 Created with Aspirante
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *AspiranteHandler) CreateAspirante(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateAspiranteRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateAspirante(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	aspirante, err := h.aspiranteService.CreateAspirante(r.Context(), req)
	if err != nil {
		serverError(w, r, apperrors.ErrFailedToCreateAspirante.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, aspirante)
}

// UpdateAspirante handles PUT requests to update an existing aspirante.
// date_create is never changed.
//
// Endpoint: PUT /api/aspirante/{uuid}
// Request Body: UpdateAspiranteRequest (all fields optional)
// Response: 200 OK with updated Aspirante
// Error: 400 Bad Request if aspirante ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if aspirante not found
// Error: 500 Internal Server Error if update fails
func (h *AspiranteHandler) UpdateAspirante(w http.ResponseWriter, r *http.Request) {
	aspiranteID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateAspiranteRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateAspirante(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	aspirante, err := h.aspiranteService.UpdateAspirante(r.Context(), aspiranteID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAspiranteNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAspiranteNotFound.Error(), err.Error())
			return
		}

		serverError(w, r, apperrors.ErrFailedToUpdateAspirante.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, aspirante)
}

// DeleteAspirante handles DELETE requests to remove an aspirante.
//
// Endpoint: DELETE /api/aspirante/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if aspirante ID is invalid (validated by middleware)
// Error: 404 Not Found if aspirante not found
// Error: 500 Internal Server Error if deletion fails
func (h *AspiranteHandler) DeleteAspirante(w http.ResponseWriter, r *http.Request) {
	aspiranteID := chi.URLParam(r, "uuid")

	err := h.aspiranteService.DeleteAspirante(r.Context(), aspiranteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAspiranteNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAspiranteNotFound.Error(), err.Error())
			return
		}

		serverError(w, r, apperrors.ErrFailedToDeleteAspirante.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// ImportAspirantes handles POST requests carrying a JSON array exported from
// the legacy document store. Records whose legacy _id is already stored are
// skipped, so the same file can be imported twice.
//
// Endpoint: POST /api/aspirante/import
// Request Body: array of LegacyAspirante
// Response: 200 OK with ImportResult
// Error: 400 Bad Request if the body is not a JSON array
// Error: 500 Internal Server Error if the import fails; nothing is stored
func (h *AspiranteHandler) ImportAspirantes(w http.ResponseWriter, r *http.Request) {
	records, err := parseJSON[[]request.LegacyAspirante](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidLegacyPayload.Error(), err.Error())
		return
	}

	result, err := h.aspiranteService.ImportLegacy(r.Context(), records)
	if err != nil {
		serverError(w, r, apperrors.ErrFailedToImportAspirantes.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}
