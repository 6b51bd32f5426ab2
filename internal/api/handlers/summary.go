package handlers

import (
	"net/http"
	"time"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/api/response"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/apperrors"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/period"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/service"
)

// SummaryHandler handles HTTP requests for the dashboard summaries.
type SummaryHandler struct {
	dashboardService *service.DashboardService
	snapshotService  *service.SnapshotService
	loc              *time.Location
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(
	dashboardService *service.DashboardService,
	snapshotService *service.SnapshotService,
	loc *time.Location,
) *SummaryHandler {
	return &SummaryHandler{
		dashboardService: dashboardService,
		snapshotService:  snapshotService,
		loc:              loc,
	}
}

// Overview handles GET requests for the records and totals of a period.
//
// Endpoint: GET /api/summary
// Query Parameters: period, days, months, year, month (0-11), week, date
// Response: 200 OK with PeriodOverview
// Error: 400 Bad Request if the period parameters are invalid
// Error: 500 Internal Server Error if retrieval fails
func (h *SummaryHandler) Overview(w http.ResponseWriter, r *http.Request) {
	sel, err := parsePeriod(r, h.loc)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidPeriod.Error(), err.Error())
		return
	}

	overview, err := h.dashboardService.Overview(r.Context(), sel)
	if err != nil {
		serverError(w, r, apperrors.ErrFailedToGetSummary.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, overview)
}

// Week handles GET requests for one week-of-month bucket.
//
// Endpoint: GET /api/summary/week
// Query Parameters: year, month (0-11), week (1-5)
// Response: 200 OK with WeekSummary including its records
// Error: 400 Bad Request if year, month or week is missing or out of range
// Error: 500 Internal Server Error if retrieval fails
func (h *SummaryHandler) Week(w http.ResponseWriter, r *http.Request) {
	sel, err := parsePeriodAs(r, period.KindWeek, h.loc)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidPeriod.Error(), err.Error())
		return
	}

	summary, err := h.dashboardService.Week(r.Context(), sel.Year, sel.Month, sel.Week)
	if err != nil {
		serverError(w, r, apperrors.ErrFailedToGetSummary.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// Month handles GET requests for the five week buckets of a month.
//
// Endpoint: GET /api/summary/month
// Query Parameters: year, month (0-11)
// Response: 200 OK with array of WeekSummary, weeks 1 to 5
// Error: 400 Bad Request if year or month is missing or out of range
// Error: 500 Internal Server Error if retrieval fails
func (h *SummaryHandler) Month(w http.ResponseWriter, r *http.Request) {
	sel, err := parsePeriodAs(r, period.KindMonth, h.loc)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidPeriod.Error(), err.Error())
		return
	}

	weeks, err := h.dashboardService.MonthBreakdown(r.Context(), sel.Year, sel.Month)
	if err != nil {
		serverError(w, r, apperrors.ErrFailedToGetSummary.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, weeks)
}

// Snapshots handles GET requests for the stored weekly snapshots.
//
// Endpoint: GET /api/summary/snapshots
// Query Parameters: year (optional)
// Response: 200 OK with array of WeeklySnapshot ordered by year, month and week
// Error: 400 Bad Request if year is not a valid year
// Error: 500 Internal Server Error if retrieval fails
func (h *SummaryHandler) Snapshots(w http.ResponseWriter, r *http.Request) {
	year, err := optionalYear(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	snapshots, err := h.snapshotService.Snapshots(r.Context(), year)
	if err != nil {
		serverError(w, r, apperrors.ErrFailedToRetrieveSnapshot.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, snapshots)
}
