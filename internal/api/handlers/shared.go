package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/api/request"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/api/response"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/logger"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/period"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/validation"
)

// maxBodyBytes caps request bodies; legacy imports are the largest payloads.
const maxBodyBytes = 10 << 20

// serverError logs err on the request's logger and sends a 500 with message.
func serverError(w http.ResponseWriter, r *http.Request, message string, err error) {
	log := logger.FromContext(r.Context())
	log.Error().Err(err).Str("path", r.URL.Path).Msg(message)
	response.RespondError(w, http.StatusInternalServerError, message, err.Error())
}

// parseJSON decodes the request body into T.
func parseJSON[T any](r *http.Request) (T, error) {
	var req T
	if err := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		return req, fmt.Errorf("decode request body: %w", err)
	}
	return req, nil
}

// parsePeriod reads the period query parameters of r.
// Errors are returned as a validation Error keyed by "period".
func parsePeriod(r *http.Request, loc *time.Location) (period.Selector, error) {
	return selectorFromParams(request.PeriodParamsFromQuery(r.URL.Query().Get), loc)
}

// parsePeriodAs is parsePeriod with the period kind fixed, ignoring any
// "period" parameter in the query.
func parsePeriodAs(r *http.Request, kind period.Kind, loc *time.Location) (period.Selector, error) {
	params := request.PeriodParamsFromQuery(r.URL.Query().Get)
	params.Period = string(kind)
	return selectorFromParams(params, loc)
}

func selectorFromParams(params request.PeriodParams, loc *time.Location) (period.Selector, error) {
	sel, err := request.ParsePeriod(params, loc)
	if err != nil {
		return period.Selector{}, &validation.Error{Fields: map[string]string{"period": err.Error()}}
	}
	return sel, nil
}

// optionalYear reads the "year" query parameter; 0 means not set.
func optionalYear(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("year"))
	if raw == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1 || year > 9999 {
		return 0, &validation.Error{Fields: map[string]string{"year": "year must be a four-digit year"}}
	}
	return year, nil
}
