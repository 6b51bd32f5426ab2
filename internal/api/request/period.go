package request

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/apperrors"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/period"
)

// Defaults for the recency selectors when days or months is omitted.
const (
	DefaultRecentDays   = 7
	DefaultRecentMonths = 1
)

// PeriodParams holds the raw period query parameters.
type PeriodParams struct {
	Period string
	Days   string
	Months string
	Year   string
	Month  string // 0-based, January = 0
	Week   string
	Date   string
}

// PeriodParamsFromQuery reads the period parameters from a query string getter,
// typically r.URL.Query().Get.
func PeriodParamsFromQuery(get func(string) string) PeriodParams {
	return PeriodParams{
		Period: get("period"),
		Days:   get("days"),
		Months: get("months"),
		Year:   get("year"),
		Month:  get("month"),
		Week:   get("week"),
		Date:   get("date"),
	}
}

// ParsePeriod converts raw period parameters into a period.Selector.
//
// Validation rules:
//   - period: all, recent, recent-months, week, date or month (defaults to all)
//   - days/months: positive integers (default 7 days / 1 month)
//   - year: four-digit year, required for week and month
//   - month: 0-11, required for week and month
//   - week: 1-5, required for week
//   - date: YYYY-MM-DD, required for date; resolved in loc
//
// Returns an error wrapping apperrors.ErrInvalidPeriod if any parameter fails validation.
//
//nolint:gocyclo // One branch per selector kind
func ParsePeriod(p PeriodParams, loc *time.Location) (period.Selector, error) {
	kind := period.Kind(strings.ToLower(strings.TrimSpace(p.Period)))
	if kind == "" {
		kind = period.KindAll
	}
	if !period.ValidKinds[kind] {
		return period.Selector{}, fmt.Errorf("%w: unknown period %q", apperrors.ErrInvalidPeriod, p.Period)
	}

	switch kind {
	case period.KindRecent:
		days, err := positiveInt("days", p.Days, DefaultRecentDays)
		if err != nil {
			return period.Selector{}, err
		}
		return period.LastDays(days), nil

	case period.KindRecentMonths:
		months, err := positiveInt("months", p.Months, DefaultRecentMonths)
		if err != nil {
			return period.Selector{}, err
		}
		return period.LastMonths(months), nil

	case period.KindWeek:
		year, month, err := yearMonth(p)
		if err != nil {
			return period.Selector{}, err
		}
		week, err := strconv.Atoi(strings.TrimSpace(p.Week))
		if err != nil || week < 1 || week > 5 {
			return period.Selector{}, fmt.Errorf("%w: week must be between 1 and 5", apperrors.ErrInvalidPeriod)
		}
		return period.Week(year, month, week), nil

	case period.KindDate:
		date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(p.Date), loc)
		if err != nil {
			return period.Selector{}, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrInvalidPeriod)
		}
		return period.OnDate(date), nil

	case period.KindMonth:
		year, month, err := yearMonth(p)
		if err != nil {
			return period.Selector{}, err
		}
		return period.InMonth(year, month), nil
	}

	return period.All(), nil
}

func positiveInt(name, raw string, def int) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive number", apperrors.ErrInvalidPeriod, name)
	}
	return n, nil
}

// yearMonth parses year and the 0-based month index.
func yearMonth(p PeriodParams) (int, time.Month, error) {
	year, err := strconv.Atoi(strings.TrimSpace(p.Year))
	if err != nil || year < 1 || year > 9999 {
		return 0, 0, fmt.Errorf("%w: year must be a four-digit year", apperrors.ErrInvalidPeriod)
	}
	month, err := strconv.Atoi(strings.TrimSpace(p.Month))
	if err != nil || month < 0 || month > 11 {
		return 0, 0, fmt.Errorf("%w: month must be between 0 and 11", apperrors.ErrInvalidPeriod)
	}
	return year, time.Month(month + 1), nil
}
