package period

import (
	"time"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/model"
)

// FilterByRecency returns the records created at or after now minus
// thresholdDays calendar days, in their original order.
func FilterByRecency(records []model.Aspirante, thresholdDays int, now time.Time) []model.Aspirante {
	return createdSince(records, now.AddDate(0, 0, -thresholdDays))
}

// FilterByRecentMonths returns the records created at or after now minus
// months calendar months, in their original order.
func FilterByRecentMonths(records []model.Aspirante, months int, now time.Time) []model.Aspirante {
	return createdSince(records, now.AddDate(0, -months, 0))
}

func createdSince(records []model.Aspirante, cutoff time.Time) []model.Aspirante {
	// Date-only timestamps resolve in the cutoff's location.
	loc := cutoff.Location()
	return filter(records, func(a model.Aspirante) bool {
		created, ok := ParseTimestamp(a.CreatedAt, loc)
		return ok && !created.Before(cutoff)
	})
}

// FilterByWeek returns the records whose creation day lies in
// WeekRange(year, month, week, loc), both ends inclusive.
func FilterByWeek(records []model.Aspirante, year int, month time.Month, week int, loc *time.Location) []model.Aspirante {
	r := WeekRange(year, month, week, loc)
	return filter(records, func(a model.Aspirante) bool {
		created, ok := ParseTimestamp(a.CreatedAt, loc)
		return ok && inRange(calendarDay(created, loc), r)
	})
}

// FilterByDate returns the records created on date's calendar day in loc.
func FilterByDate(records []model.Aspirante, date time.Time, loc *time.Location) []model.Aspirante {
	day := calendarDay(date, loc)
	return filter(records, func(a model.Aspirante) bool {
		created, ok := ParseTimestamp(a.CreatedAt, loc)
		return ok && calendarDay(created, loc).Equal(day)
	})
}

// FilterByMonth returns the records created in the given year and month in
// loc. The day is ignored.
func FilterByMonth(records []model.Aspirante, year int, month time.Month, loc *time.Location) []model.Aspirante {
	return filter(records, func(a model.Aspirante) bool {
		created, ok := ParseTimestamp(a.CreatedAt, loc)
		if !ok {
			return false
		}
		y, m, _ := created.In(loc).Date()
		return y == year && m == month
	})
}

// Apply filters records with the period described by s. KindAll and
// unknown kinds return records unchanged.
func Apply(records []model.Aspirante, s Selector, now time.Time, loc *time.Location) []model.Aspirante {
	switch s.Kind {
	case KindRecent:
		return FilterByRecency(records, s.Days, now.In(loc))
	case KindRecentMonths:
		return FilterByRecentMonths(records, s.Months, now.In(loc))
	case KindWeek:
		return FilterByWeek(records, s.Year, s.Month, s.Week, loc)
	case KindDate:
		return FilterByDate(records, s.Date, loc)
	case KindMonth:
		return FilterByMonth(records, s.Year, s.Month, loc)
	default:
		return records
	}
}

func filter(records []model.Aspirante, keep func(model.Aspirante) bool) []model.Aspirante {
	out := []model.Aspirante{}
	for _, a := range records {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
