package period

import (
	"time"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/model"
)

// WeekRange returns the calendar days covered by week-of-month week
// (1-5) of the given month.
//
// The bucket starts on day 1+(week-1)*7. When that day does not exist in
// the month, the start walks forward one day at a time until it is back in
// the target month, which for week 5 of a 28-day February is the 1st of
// the same month one year later. The end is start+6 days, clamped to the
// last day of the target month. In that February case the start is after
// the end and the range matches nothing.
func WeekRange(year int, month time.Month, week int, loc *time.Location) model.DateRange {
	start := time.Date(year, month, 1+(week-1)*7, 0, 0, 0, 0, loc)
	for start.Month() != month {
		start = start.AddDate(0, 0, 1)
	}

	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 6)
	if end.After(lastDay) {
		end = lastDay
	}

	return model.DateRange{Start: start, End: end}
}

// WeekOfMonth returns the week-of-month bucket (1-5) that contains t's
// calendar day in loc.
func WeekOfMonth(t time.Time, loc *time.Location) int {
	return (t.In(loc).Day()-1)/7 + 1
}

// inRange reports whether day (a calendar day in the range's location)
// lies in the closed interval r.
func inRange(day time.Time, r model.DateRange) bool {
	return !day.Before(r.Start) && !day.After(r.End)
}
