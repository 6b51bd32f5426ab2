// Package period filters aspirante records by calendar period and
// aggregates them into purchase/sale summaries.
//
// Every function in this package is pure: the records slice is only read,
// the current time and the calendar location are explicit parameters, and
// malformed record values are coerced instead of reported.
package period

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// sqliteTimestamp is the layout of SQLite's CURRENT_TIMESTAMP, always UTC.
const sqliteTimestamp = "2006-01-02 15:04:05"

const dateLayout = "2006-01-02"

// Offset forms RFC3339 does not cover: a zone written without a colon.
// Fractional seconds are accepted after the seconds field when parsing.
var offsetLayouts = []string{
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04-0700",
}

// Wall-clock forms without a zone, read in the calendar location.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	dateLayout,
}

// ParseDecimal reads a weight or amount. Anything that is not a decimal
// number reads as zero.
func ParseDecimal(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseTimestamp reads a creation timestamp. Accepted forms are RFC3339
// (fractional seconds allowed), the same with a "+0000" style offset,
// SQLite's "2006-01-02 15:04:05" in UTC, and zone-less
// "2006-01-02T15:04[:05]" or bare "2006-01-02" values, which are read as
// wall-clock time in loc.
// ok is false for empty or unparseable input.
func ParseTimestamp(raw string, loc *time.Location) (t time.Time, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(sqliteTimestamp, raw); err == nil {
		return t, true
	}
	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// calendarDay returns midnight of t's day as seen in loc.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
