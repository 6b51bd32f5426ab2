package period

import (
	"fmt"
	"time"
)

// Kind identifies which period a Selector describes.
type Kind string

const (
	KindAll          Kind = "all"
	KindRecent       Kind = "recent"
	KindRecentMonths Kind = "recent-months"
	KindWeek         Kind = "week"
	KindDate         Kind = "date"
	KindMonth        Kind = "month"
)

// ValidKinds contains the allowed selector kinds.
var ValidKinds = map[Kind]bool{
	KindAll:          true,
	KindRecent:       true,
	KindRecentMonths: true,
	KindWeek:         true,
	KindDate:         true,
	KindMonth:        true,
}

// Selector picks a period. Only the fields relevant to Kind are read:
//
//	KindAll          -
//	KindRecent       Days
//	KindRecentMonths Months
//	KindWeek         Year, Month, Week
//	KindDate         Date
//	KindMonth        Year, Month
type Selector struct {
	Kind   Kind
	Days   int
	Months int
	Year   int
	Month  time.Month
	Week   int
	Date   time.Time
}

// All selects every record.
func All() Selector { return Selector{Kind: KindAll} }

// LastDays selects records created in the last days calendar days.
func LastDays(days int) Selector { return Selector{Kind: KindRecent, Days: days} }

// LastMonths selects records created in the last months calendar months.
func LastMonths(months int) Selector { return Selector{Kind: KindRecentMonths, Months: months} }

// Week selects week-of-month week of the given month.
func Week(year int, month time.Month, week int) Selector {
	return Selector{Kind: KindWeek, Year: year, Month: month, Week: week}
}

// OnDate selects records created on date's calendar day.
func OnDate(date time.Time) Selector { return Selector{Kind: KindDate, Date: date} }

// InMonth selects records created in the given month.
func InMonth(year int, month time.Month) Selector {
	return Selector{Kind: KindMonth, Year: year, Month: month}
}

func (s Selector) String() string {
	switch s.Kind {
	case KindRecent:
		return fmt.Sprintf("last %d days", s.Days)
	case KindRecentMonths:
		return fmt.Sprintf("last %d months", s.Months)
	case KindWeek:
		return fmt.Sprintf("%04d-%02d week %d", s.Year, int(s.Month), s.Week)
	case KindDate:
		return s.Date.Format(dateLayout)
	case KindMonth:
		return fmt.Sprintf("%04d-%02d", s.Year, int(s.Month))
	default:
		return string(KindAll)
	}
}
