package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary aggregates a set of aspirantes: money moved in each direction,
// the weight left in stock, and the purchased weight per coffee type.
// ByCoffeeType always carries every enumerated coffee type.
type Summary struct {
	TotalPurchased decimal.Decimal                `json:"totalPurchased"`
	TotalSold      decimal.Decimal                `json:"totalSold"`
	NetWeight      decimal.Decimal                `json:"netWeight"`
	ByCoffeeType   map[CoffeeType]decimal.Decimal `json:"byCoffeeType"`
}

// DateRange is a closed interval of calendar days.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// PeriodOverview is the filtered view of the records for a period.
type PeriodOverview struct {
	Records []Aspirante `json:"records"`
	Summary Summary     `json:"summary"`
}

// WeekSummary is the summary of one week-of-month bucket.
type WeekSummary struct {
	Year        int         `json:"year"`
	Month       int         `json:"month"` // 1-12
	Week        int         `json:"week"`  // 1-5
	Range       DateRange   `json:"range"`
	RecordCount int         `json:"recordCount"`
	Records     []Aspirante `json:"records,omitempty"`
	Summary     Summary     `json:"summary"`
}

// WeeklySnapshot is a persisted WeekSummary. It is derived data and can be
// rebuilt from the aspirante table at any time.
type WeeklySnapshot struct {
	ID           string    `json:"id"`
	Year         int       `json:"year"`
	Month        int       `json:"month"`
	Week         int       `json:"week"`
	RangeStart   string    `json:"rangeStart"` // YYYY-MM-DD
	RangeEnd     string    `json:"rangeEnd"`   // YYYY-MM-DD
	RecordCount  int       `json:"recordCount"`
	Summary      Summary   `json:"summary"`
	CalculatedAt time.Time `json:"calculatedAt"`
}
