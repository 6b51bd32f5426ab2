package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/model"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/period"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/repository"
)

// WeeksPerMonth is the number of week-of-month buckets in every month.
const WeeksPerMonth = 5

// DashboardService computes period summaries over the stored aspirantes.
// Every call loads the records once and hands the same read-only slice to
// the period package.
type DashboardService struct {
	aspiranteRepo *repository.AspiranteRepository
	loc           *time.Location
	now           func() time.Time
}

// NewDashboardService creates a new DashboardService with the provided repository dependencies.
func NewDashboardService(aspiranteRepo *repository.AspiranteRepository, loc *time.Location) *DashboardService {
	return &DashboardService{
		aspiranteRepo: aspiranteRepo,
		loc:           loc,
		now:           time.Now,
	}
}

// WithClock returns a copy of the service that reads the current time from now.
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	c := *s
	c.now = now
	return &c
}

// Overview returns the records in the selected period and their summary.
func (s *DashboardService) Overview(ctx context.Context, sel period.Selector) (model.PeriodOverview, error) {
	all, err := s.aspiranteRepo.ListAspirantes(ctx)
	if err != nil {
		return model.PeriodOverview{}, err
	}

	records := period.Apply(all, sel, s.now(), s.loc)
	return model.PeriodOverview{
		Records: records,
		Summary: period.Summarize(records),
	}, nil
}

// Week returns one week-of-month bucket with its records.
func (s *DashboardService) Week(ctx context.Context, year int, month time.Month, week int) (model.WeekSummary, error) {
	all, err := s.aspiranteRepo.ListAspirantes(ctx)
	if err != nil {
		return model.WeekSummary{}, err
	}

	return weekSummary(all, year, month, week, s.loc), nil
}

// MonthBreakdown returns the five week-of-month buckets of a month, without
// their records. Buckets are computed concurrently over a shared read-only
// slice; each goroutine writes only its own index.
func (s *DashboardService) MonthBreakdown(ctx context.Context, year int, month time.Month) ([]model.WeekSummary, error) {
	all, err := s.aspiranteRepo.ListAspirantes(ctx)
	if err != nil {
		return nil, err
	}

	weeks := make([]model.WeekSummary, WeeksPerMonth)
	g, gctx := errgroup.WithContext(ctx)
	for i := range weeks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ws := weekSummary(all, year, month, i+1, s.loc)
			ws.Records = nil
			weeks[i] = ws
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return weeks, nil
}

func weekSummary(records []model.Aspirante, year int, month time.Month, week int, loc *time.Location) model.WeekSummary {
	inWeek := period.FilterByWeek(records, year, month, week, loc)
	return model.WeekSummary{
		Year:        year,
		Month:       int(month),
		Week:        week,
		Range:       period.WeekRange(year, month, week, loc),
		RecordCount: len(inWeek),
		Records:     inWeek,
		Summary:     period.Summarize(inWeek),
	}
}
