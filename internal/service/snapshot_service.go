package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/apperrors"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/model"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/period"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/repository"
)

// SnapshotService persists week-of-month summaries so past weeks can be
// charted without recomputing them.
type SnapshotService struct {
	aspiranteRepo *repository.AspiranteRepository
	snapshotRepo  *repository.SnapshotRepository
	loc           *time.Location
	now           func() time.Time
	log           zerolog.Logger
}

// NewSnapshotService creates a new SnapshotService with the provided repository dependencies.
func NewSnapshotService(
	aspiranteRepo *repository.AspiranteRepository,
	snapshotRepo *repository.SnapshotRepository,
	loc *time.Location,
	log zerolog.Logger,
) *SnapshotService {
	return &SnapshotService{
		aspiranteRepo: aspiranteRepo,
		snapshotRepo:  snapshotRepo,
		loc:           loc,
		now:           time.Now,
		log:           log,
	}
}

// WithClock returns a copy of the service that reads the current time from now.
func (s *SnapshotService) WithClock(now func() time.Time) *SnapshotService {
	c := *s
	c.now = now
	return &c
}

// RefreshCurrentWeek recomputes the bucket containing the current time and
// stores it, replacing the previous snapshot of that bucket.
func (s *SnapshotService) RefreshCurrentWeek(ctx context.Context) (*model.WeeklySnapshot, error) {
	now := s.now().In(s.loc)
	return s.Refresh(ctx, now.Year(), now.Month(), period.WeekOfMonth(now, s.loc))
}

// Refresh recomputes and stores the snapshot of one bucket.
func (s *SnapshotService) Refresh(ctx context.Context, year int, month time.Month, week int) (*model.WeeklySnapshot, error) {
	all, err := s.aspiranteRepo.ListAspirantes(ctx)
	if err != nil {
		return nil, err
	}

	ws := weekSummary(all, year, month, week, s.loc)
	snapshot := &model.WeeklySnapshot{
		Year:         ws.Year,
		Month:        ws.Month,
		Week:         ws.Week,
		RangeStart:   ws.Range.Start.Format("2006-01-02"),
		RangeEnd:     ws.Range.End.Format("2006-01-02"),
		RecordCount:  ws.RecordCount,
		Summary:      ws.Summary,
		CalculatedAt: s.now().UTC().Truncate(time.Second),
	}

	if err := s.snapshotRepo.UpsertSnapshot(ctx, snapshot); err != nil {
		return nil, err
	}

	s.log.Debug().
		Int("year", snapshot.Year).
		Int("month", snapshot.Month).
		Int("week", snapshot.Week).
		Int("records", snapshot.RecordCount).
		Msg("weekly snapshot refreshed")

	return snapshot, nil
}

// Snapshots returns the stored snapshots of a year, or of every year when
// year is 0.
func (s *SnapshotService) Snapshots(ctx context.Context, year int) ([]model.WeeklySnapshot, error) {
	snapshots, err := s.snapshotRepo.ListSnapshots(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveSnapshot, err)
	}
	return snapshots, nil
}
