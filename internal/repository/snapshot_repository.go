package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/model"
)

// SnapshotRepository provides data access methods for the weekly_snapshot table.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// UpsertSnapshot stores s, replacing any snapshot already held for the same
// (year, month, week) bucket. The stored row keeps its original id, which
// is written back to s.ID.
func (r *SnapshotRepository) UpsertSnapshot(ctx context.Context, s *model.WeeklySnapshot) error {
	byType, err := encodeCoffeeWeights(s.Summary.ByCoffeeType)
	if err != nil {
		return err
	}
	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	query := `
		INSERT INTO weekly_snapshot (
			id, year, month, week, range_start, range_end, record_count,
			total_purchased, total_sold, net_weight, by_coffee_type, calculated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(year, month, week) DO UPDATE SET
			range_start = excluded.range_start,
			range_end = excluded.range_end,
			record_count = excluded.record_count,
			total_purchased = excluded.total_purchased,
			total_sold = excluded.total_sold,
			net_weight = excluded.net_weight,
			by_coffee_type = excluded.by_coffee_type,
			calculated_at = excluded.calculated_at
		RETURNING id
	`

	err = r.db.QueryRowContext(ctx, query,
		s.ID,
		s.Year,
		s.Month,
		s.Week,
		s.RangeStart,
		s.RangeEnd,
		s.RecordCount,
		s.Summary.TotalPurchased.String(),
		s.Summary.TotalSold.String(),
		s.Summary.NetWeight.String(),
		byType,
		s.CalculatedAt.UTC().Format(time.RFC3339),
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert weekly snapshot: %w", err)
	}

	return nil
}

// ListSnapshots retrieves stored snapshots ordered by bucket. A year of 0
// returns every year.
func (r *SnapshotRepository) ListSnapshots(ctx context.Context, year int) ([]model.WeeklySnapshot, error) {
	query := `
		SELECT id, year, month, week, range_start, range_end, record_count,
			total_purchased, total_sold, net_weight, by_coffee_type, calculated_at
		FROM weekly_snapshot
		WHERE 1=1
	`
	var args []any

	if year != 0 {
		query += " AND year = ?"
		args = append(args, year)
	}
	query += " ORDER BY year ASC, month ASC, week ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query weekly_snapshot table: %w", err)
	}
	defer rows.Close()

	snapshots := []model.WeeklySnapshot{}
	for rows.Next() {
		var s model.WeeklySnapshot
		var purchased, sold, net, byType, calculatedAt string

		err := rows.Scan(
			&s.ID,
			&s.Year,
			&s.Month,
			&s.Week,
			&s.RangeStart,
			&s.RangeEnd,
			&s.RecordCount,
			&purchased,
			&sold,
			&net,
			&byType,
			&calculatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan weekly_snapshot table results: %w", err)
		}

		if s.Summary.TotalPurchased, err = decimal.NewFromString(purchased); err != nil {
			return nil, fmt.Errorf("failed to parse total_purchased: %w", err)
		}
		if s.Summary.TotalSold, err = decimal.NewFromString(sold); err != nil {
			return nil, fmt.Errorf("failed to parse total_sold: %w", err)
		}
		if s.Summary.NetWeight, err = decimal.NewFromString(net); err != nil {
			return nil, fmt.Errorf("failed to parse net_weight: %w", err)
		}
		if s.Summary.ByCoffeeType, err = decodeCoffeeWeights(byType); err != nil {
			return nil, err
		}
		if s.CalculatedAt, err = time.Parse(time.RFC3339, calculatedAt); err != nil {
			return nil, fmt.Errorf("failed to parse calculated_at: %w", err)
		}

		snapshots = append(snapshots, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating weekly_snapshot table: %w", err)
	}

	return snapshots, nil
}
