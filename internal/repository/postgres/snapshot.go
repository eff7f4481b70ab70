package postgres

import (
	"context"
	"database/sql"
	"time"

	"hostel-ledger-backend/internal/domain"
	"hostel-ledger-backend/internal/logger"
	"hostel-ledger-backend/internal/repository"
)

type snapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) repository.SnapshotRepository {
	return &snapshotRepository{db: db}
}

// Upsert stores the snapshot, replacing any earlier one for the same month.
func (r *snapshotRepository) Upsert(ctx context.Context, s *domain.MonthlySnapshot) error {
	query := `INSERT INTO monthly_snapshots (month, active_count, inactive_count, pending_rent_count,
	              pending_mess_count, total_rent_collected, total_mess_collected, total_deposits_held, taken_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          ON CONFLICT (month) DO UPDATE SET
	              active_count = EXCLUDED.active_count,
	              inactive_count = EXCLUDED.inactive_count,
	              pending_rent_count = EXCLUDED.pending_rent_count,
	              pending_mess_count = EXCLUDED.pending_mess_count,
	              total_rent_collected = EXCLUDED.total_rent_collected,
	              total_mess_collected = EXCLUDED.total_mess_collected,
	              total_deposits_held = EXCLUDED.total_deposits_held,
	              taken_at = EXCLUDED.taken_at`
	logger.DatabaseCall("upsert_monthly_snapshot", query, "month", s.Month.String())
	res, err := r.db.ExecContext(ctx, query, s.Month.Time(), s.ActiveCount, s.InactiveCount,
		s.PendingRentCount, s.PendingMessCount, s.TotalRentCollected, s.TotalMessCollected,
		s.TotalDepositsHeld, s.TakenAt)
	if err != nil {
		return classify("upsert monthly snapshot", err)
	}
	n, _ := res.RowsAffected()
	logger.DatabaseResult("upsert_monthly_snapshot", n, nil)
	return nil
}

func (r *snapshotRepository) GetByMonth(ctx context.Context, month domain.Month) (*domain.MonthlySnapshot, error) {
	query := `SELECT month, active_count, inactive_count, pending_rent_count, pending_mess_count,
	                 total_rent_collected, total_mess_collected, total_deposits_held, taken_at
	          FROM monthly_snapshots WHERE month = $1`
	s := &domain.MonthlySnapshot{}
	var m time.Time
	err := r.db.QueryRowContext(ctx, query, month.Time()).Scan(&m, &s.ActiveCount, &s.InactiveCount,
		&s.PendingRentCount, &s.PendingMessCount, &s.TotalRentCollected, &s.TotalMessCollected,
		&s.TotalDepositsHeld, &s.TakenAt)
	if err != nil {
		return nil, classify("get monthly snapshot", err)
	}
	s.Month = domain.MonthOf(m)
	return s, nil
}
