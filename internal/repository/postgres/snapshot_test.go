package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"hostel-ledger-backend/internal/domain"
	"hostel-ledger-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewSnapshotRepository(db)
	ctx := context.Background()
	juneStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	snap := &domain.MonthlySnapshot{
		Month: domain.NewMonth(2024, 6), ActiveCount: 3, InactiveCount: 1, PendingRentCount: 2,
		PendingMessCount: 1, TotalRentCollected: 12000, TotalMessCollected: 2400,
		TotalDepositsHeld: 13100, TakenAt: created,
	}
	mock.ExpectExec(`INSERT INTO monthly_snapshots .* ON CONFLICT \(month\) DO UPDATE`).
		WithArgs(juneStart, 3, 1, 2, 1, domain.Money(12000), domain.Money(2400), domain.Money(13100), created).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Upsert(ctx, snap))

	mock.ExpectQuery("FROM monthly_snapshots WHERE month").
		WithArgs(juneStart).
		WillReturnRows(sqlmock.NewRows([]string{"month", "active_count", "inactive_count", "pending_rent_count",
			"pending_mess_count", "total_rent_collected", "total_mess_collected", "total_deposits_held", "taken_at"}).
			AddRow(juneStart, 3, 1, 2, 1, 12000, 2400, 13100, created))

	got, err := repo.GetByMonth(ctx, domain.NewMonth(2024, 6))
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	mock.ExpectQuery("FROM monthly_snapshots WHERE month").WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByMonth(ctx, domain.NewMonth(2024, 7))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
