package jobs

import (
	"bytes"
	"context"
	"fmt"

	"hostel-ledger-backend/internal/domain"
	"hostel-ledger-backend/internal/logger"
	"hostel-ledger-backend/internal/storage"
)

// TakeMonthlySnapshot stores the summary of the month that just ended. It is
// scheduled early on the 1st; running it again overwrites the month's row.
func (jr *JobRunner) TakeMonthlySnapshot() error {
	return jr.runWithRecovery("TakeMonthlySnapshot", func(ctx context.Context) error {
		return jr.takeSnapshot(ctx, jr.currentMonth().Prev())
	})
}

// TakeSnapshotFor stores the summary of an explicit month, for backfills.
func (jr *JobRunner) TakeSnapshotFor(month domain.Month) error {
	return jr.runWithRecovery("TakeMonthlySnapshot", func(ctx context.Context) error {
		return jr.takeSnapshot(ctx, month)
	})
}

func (jr *JobRunner) takeSnapshot(ctx context.Context, month domain.Month) error {
	summary, err := jr.services.Dashboard.Summary(ctx, month)
	if err != nil {
		return err
	}

	snap := domain.SnapshotOf(*summary, jr.now().UTC())
	if err := jr.snapshots.Upsert(ctx, &snap); err != nil {
		return err
	}
	logger.Info("Monthly snapshot stored",
		"month", month.String(),
		"active", snap.ActiveCount,
		"deposits_held", snap.TotalDepositsHeld)

	return jr.archiveReport(ctx, month)
}

// archiveReport stores the month's workbook next to the snapshot row.
func (jr *JobRunner) archiveReport(ctx context.Context, month domain.Month) error {
	if jr.archive == nil || jr.services.Reports == nil {
		return nil
	}

	var buf bytes.Buffer
	if err := jr.services.Reports.ExportMonth(ctx, month, &buf); err != nil {
		return fmt.Errorf("export report for %s: %w", month.Label(), err)
	}
	key := storage.ReportKey(month.Year(), int(month.Month()))
	if err := jr.archive.Save(ctx, key, &buf); err != nil {
		return fmt.Errorf("archive report %s: %w", key, err)
	}
	logger.Info("Monthly report archived", "month", month.String(), "key", key)
	return nil
}
