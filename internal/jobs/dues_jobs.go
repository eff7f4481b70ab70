package jobs

import (
	"context"

	"hostel-ledger-backend/internal/domain"
	"hostel-ledger-backend/internal/logger"
	"hostel-ledger-backend/internal/service"
)

// SendDuesDigest mails the operator the tenants still owing rent or mess
// for the current month. Nothing is sent when nobody owes.
func (jr *JobRunner) SendDuesDigest() error {
	return jr.runWithRecovery("SendDuesDigest", func(ctx context.Context) error {
		return jr.sendDuesDigest(ctx, jr.currentMonth())
	})
}

func (jr *JobRunner) sendDuesDigest(ctx context.Context, month domain.Month) error {
	summary, err := jr.services.Dashboard.Summary(ctx, month)
	if err != nil {
		return err
	}

	digest := service.DuesDigest{
		Month:       month,
		PendingRent: summary.PendingRent,
		PendingMess: summary.PendingMess,
	}
	if digest.Empty() {
		logger.Info("No dues pending, digest skipped", "month", month.String())
		return nil
	}

	if err := jr.services.Notifier.SendDuesDigest(ctx, digest); err != nil {
		return err
	}
	logger.Info("Dues digest sent",
		"month", month.String(),
		"pending_rent", len(digest.PendingRent),
		"pending_mess", len(digest.PendingMess))
	return nil
}
