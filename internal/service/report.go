package service

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"hostel-ledger-backend/internal/domain"
	"hostel-ledger-backend/internal/logger"
	"hostel-ledger-backend/internal/repository"
	"hostel-ledger-backend/internal/storage"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet  = "Summary"
	rentSheet     = "Rent"
	messSheet     = "Mess"
	depositsSheet = "Deposits"
)

type reportService struct {
	dashboard DashboardService
	payments  PaymentService
	deposits  DepositService
	snapshots repository.SnapshotRepository
	archive   storage.Archive
}

// NewReportService builds the report service. A nil archive means every
// workbook is generated on request.
func NewReportService(
	dashboard DashboardService,
	payments PaymentService,
	deposits DepositService,
	snapshots repository.SnapshotRepository,
	archive storage.Archive,
) ReportService {
	return &reportService{
		dashboard: dashboard,
		payments:  payments,
		deposits:  deposits,
		snapshots: snapshots,
		archive:   archive,
	}
}

func (s *reportService) Snapshot(ctx context.Context, month domain.Month) (*domain.MonthlySnapshot, error) {
	return s.snapshots.GetByMonth(ctx, month)
}

// Workbook copies the archived workbook for month into w when one exists and
// fresh is false. Otherwise it builds the workbook from current data.
func (s *reportService) Workbook(ctx context.Context, month domain.Month, fresh bool, w io.Writer) error {
	if s.archive == nil || fresh {
		return s.ExportMonth(ctx, month, w)
	}

	key := storage.ReportKey(month.Year(), int(month.Month()))
	exists, size, err := s.archive.Exists(ctx, key)
	if err != nil {
		logger.Warn("Report archive unavailable, generating workbook", "key", key, "error", err)
		return s.ExportMonth(ctx, month, w)
	}
	if !exists {
		return s.ExportMonth(ctx, month, w)
	}

	logger.EnterMethod("reportService.Workbook", "month", month.String(), "key", key)
	rc, err := s.archive.Open(ctx, key)
	if err != nil {
		err = fmt.Errorf("open archived report %s: %w", key, err)
		logger.ExitMethodWithError("reportService.Workbook", err, false)
		return err
	}
	defer rc.Close()
	if _, err := io.Copy(w, rc); err != nil {
		err = fmt.Errorf("read archived report %s: %w", key, err)
		logger.ExitMethodWithError("reportService.Workbook", err, false)
		return err
	}
	logger.ExitMethod("reportService.Workbook", "key", key, "bytes", size)
	return nil
}

// ExportMonth writes a workbook with the month summary, the month's rent and
// mess payments with who is still pending, and the full deposit statement.
func (s *reportService) ExportMonth(ctx context.Context, month domain.Month, w io.Writer) error {
	logger.EnterMethod("reportService.ExportMonth", "month", month.String())

	f, err := s.build(ctx, month)
	if err != nil {
		logger.ExitMethodWithError("reportService.ExportMonth", err, false, "month", month.String())
		return err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		logger.ExitMethodWithError("reportService.ExportMonth", err, false)
		return fmt.Errorf("write workbook: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		logger.ExitMethodWithError("reportService.ExportMonth", err, false)
		return fmt.Errorf("write workbook: %w", err)
	}
	logger.ExitMethod("reportService.ExportMonth", "month", month.String())
	return nil
}

func (s *reportService) build(ctx context.Context, month domain.Month) (*excelize.File, error) {
	summary, err := s.dashboard.Summary(ctx, month)
	if err != nil {
		return nil, err
	}
	rent, err := s.payments.RentTracking(ctx, month)
	if err != nil {
		return nil, err
	}
	mess, err := s.payments.MessTracking(ctx, month)
	if err != nil {
		return nil, err
	}
	deposits, err := s.deposits.Overview(ctx, "")
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename summary sheet: %w", err)
	}
	for _, write := range []func() error{
		func() error { return writeSummary(f, summary) },
		func() error { return writeTracking(f, rentSheet, rent) },
		func() error { return writeTracking(f, messSheet, mess) },
		func() error { return writeDeposits(f, deposits) },
	} {
		if err := write(); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// sheetWriter keeps the first excelize error so a sheet is written in full or
// reported as failed.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (sw *sheetWriter) row(n int, values ...interface{}) {
	if sw.err != nil {
		return
	}
	if err := sw.f.SetSheetRow(sw.sheet, fmt.Sprintf("A%d", n), &values); err != nil {
		sw.err = fmt.Errorf("write %s row %d: %w", sw.sheet, n, err)
	}
}

func (sw *sheetWriter) width(from, to string, width float64) {
	if sw.err != nil {
		return
	}
	if err := sw.f.SetColWidth(sw.sheet, from, to, width); err != nil {
		sw.err = fmt.Errorf("size %s columns %s:%s: %w", sw.sheet, from, to, err)
	}
}

func writeSummary(f *excelize.File, s *domain.FleetSummary) error {
	sw := &sheetWriter{f: f, sheet: summarySheet}
	sw.row(1, "Month", s.Month.Label())
	sw.row(2, "Active tenants", s.ActiveCount)
	sw.row(3, "Inactive tenants", s.InactiveCount)
	sw.row(4, "Pending rent", len(s.PendingRent))
	sw.row(5, "Pending mess", len(s.PendingMess))
	sw.row(6, "Rent collected", int64(s.TotalRentCollected))
	sw.row(7, "Mess collected", int64(s.TotalMessCollected))
	sw.row(8, "Deposits held", int64(s.TotalDepositsHeld))
	sw.width("A", "A", 20)
	sw.width("B", "B", 16)
	return sw.err
}

func writeTracking(f *excelize.File, sheet string, t *domain.MonthTracking) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create %s sheet: %w", sheet, err)
	}
	sw := &sheetWriter{f: f, sheet: sheet}
	sw.row(1, "Tenant", "Amount", "Payment date")
	row := 2
	for _, p := range t.Payments {
		sw.row(row, p.TenantName, int64(p.Amount), p.PaymentDate.String())
		row++
	}
	sw.row(row, "Total", int64(t.Collected))

	row += 2
	sw.row(row, "Pending")
	for _, tenant := range t.Pending {
		row++
		sw.row(row, tenant.Name, tenant.Phone, tenant.RoomName)
	}
	sw.width("A", "A", 24)
	sw.width("B", "C", 14)
	return sw.err
}

func writeDeposits(f *excelize.File, o *domain.DepositOverview) error {
	if _, err := f.NewSheet(depositsSheet); err != nil {
		return fmt.Errorf("create deposits sheet: %w", err)
	}
	sw := &sheetWriter{f: f, sheet: depositsSheet}
	sw.row(1, "Date", "Tenant", "Phone", "Type", "Amount", "Reason")
	for i, tx := range o.Transactions {
		sw.row(i+2, tx.Date.String(), tx.TenantName, tx.TenantPhone, string(tx.Type), int64(tx.Amount), tx.Reason)
	}

	row := len(o.Transactions) + 3
	sw.row(row, "Initial deposits", int64(o.TotalInitial))
	sw.row(row+1, "Deducted", int64(o.TotalDeducted))
	sw.row(row+2, "Refunded", int64(o.TotalRefunded))
	sw.row(row+3, "Held", int64(o.TotalHeld))
	sw.width("A", "A", 12)
	sw.width("B", "B", 24)
	sw.width("F", "F", 30)
	return sw.err
}
