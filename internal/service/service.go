package service

import (
	"context"
	"io"

	"hostel-ledger-backend/internal/domain"
)

type RoomService interface {
	ListRooms(ctx context.Context) ([]domain.Room, error)
	CreateRoom(ctx context.Context, room *domain.Room) error
	UpdateRoom(ctx context.Context, room *domain.Room) error
	DeleteRoom(ctx context.Context, id string) error
}

type TenantService interface {
	ListTenants(ctx context.Context, filter domain.TenantFilter) ([]domain.Tenant, error)
	GetProfile(ctx context.Context, id string, month domain.Month) (*domain.TenantProfile, error)
	CreateTenant(ctx context.Context, tenant *domain.Tenant) error
	// UpdateTenant keeps the stored initial deposit whatever the caller sends.
	UpdateTenant(ctx context.Context, tenant *domain.Tenant) error
	MarkLeft(ctx context.Context, id string, leaveDate domain.Date) (*domain.Tenant, error)
}

type PaymentService interface {
	RecordRentPayment(ctx context.Context, payment *domain.RentPayment) error
	RecordMessPayment(ctx context.Context, payment *domain.MessPayment) error
	RentTracking(ctx context.Context, month domain.Month) (*domain.MonthTracking, error)
	MessTracking(ctx context.Context, month domain.Month) (*domain.MonthTracking, error)
}

type DepositService interface {
	RecordTransaction(ctx context.Context, tx *domain.DepositTransaction) error
	// Overview filters transactions by search while totals cover every tenant.
	Overview(ctx context.Context, search string) (*domain.DepositOverview, error)
}

type DashboardService interface {
	Summary(ctx context.Context, month domain.Month) (*domain.FleetSummary, error)
	Dashboard(ctx context.Context, month domain.Month) (*domain.Dashboard, error)
}

type ReportService interface {
	// ExportMonth always builds the workbook from current data.
	ExportMonth(ctx context.Context, month domain.Month, w io.Writer) error
	// Workbook prefers the archived copy of month unless fresh is set.
	Workbook(ctx context.Context, month domain.Month, fresh bool, w io.Writer) error
	Snapshot(ctx context.Context, month domain.Month) (*domain.MonthlySnapshot, error)
}

// DuesDigest is the operator reminder listing who still owes for a month.
type DuesDigest struct {
	Month       domain.Month
	PendingRent []domain.Tenant
	PendingMess []domain.Tenant
}

// Empty reports whether nobody owes anything.
func (d DuesDigest) Empty() bool {
	return len(d.PendingRent) == 0 && len(d.PendingMess) == 0
}

type Notifier interface {
	SendDuesDigest(ctx context.Context, digest DuesDigest) error
}
