package repository

import (
	"context"

	"hostel-ledger-backend/internal/domain"
)

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context) ([]domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	List(ctx context.Context, filter domain.TenantFilter) ([]domain.Tenant, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Tenant, error)
	// Update changes contact, room, mess and leave fields. The initial
	// deposit is fixed at creation and never written here.
	Update(ctx context.Context, tenant *domain.Tenant) error
	MarkLeft(ctx context.Context, id string, leaveDate domain.Date) error
}

type RentPaymentRepository interface {
	Create(ctx context.Context, payment *domain.RentPayment) error
	ListByTenant(ctx context.Context, tenantID string) ([]domain.RentPayment, error)
	ListByMonth(ctx context.Context, month domain.Month) ([]domain.RentPayment, error)
}

type MessPaymentRepository interface {
	Create(ctx context.Context, payment *domain.MessPayment) error
	ListByTenant(ctx context.Context, tenantID string) ([]domain.MessPayment, error)
	ListByMonth(ctx context.Context, month domain.Month) ([]domain.MessPayment, error)
}

type DepositRepository interface {
	CreateTransaction(ctx context.Context, tx *domain.DepositTransaction) error
	ListByTenant(ctx context.Context, tenantID string) ([]domain.DepositTransaction, error)
	// ListAll returns every transaction, newest first, with tenant name and phone.
	ListAll(ctx context.Context) ([]domain.DepositTransaction, error)
}

type SnapshotRepository interface {
	Upsert(ctx context.Context, snap *domain.MonthlySnapshot) error
	GetByMonth(ctx context.Context, month domain.Month) (*domain.MonthlySnapshot, error)
}
