package service

import (
	"context"

	"hostel-ledger-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockRoomRepo
type MockRoomRepo struct {
	mock.Mock
}

func (m *MockRoomRepo) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}
func (m *MockRoomRepo) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}
func (m *MockRoomRepo) List(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}
func (m *MockRoomRepo) Update(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}
func (m *MockRoomRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRoomRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockTenantRepo
type MockTenantRepo struct {
	mock.Mock
}

func (m *MockTenantRepo) Create(ctx context.Context, tenant *domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}
func (m *MockTenantRepo) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}
func (m *MockTenantRepo) List(ctx context.Context, filter domain.TenantFilter) ([]domain.Tenant, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tenant), args.Error(1)
}
func (m *MockTenantRepo) ListRecent(ctx context.Context, limit int) ([]domain.Tenant, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tenant), args.Error(1)
}
func (m *MockTenantRepo) Update(ctx context.Context, tenant *domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}
func (m *MockTenantRepo) MarkLeft(ctx context.Context, id string, leaveDate domain.Date) error {
	args := m.Called(ctx, id, leaveDate)
	return args.Error(0)
}

// MockRentRepo
type MockRentRepo struct {
	mock.Mock
}

func (m *MockRentRepo) Create(ctx context.Context, payment *domain.RentPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockRentRepo) ListByTenant(ctx context.Context, tenantID string) ([]domain.RentPayment, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentPayment), args.Error(1)
}
func (m *MockRentRepo) ListByMonth(ctx context.Context, month domain.Month) ([]domain.RentPayment, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentPayment), args.Error(1)
}

// MockMessRepo
type MockMessRepo struct {
	mock.Mock
}

func (m *MockMessRepo) Create(ctx context.Context, payment *domain.MessPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockMessRepo) ListByTenant(ctx context.Context, tenantID string) ([]domain.MessPayment, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MessPayment), args.Error(1)
}
func (m *MockMessRepo) ListByMonth(ctx context.Context, month domain.Month) ([]domain.MessPayment, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MessPayment), args.Error(1)
}

// MockDepositRepo
type MockDepositRepo struct {
	mock.Mock
}

func (m *MockDepositRepo) CreateTransaction(ctx context.Context, tx *domain.DepositTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockDepositRepo) ListByTenant(ctx context.Context, tenantID string) ([]domain.DepositTransaction, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepositTransaction), args.Error(1)
}
func (m *MockDepositRepo) ListAll(ctx context.Context) ([]domain.DepositTransaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepositTransaction), args.Error(1)
}

// MockSnapshotRepo
type MockSnapshotRepo struct {
	mock.Mock
}

func (m *MockSnapshotRepo) Upsert(ctx context.Context, snap *domain.MonthlySnapshot) error {
	args := m.Called(ctx, snap)
	return args.Error(0)
}
func (m *MockSnapshotRepo) GetByMonth(ctx context.Context, month domain.Month) (*domain.MonthlySnapshot, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlySnapshot), args.Error(1)
}
