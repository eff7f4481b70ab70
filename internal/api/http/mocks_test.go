package http

import (
	"context"
	"io"

	"hostel-ledger-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockRoomService struct{ mock.Mock }

func (m *MockRoomService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}
func (m *MockRoomService) CreateRoom(ctx context.Context, room *domain.Room) error {
	return m.Called(ctx, room).Error(0)
}
func (m *MockRoomService) UpdateRoom(ctx context.Context, room *domain.Room) error {
	return m.Called(ctx, room).Error(0)
}
func (m *MockRoomService) DeleteRoom(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockTenantService struct{ mock.Mock }

func (m *MockTenantService) ListTenants(ctx context.Context, filter domain.TenantFilter) ([]domain.Tenant, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tenant), args.Error(1)
}
func (m *MockTenantService) GetProfile(ctx context.Context, id string, month domain.Month) (*domain.TenantProfile, error) {
	args := m.Called(ctx, id, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TenantProfile), args.Error(1)
}
func (m *MockTenantService) CreateTenant(ctx context.Context, tenant *domain.Tenant) error {
	return m.Called(ctx, tenant).Error(0)
}
func (m *MockTenantService) UpdateTenant(ctx context.Context, tenant *domain.Tenant) error {
	return m.Called(ctx, tenant).Error(0)
}
func (m *MockTenantService) MarkLeft(ctx context.Context, id string, leaveDate domain.Date) (*domain.Tenant, error) {
	args := m.Called(ctx, id, leaveDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

type MockPaymentService struct{ mock.Mock }

func (m *MockPaymentService) RecordRentPayment(ctx context.Context, payment *domain.RentPayment) error {
	return m.Called(ctx, payment).Error(0)
}
func (m *MockPaymentService) RecordMessPayment(ctx context.Context, payment *domain.MessPayment) error {
	return m.Called(ctx, payment).Error(0)
}
func (m *MockPaymentService) RentTracking(ctx context.Context, month domain.Month) (*domain.MonthTracking, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthTracking), args.Error(1)
}
func (m *MockPaymentService) MessTracking(ctx context.Context, month domain.Month) (*domain.MonthTracking, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthTracking), args.Error(1)
}

type MockDepositService struct{ mock.Mock }

func (m *MockDepositService) RecordTransaction(ctx context.Context, tx *domain.DepositTransaction) error {
	return m.Called(ctx, tx).Error(0)
}
func (m *MockDepositService) Overview(ctx context.Context, search string) (*domain.DepositOverview, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DepositOverview), args.Error(1)
}

type MockDashboardService struct{ mock.Mock }

func (m *MockDashboardService) Summary(ctx context.Context, month domain.Month) (*domain.FleetSummary, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FleetSummary), args.Error(1)
}
func (m *MockDashboardService) Dashboard(ctx context.Context, month domain.Month) (*domain.Dashboard, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

type MockReportService struct{ mock.Mock }

func (m *MockReportService) ExportMonth(ctx context.Context, month domain.Month, w io.Writer) error {
	args := m.Called(ctx, month, w)
	if payload, ok := args.Get(1).(string); ok && args.Error(0) == nil {
		io.WriteString(w, payload)
	}
	return args.Error(0)
}
func (m *MockReportService) Workbook(ctx context.Context, month domain.Month, fresh bool, w io.Writer) error {
	args := m.Called(ctx, month, fresh, w)
	if payload, ok := args.Get(1).(string); ok && args.Error(0) == nil {
		io.WriteString(w, payload)
	}
	return args.Error(0)
}
func (m *MockReportService) Snapshot(ctx context.Context, month domain.Month) (*domain.MonthlySnapshot, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlySnapshot), args.Error(1)
}
