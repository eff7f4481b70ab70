package service

import (
	"context"
	"testing"

	"hostel-ledger-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardMocks struct {
	rooms    *MockRoomRepo
	tenants  *MockTenantRepo
	rent     *MockRentRepo
	mess     *MockMessRepo
	deposits *MockDepositRepo
}

func newDashboardService() (DashboardService, dashboardMocks) {
	m := dashboardMocks{
		rooms:    new(MockRoomRepo),
		tenants:  new(MockTenantRepo),
		rent:     new(MockRentRepo),
		mess:     new(MockMessRepo),
		deposits: new(MockDepositRepo),
	}
	return NewDashboardService(m.rooms, m.tenants, m.rent, m.mess, m.deposits), m
}

// seedFleet wires the June fixture: Asha paid both, Bob paid rent and has
// no mess, Chitra owes both, Dev left but paid June rent.
func seedFleet(ctx context.Context, m dashboardMocks) {
	dev := tenantFixture("t4", "Dev", true, 2000)
	left := domain.NewDate(2024, 5, 31)
	dev.LeaveDate = &left

	m.tenants.On("List", ctx, domain.TenantFilter{Status: domain.TenantStatusAll}).Return([]domain.Tenant{
		tenantFixture("t1", "Asha", true, 5000),
		tenantFixture("t2", "Bob", false, 4000),
		tenantFixture("t3", "Chitra", true, 3000),
		dev,
	}, nil)
	m.rent.On("ListByMonth", ctx, june).Return([]domain.RentPayment{
		rentFixture("t1", 6000), rentFixture("t2", 5000), rentFixture("t4", 4500),
	}, nil)
	m.mess.On("ListByMonth", ctx, june).Return([]domain.MessPayment{messFixture("t1", 1500)}, nil)
	m.deposits.On("ListAll", ctx).Return([]domain.DepositTransaction{
		depositFixture("t1", domain.DepositDeduction, 1200, "window"),
		depositFixture("t4", domain.DepositRefund, 2000, "moved out"),
	}, nil)
}

func TestDashboardService_Summary(t *testing.T) {
	ctx := context.Background()
	svc, m := newDashboardService()
	seedFleet(ctx, m)

	s, err := svc.Summary(ctx, june)
	require.NoError(t, err)

	assert.Equal(t, 3, s.ActiveCount)
	assert.Equal(t, 1, s.InactiveCount)
	require.Len(t, s.PendingRent, 1)
	assert.Equal(t, "t3", s.PendingRent[0].ID)
	require.Len(t, s.PendingMess, 1)
	assert.Equal(t, "t3", s.PendingMess[0].ID)
	assert.Equal(t, domain.Money(15500), s.TotalRentCollected)
	assert.Equal(t, domain.Money(1500), s.TotalMessCollected)
	assert.Equal(t, domain.Money(14800), s.TotalDepositsHeld)
}

func TestDashboardService_Dashboard(t *testing.T) {
	ctx := context.Background()
	svc, m := newDashboardService()
	seedFleet(ctx, m)
	m.rooms.On("Count", ctx).Return(7, nil)
	recent := []domain.Tenant{tenantFixture("t3", "Chitra", true, 3000)}
	m.tenants.On("ListRecent", ctx, 5).Return(recent, nil)

	d, err := svc.Dashboard(ctx, june)
	require.NoError(t, err)
	assert.Equal(t, 7, d.RoomCount)
	assert.Equal(t, recent, d.RecentTenants)
	assert.Equal(t, 3, d.ActiveCount)
}

func TestDashboardService_StoreFailure(t *testing.T) {
	ctx := context.Background()
	svc, m := newDashboardService()
	m.tenants.On("List", ctx, domain.TenantFilter{Status: domain.TenantStatusAll}).
		Return(nil, &domain.DataFetchError{Op: "list tenants", Err: assert.AnError})

	_, err := svc.Dashboard(ctx, june)
	assert.True(t, domain.IsDataFetch(err))
}
