package service

import (
	"context"

	"hostel-ledger-backend/internal/domain"
	"hostel-ledger-backend/internal/ledger"
	"hostel-ledger-backend/internal/repository"
)

const recentTenantLimit = 5

type dashboardService struct {
	roomRepo    repository.RoomRepository
	tenantRepo  repository.TenantRepository
	rentRepo    repository.RentPaymentRepository
	messRepo    repository.MessPaymentRepository
	depositRepo repository.DepositRepository
}

func NewDashboardService(
	roomRepo repository.RoomRepository,
	tenantRepo repository.TenantRepository,
	rentRepo repository.RentPaymentRepository,
	messRepo repository.MessPaymentRepository,
	depositRepo repository.DepositRepository,
) DashboardService {
	return &dashboardService{
		roomRepo:    roomRepo,
		tenantRepo:  tenantRepo,
		rentRepo:    rentRepo,
		messRepo:    messRepo,
		depositRepo: depositRepo,
	}
}

// Summary loads every row the month aggregate needs and folds it.
func (s *dashboardService) Summary(ctx context.Context, month domain.Month) (*domain.FleetSummary, error) {
	in := ledger.Input{Month: month}
	var err error

	if in.Tenants, err = s.tenantRepo.List(ctx, domain.TenantFilter{Status: domain.TenantStatusAll}); err != nil {
		return nil, err
	}
	if in.RentPayments, err = s.rentRepo.ListByMonth(ctx, month); err != nil {
		return nil, err
	}
	if in.MessPayments, err = s.messRepo.ListByMonth(ctx, month); err != nil {
		return nil, err
	}
	if in.Deposits, err = s.depositRepo.ListAll(ctx); err != nil {
		return nil, err
	}

	summary := ledger.Aggregate(in)
	return &summary, nil
}

func (s *dashboardService) Dashboard(ctx context.Context, month domain.Month) (*domain.Dashboard, error) {
	summary, err := s.Summary(ctx, month)
	if err != nil {
		return nil, err
	}
	rooms, err := s.roomRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.tenantRepo.ListRecent(ctx, recentTenantLimit)
	if err != nil {
		return nil, err
	}
	return &domain.Dashboard{
		FleetSummary:  *summary,
		RoomCount:     rooms,
		RecentTenants: recent,
	}, nil
}
