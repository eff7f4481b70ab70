package service

import (
	"context"
	"errors"

	"hostel-ledger-backend/internal/domain"
	"hostel-ledger-backend/internal/ledger"
	"hostel-ledger-backend/internal/logger"
	"hostel-ledger-backend/internal/repository"
)

type tenantService struct {
	tenantRepo  repository.TenantRepository
	roomRepo    repository.RoomRepository
	rentRepo    repository.RentPaymentRepository
	messRepo    repository.MessPaymentRepository
	depositRepo repository.DepositRepository
}

func NewTenantService(
	tenantRepo repository.TenantRepository,
	roomRepo repository.RoomRepository,
	rentRepo repository.RentPaymentRepository,
	messRepo repository.MessPaymentRepository,
	depositRepo repository.DepositRepository,
) TenantService {
	return &tenantService{
		tenantRepo:  tenantRepo,
		roomRepo:    roomRepo,
		rentRepo:    rentRepo,
		messRepo:    messRepo,
		depositRepo: depositRepo,
	}
}

func (s *tenantService) ListTenants(ctx context.Context, filter domain.TenantFilter) ([]domain.Tenant, error) {
	if filter.Status == "" {
		filter.Status = domain.TenantStatusAll
	}
	return s.tenantRepo.List(ctx, filter)
}

func (s *tenantService) GetProfile(ctx context.Context, id string, month domain.Month) (*domain.TenantProfile, error) {
	logger.EnterMethod("tenantService.GetProfile", "tenantID", id, "month", month.String())

	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		logger.ExitMethodWithError("tenantService.GetProfile", err, false, "tenantID", id)
		return nil, err
	}

	profile := &domain.TenantProfile{Tenant: *tenant, Month: month}

	if err := s.loadHistory(ctx, profile); err != nil {
		logger.ExitMethodWithError("tenantService.GetProfile", err, false, "tenantID", id)
		return nil, err
	}

	profile.RentStatus = ledger.RentStatusForMonth(*tenant, month, profile.RentPayments)
	profile.MessStatus = ledger.MessStatusForMonth(*tenant, month, profile.MessPayments)
	profile.Deposit = ledger.Summarize(tenant.InitialDeposit, profile.Deposits)

	logger.ExitMethod("tenantService.GetProfile", "tenantID", id, "balance", profile.Deposit.Balance)
	return profile, nil
}

func (s *tenantService) CreateTenant(ctx context.Context, tenant *domain.Tenant) error {
	logger.EnterMethod("tenantService.CreateTenant", "name", tenant.Name, "roomID", tenant.RoomID)
	if err := tenant.Validate(); err != nil {
		logger.ExitMethodWithError("tenantService.CreateTenant", err, true)
		return err
	}
	if err := s.attachRoom(ctx, tenant); err != nil {
		logger.ExitMethodWithError("tenantService.CreateTenant", err, domain.IsValidation(err))
		return err
	}
	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		logger.ExitMethodWithError("tenantService.CreateTenant", err, domain.IsValidation(err))
		return err
	}
	logger.ExitMethod("tenantService.CreateTenant", "tenantID", tenant.ID)
	return nil
}

func (s *tenantService) UpdateTenant(ctx context.Context, tenant *domain.Tenant) error {
	logger.EnterMethod("tenantService.UpdateTenant", "tenantID", tenant.ID)
	existing, err := s.tenantRepo.GetByID(ctx, tenant.ID)
	if err != nil {
		logger.ExitMethodWithError("tenantService.UpdateTenant", err, false, "tenantID", tenant.ID)
		return err
	}

	tenant.InitialDeposit = existing.InitialDeposit
	tenant.CreatedAt = existing.CreatedAt

	if err := tenant.Validate(); err != nil {
		logger.ExitMethodWithError("tenantService.UpdateTenant", err, true)
		return err
	}
	if err := s.attachRoom(ctx, tenant); err != nil {
		logger.ExitMethodWithError("tenantService.UpdateTenant", err, domain.IsValidation(err))
		return err
	}
	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		logger.ExitMethodWithError("tenantService.UpdateTenant", err, domain.IsValidation(err))
		return err
	}
	logger.ExitMethod("tenantService.UpdateTenant", "tenantID", tenant.ID)
	return nil
}

func (s *tenantService) MarkLeft(ctx context.Context, id string, leaveDate domain.Date) (*domain.Tenant, error) {
	logger.EnterMethod("tenantService.MarkLeft", "tenantID", id, "leaveDate", leaveDate.String())
	if leaveDate.IsZero() {
		err := domain.NewValidationError("leave_date", "leave date is required")
		logger.ExitMethodWithError("tenantService.MarkLeft", err, true, "tenantID", id)
		return nil, err
	}

	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		logger.ExitMethodWithError("tenantService.MarkLeft", err, false, "tenantID", id)
		return nil, err
	}
	if !tenant.IsActive() {
		err := domain.NewValidationError("leave_date", "tenant has already left")
		logger.ExitMethodWithError("tenantService.MarkLeft", err, true, "tenantID", id)
		return nil, err
	}
	if leaveDate.Before(tenant.JoinDate) {
		err := domain.NewValidationError("leave_date", "leave date cannot be before join date")
		logger.ExitMethodWithError("tenantService.MarkLeft", err, true, "tenantID", id)
		return nil, err
	}

	if err := s.tenantRepo.MarkLeft(ctx, id, leaveDate); err != nil {
		logger.ExitMethodWithError("tenantService.MarkLeft", err, domain.IsValidation(err), "tenantID", id)
		return nil, err
	}
	tenant.LeaveDate = &leaveDate
	logger.ExitMethod("tenantService.MarkLeft", "tenantID", id)
	return tenant, nil
}

// loadHistory fills the profile's room and payment and deposit histories.
// A room deleted from under the tenant leaves Room nil.
func (s *tenantService) loadHistory(ctx context.Context, profile *domain.TenantProfile) error {
	id := profile.Tenant.ID
	room, err := s.roomRepo.GetByID(ctx, profile.Tenant.RoomID)
	switch {
	case err == nil:
		profile.Room = room
	case !errors.Is(err, domain.ErrNotFound):
		return err
	}

	if profile.RentPayments, err = s.rentRepo.ListByTenant(ctx, id); err != nil {
		return err
	}
	if profile.MessPayments, err = s.messRepo.ListByTenant(ctx, id); err != nil {
		return err
	}
	profile.Deposits, err = s.depositRepo.ListByTenant(ctx, id)
	return err
}

// attachRoom checks the tenant's room exists and copies its name and rent.
func (s *tenantService) attachRoom(ctx context.Context, tenant *domain.Tenant) error {
	room, err := s.roomRepo.GetByID(ctx, tenant.RoomID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewValidationError("room_id", "room does not exist")
	}
	if err != nil {
		return err
	}
	tenant.RoomName = room.Name
	tenant.RoomRent = room.Rent
	return nil
}
