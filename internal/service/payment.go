package service

import (
	"context"
	"errors"

	"hostel-ledger-backend/internal/domain"
	"hostel-ledger-backend/internal/ledger"
	"hostel-ledger-backend/internal/logger"
	"hostel-ledger-backend/internal/repository"
)

type paymentService struct {
	tenantRepo repository.TenantRepository
	rentRepo   repository.RentPaymentRepository
	messRepo   repository.MessPaymentRepository
}

func NewPaymentService(
	tenantRepo repository.TenantRepository,
	rentRepo repository.RentPaymentRepository,
	messRepo repository.MessPaymentRepository,
) PaymentService {
	return &paymentService{
		tenantRepo: tenantRepo,
		rentRepo:   rentRepo,
		messRepo:   messRepo,
	}
}

func (s *paymentService) RecordRentPayment(ctx context.Context, payment *domain.RentPayment) error {
	logger.EnterMethod("paymentService.RecordRentPayment", "tenantID", payment.TenantID, "month", payment.Month.String())
	if err := payment.Validate(); err != nil {
		logger.ExitMethodWithError("paymentService.RecordRentPayment", err, true)
		return err
	}
	tenant, err := s.payer(ctx, payment.TenantID)
	if err != nil {
		logger.ExitMethodWithError("paymentService.RecordRentPayment", err, domain.IsValidation(err))
		return err
	}
	if err := s.rentRepo.Create(ctx, payment); err != nil {
		logger.ExitMethodWithError("paymentService.RecordRentPayment", err, domain.IsValidation(err))
		return err
	}
	payment.TenantName = tenant.Name
	logger.ExitMethod("paymentService.RecordRentPayment", "paymentID", payment.ID, "amount", payment.Amount)
	return nil
}

func (s *paymentService) RecordMessPayment(ctx context.Context, payment *domain.MessPayment) error {
	logger.EnterMethod("paymentService.RecordMessPayment", "tenantID", payment.TenantID, "month", payment.Month.String())
	if err := payment.Validate(); err != nil {
		logger.ExitMethodWithError("paymentService.RecordMessPayment", err, true)
		return err
	}
	tenant, err := s.payer(ctx, payment.TenantID)
	if err != nil {
		logger.ExitMethodWithError("paymentService.RecordMessPayment", err, domain.IsValidation(err))
		return err
	}
	if !tenant.UsesMess {
		err := domain.NewValidationError("tenant_id", "tenant does not use the mess")
		logger.ExitMethodWithError("paymentService.RecordMessPayment", err, true)
		return err
	}
	if err := s.messRepo.Create(ctx, payment); err != nil {
		logger.ExitMethodWithError("paymentService.RecordMessPayment", err, domain.IsValidation(err))
		return err
	}
	payment.TenantName = tenant.Name
	logger.ExitMethod("paymentService.RecordMessPayment", "paymentID", payment.ID, "amount", payment.Amount)
	return nil
}

func (s *paymentService) RentTracking(ctx context.Context, month domain.Month) (*domain.MonthTracking, error) {
	payments, err := s.rentRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	tenants, err := s.activeTenants(ctx)
	if err != nil {
		return nil, err
	}
	rows := ledger.RentRows(payments)
	return &domain.MonthTracking{
		Month:     month,
		Payments:  rows,
		Pending:   ledger.PendingRent(tenants, month, payments),
		Collected: ledger.CollectedForMonth(month, rows),
	}, nil
}

func (s *paymentService) MessTracking(ctx context.Context, month domain.Month) (*domain.MonthTracking, error) {
	payments, err := s.messRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	tenants, err := s.activeTenants(ctx)
	if err != nil {
		return nil, err
	}
	rows := ledger.MessRows(payments)
	return &domain.MonthTracking{
		Month:     month,
		Payments:  rows,
		Pending:   ledger.PendingMess(tenants, month, payments),
		Collected: ledger.CollectedForMonth(month, rows),
	}, nil
}

func (s *paymentService) activeTenants(ctx context.Context) ([]domain.Tenant, error) {
	return s.tenantRepo.List(ctx, domain.TenantFilter{Status: domain.TenantStatusActive})
}

// payer loads the paying tenant. Departed tenants may still settle arrears.
func (s *paymentService) payer(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewValidationError("tenant_id", "tenant does not exist")
	}
	return tenant, err
}
