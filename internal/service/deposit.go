package service

import (
	"context"
	"errors"
	"strings"

	"hostel-ledger-backend/internal/domain"
	"hostel-ledger-backend/internal/ledger"
	"hostel-ledger-backend/internal/logger"
	"hostel-ledger-backend/internal/repository"
)

type depositService struct {
	tenantRepo  repository.TenantRepository
	depositRepo repository.DepositRepository
}

func NewDepositService(tenantRepo repository.TenantRepository, depositRepo repository.DepositRepository) DepositService {
	return &depositService{
		tenantRepo:  tenantRepo,
		depositRepo: depositRepo,
	}
}

func (s *depositService) RecordTransaction(ctx context.Context, tx *domain.DepositTransaction) error {
	logger.EnterMethod("depositService.RecordTransaction", "tenantID", tx.TenantID, "type", tx.Type, "amount", tx.Amount)
	if err := tx.Validate(); err != nil {
		logger.ExitMethodWithError("depositService.RecordTransaction", err, true)
		return err
	}

	tenant, err := s.tenantRepo.GetByID(ctx, tx.TenantID)
	if errors.Is(err, domain.ErrNotFound) {
		err = domain.NewValidationError("tenant_id", "tenant does not exist")
	}
	if err != nil {
		logger.ExitMethodWithError("depositService.RecordTransaction", err, domain.IsValidation(err))
		return err
	}

	if err := s.depositRepo.CreateTransaction(ctx, tx); err != nil {
		logger.ExitMethodWithError("depositService.RecordTransaction", err, domain.IsValidation(err))
		return err
	}
	tx.TenantName = tenant.Name
	tx.TenantPhone = tenant.Phone
	logger.ExitMethod("depositService.RecordTransaction", "transactionID", tx.ID)
	return nil
}

func (s *depositService) Overview(ctx context.Context, search string) (*domain.DepositOverview, error) {
	tenants, err := s.tenantRepo.List(ctx, domain.TenantFilter{Status: domain.TenantStatusAll})
	if err != nil {
		return nil, err
	}
	txs, err := s.depositRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := &domain.DepositOverview{Transactions: matchDeposits(txs, search)}
	byTenant := ledger.GroupByTenant(txs)
	for _, t := range tenants {
		sum := ledger.Summarize(t.InitialDeposit, byTenant[t.ID])
		out.TotalInitial += sum.Initial
		out.TotalDeducted += sum.TotalDeducted
		out.TotalRefunded += sum.TotalRefunded
		out.TotalHeld += sum.Balance
	}
	return out, nil
}

// matchDeposits keeps transactions whose tenant name, phone or reason
// contains search, ignoring case.
func matchDeposits(txs []domain.DepositTransaction, search string) []domain.DepositTransaction {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return txs
	}
	out := []domain.DepositTransaction{}
	for _, tx := range txs {
		if strings.Contains(strings.ToLower(tx.TenantName), q) ||
			strings.Contains(tx.TenantPhone, q) ||
			strings.Contains(strings.ToLower(tx.Reason), q) {
			out = append(out, tx)
		}
	}
	return out
}
