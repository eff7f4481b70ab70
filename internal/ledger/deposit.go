package ledger

import "hostel-ledger-backend/internal/domain"

// CurrentBalance returns initial minus deductions plus refunds. The result is
// not clamped and may be negative.
func CurrentBalance(initial domain.Money, txs []domain.DepositTransaction) domain.Money {
	return Summarize(initial, txs).Balance
}

// Summarize returns the balance together with the deducted and refunded totals.
func Summarize(initial domain.Money, txs []domain.DepositTransaction) domain.DepositSummary {
	s := domain.DepositSummary{Initial: initial}
	for _, tx := range txs {
		switch tx.Type {
		case domain.DepositDeduction:
			s.TotalDeducted += tx.Amount
		case domain.DepositRefund:
			s.TotalRefunded += tx.Amount
		}
	}
	s.Balance = initial - s.TotalDeducted + s.TotalRefunded
	return s
}

// GroupByTenant indexes transactions by tenant id.
func GroupByTenant(txs []domain.DepositTransaction) map[string][]domain.DepositTransaction {
	out := make(map[string][]domain.DepositTransaction)
	for _, tx := range txs {
		out[tx.TenantID] = append(out[tx.TenantID], tx)
	}
	return out
}
