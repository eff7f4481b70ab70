package ledger

import "hostel-ledger-backend/internal/domain"

// MessStatusForMonth reports mess payment for month. Tenants without mess
// participation have nothing due and are never pending, whatever they paid.
func MessStatusForMonth(tenant domain.Tenant, month domain.Month, payments []domain.MessPayment) domain.MonthStatus {
	return statusForMonth(tenant.ID, month, MessRows(payments), tenant.UsesMess)
}

// MessRows exposes mess payments as their common monthly shape.
func MessRows(payments []domain.MessPayment) []domain.MonthlyPayment {
	rows := make([]domain.MonthlyPayment, len(payments))
	for i, p := range payments {
		rows[i] = p.MonthlyPayment
	}
	return rows
}
