package ledger

import "hostel-ledger-backend/internal/domain"

// RentStatusForMonth reports whether tenant paid rent for month. Rent is
// always due; whether a departed tenant should be chased is the caller's call.
func RentStatusForMonth(tenant domain.Tenant, month domain.Month, payments []domain.RentPayment) domain.MonthStatus {
	return statusForMonth(tenant.ID, month, RentRows(payments), true)
}

// RentRows exposes rent payments as their common monthly shape.
func RentRows(payments []domain.RentPayment) []domain.MonthlyPayment {
	rows := make([]domain.MonthlyPayment, len(payments))
	for i, p := range payments {
		rows[i] = p.MonthlyPayment
	}
	return rows
}
