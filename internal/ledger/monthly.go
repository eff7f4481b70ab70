package ledger

import "hostel-ledger-backend/internal/domain"

// statusForMonth sums the tenant's payments recorded against month. A month
// counts as paid only when the sum is positive, so a zero-amount record
// leaves the tenant unpaid.
func statusForMonth(tenantID string, month domain.Month, payments []domain.MonthlyPayment, due bool) domain.MonthStatus {
	st := domain.MonthStatus{Month: month, Due: due}
	for _, p := range payments {
		if p.TenantID != tenantID || !p.Month.Equal(month) {
			continue
		}
		st.AmountPaid += p.Amount
	}
	st.Paid = st.AmountPaid > 0
	return st
}

// CollectedForMonth sums every payment recorded against month, whoever made it.
func CollectedForMonth(month domain.Month, payments []domain.MonthlyPayment) domain.Money {
	var total domain.Money
	for _, p := range payments {
		if p.Month.Equal(month) {
			total += p.Amount
		}
	}
	return total
}
