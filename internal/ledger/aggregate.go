package ledger

import "hostel-ledger-backend/internal/domain"

// Input is the snapshot of rows a month-level aggregate is computed from.
// Tenants holds every tenant, active or not. Payment slices may contain
// other months; they are filtered by Month.
type Input struct {
	Tenants      []domain.Tenant
	Month        domain.Month
	RentPayments []domain.RentPayment
	MessPayments []domain.MessPayment
	Deposits     []domain.DepositTransaction
}

// Aggregate folds per-tenant ledger results into the month summary.
//
// Pending lists only contain active tenants and keep the order of
// in.Tenants. Collected totals include payments of tenants that have since
// left. Deposits held sums the balance of every tenant in the input.
func Aggregate(in Input) domain.FleetSummary {
	out := domain.FleetSummary{Month: in.Month}

	deposits := GroupByTenant(in.Deposits)
	for _, t := range in.Tenants {
		out.TotalDepositsHeld += CurrentBalance(t.InitialDeposit, deposits[t.ID])
		if t.IsActive() {
			out.ActiveCount++
		} else {
			out.InactiveCount++
		}
	}

	out.PendingRent = PendingRent(in.Tenants, in.Month, in.RentPayments)
	out.PendingMess = PendingMess(in.Tenants, in.Month, in.MessPayments)
	out.TotalRentCollected = CollectedForMonth(in.Month, RentRows(in.RentPayments))
	out.TotalMessCollected = CollectedForMonth(in.Month, MessRows(in.MessPayments))
	return out
}

// PendingRent returns the active tenants with no positive rent payment for month.
func PendingRent(tenants []domain.Tenant, month domain.Month, payments []domain.RentPayment) []domain.Tenant {
	out := []domain.Tenant{}
	for _, t := range tenants {
		if t.IsActive() && RentStatusForMonth(t, month, payments).Pending() {
			out = append(out, t)
		}
	}
	return out
}

// PendingMess returns the active mess tenants with no positive mess payment for month.
func PendingMess(tenants []domain.Tenant, month domain.Month, payments []domain.MessPayment) []domain.Tenant {
	out := []domain.Tenant{}
	for _, t := range tenants {
		if t.IsActive() && MessStatusForMonth(t, month, payments).Pending() {
			out = append(out, t)
		}
	}
	return out
}
