package domain

import "time"

// FleetSummary is the month-level aggregate over every tenant.
type FleetSummary struct {
	Month              Month    `json:"month"`
	ActiveCount        int      `json:"active_count"`
	InactiveCount      int      `json:"inactive_count"`
	PendingRent        []Tenant `json:"pending_rent"`
	PendingMess        []Tenant `json:"pending_mess"`
	TotalRentCollected Money    `json:"total_rent_collected"`
	TotalMessCollected Money    `json:"total_mess_collected"`
	TotalDepositsHeld  Money    `json:"total_deposits_held"`
}

type Dashboard struct {
	FleetSummary
	RoomCount     int      `json:"room_count"`
	RecentTenants []Tenant `json:"recent_tenants"`
}

// TenantProfile gathers everything shown for a single tenant.
type TenantProfile struct {
	Tenant       Tenant               `json:"tenant"`
	Room         *Room                `json:"room,omitempty"`
	Month        Month                `json:"month"`
	RentStatus   MonthStatus          `json:"rent_status"`
	MessStatus   MonthStatus          `json:"mess_status"`
	RentPayments []RentPayment        `json:"rent_payments"`
	MessPayments []MessPayment        `json:"mess_payments"`
	Deposits     []DepositTransaction `json:"deposit_transactions"`
	Deposit      DepositSummary       `json:"deposit"`
}

// MonthTracking lists one month's payments of a kind and who still owes.
type MonthTracking struct {
	Month     Month            `json:"month"`
	Payments  []MonthlyPayment `json:"payments"`
	Pending   []Tenant         `json:"pending"`
	Collected Money            `json:"collected"`
}

// DepositOverview is the property-wide deposit view.
type DepositOverview struct {
	Transactions  []DepositTransaction `json:"transactions"`
	TotalInitial  Money                `json:"total_initial"`
	TotalDeducted Money                `json:"total_deducted"`
	TotalRefunded Money                `json:"total_refunded"`
	TotalHeld     Money                `json:"total_held"`
}

// MonthlySnapshot is a persisted FleetSummary taken by the monthly job.
type MonthlySnapshot struct {
	Month              Month     `json:"month"`
	ActiveCount        int       `json:"active_count"`
	InactiveCount      int       `json:"inactive_count"`
	PendingRentCount   int       `json:"pending_rent_count"`
	PendingMessCount   int       `json:"pending_mess_count"`
	TotalRentCollected Money     `json:"total_rent_collected"`
	TotalMessCollected Money     `json:"total_mess_collected"`
	TotalDepositsHeld  Money     `json:"total_deposits_held"`
	TakenAt            time.Time `json:"taken_at"`
}

// SnapshotOf condenses a FleetSummary for storage.
func SnapshotOf(s FleetSummary, takenAt time.Time) MonthlySnapshot {
	return MonthlySnapshot{
		Month:              s.Month,
		ActiveCount:        s.ActiveCount,
		InactiveCount:      s.InactiveCount,
		PendingRentCount:   len(s.PendingRent),
		PendingMessCount:   len(s.PendingMess),
		TotalRentCollected: s.TotalRentCollected,
		TotalMessCollected: s.TotalMessCollected,
		TotalDepositsHeld:  s.TotalDepositsHeld,
		TakenAt:            takenAt,
	}
}
