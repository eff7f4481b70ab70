package domain

import "time"

// MonthlyPayment is the common shape of rent and mess payments.
type MonthlyPayment struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	TenantName  string    `json:"tenant_name,omitempty"`
	Month       Month     `json:"month"`
	Amount      Money     `json:"amount"`
	PaymentDate Date      `json:"payment_date"`
	CreatedAt   time.Time `json:"created_at"`
}

type RentPayment struct {
	MonthlyPayment
}

type MessPayment struct {
	MonthlyPayment
}

func (p *MonthlyPayment) Validate() error {
	if p.TenantID == "" {
		return NewValidationError("tenant_id", "tenant is required")
	}
	if p.Month.IsZero() {
		return NewValidationError("month", "month is required")
	}
	if p.PaymentDate.IsZero() {
		return NewValidationError("payment_date", "payment date is required")
	}
	return p.Amount.Validate("amount")
}

// MonthStatus is the payment state of one tenant for one month.
type MonthStatus struct {
	Month      Month `json:"month"`
	Due        bool  `json:"due"`
	Paid       bool  `json:"paid"`
	AmountPaid Money `json:"amount_paid"`
}

// Pending reports whether an obligation exists and nothing was paid.
func (s MonthStatus) Pending() bool {
	return s.Due && !s.Paid
}
