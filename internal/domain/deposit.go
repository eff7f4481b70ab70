package domain

import (
	"strings"
	"time"
)

type DepositTransactionType string

const (
	DepositDeduction DepositTransactionType = "deduction"
	DepositRefund    DepositTransactionType = "refund"
)

func (t DepositTransactionType) Valid() bool {
	return t == DepositDeduction || t == DepositRefund
}

type DepositTransaction struct {
	ID          string                 `json:"id"`
	TenantID    string                 `json:"tenant_id"`
	TenantName  string                 `json:"tenant_name,omitempty"`
	TenantPhone string                 `json:"tenant_phone,omitempty"`
	Date        Date                   `json:"date"`
	Amount      Money                  `json:"amount"`
	Type        DepositTransactionType `json:"type"`
	Reason      string                 `json:"reason"`
	CreatedAt   time.Time              `json:"created_at"`
}

func (tx *DepositTransaction) Validate() error {
	tx.Reason = strings.TrimSpace(tx.Reason)
	if tx.TenantID == "" {
		return NewValidationError("tenant_id", "tenant is required")
	}
	if tx.Date.IsZero() {
		return NewValidationError("date", "date is required")
	}
	if tx.Amount <= 0 {
		return NewValidationError("amount", "amount must be greater than zero")
	}
	if !tx.Type.Valid() {
		return NewValidationError("type", "type must be deduction or refund")
	}
	if tx.Reason == "" {
		return NewValidationError("reason", "reason is required")
	}
	return nil
}

// DepositSummary is the audit view of a deposit balance.
type DepositSummary struct {
	Initial       Money `json:"initial"`
	TotalDeducted Money `json:"total_deducted"`
	TotalRefunded Money `json:"total_refunded"`
	Balance       Money `json:"balance"`
}
