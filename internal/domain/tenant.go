package domain

import (
	"strings"
	"time"
)

type TenantStatus string

const (
	TenantStatusAll    TenantStatus = "all"
	TenantStatusActive TenantStatus = "active"
	TenantStatusLeft   TenantStatus = "left"
)

// ParseTenantStatus maps a filter string to a status, defaulting to all.
func ParseTenantStatus(s string) (TenantStatus, error) {
	switch TenantStatus(strings.ToLower(strings.TrimSpace(s))) {
	case "", TenantStatusAll:
		return TenantStatusAll, nil
	case TenantStatusActive:
		return TenantStatusActive, nil
	case TenantStatusLeft, "inactive":
		return TenantStatusLeft, nil
	}
	return "", NewValidationError("status", "must be one of all, active, left")
}

type Tenant struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	RoomID         string    `json:"room_id"`
	RoomName       string    `json:"room_name,omitempty"` // populated by list queries
	RoomRent       Money     `json:"room_rent,omitempty"`
	JoinDate       Date      `json:"join_date"`
	LeaveDate      *Date     `json:"leave_date,omitempty"`
	UsesMess       bool      `json:"uses_mess"`
	InitialDeposit Money     `json:"deposit_amount"`
	CreatedAt      time.Time `json:"created_at"`
}

// IsActive reports whether the tenant has not left.
func (t Tenant) IsActive() bool {
	return t.LeaveDate == nil
}

func (t *Tenant) Validate() error {
	t.Name = strings.TrimSpace(t.Name)
	t.Phone = strings.TrimSpace(t.Phone)
	if t.Name == "" {
		return NewValidationError("name", "tenant name is required")
	}
	if t.Phone == "" {
		return NewValidationError("phone", "phone number is required")
	}
	if t.RoomID == "" {
		return NewValidationError("room_id", "room is required")
	}
	if t.JoinDate.IsZero() {
		return NewValidationError("join_date", "join date is required")
	}
	if t.LeaveDate != nil && t.LeaveDate.Before(t.JoinDate) {
		return NewValidationError("leave_date", "leave date cannot be before join date")
	}
	return t.InitialDeposit.Validate("deposit_amount")
}

// TenantFilter narrows tenant listings.
type TenantFilter struct {
	Status TenantStatus
	Search string // matched against name and phone
}
