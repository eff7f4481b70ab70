package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"hostel-ledger-backend/internal/domain"
	"hostel-ledger-backend/internal/logger"

	"github.com/lib/pq"
)

// constraintMessages maps schema constraints to operator-facing messages.
var constraintMessages = map[string]*domain.ValidationError{
	"rooms_name_key":                      domain.NewValidationError("name", "A room with this name already exists"),
	"rooms_rent_check":                    domain.NewValidationError("rent", "rent must not be negative"),
	"tenants_room_id_fkey":                domain.NewValidationError("room_id", "room does not exist"),
	"tenants_leave_after_join":            domain.NewValidationError("leave_date", "leave date cannot be before join date"),
	"tenants_deposit_amount_check":        domain.NewValidationError("deposit_amount", "deposit must not be negative"),
	"rent_payments_tenant_id_fkey":        domain.NewValidationError("tenant_id", "tenant does not exist"),
	"rent_payments_amount_paid_check":     domain.NewValidationError("amount", "amount must not be negative"),
	"mess_payments_tenant_id_fkey":        domain.NewValidationError("tenant_id", "tenant does not exist"),
	"mess_payments_mess_charge_check":     domain.NewValidationError("amount", "amount must not be negative"),
	"deposit_transactions_tenant_id_fkey": domain.NewValidationError("tenant_id", "tenant does not exist"),
	"deposit_transactions_amount_check":   domain.NewValidationError("amount", "amount must be greater than zero"),
	"deposit_transactions_type_check":     domain.NewValidationError("type", "type must be deduction or refund"),
}

// classify turns a driver error into the domain error taxonomy. Missing rows
// and malformed ids become ErrNotFound, bad data values and constraint
// violations a ValidationError, anything else a DataFetchError.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "22" {
		// A malformed uuid cannot name an existing row.
		if pqErr.Code.Name() == "invalid_text_representation" {
			return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
		return domain.NewValidationError("", pqErr.Message)
	}
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
		if ve, ok := constraintMessages[pqErr.Constraint]; ok {
			return ve
		}
		msg := pqErr.Message
		if pqErr.Detail != "" {
			msg = pqErr.Detail
		}
		return domain.NewValidationError("", msg)
	}

	return &domain.DataFetchError{Op: op, Err: err}
}

// likePattern wraps s for a substring LIKE match with its wildcards escaped.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation"
}

func nullableDate(d *domain.Date) interface{} {
	if d == nil {
		return nil
	}
	return d.Time
}

func datePtr(t sql.NullTime) *domain.Date {
	if !t.Valid {
		return nil
	}
	d := domain.DateOf(t.Time)
	return &d
}

// requireAffected reports ErrNotFound when an update or delete matched no row.
func requireAffected(op string, res sql.Result) error {
	n, err := res.RowsAffected()
	logger.DatabaseResult(op, n, err)
	if err != nil {
		return classify(op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return nil
}
