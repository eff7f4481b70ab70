package domain

import "fmt"

// Money is an amount in the single currency unit used by the property.
// Stored amounts are non-negative; derived balances may go below zero.
type Money int64

func (m Money) String() string {
	return fmt.Sprintf("%d", int64(m))
}

// Validate rejects negative stored amounts.
func (m Money) Validate(field string) error {
	if m < 0 {
		return NewValidationError(field, "must not be negative")
	}
	return nil
}
