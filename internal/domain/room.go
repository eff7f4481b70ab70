package domain

import (
	"strings"
	"time"
)

type Room struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Rent      Money     `json:"rent"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Room) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return NewValidationError("name", "room name is required")
	}
	if len(r.Name) > 100 {
		return NewValidationError("name", "room name is too long (max 100 characters)")
	}
	return r.Rent.Validate("rent")
}
