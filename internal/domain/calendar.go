package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// Date is a calendar date without a time of day, always held in UTC.
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month, day
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate converts a yyyy-mm-dd string into a Date
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", s)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// Before reports whether d is an earlier calendar day than o.
func (d Date) Before(o Date) bool {
	return d.Time.Before(o.Time)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Month identifies a calendar month. The zero value is "no month"; every
// other value is the first day of the month at midnight UTC, so two months
// are equal exactly when their dates are equal.
type Month struct {
	t time.Time
}

// NewMonth returns the month identifier for year and month.
func NewMonth(year int, month time.Month) Month {
	return Month{t: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)}
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	y, m, _ := t.Date()
	return NewMonth(y, m)
}

// ParseMonth accepts "yyyy-mm" or any "yyyy-mm-dd" inside the month.
func ParseMonth(s string) (Month, error) {
	if t, err := time.Parse(MonthLayout, s); err == nil {
		return MonthOf(t), nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return MonthOf(t), nil
	}
	return Month{}, fmt.Errorf("invalid month %q, expected yyyy-mm or yyyy-mm-dd", s)
}

// FirstDay returns the month as the date of its first day.
func (m Month) FirstDay() Date {
	return Date{Time: m.t}
}

func (m Month) Time() time.Time { return m.t }

func (m Month) IsZero() bool { return m.t.IsZero() }

func (m Month) Equal(o Month) bool { return m.t.Equal(o.t) }

func (m Month) Year() int { return m.t.Year() }

func (m Month) Month() time.Month { return m.t.Month() }

// Next returns the following month.
func (m Month) Next() Month {
	return Month{t: m.t.AddDate(0, 1, 0)}
}

// Prev returns the previous month.
func (m Month) Prev() Month {
	return Month{t: m.t.AddDate(0, -1, 0)}
}

// Contains reports whether d falls inside the month.
func (m Month) Contains(d Date) bool {
	return MonthOf(d.Time).Equal(m)
}

// String returns the canonical yyyy-mm-01 key.
func (m Month) String() string {
	if m.IsZero() {
		return ""
	}
	return m.t.Format(DateLayout)
}

// Label returns a display label such as "June 2024".
func (m Month) Label() string {
	return m.t.Format("January 2006")
}

func (m Month) MarshalJSON() ([]byte, error) {
	if m.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(m.String())
}

func (m *Month) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*m = Month{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseMonth(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
