package datemath

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Date is a calendar date with no time component. It persists as a
// "yyyy.MM.dd" string (VARCHAR(10)); the format sorts lexicographically in
// date order, which the installment due-date range queries rely on.
type Date struct {
	t time.Time
}

// NewDate canonicalizes t into a Date.
func NewDate(t time.Time) Date { return Date{t: Canonical(t)} }

// ParseDate parses the canonical yyyy.MM.dd form.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (want yyyy.MM.dd): %w", s, err)
	}
	return Date{t: t}, nil
}

func (d Date) Time() time.Time { return d.t }
func (d Date) IsZero() bool    { return d.t.IsZero() }
func (d Date) String() string  { return d.t.Format(Layout) }

// DaysUntil returns other minus d in whole days.
func (d Date) DaysUntil(other Date) int { return DaysBetween(d.t, other.t) }

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	if d.t.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case string:
		p, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = p
		return nil
	case []byte:
		return d.Scan(string(v))
	case time.Time:
		*d = NewDate(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into datemath.Date", src)
	}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date json %s", s)
	}
	p, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = p
	return nil
}
