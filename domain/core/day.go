package core

import (
	"fmt"
	"time"
)

// dayLayout is the ISO calendar-day format used everywhere dates cross a boundary.
const dayLayout = "2006-01-02"

// Day represents a calendar day with no time-of-day component.
// The zero value is the zero time's day.
type Day time.Time

// NewDay creates a Day from a time.Time, truncating to UTC midnight
func NewDay(t time.Time) Day {
	y, m, d := t.UTC().Date()
	return Day(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// ParseDay parses an ISO "YYYY-MM-DD" string into a Day
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid day %q: %w", s, err)
	}
	return Day(t), nil
}

// MustDay parses an ISO day string and panics on failure. For fixtures and
// literal dates.
func MustDay(s string) Day {
	d, err := ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns the underlying time.Time (UTC midnight)
func (d Day) Time() time.Time {
	return time.Time(d)
}

// String returns the ISO "YYYY-MM-DD" representation
func (d Day) String() string {
	return time.Time(d).Format(dayLayout)
}

// IsZero checks if the day is the zero value
func (d Day) IsZero() bool {
	return time.Time(d).IsZero()
}

// Before returns true if d is before u
func (d Day) Before(u Day) bool {
	return time.Time(d).Before(time.Time(u))
}

// After returns true if d is after u
func (d Day) After(u Day) bool {
	return time.Time(d).After(time.Time(u))
}

// Equal returns true if d and u are the same calendar day
func (d Day) Equal(u Day) bool {
	return time.Time(d).Equal(time.Time(u))
}

// Compare returns -1, 0 or +1 ordering d against u
func (d Day) Compare(u Day) int {
	return time.Time(d).Compare(time.Time(u))
}

// AddDays returns the day n days after d (n may be negative)
func (d Day) AddDays(n int) Day {
	return Day(time.Time(d).AddDate(0, 0, n))
}

// MarshalJSON encodes the day as an ISO date string
func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes an ISO date string
func (d *Day) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid day JSON: %s", s)
	}
	parsed, err := ParseDay(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
