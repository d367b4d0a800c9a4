package models

import (
	"time"

	"github.com/golang-sql/civil"
)

// Date is a calendar day without a time zone. The zero Date means "unknown"
// and serializes as an empty string.
type Date struct {
	civil.Date
}

// NewDate builds a Date. It does not check validity; IsValid does.
func NewDate(year int, month time.Month, day int) Date {
	return Date{civil.Date{Year: year, Month: month, Day: day}}
}

// DateOf returns the Date on which t falls in t's location.
func DateOf(t time.Time) Date {
	return Date{civil.DateOf(t)}
}

// ParseDate parses "YYYY-MM-DD". The empty string yields the zero Date.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	d, err := civil.ParseDate(s)
	if err != nil {
		return Date{}, err
	}
	return Date{d}, nil
}

// Years outside MinYear..MaxYear do not fit the "YYYY-MM-DD" form.
const (
	MinYear = 1
	MaxYear = 9999
)

// IsValid reports whether d is a real calendar day between MinYear and MaxYear.
func (d Date) IsValid() bool {
	return d.Year >= MinYear && d.Year <= MaxYear && d.Date.IsValid()
}

func (d Date) IsZero() bool {
	return d.Date == civil.Date{}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// DaysUntil returns the number of whole days from d to other.
func (d Date) DaysUntil(other Date) int {
	from := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	to := time.Date(other.Year, other.Month, other.Day, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Date.String()
}

func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return d.Date.MarshalText()
}

func (d *Date) UnmarshalText(data []byte) error {
	parsed, err := ParseDate(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
