package dateutil

import (
	"fmt"
	"iter"
	"time"
)

// DateFormat is the canonical ISO-8601 layout used when writing dates.
const DateFormat = "2006-01-02"

// readDateFormat accepts single-digit months and days ("2025-1-5").
const readDateFormat = "2006-1-2"

const secondsPerDay = 24 * 60 * 60

// Date is a civil calendar date with no time of day and no time zone.
// The zero value is not a valid date; use IsZero to detect it.
type Date struct {
	t time.Time // always midnight UTC
}

// New returns the normalized Date for the given year, month and day.
// Out of range values roll over the same way time.Date does.
func New(year int, month time.Month, dayOfMonth int) Date {
	return Date{time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)}
}

// FromTime drops the clock part of t, keeping the calendar date as seen in t's location.
func FromTime(t time.Time) Date {
	return New(t.Date())
}

// Today returns the current local date.
func Today() Date { return FromTime(time.Now()) }

// Parse reads a date in YYYY-MM-DD form. Single-digit months and days are accepted.
func Parse(s string) (Date, error) {
	t, err := time.Parse(readDateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want format %s: %w", s, DateFormat, err)
	}
	return FromTime(t), nil
}

// MustParse is like Parse but panics on error. Intended for tests and literals.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time { return d.t }

func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Before reports whether d is strictly before x.
func (d Date) Before(x Date) bool { return d.t.Before(x.t) }

// After reports whether d is strictly after x.
func (d Date) After(x Date) bool { return d.t.After(x.t) }

// Equal reports whether d and x are the same calendar day.
func (d Date) Equal(x Date) bool { return d.t.Equal(x.t) }

// AddDays returns d shifted by n calendar days.
func (d Date) AddDays(n int) Date { return New(d.Year(), d.Month(), d.Day()+n) }

// DaysUntil returns the signed number of calendar days from d to x.
func (d Date) DaysUntil(x Date) int {
	// Unix seconds, since time.Duration saturates after about 292 years
	return int((x.t.Unix() - d.t.Unix()) / secondsPerDay)
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string { return d.t.Format(DateFormat) }

// Format formats the date with a time layout.
func (d Date) Format(layout string) string { return d.t.Format(layout) }

// MarshalText implements encoding.TextMarshaler, so dates round-trip through JSON, YAML and TOML.
func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Full timestamps are accepted and truncated to their date.
func (d *Date) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		*d = Date{}
		return nil
	}
	if parsed, err := Parse(s); err == nil {
		*d = parsed
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, want format %s", s, DateFormat)
	}
	*d = FromTime(t)
	return nil
}

// DaysInclusive counts the calendar days in [start, end], both ends included.
// It returns 0 when end is before start.
func DaysInclusive(start, end Date) int {
	if end.Before(start) {
		return 0
	}
	return start.DaysUntil(end) + 1
}

// EachDay yields every calendar day from start to end inclusive, in ascending order.
func EachDay(start, end Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := start; !d.After(end); d = d.AddDays(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// BeginningOfYear returns January 1st of d's year.
func BeginningOfYear(d Date) Date {
	return New(d.Year(), time.January, 1)
}

// EndOfYear returns December 31st of d's year.
func EndOfYear(d Date) Date {
	return New(d.Year(), time.December, 31)
}
