package core

import (
	"fmt"
	"strings"
	"time"
)

// DateInt is a calendar date encoded as a YYYYMMDD integer.
// Integer comparison of two valid DateInts matches chronological order.
type DateInt int

// NoDate marks an absent date.
const NoDate DateInt = 0

// NewDate builds a DateInt from its parts without validating them.
func NewDate(year, month, day int) DateInt {
	return DateInt(year*10000 + month*100 + day)
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) DateInt {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// Year returns the year component.
func (d DateInt) Year() int { return int(d) / 10000 }

// Month returns the month component.
func (d DateInt) Month() int { return int(d) / 100 % 100 }

// Day returns the day-of-month component.
func (d DateInt) Day() int { return int(d) % 100 }

// Valid reports whether d is an 8-digit integer naming a real calendar date.
func (d DateInt) Valid() bool {
	if d < 10000101 || d > 99991231 {
		return false
	}
	return DateOf(d.Time()) == d
}

// Time returns midnight UTC of d. The result is meaningless for invalid dates.
func (d DateInt) Time() time.Time {
	return time.Date(d.Year(), time.Month(d.Month()), d.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays performs calendar addition, rolling over months and years.
func (d DateInt) AddDays(days int) DateInt {
	return DateOf(d.Time().AddDate(0, 0, days))
}

// DaysUntil returns the number of calendar days from d to other.
// The result is negative when other precedes d.
func (d DateInt) DaysUntil(other DateInt) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}

// Weekday returns the day of week with Monday as 0 and Sunday as 6.
func (d DateInt) Weekday() int {
	return (int(d.Time().Weekday()) + 6) % 7
}

// String renders d as YYYY-MM-DD, or "" for NoDate.
func (d DateInt) String() string {
	if d == NoDate {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), d.Month(), d.Day())
}

// Korean renders d as "YYYY년 M월 D일".
func (d DateInt) Korean() string {
	if d == NoDate {
		return ""
	}
	return fmt.Sprintf("%d년 %d월 %d일", d.Year(), d.Month(), d.Day())
}

// ParseDate parses a YYYY-MM-DD string. Blank input yields NoDate with no error.
func ParseDate(s string) (DateInt, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoDate, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return NoDate, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}
