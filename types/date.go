package types

import "time"

// DayFormat is the calendar-date layout used everywhere prices are keyed.
const DayFormat = "2006-01-02"

// Day truncates a timestamp to its calendar date at midnight UTC.
// All price lookups and purchase dates are keyed on this normal form.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a normalized calendar date.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// SameDay reports whether two timestamps fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}
