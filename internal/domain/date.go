package domain

import "time"

// DateOf strips the time-of-day and returns the calendar day of t at midnight UTC.
// The calendar day is taken in t's own location, so 2024-08-15T23:30+03:00 stays on the 15th.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a calendar day
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}

// BusinessDaysBetween counts Monday-Friday days in [from, to], both inclusive.
// Returns 0 when to is before from.
func BusinessDaysBetween(from, to time.Time) int {
	start, end := DateOf(from), DateOf(to)
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}
