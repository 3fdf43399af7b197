package eligibility

import "time"

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// LocationClock is the wall clock of a time zone; "today" follows that zone's calendar
type LocationClock struct {
	loc *time.Location
}

// NewLocationClock returns a clock for loc, UTC when loc is nil
func NewLocationClock(loc *time.Location) *LocationClock {
	if loc == nil {
		loc = time.UTC
	}
	return &LocationClock{loc: loc}
}

// Now implements Clock
func (c *LocationClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// FixedClock always returns At
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}
