package timezone

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "America/Sao_Paulo"

const dateLayout = "2006-01-02"

// Load resolves tz, falling back to DefaultTimezone when tz is empty.
func Load(tz string) (*time.Location, error) {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", tz, err)
	}
	return loc, nil
}

// Clock tells the shop's local time. The zero value uses UTC and the wall
// clock.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(loc *time.Location) Clock {
	return Clock{loc: loc, now: time.Now}
}

// FixedClock always returns t, converted to t's location.
func FixedClock(t time.Time) Clock {
	return Clock{loc: t.Location(), now: func() time.Time { return t }}
}

func (c Clock) Now() time.Time {
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	loc := c.loc
	if loc == nil {
		loc = time.UTC
	}
	return now().In(loc)
}

// Today is the local calendar date as YYYY-MM-DD.
func (c Clock) Today() string {
	return c.Now().Format(dateLayout)
}
