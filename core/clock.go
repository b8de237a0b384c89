package core

import "time"

// Clock is the source of "today". Callers read it once per query so that every
// date comparison inside that query agrees.
type Clock interface {
	Today() DateInt
}

// SystemClock reads the wall clock in a fixed location.
type SystemClock struct {
	Location *time.Location
}

// NewSystemClock returns a clock for the named IANA zone, falling back to UTC
// when the zone cannot be loaded.
func NewSystemClock(zone string) SystemClock {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		loc = time.UTC
	}
	return SystemClock{Location: loc}
}

func (c SystemClock) Today() DateInt {
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	return DateOf(time.Now().In(loc))
}

// FixedClock always reports the same day.
type FixedClock DateInt

func (c FixedClock) Today() DateInt {
	return DateInt(c)
}
