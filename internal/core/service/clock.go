package service

import "time"

// Clock returns the current instant. Services read job schedules in the
// location of the returned time, so it must carry the marketplace time zone.
type Clock func() time.Time

// SystemClock returns wall-clock time in loc.
func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return func() time.Time { return time.Now().In(loc) }
}
