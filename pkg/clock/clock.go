// Package clock provides the time source for everything that stamps or
// compares timestamps. Injecting a Clock keeps duration and cost
// calculations deterministic in tests, and pins all timestamps to one
// explicit time zone.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

// System returns the wall clock fixed to loc. A nil location falls back
// to UTC.
func System(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}
