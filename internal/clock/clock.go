package clock

import "time"

// Clock abstracts the current time so date-dependent queries stay deterministic in tests.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in the local zone.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
