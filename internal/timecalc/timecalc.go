package timecalc

import (
	"fmt"
	"time"
)

// GenerateID returns an entry ID derived from the millisecond timestamp of t.
// If that would not exceed last (the largest ID already stored), last+1 is
// returned instead so IDs stay unique when entries are added in quick succession.
func GenerateID(t time.Time, last int64) int64 {
	id := t.UnixMilli()
	if id <= last {
		return last + 1
	}
	return id
}

// FormatHours formats an hour total with one decimal, e.g. "4.0".
func FormatHours(h float64) string {
	return fmt.Sprintf("%.1f", h)
}

// WeekAgo returns the instant exactly seven calendar days before t.
func WeekAgo(t time.Time) time.Time {
	return t.AddDate(0, 0, -7)
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
