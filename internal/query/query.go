// Package query holds the pure list transformations behind the entry list
// and the summary widgets. None of the functions modify their input.
package query

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/Tiliavir/studylog/internal/clock"
	"github.com/Tiliavir/studylog/internal/model"
	"github.com/Tiliavir/studylog/internal/timecalc"
)

// AllCategories disables category filtering.
const AllCategories = "all"

// SortKey selects a display order.
type SortKey string

const (
	Newest       SortKey = "newest"
	Oldest       SortKey = "oldest"
	MostProblems SortKey = "mostProblems"
	MostHours    SortKey = "mostHours"
)

// SortKeys lists the recognized keys in menu order.
var SortKeys = []SortKey{Newest, Oldest, MostProblems, MostHours}

// ErrUnknownSortKey is returned by ParseSortKey.
var ErrUnknownSortKey = errors.New("unknown sort key")

// ParseSortKey validates a sort key supplied by the user.
func ParseSortKey(s string) (SortKey, error) {
	for _, k := range SortKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w %q (want one of %v)", ErrUnknownSortKey, s, SortKeys)
}

// FilterByCategory returns the entries whose category equals category exactly.
// "all" returns a copy of the whole list.
func FilterByCategory(entries []model.Entry, category string) []model.Entry {
	if category == AllCategories {
		return slices.Clone(entries)
	}
	out := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// Sort returns a stably sorted copy of entries. An unrecognized key keeps the
// input order.
func Sort(entries []model.Entry, key SortKey) []model.Entry {
	out := slices.Clone(entries)
	var compare func(a, b model.Entry) int
	switch key {
	case Newest:
		compare = func(a, b model.Entry) int { return b.Date.Compare(a.Date) }
	case Oldest:
		compare = func(a, b model.Entry) int { return a.Date.Compare(b.Date) }
	case MostProblems:
		compare = func(a, b model.Entry) int { return cmp.Compare(b.Problems, a.Problems) }
	case MostHours:
		compare = func(a, b model.Entry) int { return cmp.Compare(b.Hours, a.Hours) }
	default:
		return out
	}
	slices.SortStableFunc(out, compare)
	return out
}

// WeeklyWindow returns the entries whose date, at midnight in now's location,
// is not before the instant exactly seven days before now. The bound is not
// aligned to midnight, so a date seven days back is outside the window unless
// now is itself exactly midnight.
func WeeklyWindow(entries []model.Entry, now time.Time) []model.Entry {
	weekAgo := timecalc.WeekAgo(now)
	out := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if !e.Date.In(now.Location()).Before(weekAgo) {
			out = append(out, e)
		}
	}
	return out
}

// Totals aggregates the weekly window.
type Totals struct {
	Problems     int
	Hours        float64
	DistinctDays int
}

// WeeklyTotals sums problems and hours over WeeklyWindow(entries, now) and
// counts the distinct dates in it.
func WeeklyTotals(entries []model.Entry, now time.Time) Totals {
	var t Totals
	days := map[model.Date]struct{}{}
	for _, e := range WeeklyWindow(entries, now) {
		t.Problems += e.Problems
		t.Hours += e.Hours
		days[e.Date] = struct{}{}
	}
	t.DistinctDays = len(days)
	return t
}

// Streak counts consecutive calendar days with at least one entry, walking
// back one day at a time from midnight of now. No entry today means a streak of 0.
func Streak(entries []model.Entry, now time.Time) int {
	days := make(map[model.Date]struct{}, len(entries))
	for _, e := range entries {
		days[e.Date] = struct{}{}
	}

	streak := 0
	for day := timecalc.StartOfDay(now); ; day = day.AddDate(0, 0, -1) {
		if _, ok := days[model.DateOf(day)]; !ok {
			return streak
		}
		streak++
	}
}

// Summary backs the summary widgets.
type Summary struct {
	Totals
	Streak int
}

// Summarize computes the weekly totals and the streak at c.Now().
func Summarize(entries []model.Entry, c clock.Clock) Summary {
	now := c.Now()
	return Summary{
		Totals: WeeklyTotals(entries, now),
		Streak: Streak(entries, now),
	}
}
