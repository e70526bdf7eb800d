package query_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/studylog/internal/clock"
	"github.com/Tiliavir/studylog/internal/model"
	"github.com/Tiliavir/studylog/internal/query"
)

// Tuesday afternoon.
var now = time.Date(2026, 3, 3, 14, 30, 0, 0, time.UTC)

func daysAgo(n int) model.Date {
	return model.DateOf(now.AddDate(0, 0, -n))
}

func mk(id int64, date model.Date, problems int, hours float64, category string) model.Entry {
	return model.Entry{ID: id, Date: date, Problems: problems, Hours: hours, Topic: "t", Category: category}
}

func ids(entries []model.Entry) []int64 {
	out := make([]int64, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func fixture() []model.Entry {
	return []model.Entry{
		mk(1, daysAgo(2), 5, 1.5, "DSA"),
		mk(2, daysAgo(0), 3, 2, "Web Development"),
		mk(3, daysAgo(5), 10, 0.5, "DSA"),
		mk(4, daysAgo(0), 3, 4, "System Design"),
		mk(5, daysAgo(2), 8, 2, "dsa"),
	}
}

func TestFilterByCategory(t *testing.T) {
	entries := fixture()

	all := query.FilterByCategory(entries, query.AllCategories)
	if diff := cmp.Diff(entries, all); diff != "" {
		t.Errorf("filter all mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []int64{1, 3}, ids(query.FilterByCategory(entries, "DSA")), "match is case-sensitive")
	assert.Equal(t, []int64{5}, ids(query.FilterByCategory(entries, "dsa")))
	assert.Empty(t, query.FilterByCategory(entries, "Machine Learning"))
	assert.Empty(t, query.FilterByCategory(nil, "DSA"))
}

func TestFilterByCategoryDoesNotAlias(t *testing.T) {
	entries := fixture()
	all := query.FilterByCategory(entries, query.AllCategories)
	all[0].Topic = "changed"
	assert.Equal(t, "t", entries[0].Topic)
}

func TestSort(t *testing.T) {
	tests := []struct {
		key  query.SortKey
		want []int64
	}{
		// Ties keep input order: 2 before 4, 1 before 5.
		{query.Newest, []int64{2, 4, 1, 5, 3}},
		{query.Oldest, []int64{3, 1, 5, 2, 4}},
		{query.MostProblems, []int64{3, 5, 1, 2, 4}},
		{query.MostHours, []int64{4, 2, 5, 1, 3}},
		{query.SortKey("alphabetical"), []int64{1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			entries := fixture()
			sorted := query.Sort(entries, tt.key)
			assert.Equal(t, tt.want, ids(sorted))

			again := query.Sort(sorted, tt.key)
			assert.Equal(t, ids(sorted), ids(again), "sorting twice is idempotent")

			assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(entries), "input is not modified")
		})
	}
}

func TestParseSortKey(t *testing.T) {
	for _, k := range query.SortKeys {
		got, err := query.ParseSortKey(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := query.ParseSortKey("Newest")
	assert.ErrorIs(t, err, query.ErrUnknownSortKey)
}

func TestWeeklyTotalsExcludesOldEntries(t *testing.T) {
	entries := []model.Entry{
		mk(1, daysAgo(0), 5, 1.5, "DSA"),
		mk(2, daysAgo(3), 3, 2, "DSA"),
		mk(3, daysAgo(6), 10, 0.5, "DSA"),
		mk(4, daysAgo(10), 100, 9, "DSA"),
	}

	got := query.WeeklyTotals(entries, now)
	assert.Equal(t, 18, got.Problems)
	assert.InDelta(t, 4.0, got.Hours, 1e-9)
	assert.Equal(t, 3, got.DistinctDays)
}

func TestWeeklyTotalsDistinctDays(t *testing.T) {
	entries := []model.Entry{
		mk(1, daysAgo(1), 1, 1, "DSA"),
		mk(2, daysAgo(1), 1, 1, "Web Development"),
		mk(3, daysAgo(1), 1, 1, "DSA"),
	}
	got := query.WeeklyTotals(entries, now)
	assert.Equal(t, 1, got.DistinctDays)
	assert.Equal(t, 3, got.Problems)
}

func TestWeeklyTotalsEmpty(t *testing.T) {
	assert.Equal(t, query.Totals{}, query.WeeklyTotals(nil, now))
}

func TestWeeklyWindowBoundary(t *testing.T) {
	sevenDaysOld := []model.Entry{mk(1, daysAgo(7), 1, 1, "DSA")}

	// The lower bound is now minus seven days, not a midnight. In the
	// afternoon the entry from seven days ago started before the bound.
	assert.Empty(t, query.WeeklyWindow(sevenDaysOld, now))

	atMidnight := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	assert.Len(t, query.WeeklyWindow(sevenDaysOld, atMidnight), 1)

	sixDaysOld := []model.Entry{mk(2, daysAgo(6), 1, 1, "DSA")}
	assert.Len(t, query.WeeklyWindow(sixDaysOld, now), 1)
}

func TestWeeklyWindowUsesNowLocation(t *testing.T) {
	// 2026-03-03 02:00 in UTC+10 is 2026-03-02 16:00 UTC.
	loc := time.FixedZone("UTC+10", 10*3600)
	localNow := time.Date(2026, 3, 3, 2, 0, 0, 0, loc)
	entry := []model.Entry{mk(1, model.Date{Year: 2026, Month: time.February, Day: 24}, 1, 1, "DSA")}

	// Midnight Feb 24 local is before Feb 24 02:00 local.
	assert.Empty(t, query.WeeklyWindow(entry, localNow))
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name string
		days []int
		want int
	}{
		{"no entries", nil, 0},
		{"today only", []int{0}, 1},
		{"three consecutive days ending today", []int{0, 1, 2}, 3},
		{"yesterday and the day before but not today", []int{1, 2}, 0},
		{"gap yesterday", []int{0, 2}, 1},
		{"same day counted once", []int{0, 0, 0, 1}, 2},
		{"unordered input", []int{3, 0, 2, 1, 5}, 4},
		{"streak ignores the weekly window", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []model.Entry
			for i, d := range tt.days {
				entries = append(entries, mk(int64(i), daysAgo(d), 1, 1, "DSA"))
			}
			assert.Equal(t, tt.want, query.Streak(entries, now))
		})
	}
}

func TestStreakAcrossMonthBoundary(t *testing.T) {
	firstOfMonth := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	entries := []model.Entry{
		mk(1, model.Date{Year: 2026, Month: time.March, Day: 1}, 1, 1, "DSA"),
		mk(2, model.Date{Year: 2026, Month: time.February, Day: 28}, 1, 1, "DSA"),
		mk(3, model.Date{Year: 2026, Month: time.February, Day: 27}, 1, 1, "DSA"),
	}
	assert.Equal(t, 3, query.Streak(entries, firstOfMonth))
}

func TestStreakLateEvening(t *testing.T) {
	// "Today" is the calendar day of now, whatever the time of day.
	lateNight := time.Date(2026, 3, 3, 23, 59, 59, 0, time.UTC)
	entries := []model.Entry{mk(1, model.Date{Year: 2026, Month: time.March, Day: 3}, 1, 1, "DSA")}
	assert.Equal(t, 1, query.Streak(entries, lateNight))
}

func TestStreakUsesNowLocation(t *testing.T) {
	// 2026-03-03 02:00 in UTC+10 is still 2026-03-02 in UTC.
	loc := time.FixedZone("UTC+10", 10*3600)
	localNow := time.Date(2026, 3, 3, 2, 0, 0, 0, loc)
	entries := []model.Entry{
		mk(1, model.Date{Year: 2026, Month: time.March, Day: 3}, 1, 1, "DSA"),
		mk(2, model.Date{Year: 2026, Month: time.March, Day: 2}, 1, 1, "DSA"),
	}
	assert.Equal(t, 2, query.Streak(entries, localNow))
	assert.Equal(t, 1, query.Streak(entries, localNow.UTC()))
}

func TestSummarize(t *testing.T) {
	entries := []model.Entry{
		mk(1, daysAgo(0), 5, 1.5, "DSA"),
		mk(2, daysAgo(1), 3, 2, "DSA"),
		mk(3, daysAgo(10), 100, 9, "DSA"),
	}
	got := query.Summarize(entries, clock.Fixed(now))
	assert.Equal(t, query.Summary{
		Totals: query.Totals{Problems: 8, Hours: 3.5, DistinctDays: 2},
		Streak: 2,
	}, got)
}
