package timecalc_test

import (
	"testing"
	"time"

	"github.com/Tiliavir/studylog/internal/timecalc"
)

func TestGenerateID(t *testing.T) {
	ts := time.Date(2026, 2, 27, 8, 32, 10, 0, time.UTC)
	ms := ts.UnixMilli()

	tests := []struct {
		name string
		last int64
		want int64
	}{
		{"empty store", 0, ms},
		{"older ids", ms - 5000, ms},
		{"same millisecond", ms, ms + 1},
		{"ids ahead of clock", ms + 10, ms + 11},
	}
	for _, tt := range tests {
		got := timecalc.GenerateID(ts, tt.last)
		if got != tt.want {
			t.Errorf("%s: GenerateID(last=%d) = %d, want %d", tt.name, tt.last, got, tt.want)
		}
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "0.0"},
		{4, "4.0"},
		{1.26, "1.3"},
		{2.74, "2.7"},
		{12.5, "12.5"},
	}
	for _, tt := range tests {
		got := timecalc.FormatHours(tt.hours)
		if got != tt.want {
			t.Errorf("FormatHours(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}

func TestWeekAgo(t *testing.T) {
	now := time.Date(2026, 3, 3, 14, 30, 0, 0, time.UTC)
	want := time.Date(2026, 2, 24, 14, 30, 0, 0, time.UTC)
	if got := timecalc.WeekAgo(now); !got.Equal(want) {
		t.Errorf("WeekAgo = %v, want %v", got, want)
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2026, 2, 27, 23, 59, 59, 0, time.UTC)
	want := time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)
	if got := timecalc.StartOfDay(in); !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
	b := time.Date(2026, 2, 27, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	if !timecalc.SameDay(a, b) {
		t.Error("SameDay: expected same day for a and b")
	}
	if timecalc.SameDay(a, c) {
		t.Error("SameDay: expected different day for a and c")
	}
}
