package datetime

import (
	"testing"
	"time"
)

func TestDayWindow(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	ref := time.Date(2025, 3, 10, 23, 45, 0, 0, loc)

	start, end := DayWindow(ref)

	wantStart := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)
	wantEnd := time.Date(2025, 3, 11, 0, 0, 0, 0, loc)
	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}
}

func TestSameDay(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		b    time.Time
		want bool
	}{
		{"same morning", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), true},
		{"just before midnight", time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC), true},
		{"next midnight", time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), false},
		{"previous day", time.Date(2025, 3, 9, 23, 59, 59, 0, time.UTC), false},
	}
	for _, c := range cases {
		if got := SameDay(base, c.b); got != c.want {
			t.Errorf("%s: SameDay = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestSameDayAcrossZones(t *testing.T) {
	// 23:30 local on the 10th is 16:30 UTC the same day in UTC+7; the
	// comparison happens in the first argument's location.
	loc := time.FixedZone("UTC+7", 7*3600)
	a := time.Date(2025, 3, 10, 23, 30, 0, 0, loc)
	b := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC) // 01:00 on the 11th in UTC+7

	if SameDay(a, b) {
		t.Error("SameDay should evaluate b in a's location")
	}
}

func TestIsPlausible(t *testing.T) {
	server := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name   string
		device time.Time
		want   bool
	}{
		{"exact match", server, true},
		{"behind 23h59m", server.Add(-23*time.Hour - 59*time.Minute), true},
		{"ahead 23h59m", server.Add(23*time.Hour + 59*time.Minute), true},
		{"exactly 24h behind", server.Add(-24 * time.Hour), true},
		{"exactly 24h ahead", server.Add(24 * time.Hour), true},
		{"24h1m behind", server.Add(-24*time.Hour - time.Minute), false},
		{"24h1m ahead", server.Add(24*time.Hour + time.Minute), false},
	}
	for _, c := range cases {
		if got := IsPlausible(c.device, server); got != c.want {
			t.Errorf("%s: IsPlausible = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestHoursBetween(t *testing.T) {
	from := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	cases := []struct {
		to   time.Time
		want float64
	}{
		{from.Add(8 * time.Hour), 8},
		{from.Add(8*time.Hour + 30*time.Minute), 8.5},
		{from.Add(45 * time.Minute), 0.75},
	}
	for _, c := range cases {
		if got := HoursBetween(from, c.to); got != c.want {
			t.Errorf("HoursBetween(..., %v) = %v, want %v", c.to, got, c.want)
		}
	}
}
