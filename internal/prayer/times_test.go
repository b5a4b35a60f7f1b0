package prayer

import (
	"testing"
	"time"
)

var testTimings = map[string]string{
	"Fajr":    "05:12 (IST)",
	"Sunrise": "06:30",
	"Dhuhr":   "12:25",
	"Asr":     "15:45",
	"Maghrib": "18:20",
	"Isha":    "19:35",
}

func at(hour, min int) time.Time {
	return time.Date(2025, 3, 5, hour, min, 0, 0, time.UTC)
}

func TestParseHM(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"05:12", 5*60 + 12, true},
		{"05:12 (IST)", 5*60 + 12, true},
		{"00:00", 0, true},
		{"23:59", 23*60 + 59, true},
		{"512", 0, false},
		{"ab:cd", 0, false},
	}
	for _, tc := range tests {
		got, err := parseHM(tc.in)
		if tc.ok != (err == nil) {
			t.Errorf("parseHM(%q) err = %v", tc.in, err)
			continue
		}
		if tc.ok && got != tc.want {
			t.Errorf("parseHM(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestWindowMidday(t *testing.T) {
	w, err := Window(testTimings, at(13, 0))
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	if w.Current != "Dhuhr" || w.Next != "Asr" {
		t.Fatalf("got %s -> %s, want Dhuhr -> Asr", w.Current, w.Next)
	}
	if w.NextAt != "15:45" {
		t.Fatalf("NextAt = %s, want 15:45", w.NextAt)
	}
	if w.NextInMins != 165 {
		t.Fatalf("NextInMins = %d, want 165", w.NextInMins)
	}
	if w.NextIsFajr {
		t.Fatal("midday next should not be Fajr")
	}
}

func TestWindowBeforeFajr(t *testing.T) {
	w, err := Window(testTimings, at(4, 0))
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	if w.Current != "Isha" {
		t.Fatalf("Current = %s, want the previous night's Isha", w.Current)
	}
	if w.Next != "Fajr" || w.NextIsFajr {
		t.Fatalf("Next = %s (wrapped=%v), want today's Fajr unwrapped", w.Next, w.NextIsFajr)
	}
	if w.NextInMins != 72 {
		t.Fatalf("NextInMins = %d, want 72", w.NextInMins)
	}
}

func TestWindowAfterIsha(t *testing.T) {
	w, err := Window(testTimings, at(22, 0))
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	if w.Current != "Isha" || w.Next != "Fajr" {
		t.Fatalf("got %s -> %s, want Isha -> Fajr", w.Current, w.Next)
	}
	if !w.NextIsFajr {
		t.Fatal("post-Isha next should wrap to tomorrow's Fajr")
	}
	// 22:00 -> 05:12 next day
	if w.NextInMins != 2*60+5*60+12 {
		t.Fatalf("NextInMins = %d, want %d", w.NextInMins, 2*60+5*60+12)
	}
}

func TestWindowAtExactPrayerTime(t *testing.T) {
	w, err := Window(testTimings, at(18, 20))
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	if w.Current != "Maghrib" || w.Next != "Isha" {
		t.Fatalf("got %s -> %s, want Maghrib -> Isha at the exact minute", w.Current, w.Next)
	}
}

func TestWindowNoTimings(t *testing.T) {
	if _, err := Window(map[string]string{}, at(12, 0)); err == nil {
		t.Fatal("expected an error for empty timings")
	}
}
