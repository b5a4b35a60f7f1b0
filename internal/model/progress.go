package model

import "time"

// SalahRecord holds the five daily prayers. A nil *SalahRecord means no
// prayer was recorded for that day; an absent prayer is simply false.
type SalahRecord struct {
	Fajr    bool `json:"fajr"`
	Zuhr    bool `json:"zuhr"`
	Asr     bool `json:"asr"`
	Maghrib bool `json:"maghrib"`
	Isha    bool `json:"isha"`
}

// Done counts the completed prayers out of five.
func (s *SalahRecord) Done() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, b := range []bool{s.Fajr, s.Zuhr, s.Asr, s.Maghrib, s.Isha} {
		if b {
			n++
		}
	}
	return n
}

// QuranRecord tracks the day's Quran reading. PagesRead accumulates deltas
// in the plan's unit; Completed is the binary day-done flag.
type QuranRecord struct {
	Completed bool `json:"completed"`
	PagesRead int  `json:"pages_read,omitempty"`
	JuzRead   int  `json:"juz_read,omitempty"`
}

// DhikrRecord tracks per-type counts for the day. Completed flips once
// TotalCount reaches the enabled dhikr goal's daily target.
type DhikrRecord struct {
	Completed  bool           `json:"completed"`
	TotalCount int            `json:"total_count"`
	Counts     map[string]int `json:"counts"`
}

// DailyProgress is one calendar day's recorded habit completions, keyed by
// a YYYY-MM-DD date string. Records are created lazily on first mutation.
type DailyProgress struct {
	Date        string          `json:"date"`
	Salah       *SalahRecord    `json:"salah,omitempty"`
	Quran       *QuranRecord    `json:"quran,omitempty"`
	Taraweeh    bool            `json:"taraweeh,omitempty"`
	Dhikr       *DhikrRecord    `json:"dhikr,omitempty"`
	Custom      map[string]bool `json:"custom,omitempty"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}

// Active reports whether any habit field is truthy for the day. Used by the
// streak walk.
func (d *DailyProgress) Active() bool {
	if d == nil {
		return false
	}
	if d.Salah.Done() > 0 {
		return true
	}
	if d.Quran != nil && (d.Quran.Completed || d.Quran.PagesRead > 0 || d.Quran.JuzRead > 0) {
		return true
	}
	if d.Taraweeh {
		return true
	}
	if d.Dhikr != nil && (d.Dhikr.Completed || d.Dhikr.TotalCount > 0) {
		return true
	}
	for _, done := range d.Custom {
		if done {
			return true
		}
	}
	return false
}
