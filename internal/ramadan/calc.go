package ramadan

import (
	"math"
	"sort"
	"time"

	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/model"
)

// ramadanDays models Ramadan as a fixed 30-day window.
const ramadanDays = 30

// DateKey formats a time as the ledger's YYYY-MM-DD key.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// RamadanDay returns the 1-based day number for today relative to the
// configured start date, clamped to [1, 30]. Days before the start clamp to
// 1; days after the window clamp to 30.
func RamadanDay(startDate, today time.Time) int {
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
	now := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	day := int(now.Sub(start).Hours()/24) + 1
	if day < 1 {
		return 1
	}
	if day > ramadanDays {
		return ramadanDays
	}
	return day
}

// DailyQuranTarget is the units-per-day pace needed to finish
// completionTarget read-throughs in the remaining days.
func DailyQuranTarget(completionTarget float64, unit model.QuranUnit, daysRemaining int) int {
	if daysRemaining < 1 {
		daysRemaining = 1
	}
	total := float64(unit.Total()) * completionTarget
	return int(math.Ceil(total / float64(daysRemaining)))
}

// IsSalahComplete reports whether all five prayers are done. A missing
// record is incomplete, not an error.
func IsSalahComplete(s *model.SalahRecord) bool {
	if s == nil {
		return false
	}
	return s.Fajr && s.Zuhr && s.Asr && s.Maghrib && s.Isha
}

// OverallProgress derives the 0-100 completion score. Each enabled goal can
// earn one point per elapsed Ramadan day; goals added mid-month are still
// weighted as if active since day 1. Partial credit: salah earns done/5,
// everything else is binary per day.
func OverallProgress(days map[string]*model.DailyProgress, goals []model.Goal, ramadanDay int) int {
	enabled := make([]model.Goal, 0, len(goals))
	for _, g := range goals {
		if g.Enabled {
			enabled = append(enabled, g)
		}
	}
	if len(enabled) == 0 || ramadanDay < 1 {
		return 0
	}

	totalPossible := float64(len(enabled) * ramadanDay)
	var accumulated float64

	for _, day := range days {
		for _, g := range enabled {
			accumulated += dailyScore(day, g)
		}
	}

	pct := math.Round(100 * accumulated / totalPossible)
	if pct > 100 {
		return 100
	}
	return int(pct)
}

func dailyScore(day *model.DailyProgress, g model.Goal) float64 {
	switch g.Kind {
	case model.GoalSalah:
		if IsSalahComplete(day.Salah) {
			return 1
		}
		return float64(day.Salah.Done()) / 5
	case model.GoalQuran:
		if day.Quran != nil && day.Quran.Completed {
			return 1
		}
	case model.GoalTaraweeh:
		if day.Taraweeh {
			return 1
		}
	case model.GoalDhikr:
		if day.Dhikr != nil && day.Dhikr.Completed {
			return 1
		}
	case model.GoalCustom:
		if day.Custom[g.ID] {
			return 1
		}
	}
	return 0
}

// Streak counts consecutive active days walking recorded dates from the most
// recent backwards. Dates with no record at all are invisible to the walk:
// only a recorded-but-inactive entry breaks the streak. That matches the
// shipped behavior; see DESIGN.md for the open product question.
func Streak(days map[string]*model.DailyProgress) int {
	if len(days) == 0 {
		return 0
	}
	dates := make([]string, 0, len(days))
	for d := range days {
		dates = append(dates, d)
	}
	// YYYY-MM-DD sorts lexicographically in chronological order
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	streak := 0
	for _, d := range dates {
		if !days[d].Active() {
			break
		}
		streak++
	}
	return streak
}
