package ramadan

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Stats is the derived, read-only view over the registry and ledger.
// Nothing here is cached; every call recomputes from current state.
type Stats struct {
	RamadanDay       int `json:"ramadan_day"`
	OverallProgress  int `json:"overall_progress"`
	Streak           int `json:"streak"`
	DailyQuranTarget int `json:"daily_quran_target,omitempty"`
	PlanCompleted    int `json:"plan_completed,omitempty"`
}

// GetStats derives the current statistics for a user.
func (t *Tracker) GetStats(ctx context.Context, userID int) (*Stats, error) {
	s, err := t.GetState(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := t.now()
	start := parseStart(s.Settings.StartDate, now)
	day := RamadanDay(start, now)

	stats := &Stats{
		RamadanDay:      day,
		OverallProgress: OverallProgress(s.Days, s.Goals, day),
		Streak:          Streak(s.Days),
	}
	if s.Plan != nil {
		stats.DailyQuranTarget = DailyQuranTarget(s.Plan.CompletionTarget, s.Plan.Unit, ramadanDays-day+1)
		stats.PlanCompleted = s.Plan.TotalCompleted
	}
	return stats, nil
}

func parseStart(startDate string, fallback time.Time) time.Time {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		log.Warn().Str("start_date", startDate).Msg("unparseable ramadan start date, using today")
		return fallback
	}
	return start
}
