// Package ramadan is the habit-tracking core: a goal registry, a date-keyed
// daily progress ledger, and pure progress calculations. State is held per
// user and written through to the state store on every mutation.
package ramadan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/model"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/state"
)

// Prayer names accepted by ToggleSalah.
const (
	PrayerFajr    = "fajr"
	PrayerZuhr    = "zuhr"
	PrayerAsr     = "asr"
	PrayerMaghrib = "maghrib"
	PrayerIsha    = "isha"
)

// State is the whole per-user tracker document, persisted as one JSON value.
type State struct {
	Goals           []model.Goal                    `json:"goals"`
	Days            map[string]*model.DailyProgress `json:"days"`
	Plan            *model.QuranPlan                `json:"plan,omitempty"`
	Settings        model.RamadanSettings           `json:"settings"`
	LastSyncedAyahs int                             `json:"last_synced_ayahs,omitempty"`
}

// Tracker owns the per-user tracker state. It is constructed explicitly and
// injected into the API layer; there are no package-level instances.
type Tracker struct {
	store state.Store
	now   func() time.Time

	mu sync.Mutex
}

func NewTracker(store state.Store) *Tracker {
	return &Tracker{store: store, now: time.Now}
}

// WithClock overrides the wall clock, for tests.
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.now = now
	return t
}

func stateKey(userID int) string {
	return fmt.Sprintf("ramadan:state:%d", userID)
}

// loadState reads the user's document, seeding a fresh default state on
// first use.
func (t *Tracker) loadState(ctx context.Context, userID int) (*State, error) {
	raw, err := t.store.Load(ctx, stateKey(userID))
	if errors.Is(err, state.ErrNotFound) {
		return defaultState(t.now()), nil
	}
	if err != nil {
		return nil, err
	}
	var s State
	if err := json.Unmarshal(raw, &s); err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("failed to decode tracker state")
		return nil, err
	}
	if s.Days == nil {
		s.Days = make(map[string]*model.DailyProgress)
	}
	return &s, nil
}

func (t *Tracker) saveState(ctx context.Context, userID int, s *State) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return t.store.Save(ctx, stateKey(userID), raw, 0)
}

// update runs one mutation against the user's state and writes it through.
// Mutations are serialized; each is atomic with respect to the stored
// document.
func (t *Tracker) update(ctx context.Context, userID int, fn func(s *State)) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := t.loadState(ctx, userID)
	if err != nil {
		return err
	}
	fn(s)
	return t.saveState(ctx, userID, s)
}

// GetState returns the user's full tracker document.
func (t *Tracker) GetState(ctx context.Context, userID int) (*State, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loadState(ctx, userID)
}

// Reset drops the user's entire tracker document.
func (t *Tracker) Reset(ctx context.Context, userID int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.store.Delete(ctx, stateKey(userID))
}

// --- goal registry ---

// SetGoals replaces the whole goal collection. Callers editing dhikr
// sub-types must keep the goal's daily target equal to the sum of the
// sub-targets; SetGoals re-derives it to hold the invariant.
func (t *Tracker) SetGoals(ctx context.Context, userID int, goals []model.Goal) error {
	return t.update(ctx, userID, func(s *State) {
		for i, g := range goals {
			if g.Kind == model.GoalDhikr && len(g.DhikrTypes) > 0 {
				goals[i].DailyTarget = g.DhikrTotal()
			}
		}
		s.Goals = goals
	})
}

// AddGoal appends a goal. IDs are caller-supplied; collisions are not
// checked, matching the shipped behavior.
func (t *Tracker) AddGoal(ctx context.Context, userID int, goal model.Goal) error {
	return t.update(ctx, userID, func(s *State) {
		if goal.Kind == model.GoalDhikr && len(goal.DhikrTypes) > 0 {
			goal.DailyTarget = goal.DhikrTotal()
		}
		s.Goals = append(s.Goals, goal)
	})
}

// RemoveGoal filters the goal out. Recorded history keeps any dangling
// custom keys; they are harmless and excluded from aggregation.
func (t *Tracker) RemoveGoal(ctx context.Context, userID int, goalID string) error {
	return t.update(ctx, userID, func(s *State) {
		kept := s.Goals[:0]
		for _, g := range s.Goals {
			if g.ID != goalID {
				kept = append(kept, g)
			}
		}
		s.Goals = kept
	})
}

// ToggleGoal flips the enabled flag. Disabling keeps recorded history and
// only excludes the goal from future aggregation.
func (t *Tracker) ToggleGoal(ctx context.Context, userID int, goalID string) error {
	return t.update(ctx, userID, func(s *State) {
		for i := range s.Goals {
			if s.Goals[i].ID == goalID {
				s.Goals[i].Enabled = !s.Goals[i].Enabled
				return
			}
		}
	})
}

// --- daily progress ledger ---

// day returns the record for a date key, creating it lazily.
func (s *State) day(date string) *model.DailyProgress {
	if d, ok := s.Days[date]; ok {
		return d
	}
	d := &model.DailyProgress{Date: date}
	s.Days[date] = d
	return d
}

// ToggleSalah flips one of the five prayer booleans for the date. Unknown
// prayer names are a no-op.
func (t *Tracker) ToggleSalah(ctx context.Context, userID int, date, prayer string) error {
	return t.update(ctx, userID, func(s *State) {
		d := s.day(date)
		if d.Salah == nil {
			d.Salah = &model.SalahRecord{}
		}
		switch prayer {
		case PrayerFajr:
			d.Salah.Fajr = !d.Salah.Fajr
		case PrayerZuhr:
			d.Salah.Zuhr = !d.Salah.Zuhr
		case PrayerAsr:
			d.Salah.Asr = !d.Salah.Asr
		case PrayerMaghrib:
			d.Salah.Maghrib = !d.Salah.Maghrib
		case PrayerIsha:
			d.Salah.Isha = !d.Salah.Isha
		}
	})
}

// ToggleTaraweeh flips the night-prayer boolean for the date.
func (t *Tracker) ToggleTaraweeh(ctx context.Context, userID int, date string) error {
	return t.update(ctx, userID, func(s *State) {
		d := s.day(date)
		d.Taraweeh = !d.Taraweeh
	})
}

// ToggleCustomHabit flips a custom goal's boolean for the date.
func (t *Tracker) ToggleCustomHabit(ctx context.Context, userID int, date, goalID string) error {
	return t.update(ctx, userID, func(s *State) {
		d := s.day(date)
		if d.Custom == nil {
			d.Custom = make(map[string]bool)
		}
		d.Custom[goalID] = !d.Custom[goalID]
	})
}

// MarkQuranComplete marks the day's Quran habit done and stamps the time.
// Accumulated page progress is left untouched.
func (t *Tracker) MarkQuranComplete(ctx context.Context, userID int, date string) error {
	return t.update(ctx, userID, func(s *State) {
		d := s.day(date)
		if d.Quran == nil {
			d.Quran = &model.QuranRecord{}
		}
		d.Quran.Completed = true
		now := t.now()
		d.CompletedAt = &now
	})
}

// UpdateQuranProgress adds a units-read delta to the day's record and, when
// a plan exists, to the plan's running total. Callers pass deltas, never
// absolute counts.
func (t *Tracker) UpdateQuranProgress(ctx context.Context, userID int, date string, unitsRead int) error {
	return t.update(ctx, userID, func(s *State) {
		s.applyQuranDelta(date, unitsRead)
	})
}

func (s *State) applyQuranDelta(date string, unitsRead int) {
	d := s.day(date)
	if d.Quran == nil {
		d.Quran = &model.QuranRecord{}
	}
	d.Quran.PagesRead += unitsRead
	if s.Plan != nil {
		s.Plan.TotalCompleted += unitsRead
	}
}

// IncrementDhikr adds amount to one named counter, recomputes the day total
// and the completed flag in the same update.
func (t *Tracker) IncrementDhikr(ctx context.Context, userID int, date, dhikrTypeID string, amount int) error {
	if amount == 0 {
		amount = 1
	}
	return t.update(ctx, userID, func(s *State) {
		d := s.day(date)
		if d.Dhikr == nil {
			d.Dhikr = &model.DhikrRecord{Counts: make(map[string]int)}
		}
		d.Dhikr.Counts[dhikrTypeID] += amount

		total := 0
		for _, n := range d.Dhikr.Counts {
			total += n
		}
		d.Dhikr.TotalCount = total

		if g, ok := enabledGoal(s.Goals, model.GoalDhikr); ok && g.DailyTarget > 0 {
			d.Dhikr.Completed = total >= g.DailyTarget
		}
	})
}

// ResetDhikr zeroes the day's counters.
func (t *Tracker) ResetDhikr(ctx context.Context, userID int, date string) error {
	return t.update(ctx, userID, func(s *State) {
		d := s.day(date)
		d.Dhikr = &model.DhikrRecord{Counts: make(map[string]int)}
	})
}

func enabledGoal(goals []model.Goal, kind model.GoalKind) (model.Goal, bool) {
	for _, g := range goals {
		if g.Kind == kind && g.Enabled {
			return g, true
		}
	}
	return model.Goal{}, false
}

// --- plan & settings ---

// SetPlan installs or replaces the Quran completion plan.
func (t *Tracker) SetPlan(ctx context.Context, userID int, plan model.QuranPlan) error {
	return t.update(ctx, userID, func(s *State) {
		s.Plan = &plan
	})
}

// UpdateSettings replaces the tracker settings.
func (t *Tracker) UpdateSettings(ctx context.Context, userID int, settings model.RamadanSettings) error {
	return t.update(ctx, userID, func(s *State) {
		s.Settings = settings
	})
}
