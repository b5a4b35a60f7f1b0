package ramadan

import (
	"context"
	"testing"
	"time"

	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/model"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/state"
)

const testUser = 7

func newTestTracker() *Tracker {
	return NewTracker(state.NewMemoryStore()).
		WithClock(func() time.Time { return date("2025-03-05") })
}

func mustState(t *testing.T, tr *Tracker) *State {
	t.Helper()
	s, err := tr.GetState(context.Background(), testUser)
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	return s
}

func TestDefaultGoals(t *testing.T) {
	tr := newTestTracker()
	s := mustState(t, tr)

	if len(s.Goals) != 4 {
		t.Fatalf("expected 4 default goals, got %d", len(s.Goals))
	}
	for _, g := range s.Goals {
		if !g.Enabled {
			t.Errorf("default goal %s should be enabled", g.ID)
		}
	}

	dhikr := s.Goals[2]
	if dhikr.Kind != model.GoalDhikr || dhikr.DailyTarget != 100 {
		t.Fatalf("dhikr default misconfigured: %+v", dhikr)
	}
	if got := dhikr.DhikrTotal(); got != dhikr.DailyTarget {
		t.Fatalf("dhikr targets sum to %d, want %d", got, dhikr.DailyTarget)
	}
}

func TestDhikrRoundTrip(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker()
	day := "2025-03-05"

	for _, step := range []struct {
		id     string
		amount int
	}{
		{"subhanallah", 33},
		{"alhamdulillah", 33},
		{"allahuakbar", 34},
	} {
		if err := tr.IncrementDhikr(ctx, testUser, day, step.id, step.amount); err != nil {
			t.Fatalf("IncrementDhikr(%s): %v", step.id, err)
		}
	}

	s := mustState(t, tr)
	d := s.Days[day]
	if d == nil || d.Dhikr == nil {
		t.Fatal("dhikr record missing")
	}
	if d.Dhikr.TotalCount != 100 {
		t.Fatalf("TotalCount = %d, want 100", d.Dhikr.TotalCount)
	}
	if !d.Dhikr.Completed {
		t.Fatal("dhikr should be completed at the 100 target")
	}

	if err := tr.ResetDhikr(ctx, testUser, day); err != nil {
		t.Fatalf("ResetDhikr: %v", err)
	}
	s = mustState(t, tr)
	d = s.Days[day]
	if d.Dhikr.TotalCount != 0 || d.Dhikr.Completed {
		t.Fatalf("reset left %+v", d.Dhikr)
	}
}

func TestIncrementDhikrDefaultsToOne(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker()

	if err := tr.IncrementDhikr(ctx, testUser, "2025-03-05", "subhanallah", 0); err != nil {
		t.Fatalf("IncrementDhikr: %v", err)
	}
	s := mustState(t, tr)
	if got := s.Days["2025-03-05"].Dhikr.Counts["subhanallah"]; got != 1 {
		t.Fatalf("count = %d, want 1", got)
	}
}

func TestToggleIdempotence(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker()
	day := "2025-03-05"

	for i := 0; i < 2; i++ {
		if err := tr.ToggleTaraweeh(ctx, testUser, day); err != nil {
			t.Fatalf("ToggleTaraweeh: %v", err)
		}
	}
	if mustState(t, tr).Days[day].Taraweeh {
		t.Fatal("double taraweeh toggle should round-trip to false")
	}

	for i := 0; i < 2; i++ {
		if err := tr.ToggleSalah(ctx, testUser, day, PrayerFajr); err != nil {
			t.Fatalf("ToggleSalah: %v", err)
		}
	}
	if mustState(t, tr).Days[day].Salah.Fajr {
		t.Fatal("double salah toggle should round-trip to false")
	}
}

func TestToggleSalahUnknownPrayerNoops(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker()
	day := "2025-03-05"

	if err := tr.ToggleSalah(ctx, testUser, day, "midnight"); err != nil {
		t.Fatalf("ToggleSalah: %v", err)
	}
	if got := mustState(t, tr).Days[day].Salah.Done(); got != 0 {
		t.Fatalf("unknown prayer toggled something: %d", got)
	}
}

func TestMarkQuranComplete(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker()
	day := "2025-03-05"

	if err := tr.UpdateQuranProgress(ctx, testUser, day, 5); err != nil {
		t.Fatalf("UpdateQuranProgress: %v", err)
	}
	if err := tr.MarkQuranComplete(ctx, testUser, day); err != nil {
		t.Fatalf("MarkQuranComplete: %v", err)
	}

	d := mustState(t, tr).Days[day]
	if !d.Quran.Completed {
		t.Fatal("quran should be completed")
	}
	if d.Quran.PagesRead != 5 {
		t.Fatalf("completion must not touch accumulated progress, got %d", d.Quran.PagesRead)
	}
	if d.CompletedAt == nil {
		t.Fatal("CompletedAt should be stamped")
	}
}

func TestQuranProgressAccumulatesDeltas(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker()
	day := "2025-03-05"

	if err := tr.SetPlan(ctx, testUser, model.QuranPlan{CompletionTarget: 1, Unit: model.UnitPages}); err != nil {
		t.Fatalf("SetPlan: %v", err)
	}
	for _, delta := range []int{10, 11} {
		if err := tr.UpdateQuranProgress(ctx, testUser, day, delta); err != nil {
			t.Fatalf("UpdateQuranProgress: %v", err)
		}
	}

	s := mustState(t, tr)
	if got := s.Days[day].Quran.PagesRead; got != 21 {
		t.Fatalf("PagesRead = %d, want 21", got)
	}
	if got := s.Plan.TotalCompleted; got != 21 {
		t.Fatalf("Plan.TotalCompleted = %d, want 21", got)
	}
}

func TestGoalRegistryOps(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker()

	custom := model.Goal{ID: "sadaqah", Kind: model.GoalCustom, Name: "Sadaqah", Enabled: true}
	if err := tr.AddGoal(ctx, testUser, custom); err != nil {
		t.Fatalf("AddGoal: %v", err)
	}
	if len(mustState(t, tr).Goals) != 5 {
		t.Fatal("goal not appended")
	}

	if err := tr.ToggleGoal(ctx, testUser, "sadaqah"); err != nil {
		t.Fatalf("ToggleGoal: %v", err)
	}
	s := mustState(t, tr)
	if s.Goals[4].Enabled {
		t.Fatal("toggle should have disabled the goal")
	}

	// toggling a missing goal silently no-ops
	if err := tr.ToggleGoal(ctx, testUser, "nope"); err != nil {
		t.Fatalf("ToggleGoal missing: %v", err)
	}

	if err := tr.RemoveGoal(ctx, testUser, "sadaqah"); err != nil {
		t.Fatalf("RemoveGoal: %v", err)
	}
	if len(mustState(t, tr).Goals) != 4 {
		t.Fatal("goal not removed")
	}
}

func TestSetGoalsRederivesDhikrTarget(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker()

	goals := []model.Goal{{
		ID:          "dhikr",
		Kind:        model.GoalDhikr,
		Enabled:     true,
		DailyTarget: 1, // stale, must be re-derived
		DhikrTypes: []model.DhikrType{
			{ID: "istighfar", Name: "Astaghfirullah", Target: 70},
			{ID: "salawat", Name: "Salawat", Target: 30},
		},
	}}
	if err := tr.SetGoals(ctx, testUser, goals); err != nil {
		t.Fatalf("SetGoals: %v", err)
	}
	if got := mustState(t, tr).Goals[0].DailyTarget; got != 100 {
		t.Fatalf("DailyTarget = %d, want 100", got)
	}
}

func TestStatePersistsAcrossTrackers(t *testing.T) {
	ctx := context.Background()
	kv := state.NewMemoryStore()

	first := NewTracker(kv)
	if err := first.ToggleTaraweeh(ctx, testUser, "2025-03-05"); err != nil {
		t.Fatalf("ToggleTaraweeh: %v", err)
	}

	second := NewTracker(kv)
	s, err := second.GetState(ctx, testUser)
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if !s.Days["2025-03-05"].Taraweeh {
		t.Fatal("state did not survive a new tracker on the same store")
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker()

	if err := tr.ToggleTaraweeh(ctx, testUser, "2025-03-05"); err != nil {
		t.Fatalf("ToggleTaraweeh: %v", err)
	}
	if err := tr.Reset(ctx, testUser); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if len(mustState(t, tr).Days) != 0 {
		t.Fatal("reset should drop all recorded days")
	}
}

func TestGetStats(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker()

	if err := tr.UpdateSettings(ctx, testUser, model.RamadanSettings{StartDate: "2025-03-01"}); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if err := tr.SetPlan(ctx, testUser, model.QuranPlan{CompletionTarget: 1, Unit: model.UnitJuz}); err != nil {
		t.Fatalf("SetPlan: %v", err)
	}
	if err := tr.ToggleTaraweeh(ctx, testUser, "2025-03-05"); err != nil {
		t.Fatalf("ToggleTaraweeh: %v", err)
	}

	stats, err := tr.GetStats(ctx, testUser)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.RamadanDay != 5 {
		t.Fatalf("RamadanDay = %d, want 5", stats.RamadanDay)
	}
	if stats.Streak != 1 {
		t.Fatalf("Streak = %d, want 1", stats.Streak)
	}
	// 26 days remain including today: ceil(30/26) = 2
	if stats.DailyQuranTarget != 2 {
		t.Fatalf("DailyQuranTarget = %d, want 2", stats.DailyQuranTarget)
	}
}

func TestSyncQuranProgress(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker()
	today := "2025-03-05"

	if err := tr.SetPlan(ctx, testUser, model.QuranPlan{CompletionTarget: 1, Unit: model.UnitVerses}); err != nil {
		t.Fatalf("SetPlan: %v", err)
	}

	if err := tr.SyncQuranProgress(ctx, testUser, 50); err != nil {
		t.Fatalf("SyncQuranProgress: %v", err)
	}
	s := mustState(t, tr)
	if got := s.Days[today].Quran.PagesRead; got != 50 {
		t.Fatalf("first sync credited %d, want 50", got)
	}

	// only the delta since the last sync is credited
	if err := tr.SyncQuranProgress(ctx, testUser, 80); err != nil {
		t.Fatalf("SyncQuranProgress: %v", err)
	}
	s = mustState(t, tr)
	if got := s.Days[today].Quran.PagesRead; got != 80 {
		t.Fatalf("second sync accumulated %d, want 80", got)
	}
	if got := s.Plan.TotalCompleted; got != 80 {
		t.Fatalf("Plan.TotalCompleted = %d, want 80", got)
	}
}

func TestSyncIgnoredForNonVerseUnits(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker()

	if err := tr.SetPlan(ctx, testUser, model.QuranPlan{CompletionTarget: 1, Unit: model.UnitPages}); err != nil {
		t.Fatalf("SetPlan: %v", err)
	}
	if err := tr.SyncQuranProgress(ctx, testUser, 50); err != nil {
		t.Fatalf("SyncQuranProgress: %v", err)
	}
	if d := mustState(t, tr).Days["2025-03-05"]; d != nil && d.Quran != nil && d.Quran.PagesRead != 0 {
		t.Fatalf("page-unit plan must ignore the reader sync, got %d", d.Quran.PagesRead)
	}
}
