package packets

import "github.com/mrfaizanshariff/mosqueProject-sub000/internal/model"

// Date fields are YYYY-MM-DD; empty means "today" server-side, so the
// calendar view can edit history with the same endpoints.

type SetGoalsRequest struct {
	Goals []model.Goal `json:"goals" binding:"required"`
}

type AddGoalRequest struct {
	Goal model.Goal `json:"goal" binding:"required"`
}

type ToggleSalahRequest struct {
	Date   string `json:"date"`
	Prayer string `json:"prayer" binding:"required,oneof=fajr zuhr asr maghrib isha"`
}

type ToggleTaraweehRequest struct {
	Date string `json:"date"`
}

type ToggleCustomRequest struct {
	Date   string `json:"date"`
	GoalID string `json:"goal_id" binding:"required"`
}

type MarkQuranCompleteRequest struct {
	Date string `json:"date"`
}

// UnitsRead is a delta, not an absolute count.
type QuranProgressRequest struct {
	Date      string `json:"date"`
	UnitsRead int    `json:"units_read" binding:"required"`
}

type IncrementDhikrRequest struct {
	Date        string `json:"date"`
	DhikrTypeID string `json:"dhikr_type_id" binding:"required"`
	Amount      int    `json:"amount"`
}

type ResetDhikrRequest struct {
	Date string `json:"date"`
}

type SetPlanRequest struct {
	CompletionTarget float64 `json:"completion_target" binding:"required,gt=0"`
	Unit             string  `json:"unit" binding:"required,oneof=pages juz verses"`
	PreferredTime    string  `json:"preferred_time" binding:"omitempty,oneof=fajr night anytime"`
}

type UpdateSettingsRequest struct {
	StartDate        string          `json:"start_date" binding:"required"`
	Reminders        model.Reminders `json:"reminders"`
	AutoAdjustOnMiss bool            `json:"auto_adjust_on_miss"`
}
