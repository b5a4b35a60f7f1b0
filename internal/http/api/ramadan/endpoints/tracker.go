package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/http/api"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/http/api/ramadan/packets"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/model"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/notify"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/quran"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/ramadan"
)

type TrackerController struct {
	tracker  *ramadan.Tracker
	library  *quran.Library
	notifier *notify.Notifier
}

func NewTrackerController(tracker *ramadan.Tracker, library *quran.Library, notifier *notify.Notifier) *TrackerController {
	return &TrackerController{tracker: tracker, library: library, notifier: notifier}
}

// TrackerModule mounts the Ramadan tracker endpoints. All of them require a
// valid JWT.
func TrackerModule(tracker *ramadan.Tracker, library *quran.Library, notifier *notify.Notifier) api.Module {
	ctl := NewTrackerController(tracker, library, notifier)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/ramadan/state", ctl.getState)
		c.DELETE("/ramadan/state", ctl.resetState)
		c.GET("/ramadan/stats", ctl.getStats)

		// goal registry
		c.PUT("/ramadan/goals", ctl.setGoals)
		c.POST("/ramadan/goals", ctl.addGoal)
		c.DELETE("/ramadan/goals/:id", ctl.removeGoal)
		c.POST("/ramadan/goals/:id/toggle", ctl.toggleGoal)

		// daily ledger
		c.POST("/ramadan/salah/toggle", ctl.toggleSalah)
		c.POST("/ramadan/taraweeh/toggle", ctl.toggleTaraweeh)
		c.POST("/ramadan/custom/toggle", ctl.toggleCustom)
		c.POST("/ramadan/quran/complete", ctl.markQuranComplete)
		c.POST("/ramadan/quran/progress", ctl.updateQuranProgress)
		c.POST("/ramadan/quran/sync", ctl.syncQuranProgress)
		c.POST("/ramadan/dhikr/increment", ctl.incrementDhikr)
		c.POST("/ramadan/dhikr/reset", ctl.resetDhikr)

		// plan & settings
		c.PUT("/ramadan/plan", ctl.setPlan)
		c.GET("/ramadan/settings", ctl.getSettings)
		c.PUT("/ramadan/settings", ctl.updateSettings)
	})
}

// dateOrToday defaults an empty date field and rejects malformed ones.
func dateOrToday(date string) (string, *api.APIError) {
	if date == "" {
		return ramadan.DateKey(time.Now()), nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", &api.APIError{Code: http.StatusBadRequest, Message: "date must be YYYY-MM-DD"}
	}
	return date, nil
}

// GET /api/ramadan/state
func (t *TrackerController) getState(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	s, err := t.tracker.GetState(ctx, user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load tracker state"}
	}
	return s, nil
}

// DELETE /api/ramadan/state
func (t *TrackerController) resetState(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	if err := t.tracker.Reset(ctx, user.ID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not reset tracker"}
	}
	return gin.H{"reset": true}, nil
}

// GET /api/ramadan/stats
func (t *TrackerController) getStats(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	stats, err := t.tracker.GetStats(ctx, user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not compute stats"}
	}
	return stats, nil
}

// PUT /api/ramadan/goals
func (t *TrackerController) setGoals(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.SetGoalsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if err := t.tracker.SetGoals(ctx, user.ID, request.Goals); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save goals"}
	}
	return gin.H{"updated": true}, nil
}

// POST /api/ramadan/goals
func (t *TrackerController) addGoal(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.AddGoalRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if err := t.tracker.AddGoal(ctx, user.ID, request.Goal); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not add goal"}
	}
	return gin.H{"added": true}, nil
}

// DELETE /api/ramadan/goals/:id
func (t *TrackerController) removeGoal(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	if err := t.tracker.RemoveGoal(ctx, user.ID, ctx.Param("id")); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not remove goal"}
	}
	return gin.H{"removed": true}, nil
}

// POST /api/ramadan/goals/:id/toggle
func (t *TrackerController) toggleGoal(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	if err := t.tracker.ToggleGoal(ctx, user.ID, ctx.Param("id")); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not toggle goal"}
	}
	return gin.H{"toggled": true}, nil
}

// POST /api/ramadan/salah/toggle
func (t *TrackerController) toggleSalah(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.ToggleSalahRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	date, apiErr := dateOrToday(request.Date)
	if apiErr != nil {
		return nil, apiErr
	}
	if err := t.tracker.ToggleSalah(ctx, user.ID, date, request.Prayer); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not record salah"}
	}
	return gin.H{"date": date, "prayer": request.Prayer}, nil
}

// POST /api/ramadan/taraweeh/toggle
func (t *TrackerController) toggleTaraweeh(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.ToggleTaraweehRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	date, apiErr := dateOrToday(request.Date)
	if apiErr != nil {
		return nil, apiErr
	}
	if err := t.tracker.ToggleTaraweeh(ctx, user.ID, date); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not record taraweeh"}
	}
	return gin.H{"date": date}, nil
}

// POST /api/ramadan/custom/toggle
func (t *TrackerController) toggleCustom(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.ToggleCustomRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	date, apiErr := dateOrToday(request.Date)
	if apiErr != nil {
		return nil, apiErr
	}
	if err := t.tracker.ToggleCustomHabit(ctx, user.ID, date, request.GoalID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not record habit"}
	}
	return gin.H{"date": date, "goal_id": request.GoalID}, nil
}

// POST /api/ramadan/quran/complete
func (t *TrackerController) markQuranComplete(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.MarkQuranCompleteRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	date, apiErr := dateOrToday(request.Date)
	if apiErr != nil {
		return nil, apiErr
	}
	if err := t.tracker.MarkQuranComplete(ctx, user.ID, date); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not record quran completion"}
	}
	return gin.H{"date": date}, nil
}

// POST /api/ramadan/quran/progress
func (t *TrackerController) updateQuranProgress(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.QuranProgressRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	date, apiErr := dateOrToday(request.Date)
	if apiErr != nil {
		return nil, apiErr
	}
	if err := t.tracker.UpdateQuranProgress(ctx, user.ID, date, request.UnitsRead); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not record quran progress"}
	}
	return gin.H{"date": date, "units_read": request.UnitsRead}, nil
}

// POST /api/ramadan/quran/sync
// Pulls the reader's running ayah total into today's Quran habit.
func (t *TrackerController) syncQuranProgress(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	reading, err := t.library.GetState(ctx, user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load reading state"}
	}
	if err := t.tracker.SyncQuranProgress(ctx, user.ID, reading.TotalAyahsRead); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not sync quran progress"}
	}
	return gin.H{"total_ayahs_read": reading.TotalAyahsRead}, nil
}

// POST /api/ramadan/dhikr/increment
func (t *TrackerController) incrementDhikr(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.IncrementDhikrRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	date, apiErr := dateOrToday(request.Date)
	if apiErr != nil {
		return nil, apiErr
	}
	if err := t.tracker.IncrementDhikr(ctx, user.ID, date, request.DhikrTypeID, request.Amount); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not record dhikr"}
	}
	return gin.H{"date": date, "dhikr_type_id": request.DhikrTypeID}, nil
}

// POST /api/ramadan/dhikr/reset
func (t *TrackerController) resetDhikr(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.ResetDhikrRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	date, apiErr := dateOrToday(request.Date)
	if apiErr != nil {
		return nil, apiErr
	}
	if err := t.tracker.ResetDhikr(ctx, user.ID, date); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not reset dhikr"}
	}
	return gin.H{"date": date}, nil
}

// PUT /api/ramadan/plan
func (t *TrackerController) setPlan(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.SetPlanRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	plan := model.QuranPlan{
		CompletionTarget: request.CompletionTarget,
		Unit:             model.QuranUnit(request.Unit),
		PreferredTime:    request.PreferredTime,
	}
	if err := t.tracker.SetPlan(ctx, user.ID, plan); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save plan"}
	}
	return plan, nil
}

// GET /api/ramadan/settings
func (t *TrackerController) getSettings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	s, err := t.tracker.GetState(ctx, user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}
	return s.Settings, nil
}

// PUT /api/ramadan/settings
func (t *TrackerController) updateSettings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if _, err := time.Parse("2006-01-02", request.StartDate); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "start_date must be YYYY-MM-DD"}
	}

	settings := model.RamadanSettings{
		StartDate:        request.StartDate,
		Reminders:        request.Reminders,
		AutoAdjustOnMiss: request.AutoAdjustOnMiss,
	}
	if err := t.tracker.UpdateSettings(ctx, user.ID, settings); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save settings"}
	}

	if t.notifier != nil {
		if err := t.notifier.PublishReminderSchedule(user.ID, settings.Reminders); err != nil {
			log.Warn().Err(err).Int("user_id", user.ID).Msg("failed to publish reminder schedule")
		}
	}
	return settings, nil
}
