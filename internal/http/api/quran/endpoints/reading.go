package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/http/api"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/http/api/quran/packets"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/model"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/quran"
)

type ReadingController struct {
	library *quran.Library
}

func NewReadingController(library *quran.Library) *ReadingController {
	return &ReadingController{library: library}
}

// ReadingModule mounts the Quran reading-progress endpoints.
func ReadingModule(library *quran.Library) api.Module {
	ctl := NewReadingController(library)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/quran/progress", ctl.getProgress)
		c.POST("/quran/position", ctl.updatePosition)
		c.POST("/quran/favorites/toggle", ctl.toggleFavorite)
	})
}

// GET /api/quran/progress
func (r *ReadingController) getProgress(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	s, err := r.library.GetState(ctx, user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load reading state"}
	}
	return gin.H{
		"surahs":           s.Surahs,
		"favorites":        s.Favorites,
		"total_ayahs_read": s.TotalAyahsRead,
		"reading_percent":  s.ReadingPercent(),
	}, nil
}

// POST /api/quran/position
func (r *ReadingController) updatePosition(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdatePositionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	err := r.library.UpdatePosition(ctx, user.ID,
		request.SurahID, request.LastAyahRead, request.TotalAyahs, request.ScrollPosition)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save reading position"}
	}
	return gin.H{"surah_id": request.SurahID, "last_ayah_read": request.LastAyahRead}, nil
}

// POST /api/quran/favorites/toggle
func (r *ReadingController) toggleFavorite(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.ToggleFavoriteRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if err := r.library.ToggleFavorite(ctx, user.ID, request.SurahID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not toggle favorite"}
	}
	return gin.H{"surah_id": request.SurahID}, nil
}
