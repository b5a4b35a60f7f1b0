package endpoints

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/db"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/http/api"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/http/api/mosques/packets"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/model"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/storage"
)

type MosqueController struct {
	store   db.Store
	uploads storage.Storage
}

func NewMosqueController(store db.Store, uploads storage.Storage) *MosqueController {
	return &MosqueController{store: store, uploads: uploads}
}

// DirectoryPublicModule mounts the read-only directory endpoints.
func DirectoryPublicModule(store db.Store) api.Module {
	ctl := NewMosqueController(store, nil)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/mosques", ctl.listMosques)
		c.PUBLIC_GET("/mosques/:id", ctl.getMosque)
	})
}

// DirectoryAdminModule mounts the write endpoints (JWT required).
func DirectoryAdminModule(store db.Store, uploads storage.Storage) api.Module {
	ctl := NewMosqueController(store, uploads)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/mosques", ctl.createMosque)
		c.PUT("/mosques/:id", ctl.updateMosque)
		c.DELETE("/mosques/:id", ctl.deleteMosque)
		c.POST("/mosques/:id/photo", ctl.uploadPhoto)
	})
}

// GET /api/mosques?city=Bangalore
func (m *MosqueController) listMosques(ctx *gin.Context) (any, *api.APIError) {
	all, err := m.store.ListMosques(ctx.Query("city"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list mosques"}
	}

	out := make([]packets.MosqueResponse, 0, len(all))
	for _, mq := range all {
		out = append(out, mosqueResponse(mq))
	}
	return out, nil
}

// GET /api/mosques/:id
func (m *MosqueController) getMosque(ctx *gin.Context) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	mq, err := m.store.GetMosqueByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "mosque not found"}
	}
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load mosque"}
	}
	return mosqueResponse(mq), nil
}

// POST /api/mosques
func (m *MosqueController) createMosque(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateMosqueRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	mq, err := m.store.CreateMosque(request.Name, request.Address, request.City,
		request.Latitude, request.Longitude, nil, user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create mosque"}
	}
	return mosqueResponse(mq), nil
}

// PUT /api/mosques/:id
func (m *MosqueController) updateMosque(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	var request packets.UpdateMosqueRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := m.store.UpdateMosque(id, request.Name, request.Address, request.City,
		request.Latitude, request.Longitude, nil); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update mosque"}
	}

	mq, err := m.store.GetMosqueByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "mosque not found"}
	}
	return mosqueResponse(mq), nil
}

// DELETE /api/mosques/:id
func (m *MosqueController) deleteMosque(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if err := m.store.DeleteMosque(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete mosque"}
	}
	return gin.H{"deleted": true}, nil
}

// POST /api/mosques/:id/photo
// multipart upload; the stored URL is written back onto the mosque row.
func (m *MosqueController) uploadPhoto(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if m.uploads == nil {
		return nil, &api.APIError{Code: http.StatusNotImplemented, Message: "uploads not configured"}
	}

	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "photo file is required"}
	}

	url, err := m.uploads.SaveFile(fileHeader, fileHeader.Filename)
	if err != nil {
		log.Error().Err(err).Int("mosque_id", id).Msg("failed to store mosque photo")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not store photo"}
	}

	if err := m.store.UpdateMosque(id, nil, nil, nil, nil, nil, &url); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save photo url"}
	}
	return gin.H{"photo_url": url}, nil
}

func mosqueResponse(mq model.Mosque) packets.MosqueResponse {
	return packets.MosqueResponse{
		ID:        mq.ID,
		Name:      mq.Name,
		Address:   mq.Address,
		City:      mq.City,
		Latitude:  mq.Latitude,
		Longitude: mq.Longitude,
		PhotoURL:  mq.PhotoURL,
		CreatedAt: mq.CreatedAt.Format(time.RFC3339),
		UpdatedAt: mq.UpdatedAt.Format(time.RFC3339),
	}
}
