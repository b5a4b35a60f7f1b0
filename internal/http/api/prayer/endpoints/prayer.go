package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/http/api"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/prayer"
)

type PrayerController struct {
	client *prayer.Client
}

func NewPrayerController(client *prayer.Client) *PrayerController {
	return &PrayerController{client: client}
}

// PrayerModule mounts the public prayer-timings endpoints. No auth: timings
// are the same for everyone in a city.
func PrayerModule(client *prayer.Client) api.Module {
	ctl := NewPrayerController(client)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/prayer/timings", ctl.getTimings)
		c.PUBLIC_GET("/prayer/window", ctl.getWindow)
	})
}

// GET /api/prayer/timings?city=Bangalore&country=India
func (p *PrayerController) getTimings(ctx *gin.Context) (any, *api.APIError) {
	city := ctx.Query("city")
	if city == "" {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "city is required"}
	}
	country := ctx.DefaultQuery("country", "India")

	times, err := p.client.TimingsByCity(ctx, city, country)
	if err != nil {
		log.Error().Err(err).Str("city", city).Msg("failed to fetch prayer timings")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "failed to get prayer times"}
	}
	return times, nil
}

// GET /api/prayer/window?city=Bangalore&country=India
func (p *PrayerController) getWindow(ctx *gin.Context) (any, *api.APIError) {
	city := ctx.Query("city")
	if city == "" {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "city is required"}
	}
	country := ctx.DefaultQuery("country", "India")

	times, err := p.client.TimingsByCity(ctx, city, country)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "failed to get prayer times"}
	}

	window, err := prayer.Window(times.Timings, time.Now())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "unusable prayer times"}
	}
	return window, nil
}
