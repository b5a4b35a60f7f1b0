package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/db"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/http/api"
	authapi "github.com/mrfaizanshariff/mosqueProject-sub000/internal/http/api/auth/endpoints"
	mosquesapi "github.com/mrfaizanshariff/mosqueProject-sub000/internal/http/api/mosques/endpoints"
	prayerapi "github.com/mrfaizanshariff/mosqueProject-sub000/internal/http/api/prayer/endpoints"
	quranapi "github.com/mrfaizanshariff/mosqueProject-sub000/internal/http/api/quran/endpoints"
	ramadanapi "github.com/mrfaizanshariff/mosqueProject-sub000/internal/http/api/ramadan/endpoints"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/notify"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/prayer"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/quran"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/ramadan"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/storage"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(
	r *gin.Engine,
	env Environment,
	store db.Store,
	tracker *ramadan.Tracker,
	library *quran.Library,
	prayerClient *prayer.Client,
	notifier *notify.Notifier,
	uploads storage.Storage,
) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
		Auth:   false,
	},
		authapi.AuthPublicModule(env.SecretKey, store),
		prayerapi.PrayerModule(prayerClient),
		mosquesapi.DirectoryPublicModule(store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		authapi.AuthSessionModule(env.SecretKey, store),
		ramadanapi.TrackerModule(tracker, library, notifier),
		quranapi.ReadingModule(library),
		mosquesapi.DirectoryAdminModule(store, uploads),
	)

	// Uploaded photos are served straight from disk in local mode.
	if !env.UseSpaces {
		r.Static("/uploads", "./uploads")
	}
}
