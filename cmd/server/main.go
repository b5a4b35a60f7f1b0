package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/db"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/notify"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/prayer"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/quran"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/ramadan"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/state"
)

func main() {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	env := LoadEnvironment()

	// PostgreSQL: accounts and the mosque directory
	conn, err := db.Init(env.DatabaseURL)
	if err != nil {
		log.Fatalf("db init: %v", err)
	}
	if err := db.RunMigrations(conn, env.MigrationsPath); err != nil {
		log.Fatalf("db migrate: %v", err)
	}
	store := db.NewStore(conn)

	// Redis holds per-user tracker/reading state and the prayer cache.
	// Without it, state lives in process memory only.
	var kv state.Store
	if env.RedisAddress != "" {
		redisStore := state.NewRedisStore(env.RedisAddress, env.RedisUsername, env.RedisPassword)
		if err := redisStore.Ping(context.Background()); err != nil {
			log.Fatalf("redis init: %v", err)
		}
		kv = redisStore
	} else {
		zlog.Warn().Msg("REDIS_ADDRESS not set, tracker state will not survive restarts")
		kv = state.NewMemoryStore()
	}

	tracker := ramadan.NewTracker(kv)
	library := quran.NewLibrary(kv)
	prayerClient := prayer.NewClient(kv)

	var notifier *notify.Notifier
	if env.MQTTBrokerURL != "" {
		notifier, err = notify.NewNotifier(env.MQTTBrokerURL, "deen-server")
		if err != nil {
			zlog.Warn().Err(err).Msg("MQTT unavailable, reminder pushes disabled")
			notifier = nil
		} else {
			defer notifier.Close()
		}
	}

	uploads := InitStorage(env)

	r := gin.Default()
	RegisterRoutes(r, env, store, tracker, library, prayerClient, notifier, uploads)

	log.Printf("listening on %s", env.ServerAddress)
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
