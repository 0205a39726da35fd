// Command api serves the gigboard HTTP API.
//
//	@title                       Gigboard API
//	@version                     1.0
//	@description                 Night-shift job marketplace: post shifts, browse and apply, review applicants.
//	@BasePath                    /
//	@securityDefinitions.apikey  BearerAuth
//	@in                          header
//	@name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/nightshift/gigboard/internal/api"
	"github.com/nightshift/gigboard/internal/api/handler"
	"github.com/nightshift/gigboard/internal/api/middleware"
	"github.com/nightshift/gigboard/internal/core/service"
	mongodb "github.com/nightshift/gigboard/internal/infrastructure/db/mongo"
	redisdb "github.com/nightshift/gigboard/internal/infrastructure/db/redis"
	"github.com/nightshift/gigboard/internal/pkg/config"
	"github.com/nightshift/gigboard/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is fine; the environment wins either way.
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "gigboard",
	})
	if envErr != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}
	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty, tokens are signed with an empty key")
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid time zone")
	}
	now := service.SystemClock(loc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(dctx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	// --- Repositories ---
	jobRepo := mongodb.NewJobRepository(db)
	appRepo := mongodb.NewApplicationRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	venueRepo := mongodb.NewVenueRepository(db)
	if err := mongodb.EnsureIndexes(ctx, jobRepo, appRepo, userRepo, venueRepo); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}
	revoker := redisdb.NewTokenRevoker(rdb)
	filterCache := redisdb.NewFilterCache(rdb, cfg.Redis.FilterCacheTTL)

	// --- Services ---
	jobs := service.NewJobService(jobRepo, userRepo, now, logger.Component("jobs"))
	ledger := service.NewApplicationService(appRepo, jobRepo, userRepo, now, logger.Component("applications"))
	queries := service.NewQueryService(jobRepo, appRepo, userRepo, now, logger.Component("queries"))
	reviews := service.NewReviewService(jobRepo, appRepo, ledger, now, logger.Component("review"))
	catalog := service.NewCatalogService(jobRepo, venueRepo, filterCache, cfg.Cities, now, logger.Component("catalog"))
	auth := service.NewAuthService(userRepo, revoker, cfg.JWTSecret, cfg.TokenTTL, now, logger.Component("auth"))

	e := api.NewRouter(api.Deps{
		Auth:         auth,
		Jobs:         jobs,
		Queries:      queries,
		Applications: ledger,
		Reviews:      reviews,
		Catalog:      catalog,
		Revoker:      revoker,
		Checks: map[string]handler.Check{
			"mongodb": func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
			"redis":   func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		},
		JWTSecret:    cfg.JWTSecret,
		ApplyLimiter: middleware.NewRateLimiter(cfg.RateLimit.ApplyPerMinute, cfg.RateLimit.ApplyBurst),
		Log:          logger.Component("http"),
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
	}).Handler(e)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           corsHandler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Str("timezone", loc.String()).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, draining connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
