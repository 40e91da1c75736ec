package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/littlesona/vks-portal/internal/api"
	"github.com/littlesona/vks-portal/internal/core/ports"
	"github.com/littlesona/vks-portal/internal/core/service"
	mongodb "github.com/littlesona/vks-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/littlesona/vks-portal/internal/infrastructure/db/redis"
	"github.com/littlesona/vks-portal/internal/infrastructure/otp"
	"github.com/littlesona/vks-portal/internal/infrastructure/queue"
	"github.com/littlesona/vks-portal/internal/pkg/config"
	"github.com/littlesona/vks-portal/pkg/logger"
)

// @title        VKS Portal API
// @version      1.0
// @description  Back-office API for milk collection centers, sales, accounts and staff, with two-step OTP login.
// @BasePath     /api
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	// --- Challenge store ---
	var (
		rdb        *goredis.Client
		challenges ports.ChallengeStore
	)
	switch strings.ToLower(cfg.OTP.Store) {
	case "redis":
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Error().Err(err).Msg("redis close failed")
			}
		}()
		challenges = redisdb.NewChallengeStore(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("using redis challenge store")
	default:
		challenges = otp.NewMemoryStore()
		log.Info().Msg("using in-memory challenge store")
	}

	// --- Audit pipeline ---
	auditService := service.NewAuditService(mongodb.NewAuditRepository(db), logger.Component("audit"))
	dispatcher := queue.NewDispatcher(0, auditService, logger.Component("audit"))
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(cfg, db, rdb, challenges, auditService, dispatcher, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}
