package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/vidly/rental-api/docs"
	"github.com/vidly/rental-api/internal/api"
	"github.com/vidly/rental-api/internal/infrastructure/config"
	mongodb "github.com/vidly/rental-api/internal/infrastructure/db/mongo"
	redisdb "github.com/vidly/rental-api/internal/infrastructure/db/redis"
	"github.com/vidly/rental-api/pkg/logger"
)

// @title        Vidly Rental API
// @version      1.0
// @description  Video rental store REST API: customers, movies, genres, rentals, returns.
//
// @securityDefinitions.apikey TokenAuth
// @in   header
// @name x-auth-token
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	e := api.NewRouter(db, rdb, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewGenreRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewMovieRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewRentalRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewUserRepository(db).EnsureIndexes(ctx)
}
