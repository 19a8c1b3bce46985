// @title        DealFourWheel Marketplace API
// @version      1.0
// @description  Vehicle-resale marketplace backend: categories, users, products, bookings.
// @host         localhost:5000
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"

	"github.com/dealfourwheel/marketplace-api/internal/api"
	"github.com/dealfourwheel/marketplace-api/internal/infrastructure/config"
	mongodb "github.com/dealfourwheel/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/dealfourwheel/marketplace-api/internal/infrastructure/db/redis"
	"github.com/dealfourwheel/marketplace-api/pkg/logger"

	_ "github.com/dealfourwheel/marketplace-api/docs" // swag-generated docs
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := mongodb.NewProductRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("product index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	e := api.NewRouter(db, rdb, cfg.JWTSecret, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("DealFourWheel server starting")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
