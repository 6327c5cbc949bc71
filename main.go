package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/redis/go-redis/v9"

	"github.com/tripline/tripline-backend/config"
	"github.com/tripline/tripline-backend/db"
	"github.com/tripline/tripline-backend/handlers"
	"github.com/tripline/tripline-backend/internal/cache"
	"github.com/tripline/tripline-backend/logger"
	"github.com/tripline/tripline-backend/models"
	"github.com/tripline/tripline-backend/pkg/ecbo"
	"github.com/tripline/tripline-backend/pkg/nominatim"
	"github.com/tripline/tripline-backend/pkg/places"
	"github.com/tripline/tripline-backend/router"
	"github.com/tripline/tripline-backend/services"
)

func main() {
	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Database.RunMigrations {
		if err := db.RunMigrations(cfg.Database.MigrationsPath, cfg.Database.URL()); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=%d",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.MaxConnections,
	)
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		log.Fatalf("Failed to parse database config: %v", err)
	}
	if cfg.Server.Environment == config.EnvProduction {
		poolConfig.ConnConfig.TLSConfig = &tls.Config{
			ServerName: cfg.Database.Host,
			MinVersion: tls.VersionTLS12,
		}
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	store := db.NewStore(pool)
	userModel := models.NewUserModel(store.Users)
	tripModel := models.NewTripModel(store.Trips)
	detailModel := models.NewTripDetailModel(store.TripDetails, store.Trips)

	cacheTTL := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	var searchCache cache.Cache
	if cfg.Cache.Backend == "redis" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		searchCache = cache.NewRedis(redisClient, cacheTTL)
	} else {
		searchCache = cache.NewMemory(cacheTTL, cfg.Cache.MaxEntries)
	}

	geocoder := nominatim.NewClient(cfg.ExternalServices.NominatimBaseURL, cfg.ExternalServices.NominatimUserAgent)
	fetcher := ecbo.NewClient(cfg.ExternalServices.EcboBaseURL)
	lockerService := services.NewLockerService(searchCache, geocoder, fetcher)

	bot, err := messaging_api.NewMessagingApiAPI(cfg.ExternalServices.LineChannelToken)
	if err != nil {
		log.Fatalf("Failed to create LINE messaging client: %v", err)
	}

	placesClient := places.NewClient("", cfg.ExternalServices.GoogleMapsAPIKey)

	deps := router.Dependencies{
		Config:            cfg,
		WebhookHandler:    handlers.NewWebhookHandler(bot, cfg.ExternalServices.LineChannelSecret),
		UserHandler:       handlers.NewUserHandler(userModel),
		TripHandler:       handlers.NewTripHandler(tripModel),
		TripDetailHandler: handlers.NewTripDetailHandler(detailModel),
		LockerHandler:     handlers.NewLockerHandler(lockerService),
		PlacesHandler:     handlers.NewPlacesHandler(placesClient),
		HealthHandler:     handlers.NewHealthHandler(pool),
	}

	r := router.SetupRouter(deps)

	log.Infof("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
