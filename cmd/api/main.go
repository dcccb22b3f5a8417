package main

import (
	"context"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/time/rate"

	"atlas_travel/internal/adapters/blob"
	server "atlas_travel/internal/adapters/http_server"
	"atlas_travel/internal/adapters/observability"
	redisad "atlas_travel/internal/adapters/redis"
	"atlas_travel/internal/app"
	"atlas_travel/internal/domain"
	"atlas_travel/internal/shared"
	mongorepo "atlas_travel/internal/storage/mongo"
)

func main() {
	_ = godotenv.Load()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("mongo.Connect failed")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal().Err(err).Msg("mongo ping failed")
	}
	log.Info().Str("db", cfg.MongoDB).Msg("database connection ok")

	// deps
	repo := mongorepo.New(client.Database(cfg.MongoDB), cfg.MongoDirect)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	inline := blob.NewInline()
	var placeImages domain.ImageStore = inline
	if cfg.BlobBaseURL != "" {
		st, err := blob.NewStore(cfg.BlobBaseURL, cfg.BlobSecret, "places")
		if err != nil {
			log.Fatal().Err(err).Msg("blob store init failed")
		}
		placeImages = st
	} else {
		log.Warn().Msg("BLOB_BASE_URL is empty; place images fall back to inline encoding")
	}
	images := app.ImageSet{
		Hotels:       inline,
		Trips:        inline,
		Destinations: inline,
		Places:       placeImages,
	}

	catalog := app.NewCatalog(repo, cache, cfg.CacheTTL)
	admin := app.NewAdmin(repo, images, cache)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Catalog:    catalog,
		Admin:      admin,
		AdminKey:   cfg.AdminAPIKey,
		QuoteLimit: rate.NewLimiter(rate.Limit(cfg.QuoteRPS), cfg.QuoteBurst),
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
