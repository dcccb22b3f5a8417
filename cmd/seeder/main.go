package main

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/sync/semaphore"

	"atlas_travel/internal/adapters/observability"
	"atlas_travel/internal/domain"
	"atlas_travel/internal/shared"
	mongorepo "atlas_travel/internal/storage/mongo"
)

type seedPlace struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PhotoURL    string `json:"photoUrl"`
	IsActive    bool   `json:"isActive"`
}

type seedDestination struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	PhotoURL    string      `json:"photoUrl"`
	IsActive    bool        `json:"isActive"`
	Places      []seedPlace `json:"places"`
}

type seedCountry struct {
	Name         string            `json:"name"`
	IsActive     bool              `json:"isActive"`
	Destinations []seedDestination `json:"destinations"`
}

type seedFile struct {
	Countries []seedCountry `json:"countries"`
}

func main() {
	_ = godotenv.Load()
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("file", cfg.SeedFile).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	raw, err := os.ReadFile(cfg.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("read seed file failed")
	}
	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		log.Fatal().Err(err).Msg("parse seed file failed")
	}

	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(connCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("mongo.Connect failed")
	}
	if err := client.Ping(connCtx, readpref.Primary()); err != nil {
		log.Fatal().Err(err).Msg("mongo ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mongorepo.New(client.Database(cfg.MongoDB), cfg.MongoDirect)

	// Countries and destinations are created in order so sortOrder
	// follows the file; places fan out under a bounded worker pool.
	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, sc := range seed.Countries {
		country, err := repo.CreateCountry(ctx, domain.Country{Name: sc.Name, IsActive: sc.IsActive})
		if err != nil {
			log.Fatal().Str("country", sc.Name).Err(err).Msg("create country failed")
		}
		log.Info().Str("country", country.Name).Str("id", country.ID).Msg("country seeded")

		for i, sd := range sc.Destinations {
			dest, err := repo.CreateDestination(ctx, domain.Destination{
				CountryID:   country.ID,
				Name:        sd.Name,
				Description: sd.Description,
				PhotoURL:    sd.PhotoURL,
				IsActive:    sd.IsActive,
				SortOrder:   i,
			})
			if err != nil {
				log.Fatal().Str("destination", sd.Name).Err(err).Msg("create destination failed")
			}
			log.Info().Str("destination", dest.Name).Str("id", dest.ID).Msg("destination seeded")

			for j, sp := range sd.Places {
				place := domain.RecommendedPlace{
					DestinationID:   dest.ID,
					Name:            sp.Name,
					Description:     sp.Description,
					PhotoURL:        sp.PhotoURL,
					IsActive:        sp.IsActive,
					SortOrder:       j,
					DestinationName: dest.Name,
				}

				// acquire before launching the goroutine; release inside it
				if err := sem.Acquire(ctx, 1); err != nil {
					log.Fatal().Err(err).Msg("semaphore acquire failed")
				}

				wg.Add(1)
				go func(p domain.RecommendedPlace) {
					defer wg.Done()
					defer sem.Release(1)

					created, err := repo.CreatePlace(ctx, p)
					if err != nil {
						log.Warn().Str("place", p.Name).Err(err).Msg("create place failed")
						return
					}
					log.Info().Str("place", created.Name).Str("id", created.ID).Msg("place seeded")
				}(place)
			}
		}
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
