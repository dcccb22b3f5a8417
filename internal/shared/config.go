package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	AdminAPIKey string
	MongoURI    string
	MongoDB     string
	MongoDirect bool
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	BlobBaseURL string
	BlobSecret  string
	QuoteRPS    float64
	QuoteBurst  int
	SeedFile    string
	SeedWorkers int
	CacheTTL    time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		AdminAPIKey: env("ADMIN_API_KEY", ""),
		MongoURI:    env("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     env("MONGO_DB", "atlas_travel"),
		MongoDirect: env("MONGO_DIRECT_WRITES", "") == "true",
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisDB:     atoi("REDIS_DB", 0),
		RedisPass:   env("REDIS_PASSWORD", ""),
		BlobBaseURL: env("BLOB_BASE_URL", ""),
		BlobSecret:  env("BLOB_SECRET", ""),
		QuoteRPS:    float64(atoi("QUOTE_RPS", 2)),
		QuoteBurst:  atoi("QUOTE_BURST", 5),
		SeedFile:    env("SEED_FILE", "seed/seed.json"),
		SeedWorkers: atoi("SEED_WORKERS", 8),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if c.AdminAPIKey == "" {
		log.Warn().Msg("ADMIN_API_KEY is empty; admin routes will reject every request")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
