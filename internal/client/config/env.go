package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file
// in the working directory is loaded first when present; real environment
// variables win over .env entries (godotenv never overrides them).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("FINKEEPER_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("FINKEEPER_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("FINKEEPER_CACHE_DB"); v != "" {
		cfg.CacheDBPath = v
	}
}
