package config

import "time"

// Config holds runtime settings for the FinKeeper CLI.
//
// Fields:
//   - APIBaseURL: base address of the backend REST API, including the
//     path prefix (e.g. http://localhost:5000/api).
//   - RequestTimeout: client-side deadline for one API call.
//   - CacheDBPath: path of the local SQLite snapshot cache.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	CacheDBPath    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.RequestTimeout = 15 * time.Second
	c.CacheDBPath = "finkeeper.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
