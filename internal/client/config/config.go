package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the folio client.
//
// Fields:
//   - APIBaseURL: base URL of the portfolio REST API; every request path is
//     resolved against it.
//   - StoragePath: SQLite file backing the durable local storage.
//   - RequestTimeout: per-request timeout of the HTTP client.
//   - RetryAttempts: attempts for idempotent GET requests (1 disables retry).
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string
	StoragePath    string
	RequestTimeout time.Duration
	RetryAttempts  int
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.StoragePath = "folio.db"
	c.RequestTimeout = 10 * time.Second
	c.RetryAttempts = 3
	c.LogLevel = "info"
}

// LoadConfig constructs a Config from defaults, then overlays an optional
// JSON file, environment variables and command-line flags, in that order.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	return load(os.Args[1:], os.Getenv)
}

func load(args []string, getenv func(string) string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg, getenv)
	parseFlags(cfg, args)
	return cfg
}
