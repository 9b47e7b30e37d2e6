package config

const (
	envAPIBaseURL  = "FOLIO_API_BASE_URL"
	envStoragePath = "FOLIO_STORAGE_PATH"
	envLogLevel    = "FOLIO_LOG_LEVEL"
)

// parseEnv overlays cfg with the non-empty FOLIO_* variables.
func parseEnv(cfg *Config, getenv func(string) string) {
	if v := getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := getenv(envStoragePath); v != "" {
		cfg.StoragePath = v
	}
	if v := getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
