package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvAPIBaseURL  = "TRACE_API_BASE_URL"
	EnvStorePath   = "TRACE_AUTH_STORE"
	EnvDownloadDir = "TRACE_DOWNLOAD_DIR"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first when present; real environment variables
// win over .env entries (godotenv never overrides existing ones).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv(EnvAPIBaseURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv(EnvStorePath); ok && v != "" {
		cfg.StorePath = v
	}
	if v, ok := os.LookupEnv(EnvDownloadDir); ok && v != "" {
		cfg.DownloadDir = v
	}
}
