package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by the client.
const (
	envAPIURL  = "PAYTRACK_API_URL"
	envTimeout = "PAYTRACK_REQUEST_TIMEOUT"
	envDBPath  = "PAYTRACK_DB_PATH"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is folded in first; a missing file is fine.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.APIBaseURL = getEnv(envAPIURL, cfg.APIBaseURL)
	cfg.RequestTimeout = getEnvDuration(envTimeout, cfg.RequestTimeout)
	cfg.DatabaseDSN = getEnv(envDBPath, cfg.DatabaseDSN)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
