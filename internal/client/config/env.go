package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables,
// loading a .env file from the working directory first when one exists.
//
// Recognized variables:
//
//	CANTEEN_BASE_URL         root URL of the backend API
//	CANTEEN_DATABASE_PATH    path of the local sqlite store
//	CANTEEN_REQUEST_TIMEOUT  per-request timeout, Go duration syntax
//	CANTEEN_POLL_INTERVAL    order tracking poll interval, Go duration syntax
//
// Unset variables leave the current value untouched; malformed durations
// are ignored rather than fatal, the flag stage can still override them.
func parseEnv(cfg *Config) {
	_ = godotenv.Load() // a missing .env is not an error

	if v := os.Getenv("CANTEEN_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("CANTEEN_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("CANTEEN_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("CANTEEN_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.PollInterval = d
		}
	}
}
