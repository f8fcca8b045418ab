package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment,
// loading a .env file first when one exists. Malformed numeric values are
// ignored, leaving the previous value in place.
//
// Recognized variables:
//
//	LENDBOARD_DB       — database path
//	LENDBOARD_SEED     — seed count (integer)
//	LENDBOARD_LATENCY  — simulated latency (Go duration, e.g. "300ms")
//	LENDBOARD_SECRET   — token signing secret
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("LENDBOARD_DB"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("LENDBOARD_SEED"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SeedCount = n
		}
	}
	if v := os.Getenv("LENDBOARD_LATENCY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			cfg.SimulatedLatency = d
		}
	}
	if v := os.Getenv("LENDBOARD_SECRET"); v != "" {
		cfg.TokenSecret = v
	}
}
