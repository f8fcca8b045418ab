// Package config assembles runtime settings for the lendboard CLI from, in
// order of increasing precedence: built-in defaults, environment variables
// (with optional .env file), a JSON config file and command-line flags.
package config

import (
	"time"
)

// Config holds runtime settings for the lendboard CLI.
//
// Fields:
//   - DatabasePath: sqlite file backing the local store (":memory:" works).
//   - SeedCount: collection size generated on first read.
//   - SimulatedLatency: per-operation round-trip delay; zero disables it.
//   - TokenSecret: HMAC secret for session tokens; empty means a random
//     per-process secret.
type Config struct {
	DatabasePath     string
	SeedCount        int
	SimulatedLatency time.Duration
	TokenSecret      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "lendboard.db"
	c.SeedCount = 500
	c.SimulatedLatency = 300 * time.Millisecond
	c.TokenSecret = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present) and command-line flags (if
// present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
