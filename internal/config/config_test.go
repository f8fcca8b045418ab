package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "lendboard.db", c.DatabasePath)
	assert.Equal(t, 500, c.SeedCount)
	assert.Equal(t, 300*time.Millisecond, c.SimulatedLatency)
	assert.Empty(t, c.TokenSecret)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "lendboard.db", cfg.DatabasePath)
	assert.Equal(t, 500, cfg.SeedCount)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("LENDBOARD_DB", "env.db")
	t.Setenv("LENDBOARD_SEED", "100")
	t.Setenv("LENDBOARD_LATENCY", "50ms")
	t.Setenv("LENDBOARD_SECRET", "env-secret")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "env.db", cfg.DatabasePath)
	assert.Equal(t, 100, cfg.SeedCount)
	assert.Equal(t, 50*time.Millisecond, cfg.SimulatedLatency)
	assert.Equal(t, "env-secret", cfg.TokenSecret)
}

func TestParseEnv_MalformedValuesIgnored(t *testing.T) {
	t.Setenv("LENDBOARD_SEED", "lots")
	t.Setenv("LENDBOARD_LATENCY", "soon")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 500, cfg.SeedCount)
	assert.Equal(t, 300*time.Millisecond, cfg.SimulatedLatency)
}
