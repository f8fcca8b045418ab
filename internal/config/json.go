package config

import (
	"encoding/json"
	"os"

	"github.com/kehindeadewusi/lendboard/internal/flagx"
	"github.com/kehindeadewusi/lendboard/internal/timex"
)

// JsonConfig is the DTO for JSON unmarshalling. timex.Duration lets the
// file specify latency either as a string like "300ms" or as integer
// nanoseconds. Parsed values are copied into the runtime Config.
type JsonConfig struct {
	DatabasePath     *string         `json:"database_path"`
	SeedCount        *int            `json:"seed_count"`
	SimulatedLatency *timex.Duration `json:"simulated_latency"`
	TokenSecret      *string         `json:"token_secret"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. Absent flags mean no JSON is loaded. Fields missing
// from the file keep their previous values; read or unmarshal errors panic
// (the process cannot run against a config it cannot interpret).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.SeedCount != nil {
		cfg.SeedCount = *jc.SeedCount
	}
	if jc.SimulatedLatency != nil {
		cfg.SimulatedLatency = jc.SimulatedLatency.Duration
	}
	if jc.TokenSecret != nil {
		cfg.TokenSecret = *jc.TokenSecret
	}
}
