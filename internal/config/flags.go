package config

import (
	"flag"
	"os"
	"time"

	"github.com/kehindeadewusi/lendboard/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   database path (default from Config)
//	-n int      seed count (default from Config)
//	-l int      simulated latency in milliseconds (default from Config)
//
// The function filters os.Args down to the flags it owns, via
// flagx.FilterArgs, so it does not interfere with the -c/-config flags
// handled by the JSON stage.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-n", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "database path")
	fs.IntVar(&cfg.SeedCount, "n", cfg.SeedCount, "number of records to seed on first run")
	latencyMs := fs.Int("l", int(cfg.SimulatedLatency.Milliseconds()), "simulated latency (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SimulatedLatency = time.Duration(*latencyMs) * time.Millisecond
}
