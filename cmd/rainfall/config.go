package main

import (
	"flag"
	"fmt"

	"github.com/go-kit/kit/log/level"
	"go.uber.org/multierr"
)

type config struct {
	Count     int
	Seed      int64
	MaxHeight float64
	Float     bool
	Input     string
	Verify    bool
	Metrics   bool
	LogLevel  string
}

func defaultConfig() config {
	return config{
		Count:     10000000,
		Seed:      1,
		MaxHeight: 200,
		LogLevel:  "info",
	}
}

func (cfg *config) AddFlags(f *flag.FlagSet) {
	f.IntVar(&cfg.Count, "count", cfg.Count, "number of terrain columns to generate")
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the terrain generator")
	f.Float64Var(&cfg.MaxHeight, "max-height", cfg.MaxHeight, "exclusive upper bound of generated heights")
	f.BoolVar(&cfg.Float, "float", cfg.Float, "use real-valued heights instead of integers")
	f.StringVar(&cfg.Input, "input", cfg.Input, "read heights from this file instead of generating them")
	f.BoolVar(&cfg.Verify, "verify", cfg.Verify, "cross-check the result against the two-pointer formula")
	f.BoolVar(&cfg.Metrics, "metrics", cfg.Metrics, "write run metrics in Prometheus text format to stdout")
	f.StringVar(&cfg.LogLevel, "log.level", cfg.LogLevel, "log level: debug, info, warn or error")
}

// Validate reports every invalid setting at once.
func (cfg *config) Validate() error {
	var err error
	if cfg.Input == "" && cfg.Count < 1 {
		err = multierr.Append(err, fmt.Errorf("-count must be at least 1, got %d", cfg.Count))
	}
	if cfg.MaxHeight <= 0 {
		err = multierr.Append(err, fmt.Errorf("-max-height must be positive, got %v", cfg.MaxHeight))
	}
	if _, lerr := levelOption(cfg.LogLevel); lerr != nil {
		err = multierr.Append(err, lerr)
	}

	return err
}

func levelOption(s string) (level.Option, error) {
	switch s {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	}

	return nil, fmt.Errorf("-log.level must be one of debug, info, warn, error, got %q", s)
}
