// Command rainfall measures how much rain a one-dimensional terrain retains.
//
// By default it generates ten million random columns in [0, 200), the
// benchmark the leak-and-drain method was written for, and reports the
// retained water together with the time spent building and draining the
// world:
//
//	rainfall -count 10000000 -seed 1
//	rainfall -float -verify
//	rainfall -input terrain.txt -metrics
package main

import (
	"flag"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/oklog/ulid"
	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/osfs"
)

func main() {
	cfg := defaultConfig()
	cfg.AddFlags(flag.CommandLine)
	flag.Parse()

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	if err := cfg.Validate(); err != nil {
		level.Error(logger).Log("msg", "invalid configuration", "err", err)
		os.Exit(2)
	}
	allow, _ := levelOption(cfg.LogLevel)
	logger = level.NewFilter(logger, allow)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "run", newRunID())

	var fs billy.Filesystem
	if cfg.Input != "" {
		abs, err := filepath.Abs(cfg.Input)
		if err != nil {
			level.Error(logger).Log("msg", "resolve input path", "err", err)
			os.Exit(2)
		}
		fs = osfs.New(filepath.Dir(abs))
		cfg.Input = filepath.Base(abs)
	}

	if err := run(cfg, fs, os.Stdout, logger); err != nil {
		level.Error(logger).Log("msg", "run failed", "err", err)
		os.Exit(1)
	}
}

func newRunID() ulid.ULID {
	t := time.Now()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(t.UnixNano())), 0)

	return ulid.MustNew(ulid.Timestamp(t), entropy)
}
