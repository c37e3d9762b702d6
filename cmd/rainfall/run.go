package main

import (
	"fmt"
	"io"
	"math"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	billy "gopkg.in/src-d/go-billy.v4"

	"github.com/zibibbo-zibibbi/rainfall/column"
	"github.com/zibibbo-zibibbi/rainfall/internal/phases"
	"github.com/zibibbo-zibibbi/rainfall/oracle"
	"github.com/zibibbo-zibibbi/rainfall/terrain"
	"github.com/zibibbo-zibibbi/rainfall/world"
)

var errMismatch = errors.New("drained water does not match the reference formula")

// verifyTolerance is relative; float totals accumulate rounding differently
// in the two methods.
const verifyTolerance = 1e-6

// run builds or loads the terrain described by cfg, drains it and writes the
// result line (and metrics, if asked) to out. fs is only used when cfg.Input
// is set.
func run(cfg config, fs billy.Filesystem, out io.Writer, logger log.Logger) error {
	reg := prometheus.NewRegistry()
	rec := phases.NewRecorder(reg, logger)

	var err error
	if cfg.Float {
		err = simulate(cfg, rec, out, logger, func() ([]float64, error) {
			if cfg.Input != "" {
				return terrain.LoadFloats(fs, cfg.Input)
			}
			return terrain.UniformFloats(cfg.Count, cfg.Seed, terrain.WithMaxHeight(cfg.MaxHeight))
		})
	} else {
		err = simulate(cfg, rec, out, logger, func() ([]int, error) {
			if cfg.Input != "" {
				return terrain.LoadInts(fs, cfg.Input)
			}
			return terrain.UniformInts(cfg.Count, cfg.Seed, terrain.WithMaxHeight(cfg.MaxHeight))
		})
	}
	if err != nil {
		return err
	}

	if cfg.Metrics {
		return writeMetrics(reg, out)
	}

	return nil
}

func simulate[T column.Number](cfg config, rec *phases.Recorder, out io.Writer, logger log.Logger, source func() ([]T, error)) error {
	var (
		heights []T
		err     error
	)
	rec.Time(phases.Generate, func() {
		heights, err = source()
	})
	if err != nil {
		return errors.Wrap(err, "terrain")
	}
	level.Info(logger).Log("msg", "terrain ready", "columns", len(heights), "input", cfg.Input)

	var w *world.World[T]
	creation := rec.Time(phases.Creation, func() {
		w, err = world.New(heights, world.WithLogger(logger))
	})
	if err != nil {
		return errors.Wrap(err, "build world")
	}
	draining := rec.Time(phases.Draining, w.Drain)

	water := w.Water()
	rec.Observe(w.Len(), float64(water))
	level.Info(logger).Log("msg", "terrain drained", "water", water, "creation", creation, "draining", draining)

	if cfg.Verify {
		var want T
		rec.Time(phases.Verify, func() {
			want = oracle.TwoPointer(heights)
		})
		if !withinTolerance(float64(water), float64(want)) {
			return errors.Wrapf(errMismatch, "drained %v, reference %v", water, want)
		}
		level.Info(logger).Log("msg", "result verified", "reference", want)
	}

	_, err = fmt.Fprintf(out, "water=%v creation=%v draining=%v total=%v\n", water, creation, draining, creation+draining)

	return err
}

func withinTolerance(got, want float64) bool {
	return math.Abs(got-want) <= verifyTolerance*math.Max(1, math.Abs(want))
}

func writeMetrics(g prometheus.Gatherer, out io.Writer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}

	return nil
}
