// Package phases times the stages of a rainfall run and exposes them, with
// the run's result, as Prometheus metrics.
package phases

import (
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
)

// Phase names used by the CLI.
const (
	Generate = "generate"
	Creation = "creation"
	Draining = "draining"
	Verify   = "verify"
)

// Recorder measures named phases and records the outcome of a run.
type Recorder struct {
	logger log.Logger

	duration *prometheus.HistogramVec
	columns  prometheus.Gauge
	water    prometheus.Gauge
	runs     prometheus.Counter
}

// NewRecorder creates a Recorder and registers its metrics with r, when r is
// not nil. A nil logger is replaced by a nop logger.
func NewRecorder(r prometheus.Registerer, l log.Logger) *Recorder {
	if l == nil {
		l = log.NewNopLogger()
	}
	rec := &Recorder{
		logger: l,
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rainfall_phase_duration_seconds",
			Help:    "Wall-clock duration of each phase of a rainfall run.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"phase"}),
		columns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rainfall_columns",
			Help: "Number of terrain columns in the last run.",
		}),
		water: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rainfall_water_retained",
			Help: "Water retained by the terrain in the last run.",
		}),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rainfall_runs_total",
			Help: "Total number of completed rainfall runs.",
		}),
	}

	if r != nil {
		r.MustRegister(
			rec.duration,
			rec.columns,
			rec.water,
			rec.runs,
		)
	}

	return rec
}

// Time runs fn, observes its duration under phase and returns it.
func (r *Recorder) Time(phase string, fn func()) time.Duration {
	start := time.Now()
	fn()
	d := time.Since(start)

	r.duration.WithLabelValues(phase).Observe(d.Seconds())
	level.Debug(r.logger).Log("msg", "phase complete", "phase", phase, "duration", d)

	return d
}

// Observe records the outcome of a completed run.
func (r *Recorder) Observe(columns int, water float64) {
	r.columns.Set(float64(columns))
	r.water.Set(water)
	r.runs.Inc()
}
